// Package genealign computes optimal pairwise sequence alignments.
//
// 🚀 What is genealign?
//
//	A small, dependency-light Go module that scores how two symbol
//	sequences (DNA, protein, plain words) line up:
//		• Needleman–Wunsch global alignment with fixed match/substitution/indel costs
//		• Banded mode that only explores a diagonal window of the cost table
//		• Aligned strings with '-' gaps for display
//		• Cost-table inspection for debugging
//
// ✨ Why choose genealign?
//
//   - Deterministic – a fixed tie-break yields the same alignment every time
//   - Pure Go – no cgo, no global state, safe to call concurrently
//   - Bounded – each call truncates its inputs, so its cost is bounded too
//
// Layout:
//
//	nw/             — the alignment engine (Align, Compute, Table)
//	cmd/genealign/  — command line front end
//	examples/       — runnable scenario
//
//	go get github.com/katalvlaran/genealign/nw
package genealign
