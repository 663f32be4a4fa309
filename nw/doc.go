// Package nw computes optimal (minimum-cost) global alignments of two
// symbol sequences with Needleman–Wunsch dynamic programming.
//
// 🚀 What is Needleman–Wunsch?
//
//	NW fills a cost table whose cell (i, j) holds the cheapest way to align
//	the first j symbols of seq1 with the first i symbols of seq2, using
//	three edit steps: match/substitution (diagonal) and insertion/deletion
//	(left or top). Walking predecessor links back from the last cell yields
//	the alignment itself. Typical uses:
//	  • DNA / protein sequence comparison
//	  • Spelling distance with a reward for matching symbols
//	  • Any alphabet that can be compared symbol by symbol
//
// ✨ Key features:
//   - full mode: exact optimum, O(N·M) time & memory
//   - banded mode: only |row−col| ≤ MaxIndels is explored, O(N·k) with k = 2·MaxIndels+1
//   - deterministic tie-break: the last of Diagonal, Top, Left that reaches the minimum wins
//   - aligned strings with '-' gaps, clipped to DisplayLength symbols
//   - cost-table inspection via Compute, Table.Path and Table.Format
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/genealign/nw"
//
//	res, err := nw.Align("GATTACA", "GCATGCU", true, 1000)
//	if err != nil {
//	  // only ErrBadLength can happen here
//	}
//	if !res.Aligned() {
//	  // the band excluded the last cell: res.Cost == +Inf
//	}
//	fmt.Println(res.Cost, res.Seq1, res.Seq2)
//
// Scoring (fixed):
//
//	MatchScore = -3, SubstitutionCost = 1, IndelCost = 5
//
// Performance:
//
//   - Time:   O(N·M) full, O(N·k) banded
//   - Memory: same as time; the table lives only for the duration of a call
//
// Calls share no state, so independent pairs may be aligned concurrently.
package nw
