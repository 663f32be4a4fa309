package nw

import "slices"

// Align computes the optimal alignment of seq1 and seq2.
//
// Description:
//
//	Both sequences are truncated to their first maxCompareLength symbols
//	(Unicode code points). banded selects the diagonal band of radius
//	DefaultMaxIndels; otherwise the full table is computed. Every other
//	option keeps its DefaultOptions value.
//
// Algorithm Outline:
//  1. Truncate; identical sequences short-circuit to len·MatchScore.
//  2. Fill the cost table (see Compute).
//  3. If the last cell is absent, return Cost=+Inf and NoAlignment strings.
//  4. Otherwise backtrack, reverse and clip both strings to DisplayLength.
//
// Errors:
//   - ErrBadLength — maxCompareLength ≤ 0.
//
// An alignment excluded by the band is not an error: check Result.Aligned.
func Align(seq1, seq2 string, banded bool, maxCompareLength int) (Result, error) {
	opts := DefaultOptions()
	opts.Banded = banded
	opts.MaxCompareLength = maxCompareLength

	return AlignWithOptions(seq1, seq2, opts)
}

// AlignWithOptions is Align with an explicit band radius.
//
// Errors:
//   - ErrBadLength, ErrBadBandwidth — as reported by opts.Validate.
func AlignWithOptions(seq1, seq2 string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	a := truncate([]rune(seq1), opts.MaxCompareLength)
	b := truncate([]rune(seq2), opts.MaxCompareLength)

	// Every position matches, no table needed.
	if slices.Equal(a, b) {
		return Result{
			Cost: float64(len(a) * MatchScore),
			Seq1: clip(a),
			Seq2: clip(b),
		}, nil
	}

	t := build(a, b, opts)
	if !t.Reachable() {
		return Result{Cost: t.Cost(), Seq1: NoAlignment, Seq2: NoAlignment}, nil
	}
	s1, s2 := t.trace()

	return Result{Cost: t.Cost(), Seq1: clip(s1), Seq2: clip(s2)}, nil
}

// Compute builds the full cost table for seq1 (columns) and seq2 (rows)
// after truncation, without the identical-sequence short-circuit.
//
// Algorithm Outline:
//  1. (0,0) = 0.
//  2. First row:    (0,c) = c·IndelCost, Left  (c ≤ k when banded).
//  3. First column: (r,0) = r·IndelCost, Top   (r ≤ k when banded).
//  4. For r = 1..rows−1, c in the row window without column 0:
//     diag = (r−1,c−1) + MatchScore|SubstitutionCost
//     top  = (r−1,c)   + IndelCost
//     left = (r,c−1)   + IndelCost
//     Candidates whose source is absent are skipped. They are evaluated in
//     the order diag, top, left and a later one replaces the current minimum
//     when it is ≤, so on equal cost Left beats Top beats Diagonal.
//
// Complexity:
//
//	Time, Memory = O(rows·cols) full, O(rows·(2k+1)) banded.
//
// Errors:
//   - ErrBadLength, ErrBadBandwidth — as reported by opts.Validate.
func Compute(seq1, seq2 string, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	a := truncate([]rune(seq1), opts.MaxCompareLength)
	b := truncate([]rune(seq2), opts.MaxCompareLength)

	return build(a, b, opts), nil
}

// build allocates and fills a table over already truncated inputs.
func build(a, b []rune, opts Options) *Table {
	t := newTable(a, b, opts.Banded, opts.MaxIndels)
	t.fill()

	return t
}

// fill computes every stored cell in row-major order, columns increasing.
func (t *Table) fill() {
	t.set(0, 0, Cell{Cost: 0, Dir: None})

	// first row and first column: only indels reach them
	for c := 1; c < t.hi[0]; c++ {
		t.set(0, c, Cell{Cost: c * IndelCost, Prev: Coord{Row: 0, Col: c - 1}, Dir: Left})
	}
	for r := 1; r < t.rows && t.lo[r] == 0; r++ {
		t.set(r, 0, Cell{Cost: r * IndelCost, Prev: Coord{Row: r - 1, Col: 0}, Dir: Top})
	}

	for r := 1; r < t.rows; r++ {
		for c := max(t.lo[r], 1); c < t.hi[r]; c++ {
			t.set(r, c, t.best(r, c))
		}
	}
}

// best picks the cheapest predecessor of (r, c). At least one predecessor
// is always stored: inside the band the diagonal or top neighbour exists.
func (t *Table) best(r, c int) Cell {
	var pick Cell
	found := false

	if p, ok := t.At(r-1, c-1); ok {
		pick = Cell{Cost: p.Cost + t.pairCost(r, c), Prev: Coord{Row: r - 1, Col: c - 1}, Dir: Diagonal}
		found = true
	}
	if p, ok := t.At(r-1, c); ok {
		if cost := p.Cost + IndelCost; !found || cost <= pick.Cost {
			pick = Cell{Cost: cost, Prev: Coord{Row: r - 1, Col: c}, Dir: Top}
			found = true
		}
	}
	if p, ok := t.At(r, c-1); ok {
		if cost := p.Cost + IndelCost; !found || cost <= pick.Cost {
			pick = Cell{Cost: cost, Prev: Coord{Row: r, Col: c - 1}, Dir: Left}
		}
	}

	return pick
}

// pairCost scores aligning seq1[c−1] with seq2[r−1].
func (t *Table) pairCost(r, c int) int {
	if t.seq1[c-1] == t.seq2[r-1] {
		return MatchScore
	}

	return SubstitutionCost
}
