package nw

import "math"

// Table is the dynamic-programming cost table for one pair of sequences.
//
// Storage is banded-offset: row r keeps only its column window [lo(r), hi(r))
// in one flat slice. Full mode uses the whole row; banded mode uses
// [max(r−k, 0), min(r+k+1, cols)). Coordinates outside a row's window are
// absent, which is how an unreachable last cell is detected.
//
// A Table is built by Compute and is read-only afterwards.
type Table struct {
	seq1, seq2 []rune // truncated inputs: seq1 along columns, seq2 along rows
	rows, cols int    // len(seq2)+1, len(seq1)+1
	banded     bool
	k          int // band radius, used only when banded

	lo, hi []int  // per-row column window
	offset []int  // index of (r, lo[r]) in cells
	cells  []Cell // flat storage, sum of window widths
}

// newTable allocates the per-row windows. No cell is computed yet.
// Complexity: O(rows + stored cells).
func newTable(seq1, seq2 []rune, banded bool, k int) *Table {
	t := &Table{
		seq1:   seq1,
		seq2:   seq2,
		rows:   len(seq2) + 1,
		cols:   len(seq1) + 1,
		banded: banded,
		k:      k,
	}
	t.lo = make([]int, t.rows)
	t.hi = make([]int, t.rows)
	t.offset = make([]int, t.rows)

	n := 0
	for r := 0; r < t.rows; r++ {
		lo, hi := 0, t.cols
		if banded {
			lo = max(r-k, 0)
			hi = min(r+k+1, t.cols)
			// the band has drifted past the last column
			if lo > hi {
				lo = hi
			}
		}
		t.lo[r], t.hi[r], t.offset[r] = lo, hi, n
		n += hi - lo
	}
	t.cells = make([]Cell, n)

	return t
}

// Rows returns len(seq2)+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns len(seq1)+1.
func (t *Table) Cols() int { return t.cols }

// Banded reports whether the table was restricted to a diagonal band.
func (t *Table) Banded() bool { return t.banded }

// Stored returns how many cells the table holds.
func (t *Table) Stored() int { return len(t.cells) }

// has reports whether (row, col) lies inside the stored window.
func (t *Table) has(row, col int) bool {
	if row < 0 || row >= t.rows {
		return false
	}

	return col >= t.lo[row] && col < t.hi[row]
}

// At returns the cell at (row, col) and whether it exists.
// Cells outside the band (or outside the table) are absent, never +Inf.
// Complexity: O(1).
func (t *Table) At(row, col int) (Cell, bool) {
	if !t.has(row, col) {
		return Cell{}, false
	}

	return t.cells[t.offset[row]+col-t.lo[row]], true
}

// set writes (row, col). The caller guarantees the coordinate is stored.
func (t *Table) set(row, col int, c Cell) {
	t.cells[t.offset[row]+col-t.lo[row]] = c
}

// last is the coordinate of the full-length prefix pair.
func (t *Table) last() Coord {
	return Coord{Row: t.rows - 1, Col: t.cols - 1}
}

// Cost returns the cost of the last cell, or +Inf if the band excluded it.
func (t *Table) Cost() float64 {
	end := t.last()
	c, ok := t.At(end.Row, end.Col)
	if !ok {
		return math.Inf(1)
	}

	return float64(c.Cost)
}
