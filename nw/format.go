package nw

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders the cost table as a grid for debugging.
//
// The header row is a blank corner, '_' for the empty prefix and then the
// symbols of seq1; each following row starts with '_' or a symbol of seq2.
// Every item is right-aligned in 5 columns and followed by one space;
// absent cells are left blank.
//
// Example (seq1="ACG", seq2="AG", full mode):
//
//	          _     A     C     G
//	    _     0     5    10    15
//	    A     5    -3     2     7
//	    G    10     2    -2    -1
func (t *Table) Format() string {
	var b strings.Builder
	item := func(s string) { fmt.Fprintf(&b, "%5s ", s) }

	item(" ")
	item("_")
	for _, r := range t.seq1 {
		item(string(r))
	}
	b.WriteByte('\n')

	for row := 0; row < t.rows; row++ {
		if row == 0 {
			item("_")
		} else {
			item(string(t.seq2[row-1]))
		}
		for col := 0; col < t.cols; col++ {
			if c, ok := t.At(row, col); ok {
				item(strconv.Itoa(c.Cost))
			} else {
				item(" ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return fmt.Sprintf("nw.Table{%dx%d banded=%t stored=%d cost=%v}",
		t.rows, t.cols, t.banded, len(t.cells), t.Cost())
}
