package nw

// Reachable reports whether the last cell was computed.
func (t *Table) Reachable() bool {
	end := t.last()

	return t.has(end.Row, end.Col)
}

// Path returns the optimal path from (0,0) to the last cell, both included.
//
// Errors:
//   - ErrUnreachable — the band excluded the last cell.
//
// Complexity: O(rows + cols).
func (t *Table) Path() ([]Coord, error) {
	if !t.Reachable() {
		return nil, ErrUnreachable
	}

	path := make([]Coord, 0, t.rows+t.cols-1)
	at := t.last()
	for {
		path = append(path, at)
		c, _ := t.At(at.Row, at.Col)
		if c.Dir == None {
			break
		}
		at = c.Prev
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// Strings returns the complete aligned strings, without DisplayLength clipping.
//
// Errors:
//   - ErrUnreachable — the band excluded the last cell.
func (t *Table) Strings() (string, string, error) {
	if !t.Reachable() {
		return "", "", ErrUnreachable
	}
	s1, s2 := t.trace()

	return string(s1), string(s2), nil
}

// trace follows predecessor links from the last cell back to the origin,
// emitting one alignment column per step, then reverses both strings.
// The caller guarantees the last cell is reachable.
func (t *Table) trace() ([]rune, []rune) {
	n := max(t.rows, t.cols)
	s1 := make([]rune, 0, n)
	s2 := make([]rune, 0, n)

	at := t.last()
	for at.Row != 0 || at.Col != 0 {
		c, _ := t.At(at.Row, at.Col)
		switch c.Dir {
		case Left:
			s1 = append(s1, t.seq1[at.Col-1])
			s2 = append(s2, Gap)
		case Top:
			s1 = append(s1, Gap)
			s2 = append(s2, t.seq2[at.Row-1])
		case Diagonal:
			s1 = append(s1, t.seq1[at.Col-1])
			s2 = append(s2, t.seq2[at.Row-1])
		}
		at = c.Prev
	}
	reverse(s1)
	reverse(s2)

	return s1, s2
}

func reverse(s []rune) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// clip keeps the first DisplayLength symbols of an aligned string.
// Applied after reversal, so long alignments show their beginning.
func clip(s []rune) string {
	if len(s) > DisplayLength {
		s = s[:DisplayLength]
	}

	return string(s)
}
