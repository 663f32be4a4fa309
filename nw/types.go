package nw

import "math"

// Scoring policy and display limits. They are fixed for every alignment.
const (
	// MatchScore rewards aligning a symbol with itself.
	MatchScore = -3
	// SubstitutionCost is charged for aligning two different symbols.
	SubstitutionCost = 1
	// IndelCost is charged for consuming a symbol from one sequence only.
	IndelCost = 5

	// DefaultMaxIndels is the band radius used unless Options says otherwise.
	DefaultMaxIndels = 3
	// DefaultMaxCompareLength caps how many symbols of each sequence are compared.
	DefaultMaxCompareLength = 1000

	// DisplayLength is the maximum number of symbols kept in each aligned string.
	DisplayLength = 100
	// Gap fills the side of an alignment column that consumed no symbol.
	Gap = '-'
	// NoAlignment replaces both aligned strings when the band excludes the last cell.
	NoAlignment = "No Alignment Possible"
)

// Direction names the edit step that produced a table cell.
type Direction int

const (
	// None marks the origin, which has no predecessor.
	None Direction = iota
	// Left consumes one symbol of seq1 and none of seq2.
	Left
	// Top consumes one symbol of seq2 and none of seq1.
	Top
	// Diagonal consumes one symbol of each sequence (match or substitution).
	Diagonal
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Diagonal:
		return "Diagonal"
	default:
		return "None"
	}
}

// Coord addresses a table cell. Row is a prefix length of seq2,
// Col is a prefix length of seq1.
type Coord struct {
	Row, Col int
}

// Cell is one computed table entry.
//
// Fields:
//   - Cost — minimum cumulative cost of aligning the two prefixes.
//   - Prev — coordinate the cost was derived from (meaningless when Dir == None).
//   - Dir  — edit step leading from Prev to this cell.
type Cell struct {
	Cost int
	Prev Coord
	Dir  Direction
}

// Result is what Align reports for one pair of sequences.
//
// Cost holds an integer value, or +Inf when banding made the alignment
// unreachable; in that case Seq1 and Seq2 both equal NoAlignment.
type Result struct {
	Cost float64
	Seq1 string
	Seq2 string
}

// Aligned reports whether r carries a finite cost and real alignment strings.
func (r Result) Aligned() bool {
	return !math.IsInf(r.Cost, 1)
}
