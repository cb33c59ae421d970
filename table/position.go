package table

// Position is the coordinate of a cell in a table, counting from zero.
// It is a plain comparable value: usable as a map key, copied freely.
type Position struct {
	// Row is the cell's row number, starting from 0.
	Row int

	// Col is the cell's column number, starting from 0.
	Col int
}

// NewPosition returns the Position at (row, col).
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Compare orders positions row-major: rows are compared first, columns
// break ties. It returns -1, 0, or +1.
//
// Complexity: O(1)
func (p Position) Compare(q Position) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	default:
		return 0
	}
}

// Less reports whether p comes before q in row-major order.
func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}
