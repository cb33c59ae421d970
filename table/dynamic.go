package table

// Dynamic is a table whose rows and columns both grow without bound,
// storing cells sparsely in a Position-keyed map.
//
// The virtual extents track one past the largest row/column ever written,
// and can also be steered by hand via SetRowCapacity/SetColumnCapacity.
// Shrinking the extents does not delete out-of-range cells; Truncate
// reclaims them, and ShrinkToFit recomputes the extents from the cells
// that physically exist.
//
// Time complexity:
//   - GetCell/InsertCell/RemoveCell: O(1) expected
//   - Truncate/ShrinkToFit: O(cells)
//
// Memory: O(physically present cells).
type Dynamic[T any] struct {
	// cells maps a cell's position to its content. Values are held by
	// pointer so GetMutCell can hand out an addressable reference.
	cells map[Position]*T

	rowCnt int
	colCnt int
}

// assert contract conformance at compile time.
var _ Table[int] = (*Dynamic[int])(nil)

// NewDynamic creates a new, empty sparse table with 0×0 extents.
func NewDynamic[T any]() *Dynamic[T] {
	return &Dynamic[T]{cells: make(map[Position]*T)}
}

// DynamicFromGrid creates a table from a rectangular 2D literal. The
// extents are set to the literal's exact dimensions. Rows of differing
// lengths yield ErrRaggedGrid.
func DynamicFromGrid[T any](grid [][]T) (*Dynamic[T], error) {
	t := NewDynamic[T]()
	for row := range grid {
		if len(grid[row]) != len(grid[0]) {
			return nil, ErrRaggedGrid
		}
		for col, v := range grid[row] {
			t.InsertCell(row, col, v)
		}
	}

	return t, nil
}

// DynamicFromEntries creates a table from (position, value) entries.
// Order is irrelevant and the last write to a position wins. The extents
// are computed as one past the maximum row/column index seen.
func DynamicFromEntries[T any](entries ...Entry[T]) *Dynamic[T] {
	t := NewDynamic[T]()
	for _, e := range entries {
		if e.Pos.Row < 0 || e.Pos.Col < 0 {
			continue
		}
		v := e.Value
		t.cells[e.Pos] = &v
	}
	t.ShrinkToFit()

	return t
}

// RowCount returns the current virtual row extent.
func (t *Dynamic[T]) RowCount() int { return t.rowCnt }

// ColumnCount returns the current virtual column extent.
func (t *Dynamic[T]) ColumnCount() int { return t.colCnt }

// MaxRowCapacity reports that rows are unbounded.
func (t *Dynamic[T]) MaxRowCapacity() Capacity { return Unlimited() }

// MaxColumnCapacity reports that columns are unbounded.
func (t *Dynamic[T]) MaxColumnCapacity() Capacity { return Unlimited() }

// GetCell returns the value at (row, col) and whether a cell is there.
func (t *Dynamic[T]) GetCell(row, col int) (T, bool) {
	if p, ok := t.cells[Position{Row: row, Col: col}]; ok {
		return *p, true
	}
	var zero T

	return zero, false
}

// GetMutCell returns a pointer to the value at (row, col) for in-place
// mutation, and whether a cell is there.
func (t *Dynamic[T]) GetMutCell(row, col int) (*T, bool) {
	p, ok := t.cells[Position{Row: row, Col: col}]

	return p, ok
}

// InsertCell writes value at (row, col), growing either extent as needed.
// The previous value is reported only when the slot held a cell and the
// write grew neither extent.
func (t *Dynamic[T]) InsertCell(row, col int, value T) (T, bool) {
	var zero T
	if row < 0 || col < 0 {
		return zero, false
	}

	grew := false
	if row >= t.rowCnt {
		t.rowCnt = row + 1
		grew = true
	}
	if col >= t.colCnt {
		t.colCnt = col + 1
		grew = true
	}

	pos := Position{Row: row, Col: col}
	prev, had := t.cells[pos]
	v := value
	t.cells[pos] = &v

	if grew || !had {
		return zero, false
	}

	return *prev, true
}

// RemoveCell deletes the cell at (row, col) and returns its value, if one
// was there. The extents are never shrunk.
func (t *Dynamic[T]) RemoveCell(row, col int) (T, bool) {
	pos := Position{Row: row, Col: col}
	if p, ok := t.cells[pos]; ok {
		delete(t.cells, pos)

		return *p, true
	}
	var zero T

	return zero, false
}

// SetRowCapacity adjusts the virtual row extent. Cells beyond the new
// extent stay in storage until Truncate.
func (t *Dynamic[T]) SetRowCapacity(n int) {
	if n >= 0 {
		t.rowCnt = n
	}
}

// SetColumnCapacity adjusts the virtual column extent. Cells beyond the
// new extent stay in storage until Truncate.
func (t *Dynamic[T]) SetColumnCapacity(n int) {
	if n >= 0 {
		t.colCnt = n
	}
}

// Truncate deletes every physically present cell whose position falls
// outside the current virtual extents. Cells within the extents are never
// affected, and calling Truncate twice equals calling it once.
func (t *Dynamic[T]) Truncate() {
	for pos := range t.cells {
		if pos.Row >= t.rowCnt || pos.Col >= t.colCnt {
			delete(t.cells, pos)
		}
	}
}

// ShrinkToFit recomputes both extents as one past the maximum row/column
// index among physically present cells (0×0 when empty).
func (t *Dynamic[T]) ShrinkToFit() {
	maxRow, maxCol := 0, 0
	for pos := range t.cells {
		if pos.Row+1 > maxRow {
			maxRow = pos.Row + 1
		}
		if pos.Col+1 > maxCol {
			maxCol = pos.Col + 1
		}
	}
	t.rowCnt, t.colCnt = maxRow, maxCol
}
