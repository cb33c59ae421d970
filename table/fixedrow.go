package table

// FixedRow is a table whose row count is bounded at construction while
// columns grow dynamically. Each row owns an independent growable slice,
// so storage is ragged: the shared column extent grows when ANY row is
// written at a new column, but other rows are only padded lazily when
// they themselves are written. Reading a column a given row has never
// reached reports absent even though ColumnCount covers it.
//
// Writes at a row beyond the bound are silently rejected. Only the column
// capacity setter is effective; the row extent stays pinned.
//
// Time complexity: cell operations O(1) amortized.
// Memory: O(written cells).
type FixedRow[T any] struct {
	cells  [][]T // one growable slice per row, len(cells) == row bound
	colCnt int
}

var _ Table[int] = (*FixedRow[int])(nil)

// NewFixedRow creates an empty table with the given row bound and a zero
// column extent. Negative bounds yield ErrInvalidDimensions.
func NewFixedRow[T any](rows int) (*FixedRow[T], error) {
	if rows < 0 {
		return nil, ErrInvalidDimensions
	}

	return &FixedRow[T]{cells: make([][]T, rows)}, nil
}

// FixedRowFromGrid creates a table sized to a rectangular 2D literal: the
// row bound is the literal's height and the column extent its width. Rows
// of differing lengths yield ErrRaggedGrid.
func FixedRowFromGrid[T any](grid [][]T) (*FixedRow[T], error) {
	t, err := NewFixedRow[T](len(grid))
	if err != nil {
		return nil, err
	}
	for row := range grid {
		if len(grid[row]) != len(grid[0]) {
			return nil, ErrRaggedGrid
		}
		t.cells[row] = append([]T(nil), grid[row]...)
	}
	if len(grid) > 0 {
		t.colCnt = len(grid[0])
	}

	return t, nil
}

// FixedRowFromEntries creates a table with the given row bound and writes
// the entries into it. Entries at rows beyond the bound are silently
// dropped; the last write to a position wins.
func FixedRowFromEntries[T any](rows int, entries ...Entry[T]) (*FixedRow[T], error) {
	t, err := NewFixedRow[T](rows)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		t.InsertCell(e.Pos.Row, e.Pos.Col, e.Value)
	}

	return t, nil
}

// RowCount returns the fixed row bound; it never changes.
func (t *FixedRow[T]) RowCount() int { return len(t.cells) }

// ColumnCount returns the current shared column extent.
func (t *FixedRow[T]) ColumnCount() int { return t.colCnt }

// MaxRowCapacity reports the fixed row bound.
func (t *FixedRow[T]) MaxRowCapacity() Capacity { return Limited(len(t.cells)) }

// MaxColumnCapacity reports that columns are unbounded.
func (t *FixedRow[T]) MaxColumnCapacity() Capacity { return Unlimited() }

// GetCell returns the value at (row, col). A column the given row has not
// reached yet is absent even when col < ColumnCount().
func (t *FixedRow[T]) GetCell(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= len(t.cells) || col < 0 || col >= t.colCnt || col >= len(t.cells[row]) {
		return zero, false
	}

	return t.cells[row][col], true
}

// GetMutCell returns a pointer to the value at (row, col) for in-place
// mutation, under the same presence rule as GetCell.
func (t *FixedRow[T]) GetMutCell(row, col int) (*T, bool) {
	if row < 0 || row >= len(t.cells) || col < 0 || col >= t.colCnt || col >= len(t.cells[row]) {
		return nil, false
	}

	return &t.cells[row][col], true
}

// InsertCell writes value at (row, col), growing the shared column extent
// and padding the target row with zero values as needed. Writes at rows
// beyond the bound are silently rejected. The previous value is reported
// only when the row already reached col and the column extent did not grow.
func (t *FixedRow[T]) InsertCell(row, col int, value T) (T, bool) {
	var zero T
	if row < 0 || row >= len(t.cells) || col < 0 {
		return zero, false
	}

	grew := false
	if col >= t.colCnt {
		t.colCnt = col + 1
		grew = true
	}

	existed := col < len(t.cells[row])
	for len(t.cells[row]) <= col {
		t.cells[row] = append(t.cells[row], zero)
	}

	prev := t.cells[row][col]
	t.cells[row][col] = value
	if grew || !existed {
		return zero, false
	}

	return prev, true
}

// RemoveCell resets the cell at (row, col) to the zero value and returns
// what was there. Like every dense variant, the slot stays present.
func (t *FixedRow[T]) RemoveCell(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= len(t.cells) || col < 0 || col >= t.colCnt || col >= len(t.cells[row]) {
		return zero, false
	}
	prev := t.cells[row][col]
	t.cells[row][col] = zero

	return prev, true
}

// SetRowCapacity is a no-op: the row dimension is immutable.
func (t *FixedRow[T]) SetRowCapacity(int) {}

// SetColumnCapacity adjusts the shared column extent. Cells beyond the new
// extent stay in per-row storage until Truncate.
func (t *FixedRow[T]) SetColumnCapacity(n int) {
	if n >= 0 {
		t.colCnt = n
	}
}

// Truncate drops per-row storage beyond the current column extent. Cells
// within the extent are never affected; the call is idempotent.
func (t *FixedRow[T]) Truncate() {
	for row := range t.cells {
		if len(t.cells[row]) > t.colCnt {
			t.cells[row] = t.cells[row][:t.colCnt]
		}
	}
}

// ShrinkToFit recomputes the column extent as the longest physically
// stored row (0 when no row was ever written).
func (t *FixedRow[T]) ShrinkToFit() {
	maxCol := 0
	for row := range t.cells {
		if len(t.cells[row]) > maxCol {
			maxCol = len(t.cells[row])
		}
	}
	t.colCnt = maxCol
}
