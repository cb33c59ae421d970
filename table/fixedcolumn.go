package table

// FixedColumn is a table whose column count is bounded at construction
// while rows grow dynamically. Storage is a growable sequence of dense
// rows, each exactly the fixed width: writing row r appends zero-filled
// rows up to and including r.
//
// Writes at a column beyond the bound are silently rejected. Only the row
// capacity setter is effective; the column extent stays pinned.
//
// Time complexity: cell operations O(1) amortized (row growth pads with
// zero-value rows).
// Memory: O(physically stored rows × width).
type FixedColumn[T any] struct {
	cols   int
	cells  [][]T // dense rows of exactly cols elements each
	rowCnt int
}

var _ Table[int] = (*FixedColumn[int])(nil)

// NewFixedColumn creates an empty table with the given column bound and a
// zero row extent. Negative bounds yield ErrInvalidDimensions.
func NewFixedColumn[T any](cols int) (*FixedColumn[T], error) {
	if cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &FixedColumn[T]{cols: cols}, nil
}

// FixedColumnFromGrid creates a table sized to a rectangular 2D literal:
// the column bound is the literal's width and the row extent its height.
// Rows of differing lengths yield ErrRaggedGrid.
func FixedColumnFromGrid[T any](grid [][]T) (*FixedColumn[T], error) {
	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	t, err := NewFixedColumn[T](cols)
	if err != nil {
		return nil, err
	}
	for row := range grid {
		if len(grid[row]) != cols {
			return nil, ErrRaggedGrid
		}
		t.cells = append(t.cells, append([]T(nil), grid[row]...))
	}
	t.rowCnt = len(grid)

	return t, nil
}

// FixedColumnFromEntries creates a table with the given column bound and
// writes the entries into it. Entries at columns beyond the bound are
// silently dropped; the last write to a position wins.
func FixedColumnFromEntries[T any](cols int, entries ...Entry[T]) (*FixedColumn[T], error) {
	t, err := NewFixedColumn[T](cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		t.InsertCell(e.Pos.Row, e.Pos.Col, e.Value)
	}

	return t, nil
}

// RowCount returns the current virtual row extent.
func (t *FixedColumn[T]) RowCount() int { return t.rowCnt }

// ColumnCount returns the fixed column bound; it never changes.
func (t *FixedColumn[T]) ColumnCount() int { return t.cols }

// MaxRowCapacity reports that rows are unbounded.
func (t *FixedColumn[T]) MaxRowCapacity() Capacity { return Unlimited() }

// MaxColumnCapacity reports the fixed column bound.
func (t *FixedColumn[T]) MaxColumnCapacity() Capacity { return Limited(t.cols) }

// GetCell returns the value at (row, col). A row inside the virtual extent
// but beyond physical storage (possible after SetRowCapacity) is absent.
func (t *FixedColumn[T]) GetCell(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= t.rowCnt || row >= len(t.cells) || col < 0 || col >= t.cols {
		return zero, false
	}

	return t.cells[row][col], true
}

// GetMutCell returns a pointer to the value at (row, col) for in-place
// mutation, under the same presence rule as GetCell.
func (t *FixedColumn[T]) GetMutCell(row, col int) (*T, bool) {
	if row < 0 || row >= t.rowCnt || row >= len(t.cells) || col < 0 || col >= t.cols {
		return nil, false
	}

	return &t.cells[row][col], true
}

// InsertCell writes value at (row, col), appending zero-filled rows up to
// row as needed. Writes at columns beyond the bound are silently rejected.
// The previous value is reported only when the row was already physically
// stored and the row extent did not grow.
func (t *FixedColumn[T]) InsertCell(row, col int, value T) (T, bool) {
	var zero T
	if row < 0 || col < 0 || col >= t.cols {
		return zero, false
	}

	grew := false
	if row >= t.rowCnt {
		t.rowCnt = row + 1
		grew = true
	}

	existed := row < len(t.cells)
	for len(t.cells) <= row {
		t.cells = append(t.cells, make([]T, t.cols))
	}

	prev := t.cells[row][col]
	t.cells[row][col] = value
	if grew || !existed {
		return zero, false
	}

	return prev, true
}

// RemoveCell resets the cell at (row, col) to the zero value and returns
// what was there. The slot stays present afterwards.
func (t *FixedColumn[T]) RemoveCell(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= t.rowCnt || row >= len(t.cells) || col < 0 || col >= t.cols {
		return zero, false
	}
	prev := t.cells[row][col]
	t.cells[row][col] = zero

	return prev, true
}

// SetRowCapacity adjusts the virtual row extent. Rows beyond the new
// extent stay in storage until Truncate.
func (t *FixedColumn[T]) SetRowCapacity(n int) {
	if n >= 0 {
		t.rowCnt = n
	}
}

// SetColumnCapacity is a no-op: the column dimension is immutable.
func (t *FixedColumn[T]) SetColumnCapacity(int) {}

// Truncate drops physically stored rows beyond the current row extent.
// Rows within the extent are never affected; the call is idempotent.
func (t *FixedColumn[T]) Truncate() {
	if len(t.cells) > t.rowCnt {
		t.cells = t.cells[:t.rowCnt]
	}
}

// ShrinkToFit recomputes the row extent from the physically stored rows.
func (t *FixedColumn[T]) ShrinkToFit() {
	t.rowCnt = len(t.cells)
}
