package table

// Fixed is a table whose row and column bounds are both set at
// construction. Cells live in a single dense row-major buffer (flat slice
// indexed by row*cols+col), and the virtual extents stay pinned to the
// bounds for the table's whole life.
//
// Because storage is dense, every in-range position always holds a value:
// RemoveCell resets the slot to the element type's zero value rather than
// leaving a hole. This is the crucial asymmetry against Dynamic:
// "removed" here means "reset", not "absent".
//
// Writes outside the bounds are silently rejected (no-op, absent result);
// both capacity setters are no-ops since neither dimension can move.
//
// Time complexity: all cell operations O(1).
// Memory: O(rows×cols), allocated up front.
type Fixed[T any] struct {
	rows, cols int
	data       []T // flat backing storage, length == rows*cols
}

var _ Table[int] = (*Fixed[int])(nil)

// NewFixed creates a rows×cols table of zero values. Negative dimensions
// yield ErrInvalidDimensions.
func NewFixed[T any](rows, cols int) (*Fixed[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Fixed[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// FixedFromGrid creates a table sized exactly to a rectangular 2D literal.
// Rows of differing lengths yield ErrRaggedGrid.
func FixedFromGrid[T any](grid [][]T) (*Fixed[T], error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	t, err := NewFixed[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for row := range grid {
		if len(grid[row]) != cols {
			return nil, ErrRaggedGrid
		}
		copy(t.data[row*cols:(row+1)*cols], grid[row])
	}

	return t, nil
}

// FixedFromEntries creates a rows×cols table and writes the given entries
// into it. Entries outside the bounds are silently dropped; the last write
// to a position wins.
func FixedFromEntries[T any](rows, cols int, entries ...Entry[T]) (*Fixed[T], error) {
	t, err := NewFixed[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		t.InsertCell(e.Pos.Row, e.Pos.Col, e.Value)
	}

	return t, nil
}

// RowCount returns the fixed row bound; it never changes.
func (t *Fixed[T]) RowCount() int { return t.rows }

// ColumnCount returns the fixed column bound; it never changes.
func (t *Fixed[T]) ColumnCount() int { return t.cols }

// MaxRowCapacity reports the fixed row bound.
func (t *Fixed[T]) MaxRowCapacity() Capacity { return Limited(t.rows) }

// MaxColumnCapacity reports the fixed column bound.
func (t *Fixed[T]) MaxColumnCapacity() Capacity { return Limited(t.cols) }

func (t *Fixed[T]) inBounds(row, col int) bool {
	return row >= 0 && row < t.rows && col >= 0 && col < t.cols
}

// GetCell returns the value at (row, col). Inside the bounds a cell is
// always present (possibly the zero value).
func (t *Fixed[T]) GetCell(row, col int) (T, bool) {
	if !t.inBounds(row, col) {
		var zero T

		return zero, false
	}

	return t.data[row*t.cols+col], true
}

// GetMutCell returns a pointer to the value at (row, col) for in-place
// mutation.
func (t *Fixed[T]) GetMutCell(row, col int) (*T, bool) {
	if !t.inBounds(row, col) {
		return nil, false
	}

	return &t.data[row*t.cols+col], true
}

// InsertCell writes value at (row, col) and returns the replaced value.
// The extents are pinned, so no write ever grows the table; writes outside
// the bounds are silently rejected.
func (t *Fixed[T]) InsertCell(row, col int, value T) (T, bool) {
	if !t.inBounds(row, col) {
		var zero T

		return zero, false
	}
	idx := row*t.cols + col
	prev := t.data[idx]
	t.data[idx] = value

	return prev, true
}

// RemoveCell resets the slot at (row, col) to the zero value and returns
// what was there. The slot remains a present cell afterwards.
func (t *Fixed[T]) RemoveCell(row, col int) (T, bool) {
	var zero T
	if !t.inBounds(row, col) {
		return zero, false
	}
	idx := row*t.cols + col
	prev := t.data[idx]
	t.data[idx] = zero

	return prev, true
}

// SetRowCapacity is a no-op: the row dimension is immutable.
func (t *Fixed[T]) SetRowCapacity(int) {}

// SetColumnCapacity is a no-op: the column dimension is immutable.
func (t *Fixed[T]) SetColumnCapacity(int) {}
