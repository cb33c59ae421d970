package table

import "iter"

// CellCursor is the shared contract of every cursor that yields individual
// cells. Cursors are forward-only and single-pass; Len reports the exact
// number of cell positions left to visit (an upper bound on the values
// still to be yielded, since absent cells yield nothing).
type CellCursor[T any] interface {
	// Next yields the next cell value, reporting false when the cursor is
	// exhausted (or, for Row/Column cursors, when it hits the first absent
	// cell; see Row).
	Next() (T, bool)

	// NextWithPosition is Next paired with the Position the value was read
	// from at the moment of yielding.
	NextWithPosition() (Position, T, bool)

	// Len returns the remaining cell positions.
	Len() int
}

// ZipPosition adapts any CellCursor so each yielded value carries the
// Position it was read from.
type ZipPosition[T any] struct {
	c CellCursor[T]
}

// WithPosition wraps a cell cursor into its position-pairing form.
func WithPosition[T any](c CellCursor[T]) *ZipPosition[T] {
	return &ZipPosition[T]{c: c}
}

// Next yields the next (position, value) pair.
func (z *ZipPosition[T]) Next() (Position, T, bool) {
	return z.c.NextWithPosition()
}

// Len returns the remaining cell positions of the underlying cursor.
func (z *ZipPosition[T]) Len() int {
	return z.c.Len()
}

// Seq exposes a cell cursor as a range-over-func sequence of values.
func Seq[T any](c CellCursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Seq2 exposes a cell cursor as a range-over-func sequence of
// (position, value) pairs.
func Seq2[T any](c CellCursor[T]) iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for {
			pos, v, ok := c.NextWithPosition()
			if !ok || !yield(pos, v) {
				return
			}
		}
	}
}

// Rows walks a table one row at a time, yielding a Row cursor per row.
type Rows[T any] struct {
	t   Table[T]
	idx int
}

// NewRows returns a cursor over all rows of t, starting at row 0.
func NewRows[T any](t Table[T]) *Rows[T] {
	return &Rows[T]{t: t}
}

// Next yields the cursor for the next row, reporting false past the last.
func (it *Rows[T]) Next() (*Row[T], bool) {
	if it.idx >= it.t.RowCount() {
		return nil, false
	}
	row := NewRow(it.t, it.idx)
	it.idx++

	return row, true
}

// Len returns the remaining rows.
func (it *Rows[T]) Len() int {
	if rem := it.t.RowCount() - it.idx; rem > 0 {
		return rem
	}

	return 0
}

// Row walks the cells of a single row left to right.
//
// Idiosyncrasy, preserved deliberately: the cursor advances one column per
// call and yields only present cells, so on sparse storage the FIRST
// absent cell ends the cursor early. A hole in a Dynamic row terminates
// iteration rather than being skipped. Whole-table Cells traversal does
// not share this behavior.
type Row[T any] struct {
	t        Table[T]
	row, col int
}

// NewRow returns a cursor over row `row` of t.
func NewRow[T any](t Table[T], row int) *Row[T] {
	return &Row[T]{t: t, row: row}
}

// NextWithPosition yields the next cell and the position it was read from.
func (it *Row[T]) NextWithPosition() (Position, T, bool) {
	pos := Position{Row: it.row, Col: it.col}
	v, ok := it.t.GetCell(it.row, it.col)
	if ok {
		it.col++
	}

	return pos, v, ok
}

// Next yields the next present cell of the row.
func (it *Row[T]) Next() (T, bool) {
	_, v, ok := it.NextWithPosition()

	return v, ok
}

// Len returns the remaining cell positions up to the column extent.
func (it *Row[T]) Len() int {
	if rem := it.t.ColumnCount() - it.col; rem > 0 {
		return rem
	}

	return 0
}

// Columns walks a table one column at a time, yielding a Column cursor
// per column.
type Columns[T any] struct {
	t   Table[T]
	idx int
}

// NewColumns returns a cursor over all columns of t, starting at column 0.
func NewColumns[T any](t Table[T]) *Columns[T] {
	return &Columns[T]{t: t}
}

// Next yields the cursor for the next column, reporting false past the
// last.
func (it *Columns[T]) Next() (*Column[T], bool) {
	if it.idx >= it.t.ColumnCount() {
		return nil, false
	}
	col := NewColumn(it.t, it.idx)
	it.idx++

	return col, true
}

// Len returns the remaining columns.
func (it *Columns[T]) Len() int {
	if rem := it.t.ColumnCount() - it.idx; rem > 0 {
		return rem
	}

	return 0
}

// Column walks the cells of a single column top to bottom. It shares Row's
// early-termination rule: the first absent cell ends the cursor.
type Column[T any] struct {
	t        Table[T]
	row, col int
}

// NewColumn returns a cursor over column `col` of t.
func NewColumn[T any](t Table[T], col int) *Column[T] {
	return &Column[T]{t: t, col: col}
}

// NextWithPosition yields the next cell and the position it was read from.
func (it *Column[T]) NextWithPosition() (Position, T, bool) {
	pos := Position{Row: it.row, Col: it.col}
	v, ok := it.t.GetCell(it.row, it.col)
	if ok {
		it.row++
	}

	return pos, v, ok
}

// Next yields the next present cell of the column.
func (it *Column[T]) Next() (T, bool) {
	_, v, ok := it.NextWithPosition()

	return v, ok
}

// Len returns the remaining cell positions up to the row extent.
func (it *Column[T]) Len() int {
	if rem := it.t.RowCount() - it.row; rem > 0 {
		return rem
	}

	return 0
}

// Cells walks every position of the table in row-major order, yielding
// only present cells. Unlike Row, a hole does not end the traversal: the
// cursor skips over absent positions and continues to the end of the
// virtual extents.
type Cells[T any] struct {
	t        Table[T]
	row, col int
}

// NewCells returns a row-major cursor over all cells of t.
func NewCells[T any](t Table[T]) *Cells[T] {
	return &Cells[T]{t: t}
}

// NextWithPosition yields the next present cell and the position it was
// read from.
func (it *Cells[T]) NextWithPosition() (Position, T, bool) {
	var zero T
	rowCnt, colCnt := it.t.RowCount(), it.t.ColumnCount()
	if colCnt <= 0 {
		it.row, it.col = rowCnt, colCnt

		return Position{Row: it.row, Col: it.col}, zero, false
	}
	for it.row < rowCnt {
		pos := Position{Row: it.row, Col: it.col}
		v, ok := it.t.GetCell(pos.Row, pos.Col)
		// Column advances first, wrapping to the next row at the extent.
		it.col++
		if it.col >= colCnt {
			it.col = 0
			it.row++
		}
		if ok {
			return pos, v, true
		}
	}

	return Position{Row: it.row, Col: it.col}, zero, false
}

// Next yields the next present cell in row-major order.
func (it *Cells[T]) Next() (T, bool) {
	_, v, ok := it.NextWithPosition()

	return v, ok
}

// Len returns the remaining cell positions, i.e. RowCount*ColumnCount
// minus the positions already visited, clamped at zero.
func (it *Cells[T]) Len() int {
	consumed := it.row*it.t.ColumnCount() + it.col
	if rem := Len[T](it.t) - consumed; rem > 0 {
		return rem
	}

	return 0
}
