package table

// RowDrain walks a single row left to right, removing each cell from the
// table as it is yielded. It shares Row's termination rule: the first
// absent cell ends the drain, leaving any later cells of the row in place.
//
// On dense storage "removing" resets slots to the zero value, so a drain
// over a Fixed row yields the full width.
type RowDrain[T any] struct {
	t        Table[T]
	row, col int
}

// DrainRow returns a draining cursor over row `row` of t.
func DrainRow[T any](t Table[T], row int) *RowDrain[T] {
	return &RowDrain[T]{t: t, row: row}
}

// NextWithPosition removes and yields the next cell of the row together
// with the position it was removed from.
func (it *RowDrain[T]) NextWithPosition() (Position, T, bool) {
	pos := Position{Row: it.row, Col: it.col}
	v, ok := it.t.RemoveCell(it.row, it.col)
	if ok {
		it.col++
	}

	return pos, v, ok
}

// Next removes and yields the next cell of the row.
func (it *RowDrain[T]) Next() (T, bool) {
	_, v, ok := it.NextWithPosition()

	return v, ok
}

// Len returns the remaining cell positions up to the column extent.
func (it *RowDrain[T]) Len() int {
	if rem := it.t.ColumnCount() - it.col; rem > 0 {
		return rem
	}

	return 0
}

// ColumnDrain walks a single column top to bottom, removing each cell
// from the table as it is yielded. The first absent cell ends the drain.
type ColumnDrain[T any] struct {
	t        Table[T]
	row, col int
}

// DrainColumn returns a draining cursor over column `col` of t.
func DrainColumn[T any](t Table[T], col int) *ColumnDrain[T] {
	return &ColumnDrain[T]{t: t, col: col}
}

// NextWithPosition removes and yields the next cell of the column together
// with the position it was removed from.
func (it *ColumnDrain[T]) NextWithPosition() (Position, T, bool) {
	pos := Position{Row: it.row, Col: it.col}
	v, ok := it.t.RemoveCell(it.row, it.col)
	if ok {
		it.row++
	}

	return pos, v, ok
}

// Next removes and yields the next cell of the column.
func (it *ColumnDrain[T]) Next() (T, bool) {
	_, v, ok := it.NextWithPosition()

	return v, ok
}

// Len returns the remaining cell positions up to the row extent.
func (it *ColumnDrain[T]) Len() int {
	if rem := it.t.RowCount() - it.row; rem > 0 {
		return rem
	}

	return 0
}

// CellDrain walks every position of the table in row-major order, removing
// each present cell as it is yielded. Like Cells, it skips holes instead
// of stopping at them.
type CellDrain[T any] struct {
	t        Table[T]
	row, col int
}

// DrainCells returns a row-major draining cursor over all cells of t.
func DrainCells[T any](t Table[T]) *CellDrain[T] {
	return &CellDrain[T]{t: t}
}

// NextWithPosition removes and yields the next present cell together with
// the position it was removed from.
func (it *CellDrain[T]) NextWithPosition() (Position, T, bool) {
	var zero T
	rowCnt, colCnt := it.t.RowCount(), it.t.ColumnCount()
	if colCnt <= 0 {
		it.row, it.col = rowCnt, colCnt

		return Position{Row: it.row, Col: it.col}, zero, false
	}
	for it.row < rowCnt {
		pos := Position{Row: it.row, Col: it.col}
		v, ok := it.t.RemoveCell(pos.Row, pos.Col)
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

// Next removes and yields the next present cell in row-major order.
func (it *CellDrain[T]) Next() (T, bool) {
	_, v, ok := it.NextWithPosition()

	return v, ok
}

// Len returns the remaining cell positions, clamped at zero.
func (it *CellDrain[T]) Len() int {
	consumed := it.row*it.t.ColumnCount() + it.col
	if rem := Len[T](it.t) - consumed; rem > 0 {
		return rem
	}

	return 0
}
