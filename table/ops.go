package table

// Row and column editing is built entirely on the cell contract, so every
// storage variant gets these operations for free. Shifts move cells one
// position at a time via RemoveCell+InsertCell; on bounded variants cells
// shifted past a bound are silently discarded, which is exactly the
// variants' own out-of-bounds write rule.

// InsertRow inserts cells as a new row at idx, shifting the rows at idx
// and below down by one. An idx at or past the row extent appends without
// shifting. Negative idx is a no-op.
//
// Time complexity: O(rows×cols) for the shift plus O(len(cells)).
func InsertRow[T any](t Table[T], idx int, cells ...T) {
	if idx < 0 {
		return
	}
	rowCnt, colCnt := t.RowCount(), t.ColumnCount()
	if idx < rowCnt {
		// Walk bottom-up so a cell is never overwritten before it moves.
		for row := rowCnt - 1; row >= idx; row-- {
			for col := colCnt - 1; col >= 0; col-- {
				if v, ok := t.RemoveCell(row, col); ok {
					t.InsertCell(row+1, col, v)
				}
			}
		}
	}
	for col, v := range cells {
		t.InsertCell(idx, col, v)
	}
}

// PushRow appends cells as a new row after the current last row.
func PushRow[T any](t Table[T], cells ...T) {
	InsertRow(t, t.RowCount(), cells...)
}

// RemoveRow removes the row at idx, shifting later rows up by one and
// shrinking the row extent where the variant allows it. The removed cells
// come back as a draining cursor; like any row cursor it ends at the first
// absent cell. An idx past the row extent removes nothing and yields an
// empty cursor.
//
// Time complexity: O(rows×cols).
func RemoveRow[T any](t Table[T], idx int) *RowDrain[T] {
	removed := NewDynamic[T]()
	if idx < 0 {
		return DrainRow[T](removed, 0)
	}
	rowCnt, colCnt := t.RowCount(), t.ColumnCount()
	for col := 0; col < colCnt; col++ {
		if v, ok := t.RemoveCell(idx, col); ok {
			removed.InsertCell(idx, col, v)
		}
	}
	for row := idx + 1; row < rowCnt; row++ {
		for col := 0; col < colCnt; col++ {
			if v, ok := t.RemoveCell(row, col); ok {
				t.InsertCell(row-1, col, v)
			}
		}
	}
	if idx < rowCnt {
		t.SetRowCapacity(rowCnt - 1)
	}

	return DrainRow[T](removed, idx)
}

// PopRow removes the last row and returns its draining cursor. On an
// empty table the cursor is empty.
func PopRow[T any](t Table[T]) *RowDrain[T] {
	idx := t.RowCount() - 1
	if idx < 0 {
		idx = 0
	}

	return RemoveRow(t, idx)
}

// InsertColumn inserts cells as a new column at idx, shifting the columns
// at idx and to the right one position right. An idx at or past the column
// extent appends without shifting. Negative idx is a no-op.
//
// Time complexity: O(rows×cols) for the shift plus O(len(cells)).
func InsertColumn[T any](t Table[T], idx int, cells ...T) {
	if idx < 0 {
		return
	}
	rowCnt, colCnt := t.RowCount(), t.ColumnCount()
	if idx < colCnt {
		for col := colCnt - 1; col >= idx; col-- {
			for row := rowCnt - 1; row >= 0; row-- {
				if v, ok := t.RemoveCell(row, col); ok {
					t.InsertCell(row, col+1, v)
				}
			}
		}
	}
	for row, v := range cells {
		t.InsertCell(row, idx, v)
	}
}

// PushColumn appends cells as a new column after the current last column.
func PushColumn[T any](t Table[T], cells ...T) {
	InsertColumn(t, t.ColumnCount(), cells...)
}

// RemoveColumn removes the column at idx, shifting later columns left by
// one and shrinking the column extent where the variant allows it. The
// removed cells come back as a draining cursor that ends at the first
// absent cell. An idx past the column extent removes nothing and yields
// an empty cursor.
//
// Time complexity: O(rows×cols).
func RemoveColumn[T any](t Table[T], idx int) *ColumnDrain[T] {
	removed := NewDynamic[T]()
	if idx < 0 {
		return DrainColumn[T](removed, 0)
	}
	rowCnt, colCnt := t.RowCount(), t.ColumnCount()
	for row := 0; row < rowCnt; row++ {
		if v, ok := t.RemoveCell(row, idx); ok {
			removed.InsertCell(row, idx, v)
		}
	}
	for col := idx + 1; col < colCnt; col++ {
		for row := 0; row < rowCnt; row++ {
			if v, ok := t.RemoveCell(row, col); ok {
				t.InsertCell(row, col-1, v)
			}
		}
	}
	if idx < colCnt {
		t.SetColumnCapacity(colCnt - 1)
	}

	return DrainColumn[T](removed, idx)
}

// PopColumn removes the last column and returns its draining cursor. On
// an empty table the cursor is empty.
func PopColumn[T any](t Table[T]) *ColumnDrain[T] {
	idx := t.ColumnCount() - 1
	if idx < 0 {
		idx = 0
	}

	return RemoveColumn(t, idx)
}
