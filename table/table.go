package table

import "fmt"

// Table is the uniform contract implemented by every storage variant.
//
// RowCount/ColumnCount report the virtual extents: the boundary within
// which iteration and row/column editing operate, independent of how many
// cells are physically stored. GetCell reports physical presence: dense
// variants are always present inside their storage ("removed" means reset
// to the zero value), the sparse variant only where a cell was written.
// After an extent shrink, out-of-range storage stays readable on the
// sparse variant until Truncate; see each variant for its exact rule.
//
// InsertCell writes a cell, growing the extents of any dynamic dimension
// to include the position. It returns the previous value only when a cell
// existed there AND the write grew neither extent; a growing write reports
// absent so callers can tell overwrite from extension. Writes beyond a
// fixed dimension's bound are silently rejected (no-op, absent result).
//
// RemoveCell clears the cell (deletes it for sparse storage, resets it to
// the zero value for dense storage) and never shrinks the extents.
//
// SetRowCapacity/SetColumnCapacity steer only the virtual extent of a
// dynamic dimension; on a fixed dimension they are no-ops, which is
// observably the same as clamping to the bound. Neither touches physical
// storage; the variant's Truncate reclaims out-of-range cells.
//
// Negative indices are simply out of range: absent on reads, no-ops on
// writes. The contract itself never panics; see At for the hard-fail seam.
type Table[T any] interface {
	// RowCount returns the current virtual row extent.
	RowCount() int

	// ColumnCount returns the current virtual column extent.
	ColumnCount() int

	// MaxRowCapacity reports the row dimension's bound, if any.
	MaxRowCapacity() Capacity

	// MaxColumnCapacity reports the column dimension's bound, if any.
	MaxColumnCapacity() Capacity

	// GetCell returns the value at (row, col) and whether it is present.
	GetCell(row, col int) (T, bool)

	// GetMutCell returns a pointer to the value at (row, col) for in-place
	// mutation, and whether it is present.
	GetMutCell(row, col int) (*T, bool)

	// InsertCell writes value at (row, col) and returns the replaced value
	// under the overwrite-without-growth rule described above.
	InsertCell(row, col int, value T) (T, bool)

	// RemoveCell clears the cell at (row, col) and returns the value that
	// was present, if any.
	RemoveCell(row, col int) (T, bool)

	// SetRowCapacity adjusts the virtual row extent where the dimension
	// allows it.
	SetRowCapacity(n int)

	// SetColumnCapacity adjusts the virtual column extent where the
	// dimension allows it.
	SetColumnCapacity(n int)
}

// Entry pairs a cell's Position with its value; it is the unit of sparse
// construction and of Collect snapshots.
type Entry[T any] struct {
	Pos   Position
	Value T
}

// E is shorthand for building an Entry at (row, col).
func E[T any](row, col int, value T) Entry[T] {
	return Entry[T]{Pos: Position{Row: row, Col: col}, Value: value}
}

// Len returns the total number of cell positions inside the virtual
// extents (rows × columns), occupied or not.
//
// Complexity: O(1)
func Len[T any](t Table[T]) int {
	return t.RowCount() * t.ColumnCount()
}

// IsEmpty reports whether the virtual extents enclose no positions.
func IsEmpty[T any](t Table[T]) bool {
	return Len[T](t) == 0
}

// HasCell reports whether a cell is physically present at (row, col).
// Note this is narrower than being inside the extents: a sparse hole
// within range has no cell.
func HasCell[T any](t Table[T], row, col int) bool {
	_, ok := t.GetCell(row, col)

	return ok
}

// At returns the value at (row, col), panicking if the cell is absent or
// outside the virtual extents. At is the "I know this exists" contract;
// use GetCell to probe safely.
func At[T any](t Table[T], row, col int) T {
	v, ok := t.GetCell(row, col)
	if !ok {
		panic(fmt.Sprintf("table: no cell at (%d,%d)", row, col))
	}

	return v
}

// MutAt returns a pointer to the value at (row, col), panicking if the
// cell is absent or outside the virtual extents.
func MutAt[T any](t Table[T], row, col int) *T {
	p, ok := t.GetMutCell(row, col)
	if !ok {
		panic(fmt.Sprintf("table: no cell at (%d,%d)", row, col))
	}

	return p
}

// SetAt overwrites the existing cell at (row, col), panicking if no cell
// is there. Unlike InsertCell it never grows the table; it is the write
// half of the hard-fail indexing seam.
func SetAt[T any](t Table[T], row, col int, value T) {
	*MutAt[T](t, row, col) = value
}

// Collect returns every physically present cell inside the virtual
// extents, in row-major order.
//
// Complexity: O(R×C)
func Collect[T any](t Table[T]) []Entry[T] {
	var out []Entry[T]
	rowCnt, colCnt := t.RowCount(), t.ColumnCount()
	for row := 0; row < rowCnt; row++ {
		for col := 0; col < colCnt; col++ {
			if v, ok := t.GetCell(row, col); ok {
				out = append(out, Entry[T]{Pos: Position{Row: row, Col: col}, Value: v})
			}
		}
	}

	return out
}
