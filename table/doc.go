// Package table provides a generic in-memory 2D table (row/column grid)
// behind one uniform access contract, with four interchangeable storage
// variants and position-aware iteration.
//
// What:
//
//   - Table[T] is the shared contract: virtual extents (RowCount/ColumnCount),
//     soft cell access (GetCell/GetMutCell/InsertCell/RemoveCell), and
//     capacity reporting/steering.
//   - Dynamic[T] stores cells sparsely in a Position-keyed map; both
//     dimensions grow without bound.
//   - Fixed[T] stores a dense row-major block validated at construction;
//     both extents stay pinned to the bounds and removal resets to the
//     element's zero value.
//   - FixedRow[T] bounds the row count and grows columns lazily across
//     ragged per-row storage.
//   - FixedColumn[T] grows rows of a fixed width, padding with zero values.
//   - Cursors (Rows/Row/Columns/Column/Cells and their draining Drain
//     counterparts) walk any Table[T] in a defined order, optionally paired
//     with each cell's Position.
//   - InsertRow/RemoveRow/InsertColumn/RemoveColumn (and Push/Pop forms)
//     shift whole rows and columns using only the contract's cell
//     primitives, so they work identically on every variant.
//
// Why:
//
//   - Spreadsheet-like models: sparse editing plus dense export.
//   - Columnar record storage: see the record subpackage.
//   - Bounded buffers of grid data where capacity must not grow.
//
// Access model (two deliberate contracts):
//
//   - Soft: GetCell and friends report absence with an ok-marker and never
//     fail. Writes beyond a fixed bound are silently rejected (no-op,
//     absent result): the variant simply cannot grow there.
//   - Hard: At/MutAt/SetAt are the "I know this exists" seam and panic when
//     the cell is absent or out of the virtual extents.
//
// One more deliberate edge: InsertCell reports the previous value only when
// the write overwrote a cell WITHOUT growing either extent. A write that
// grew RowCount or ColumnCount reports absent even if a value sat at that
// slot (possible after shrinking extents by hand), so callers can tell
// "overwrite" from "extend" without a separate existence check.
//
// Complexity:
//
//   - Cell operations: O(1) on every variant.
//   - InsertRow/RemoveRow (and column duals): O(R×C) cell moves.
//   - Truncate/ShrinkToFit: O(cells).
//
// Errors:
//
//   - ErrInvalidDimensions: negative dimension at construction.
//   - ErrRaggedGrid: 2D literal rows of differing lengths.
//   - ErrSnapshotSize: decoded dense snapshot length ≠ rows×cols.
package table
