// Package memtable is your in-memory toolkit for building, mutating, and
// traversing generic 2D tables, from sparse unbounded grids to dense
// fixed-capacity blocks, behind one uniform access contract.
//
// 🚀 What is memtable?
//
//	A small, pure-Go library that brings together:
//		• One contract: Table[T] - cell access, virtual extents, capacities
//		• Four storage variants: Dynamic, Fixed, FixedRow, FixedColumn
//		• Position-aware cursors: rows, columns, cells, draining variants
//		• Storage-agnostic row/column insertion & removal with shifting
//		• A generic tagged-union cell and a reflection-based record adapter
//
// ✨ Why choose memtable?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable edges – soft (ok-marker) access everywhere, one documented
//     panic seam for trusted indexing
//   - Pure Go – no cgo, no hidden deps
//   - Generic – any element type, any of the four storage layouts
//
// Everything is organized under three subpackages:
//
//	table/  - Position, Capacity, the Table contract, the four storage
//	          variants, cursors, and the shift algorithms
//	cell/   - a generic tagged-union value with A-Z column labels
//	record/ - derive a typed columnar table from a plain struct
//
// Quick ASCII example:
//
//	t := table.NewDynamic[int]()
//	table.PushRow[int](t, 1, 2, 3)
//	table.PushRow[int](t, 4, 5, 6)
//	// ┌───┬───┬───┐
//	// │ 1 │ 2 │ 3 │
//	// ├───┼───┼───┤
//	// │ 4 │ 5 │ 6 │
//	// └───┴───┴───┘
//	fmt.Println(table.At[int](t, 1, 2)) // 6
package memtable
