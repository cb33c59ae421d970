// Package record adapts plain Go structs to columnar table storage.
//
// What:
//   - Table[S]: a typed view over a sparse table of tagged cells, one
//     column per exported field of S, one row per pushed record.
//   - Push appends a struct as a row; Record / Records rebuild structs
//     from rows; Remove deletes a row and returns its struct.
//   - Columns / ColumnIndex expose the field-name-to-column mapping;
//     Inner exposes the raw cell table for direct traversal.
//
// Why: the cell layer makes heterogeneous rows storable behind a single
// element type, and this package closes the loop: structs go in, structs
// come out, while everything in between stays an ordinary table that the
// cursor engine and shift algorithms can work on.
//
// Field mapping is fixed at construction via reflection over S's exported
// fields, in declaration order. Unexported fields are ignored and come
// back as zero values.
//
// Errors:
//   - ErrNotStruct    - the type parameter is not a struct type.
//   - ErrMissingCell  - a row lacks a cell for one of the columns.
//   - ErrWrongType    - a cell's payload does not match the field's type.
package record
