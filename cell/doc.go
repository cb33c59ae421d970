// Package cell provides a small tagged-union value for tables whose
// columns hold differently typed data.
//
// What:
//   - Value: an immutable (tag, payload) pair; the tag names the variant,
//     the payload holds the data.
//   - Of / New construct values; Tag, Is, Get and the generic As extract.
//   - Label / TagFor map tags 0..25 to spreadsheet-style column letters
//     "A".."Z" and back (case-insensitive).
//
// Why: a heterogeneous row stored in a Table[cell.Value] keeps one static
// element type while each column carries its own dynamic payload type.
// The record package builds on exactly this.
//
// Value is a plain immutable value type; concurrent reads are safe.
package cell
