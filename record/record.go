package record

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/memtable-go/memtable/cell"
	"github.com/memtable-go/memtable/table"
)

var (
	// ErrNotStruct indicates the type parameter is not a struct type.
	ErrNotStruct = errors.New("record: type must be a struct")

	// ErrMissingCell indicates a row has no cell for one of the columns.
	ErrMissingCell = errors.New("record: missing cell")

	// ErrWrongType indicates a cell payload that does not match the
	// destination field's type.
	ErrWrongType = errors.New("record: cell holds a different type")
)

// column binds a table column to a struct field.
type column struct {
	name     string
	fieldIdx int
	typ      reflect.Type
}

// Table stores values of struct type S as rows of tagged cells, one
// column per exported field. The column tag equals the column index, so
// single-letter column labels line up with cell.Label for the first 26
// fields.
type Table[S any] struct {
	inner *table.Dynamic[cell.Value]
	cols  []column
	index map[string]int
}

// New builds an empty record table for struct type S. Non-struct type
// parameters yield ErrNotStruct.
func New[S any]() (*Table[S], error) {
	rt := reflect.TypeOf((*S)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, rt.Kind())
	}

	t := &Table[S]{
		inner: table.NewDynamic[cell.Value](),
		index: make(map[string]int),
	}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		t.index[f.Name] = len(t.cols)
		t.cols = append(t.cols, column{name: f.Name, fieldIdx: i, typ: f.Type})
	}

	return t, nil
}

// Columns returns the column names in table order.
func (t *Table[S]) Columns() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}

	return out
}

// ColumnIndex returns the column number for a field name.
func (t *Table[S]) ColumnIndex(name string) (int, bool) {
	idx, ok := t.index[name]

	return idx, ok
}

// Len returns the number of stored records.
func (t *Table[S]) Len() int {
	return t.inner.RowCount()
}

// Push appends rec as a new row, one tagged cell per column.
func (t *Table[S]) Push(rec S) {
	rv := reflect.ValueOf(rec)
	cells := make([]cell.Value, len(t.cols))
	for i, c := range t.cols {
		cells[i] = cell.New(i, rv.Field(c.fieldIdx).Interface())
	}
	table.PushRow[cell.Value](t.inner, cells...)
}

// Record rebuilds the struct stored at row idx. A column without a cell
// yields ErrMissingCell, a payload of the wrong type ErrWrongType; both
// name the offending field and row.
func (t *Table[S]) Record(idx int) (S, error) {
	var rec S
	rv := reflect.ValueOf(&rec).Elem()
	for colIdx, c := range t.cols {
		v, ok := t.inner.GetCell(idx, colIdx)
		if !ok {
			return rec, fmt.Errorf("%w: field %s of row %d", ErrMissingCell, c.name, idx)
		}
		payload := reflect.ValueOf(v.Get())
		if !payload.IsValid() || payload.Type() != c.typ {
			return rec, fmt.Errorf("%w: field %s of row %d", ErrWrongType, c.name, idx)
		}
		rv.Field(c.fieldIdx).Set(payload)
	}

	return rec, nil
}

// Records rebuilds every stored row in order.
func (t *Table[S]) Records() ([]S, error) {
	out := make([]S, 0, t.Len())
	for idx := 0; idx < t.Len(); idx++ {
		rec, err := t.Record(idx)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

// Remove deletes the row at idx, shifting later rows up, and returns the
// removed record. A row that cannot be rebuilt is left untouched.
func (t *Table[S]) Remove(idx int) (S, error) {
	rec, err := t.Record(idx)
	if err != nil {
		return rec, err
	}
	table.RemoveRow[cell.Value](t.inner, idx)

	return rec, nil
}

// Inner returns the backing cell table for direct cursor or shift use.
// Mutating it can break the one-cell-per-column invariant Record relies
// on.
func (t *Table[S]) Inner() *table.Dynamic[cell.Value] {
	return t.inner
}
