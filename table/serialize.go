package table

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Snapshots cover the two workhorse variants. Fixed serializes densely
// (bounds plus a flat row-major payload), Dynamic sparsely (extents plus
// the present cells). Both formats carry the dimensions explicitly so a
// decoded table restores extents that storage alone cannot reproduce.

type fixedSnapshot[T any] struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Cells []T `json:"cells"`
}

// MarshalJSON encodes the table as its bounds plus the flat row-major
// cell payload.
func (t *Fixed[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(fixedSnapshot[T]{Rows: t.rows, Cols: t.cols, Cells: t.data})
}

// UnmarshalJSON replaces the table with the decoded snapshot. A payload
// whose cell count disagrees with the declared bounds fails hard with
// ErrSnapshotSize; negative bounds fail with ErrInvalidDimensions.
func (t *Fixed[T]) UnmarshalJSON(data []byte) error {
	var snap fixedSnapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.Rows < 0 || snap.Cols < 0 {
		return ErrInvalidDimensions
	}
	if len(snap.Cells) != snap.Rows*snap.Cols {
		return fmt.Errorf("%w: %d cells for %dx%d",
			ErrSnapshotSize, len(snap.Cells), snap.Rows, snap.Cols)
	}
	t.rows, t.cols = snap.Rows, snap.Cols
	t.data = snap.Cells
	if t.data == nil {
		t.data = make([]T, 0)
	}

	return nil
}

type dynamicCell[T any] struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value T   `json:"value"`
}

type dynamicSnapshot[T any] struct {
	RowCount int              `json:"rowCount"`
	ColCount int              `json:"colCount"`
	Cells    []dynamicCell[T] `json:"cells"`
}

// MarshalJSON encodes the table as its virtual extents plus every
// physically present cell in row-major order. Cells parked outside the
// extents survive the round trip.
func (t *Dynamic[T]) MarshalJSON() ([]byte, error) {
	snap := dynamicSnapshot[T]{
		RowCount: t.rowCnt,
		ColCount: t.colCnt,
		Cells:    make([]dynamicCell[T], 0, len(t.cells)),
	}
	for pos, p := range t.cells {
		snap.Cells = append(snap.Cells, dynamicCell[T]{Row: pos.Row, Col: pos.Col, Value: *p})
	}
	// Map order is random; sort for a deterministic payload.
	sort.Slice(snap.Cells, func(i, j int) bool {
		a := Position{Row: snap.Cells[i].Row, Col: snap.Cells[i].Col}
		b := Position{Row: snap.Cells[j].Row, Col: snap.Cells[j].Col}

		return a.Less(b)
	})

	return json.Marshal(snap)
}

// UnmarshalJSON replaces the table with the decoded snapshot, restoring
// the recorded extents verbatim. Negative extents fail with
// ErrInvalidDimensions; cells at negative positions are silently dropped,
// matching the write contract.
func (t *Dynamic[T]) UnmarshalJSON(data []byte) error {
	var snap dynamicSnapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.RowCount < 0 || snap.ColCount < 0 {
		return ErrInvalidDimensions
	}
	cells := make(map[Position]*T, len(snap.Cells))
	for _, c := range snap.Cells {
		if c.Row < 0 || c.Col < 0 {
			continue
		}
		v := c.Value
		cells[Position{Row: c.Row, Col: c.Col}] = &v
	}
	t.cells = cells
	t.rowCnt, t.colCnt = snap.RowCount, snap.ColCount

	return nil
}
