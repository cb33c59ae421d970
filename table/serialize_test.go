package table_test

import (
	"encoding/json"
	"testing"

	"github.com/memtable-go/memtable/table"
	"github.com/stretchr/testify/require"
)

func TestFixed_JSONRoundTrip(t *testing.T) {
	t.Parallel()
	f, err := table.FixedFromGrid([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	data, err := json.Marshal(f)
	require.NoError(t, err)
	require.JSONEq(t, `{"rows":2,"cols":3,"cells":[1,2,3,4,5,6]}`, string(data))

	var back table.Fixed[int]
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, table.Collect[int](f), table.Collect[int](&back))
	require.Equal(t, 2, back.RowCount())
	require.Equal(t, 3, back.ColumnCount())
}

func TestFixed_SnapshotSizeMismatch(t *testing.T) {
	t.Parallel()
	var f table.Fixed[int]

	// Payload too short for the declared bounds fails hard, never pads.
	err := json.Unmarshal([]byte(`{"rows":2,"cols":2,"cells":[1,2,3]}`), &f)
	require.ErrorIs(t, err, table.ErrSnapshotSize)

	err = json.Unmarshal([]byte(`{"rows":1,"cols":1,"cells":[1,2]}`), &f)
	require.ErrorIs(t, err, table.ErrSnapshotSize)

	err = json.Unmarshal([]byte(`{"rows":-1,"cols":1,"cells":[]}`), &f)
	require.ErrorIs(t, err, table.ErrInvalidDimensions)
}

func TestDynamic_JSONRoundTrip(t *testing.T) {
	t.Parallel()
	d := table.DynamicFromEntries(
		table.E(0, 0, "a"),
		table.E(2, 1, "b"), // leaves holes behind
	)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"rowCount":3,"colCount":2,"cells":[{"row":0,"col":0,"value":"a"},{"row":2,"col":1,"value":"b"}]}`,
		string(data))

	var back table.Dynamic[string]
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, table.Collect[string](d), table.Collect[string](&back))
	require.Equal(t, 3, back.RowCount())
	require.Equal(t, 2, back.ColumnCount())
}

// Extents steered away from the stored cells must survive the round trip,
// including cells parked outside the current extents.
func TestDynamic_JSONKeepsSteeredExtents(t *testing.T) {
	t.Parallel()
	d := table.NewDynamic[int]()
	d.InsertCell(0, 0, 1)
	d.InsertCell(2, 0, 3)
	d.SetRowCapacity(1)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var back table.Dynamic[int]
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, 1, back.RowCount())

	// The out-of-extent cell is still there: widening shows it again.
	back.ShrinkToFit()
	require.Equal(t, 3, back.RowCount())
	require.Equal(t, 3, table.At[int](&back, 2, 0))
}

func TestDynamic_SnapshotErrors(t *testing.T) {
	t.Parallel()
	var d table.Dynamic[int]

	err := json.Unmarshal([]byte(`{"rowCount":-1,"colCount":0,"cells":[]}`), &d)
	require.ErrorIs(t, err, table.ErrInvalidDimensions)

	// Cells at negative positions are dropped, mirroring the write rule.
	err = json.Unmarshal([]byte(`{"rowCount":1,"colCount":1,"cells":[{"row":-1,"col":0,"value":9},{"row":0,"col":0,"value":5}]}`), &d)
	require.NoError(t, err)
	require.Equal(t, []table.Entry[int]{table.E(0, 0, 5)}, table.Collect[int](&d))
}
