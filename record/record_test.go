package record_test

import (
	"testing"

	"github.com/memtable-go/memtable/cell"
	"github.com/memtable-go/memtable/record"
	"github.com/memtable-go/memtable/table"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name string
	Age  int
}

func TestNew_RejectsNonStructs(t *testing.T) {
	t.Parallel()
	_, err := record.New[int]()
	require.ErrorIs(t, err, record.ErrNotStruct)

	_, err = record.New[*user]()
	require.ErrorIs(t, err, record.ErrNotStruct)

	_, err = record.New[user]()
	require.NoError(t, err)
}

func TestTable_PushAndRecord(t *testing.T) {
	t.Parallel()
	rt, err := record.New[user]()
	require.NoError(t, err)

	rt.Push(user{Name: "alice", Age: 30})
	rt.Push(user{Name: "bob", Age: 25})
	require.Equal(t, 2, rt.Len())

	got, err := rt.Record(0)
	require.NoError(t, err)
	require.Equal(t, user{Name: "alice", Age: 30}, got)

	all, err := rt.Records()
	require.NoError(t, err)
	require.Equal(t, []user{{"alice", 30}, {"bob", 25}}, all)
}

func TestTable_Columns(t *testing.T) {
	t.Parallel()
	rt, err := record.New[user]()
	require.NoError(t, err)

	require.Equal(t, []string{"Name", "Age"}, rt.Columns())

	idx, ok := rt.ColumnIndex("Age")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = rt.ColumnIndex("Salary")
	require.False(t, ok)
}

func TestTable_SkipsUnexportedFields(t *testing.T) {
	t.Parallel()
	type mixed struct {
		Public string
		hidden int
	}
	rt, err := record.New[mixed]()
	require.NoError(t, err)
	require.Equal(t, []string{"Public"}, rt.Columns())

	rt.Push(mixed{Public: "p", hidden: 9})
	got, err := rt.Record(0)
	require.NoError(t, err)
	require.Equal(t, mixed{Public: "p"}, got) // hidden comes back zero
}

func TestTable_Remove(t *testing.T) {
	t.Parallel()
	rt, err := record.New[user]()
	require.NoError(t, err)
	rt.Push(user{"alice", 30})
	rt.Push(user{"bob", 25})
	rt.Push(user{"carol", 41})

	removed, err := rt.Remove(1)
	require.NoError(t, err)
	require.Equal(t, user{"bob", 25}, removed)

	// Later rows shift up.
	require.Equal(t, 2, rt.Len())
	got, err := rt.Record(1)
	require.NoError(t, err)
	require.Equal(t, user{"carol", 41}, got)

	// Removing a row that is not there fails and changes nothing.
	_, err = rt.Remove(5)
	require.ErrorIs(t, err, record.ErrMissingCell)
	require.Equal(t, 2, rt.Len())
}

func TestRecord_MissingCell(t *testing.T) {
	t.Parallel()
	rt, err := record.New[user]()
	require.NoError(t, err)
	rt.Push(user{"alice", 30})

	// Punch a hole in the backing storage.
	rt.Inner().RemoveCell(0, 1)

	_, err = rt.Record(0)
	require.ErrorIs(t, err, record.ErrMissingCell)
	require.ErrorContains(t, err, "field Age of row 0")
}

func TestRecord_WrongType(t *testing.T) {
	t.Parallel()
	rt, err := record.New[user]()
	require.NoError(t, err)
	rt.Push(user{"alice", 30})

	// Overwrite the Age cell with a payload of the wrong type.
	rt.Inner().InsertCell(0, 1, cell.New(1, "not-an-int"))

	_, err = rt.Record(0)
	require.ErrorIs(t, err, record.ErrWrongType)
	require.ErrorContains(t, err, "field Age of row 0")
}

func TestTable_InnerIsLive(t *testing.T) {
	t.Parallel()
	rt, err := record.New[user]()
	require.NoError(t, err)
	rt.Push(user{"alice", 30})

	// The backing table is the real storage, not a copy: cursors see the
	// tagged cells, and tags line up with column labels.
	entries := table.Collect[cell.Value](rt.Inner())
	require.Len(t, entries, 2)

	label, ok := cell.Label(entries[1].Value.Tag())
	require.True(t, ok)
	require.Equal(t, "B", label)

	age, ok := cell.As[int](entries[1].Value)
	require.True(t, ok)
	require.Equal(t, 30, age)
}
