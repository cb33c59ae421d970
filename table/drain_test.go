package table_test

import (
	"reflect"
	"testing"

	"github.com/memtable-go/memtable/table"
)

func TestDrainRow_RemovesAsItYields(t *testing.T) {
	t.Parallel()
	d, err := table.DynamicFromGrid([][]string{{"a", "b"}, {"c", "d"}})
	if err != nil {
		t.Fatalf("DynamicFromGrid: %v", err)
	}

	it := table.DrainRow[string](d, 0)
	v, ok := it.Next()
	if !ok || v != "a" {
		t.Fatalf("first drain = (%q, %v), want (\"a\", true)", v, ok)
	}
	// The yielded cell is gone from the table immediately.
	if table.HasCell[string](d, 0, 0) {
		t.Error("cell (0,0) should be removed after being drained")
	}
	// The other row is untouched.
	if got := table.At[string](d, 1, 0); got != "c" {
		t.Errorf("cell (1,0) = %q, want \"c\"", got)
	}

	if v, ok = it.Next(); !ok || v != "b" {
		t.Fatalf("second drain = (%q, %v), want (\"b\", true)", v, ok)
	}
	if _, ok = it.Next(); ok {
		t.Error("drain should be exhausted at the column extent")
	}
}

func TestDrainRow_StopsAtFirstHole(t *testing.T) {
	t.Parallel()
	d := table.DynamicFromEntries(
		table.E(0, 0, 1),
		table.E(0, 2, 3),
	)

	var got []int
	for v := range table.Seq[int](table.DrainRow[int](d, 0)) {
		got = append(got, v)
	}
	if want := []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("drained = %v, want %v", got, want)
	}
	// The cell past the hole stays in place.
	if !table.HasCell[int](d, 0, 2) {
		t.Error("cell (0,2) should survive a drain stopped by the hole")
	}
}

func TestDrainColumn_RemovesAsItYields(t *testing.T) {
	t.Parallel()
	d, err := table.DynamicFromGrid([][]int{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("DynamicFromGrid: %v", err)
	}

	var got []int
	for v := range table.Seq[int](table.DrainColumn[int](d, 1)) {
		got = append(got, v)
	}
	if want := []int{2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("drained = %v, want %v", got, want)
	}
	want := []table.Entry[int]{table.E(0, 0, 1), table.E(1, 0, 3)}
	if !reflect.DeepEqual(table.Collect[int](d), want) {
		t.Errorf("remaining = %v, want %v", table.Collect[int](d), want)
	}
}

func TestDrainCells_EmptiesTheTable(t *testing.T) {
	t.Parallel()
	d := table.DynamicFromEntries(
		table.E(0, 0, "a"),
		table.E(0, 2, "c"), // hole at (0,1) is skipped, not a stop
		table.E(1, 1, "e"),
	)

	var got []string
	for v := range table.Seq[string](table.DrainCells[string](d)) {
		got = append(got, v)
	}
	if want := []string{"a", "c", "e"}; !reflect.DeepEqual(got, want) {
		t.Errorf("drained = %v, want %v", got, want)
	}
	if len(table.Collect[string](d)) != 0 {
		t.Error("table should hold no cells after a full drain")
	}
	// Extents survive the drain; only storage is consumed.
	if d.RowCount() != 2 || d.ColumnCount() != 3 {
		t.Errorf("extents = %dx%d, want 2x3", d.RowCount(), d.ColumnCount())
	}
}

// On dense storage a drain yields the zero value for reset slots, so a
// Fixed row drains at its full width.
func TestDrainRow_DenseYieldsFullWidth(t *testing.T) {
	t.Parallel()
	f, err := table.FixedFromGrid([][]int{{7, 0, 9}})
	if err != nil {
		t.Fatalf("FixedFromGrid: %v", err)
	}

	var got []int
	for v := range table.Seq[int](table.DrainRow[int](f, 0)) {
		got = append(got, v)
	}
	if want := []int{7, 0, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("drained = %v, want %v", got, want)
	}
}
