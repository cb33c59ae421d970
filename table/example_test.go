package table_test

import (
	"fmt"
	"strings"

	"github.com/memtable-go/memtable/table"
)

// Building a dynamic table row by row and reading a cell back.
func ExamplePushRow() {
	prices := table.NewDynamic[int]()
	table.PushRow[int](prices, 1, 2, 3)
	table.PushRow[int](prices, 4, 5, 6)

	fmt.Println(prices.RowCount(), "x", prices.ColumnCount())
	fmt.Println(table.At[int](prices, 1, 2))
	// Output:
	// 2 x 3
	// 6
}

// Removing a middle row yields its cells and closes the gap.
func ExampleRemoveRow() {
	grid, _ := table.DynamicFromGrid([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})

	var removed []string
	for v := range table.Seq[string](table.RemoveRow[string](grid, 1)) {
		removed = append(removed, v)
	}
	fmt.Println(strings.Join(removed, " "))
	fmt.Println(grid.RowCount(), "rows left, row 1 starts with", table.At[string](grid, 1, 0))
	// Output:
	// d e f
	// 2 rows left, row 1 starts with g
}

// Row-major traversal with positions, holes skipped.
func ExampleNewCells() {
	sparse := table.DynamicFromEntries(
		table.E(0, 0, "north"),
		table.E(1, 2, "south"),
	)

	for pos, v := range table.Seq2[string](table.NewCells[string](sparse)) {
		fmt.Printf("(%d,%d)=%s\n", pos.Row, pos.Col, v)
	}
	// Output:
	// (0,0)=north
	// (1,2)=south
}

// Bounded tables silently refuse writes outside their bounds.
func ExampleNewFixed() {
	board, _ := table.NewFixed[rune](2, 2)
	board.InsertCell(0, 0, 'x')
	board.InsertCell(5, 5, 'o') // out of bounds, dropped

	fmt.Println(string(table.At[rune](board, 0, 0)))
	fmt.Println(board.RowCount(), "x", board.ColumnCount())
	// Output:
	// x
	// 2 x 2
}
