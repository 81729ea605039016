package playfield_test

import (
	"fmt"

	"github.com/plus3/blockfall/playfield"
)

// ExampleGrid walks an I piece down an empty 10x20 grid, locks it on the floor
// and clears the completed bottom row.
func ExampleGrid() {
	grid := playfield.NewGrid(10, 20)

	for col := 0; col < 10; col++ {
		if col < 3 || col > 6 {
			grid.Set(col, 19, playfield.CellOf(playfield.KindZ))
		}
	}

	piece := playfield.Spawn(playfield.KindI, 3)
	for grid.IsValid(piece, 0, 1) {
		piece.Move(0, 1)
	}

	grid.Lock(piece)
	fmt.Println("anchor row:", piece.Y)
	fmt.Println("complete:", grid.CompleteRows())

	grid.ClearRows(grid.CompleteRows())
	fmt.Println("after clear:", grid.CompleteRows(), grid.At(3, 19).Filled())

	// Output:
	// anchor row: 18
	// complete: [19]
	// after clear: [] false
}
