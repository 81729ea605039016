package playfield

import "fmt"

// Cell is either Empty or the kind of the piece that was locked into it.
type Cell uint8

// Empty is the zero cell.
const Empty Cell = 0

// CellOf returns the cell value recorded when a piece of the given kind locks.
func CellOf(kind Kind) Cell {
	return Cell(kind) + 1
}

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c != Empty
}

// Kind returns the kind that filled the cell. Only meaningful when Filled.
func (c Cell) Kind() Kind {
	return Kind(c - 1)
}

// Grid is a fixed-size matrix of cells, indexed [row][col].
// Its dimensions never change after NewGrid.
type Grid struct {
	columns int
	rows    int
	cells   [][]Cell
}

// NewGrid creates an empty grid. Both dimensions must be positive.
func NewGrid(columns, rows int) *Grid {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("playfield: invalid grid size %dx%d", columns, rows))
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, columns)
	}

	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   cells,
	}
}

// Columns returns the grid width in cells.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int {
	return g.rows
}

// At returns the cell at (col, row). Out-of-range coordinates read as Empty.
func (g *Grid) At(col, row int) Cell {
	if !g.inside(col, row) {
		return Empty
	}
	return g.cells[row][col]
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(col, row int, cell Cell) {
	if !g.inside(col, row) {
		return
	}
	g.cells[row][col] = cell
}

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}

// IsValid reports whether the piece, shifted by (dx, dy), fits the grid.
// Blocks may sit above the top edge (negative rows) so pieces can enter from
// above, but never left, right or below the grid, and never on a filled cell.
func (g *Grid) IsValid(p Piece, dx, dy int) bool {
	for _, b := range p.Blocks() {
		col := b.Col + dx
		row := b.Row + dy

		if col < 0 || col >= g.columns || row >= g.rows {
			return false
		}

		if row >= 0 && g.cells[row][col].Filled() {
			return false
		}
	}

	return true
}

// Lock records the piece's blocks in the grid. Blocks above the top edge are
// dropped.
func (g *Grid) Lock(p Piece) {
	cell := CellOf(p.Kind)
	for _, b := range p.Blocks() {
		if b.Row < 0 {
			continue
		}
		g.Set(b.Col, b.Row, cell)
	}
}

// CompleteRows returns, in ascending order, every row whose cells are all filled.
func (g *Grid) CompleteRows() []int {
	var complete []int
	for r, row := range g.cells {
		if rowFull(row) {
			complete = append(complete, r)
		}
	}
	return complete
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// ClearRows removes the given rows. Surviving rows keep their top-to-bottom order
// and empty rows are prepended until the grid is back to full height. Duplicate or
// out-of-range indices are ignored.
func (g *Grid) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	remove := make(map[int]bool, len(rows))
	for _, r := range rows {
		remove[r] = true
	}

	kept := make([][]Cell, 0, g.rows)
	for r, row := range g.cells {
		if !remove[r] {
			kept = append(kept, row)
		}
	}

	rebuilt := make([][]Cell, 0, g.rows)
	for len(rebuilt)+len(kept) < g.rows {
		rebuilt = append(rebuilt, make([]Cell, g.columns))
	}
	g.cells = append(rebuilt, kept...)
}

// DropDistance returns how many rows the piece can fall before it would collide.
func (g *Grid) DropDistance(p Piece) int {
	dy := 0
	for g.IsValid(p, 0, dy+1) {
		dy++
	}
	return dy
}

// Cells returns a deep copy of the grid contents, indexed [row][col].
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r, row := range g.cells {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}
