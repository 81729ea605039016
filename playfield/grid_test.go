package playfield_test

import (
	"testing"

	"github.com/plus3/blockfall/playfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testColumns = 10
	testRows    = 20
)

func fillRow(g *playfield.Grid, row int, except ...int) {
	skip := make(map[int]bool)
	for _, c := range except {
		skip[c] = true
	}
	for col := 0; col < g.Columns(); col++ {
		if !skip[col] {
			g.Set(col, row, playfield.CellOf(playfield.KindZ))
		}
	}
}

func TestNewGrid(t *testing.T) {
	g := playfield.NewGrid(testColumns, testRows)

	assert.Equal(t, testColumns, g.Columns())
	assert.Equal(t, testRows, g.Rows())

	cells := g.Cells()
	require.Len(t, cells, testRows)
	for _, row := range cells {
		require.Len(t, row, testColumns)
		for _, c := range row {
			assert.False(t, c.Filled())
		}
	}

	assert.Panics(t, func() { playfield.NewGrid(0, 20) })
}

func TestCellOf(t *testing.T) {
	for _, kind := range playfield.Kinds {
		c := playfield.CellOf(kind)
		assert.True(t, c.Filled())
		assert.Equal(t, kind, c.Kind())
	}
	assert.False(t, playfield.Empty.Filled())
}

func TestIsValid(t *testing.T) {
	g := playfield.NewGrid(testColumns, testRows)
	p := playfield.Spawn(playfield.KindI, 3)

	t.Run("inside bounds", func(t *testing.T) {
		assert.True(t, g.IsValid(p, 0, 0))
		assert.True(t, g.IsValid(p, 0, 1))
	})

	t.Run("left and right walls", func(t *testing.T) {
		assert.False(t, g.IsValid(p, -4, 0))
		assert.True(t, g.IsValid(p, -3, 0))
		assert.True(t, g.IsValid(p, 3, 0))
		assert.False(t, g.IsValid(p, 4, 0))
	})

	t.Run("floor", func(t *testing.T) {
		assert.True(t, g.IsValid(p, 0, 18))
		assert.False(t, g.IsValid(p, 0, 19))
	})

	t.Run("above the grid is allowed", func(t *testing.T) {
		assert.True(t, g.IsValid(p, 0, -5))
	})

	t.Run("collision with filled cell", func(t *testing.T) {
		blocked := playfield.NewGrid(testColumns, testRows)
		blocked.Set(3, 2, playfield.CellOf(playfield.KindO))

		assert.True(t, blocked.IsValid(p, 0, 0))
		assert.False(t, blocked.IsValid(p, 0, 1))
	})

	t.Run("filled cells do not block pieces above the grid", func(t *testing.T) {
		blocked := playfield.NewGrid(testColumns, testRows)
		fillRow(blocked, 0)

		assert.True(t, blocked.IsValid(p, 0, -2))
		assert.False(t, blocked.IsValid(p, 0, -1))
	})
}

func TestLock(t *testing.T) {
	t.Run("marks covered cells", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		p := playfield.Spawn(playfield.KindT, 3)

		g.Lock(p)

		for _, b := range p.Blocks() {
			assert.Equal(t, playfield.CellOf(playfield.KindT), g.At(b.Col, b.Row))
		}

		filled := 0
		for _, row := range g.Cells() {
			for _, c := range row {
				if c.Filled() {
					filled++
				}
			}
		}
		assert.Equal(t, 4, filled)
	})

	t.Run("drops blocks above the grid", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		p := playfield.Piece{X: 0, Y: -2, Kind: playfield.KindI, Rotation: 1}

		g.Lock(p)

		assert.True(t, g.At(2, 0).Filled())
		assert.True(t, g.At(2, 1).Filled())
		assert.False(t, g.At(2, 2).Filled())
	})

	t.Run("unrelated lock keeps other pieces valid", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		p := playfield.Piece{X: 0, Y: 5, Kind: playfield.KindO}
		require.True(t, g.IsValid(p, 0, 0))

		g.Lock(playfield.Piece{X: 5, Y: 10, Kind: playfield.KindS})
		assert.True(t, g.IsValid(p, 0, 0))
	})
}

func TestCompleteRows(t *testing.T) {
	t.Run("empty grid", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		assert.Empty(t, g.CompleteRows())
	})

	t.Run("reports filled rows in ascending order", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		fillRow(g, 17)
		fillRow(g, 10)
		fillRow(g, 12, 4)

		assert.Equal(t, []int{10, 17}, g.CompleteRows())
	})

	t.Run("lock completes a row", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		fillRow(g, 19, 3, 4, 5, 6)
		assert.Empty(t, g.CompleteRows())

		g.Lock(playfield.Piece{X: 3, Y: 18, Kind: playfield.KindI})
		assert.Equal(t, []int{19}, g.CompleteRows())
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		fillRow(g, 5)
		fillRow(g, 19)

		first := g.CompleteRows()
		assert.Equal(t, first, g.CompleteRows())
	})
}

func TestClearRows(t *testing.T) {
	t.Run("shifts rows above down", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		fillRow(g, 10)
		g.Set(0, 9, playfield.CellOf(playfield.KindL))

		g.ClearRows([]int{10})

		assert.Equal(t, testRows, g.Rows())
		assert.Equal(t, testColumns, g.Columns())
		assert.Equal(t, playfield.CellOf(playfield.KindL), g.At(0, 10))
		assert.False(t, g.At(0, 9).Filled())
		assert.False(t, g.At(0, 0).Filled())
		assert.Empty(t, g.CompleteRows())
	})

	t.Run("multiple rows keep survivor order", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		fillRow(g, 19)
		fillRow(g, 17)
		g.Set(1, 18, playfield.CellOf(playfield.KindS))
		g.Set(2, 16, playfield.CellOf(playfield.KindT))

		g.ClearRows([]int{17, 19})

		assert.Equal(t, playfield.CellOf(playfield.KindS), g.At(1, 19))
		assert.Equal(t, playfield.CellOf(playfield.KindT), g.At(2, 18))
		for r := 0; r < 18; r++ {
			for c := 0; c < testColumns; c++ {
				assert.False(t, g.At(c, r).Filled(), "cell %d,%d", c, r)
			}
		}
	})

	t.Run("index order does not matter", func(t *testing.T) {
		a := playfield.NewGrid(testColumns, testRows)
		b := playfield.NewGrid(testColumns, testRows)
		for _, g := range []*playfield.Grid{a, b} {
			fillRow(g, 3)
			fillRow(g, 15)
			g.Set(7, 14, playfield.CellOf(playfield.KindJ))
		}

		a.ClearRows([]int{3, 15})
		b.ClearRows([]int{15, 3, 15})

		assert.Equal(t, a.Cells(), b.Cells())
	})

	t.Run("single gap filled then cleared", func(t *testing.T) {
		g := playfield.NewGrid(testColumns, testRows)
		fillRow(g, 19, 5)

		p := playfield.Piece{X: 3, Y: 16, Kind: playfield.KindI, Rotation: 1}
		require.True(t, g.IsValid(p, 0, 0))
		require.False(t, g.IsValid(p, 0, 1))

		g.Lock(p)
		rows := g.CompleteRows()
		require.Equal(t, []int{19}, rows)

		g.ClearRows(rows)
		assert.Empty(t, g.CompleteRows())
		assert.False(t, g.At(0, 0).Filled())
		assert.True(t, g.At(5, 19).Filled())
		assert.False(t, g.At(0, 19).Filled())
		assert.False(t, g.At(5, 16).Filled())
	})
}

func TestDropDistance(t *testing.T) {
	g := playfield.NewGrid(testColumns, testRows)
	p := playfield.Spawn(playfield.KindI, 3)

	assert.Equal(t, 18, g.DropDistance(p))

	g.Set(4, 10, playfield.CellOf(playfield.KindO))
	assert.Equal(t, 8, g.DropDistance(p))
}

func TestCellsIsACopy(t *testing.T) {
	g := playfield.NewGrid(testColumns, testRows)
	cells := g.Cells()
	cells[0][0] = playfield.CellOf(playfield.KindI)

	assert.False(t, g.At(0, 0).Filled())
}
