package playfield_test

import (
	"testing"

	"github.com/plus3/blockfall/playfield"
	"github.com/stretchr/testify/assert"
)

func TestPieceBlocks(t *testing.T) {
	p := playfield.Spawn(playfield.KindI, 0)

	assert.Equal(t, [4]playfield.Point{
		{Col: 0, Row: 1},
		{Col: 1, Row: 1},
		{Col: 2, Row: 1},
		{Col: 3, Row: 1},
	}, p.Blocks())
}

func TestPieceMove(t *testing.T) {
	p := playfield.Spawn(playfield.KindO, 4)

	p.Move(1, 0)
	assert.Equal(t, 5, p.X)

	p.Move(-1, 0)
	assert.Equal(t, 4, p.X)

	p.Move(0, 1)
	assert.Equal(t, 1, p.Y)
}

func TestPieceRotate(t *testing.T) {
	t.Run("returns previous index and wraps", func(t *testing.T) {
		p := playfield.Spawn(playfield.KindI, 0)

		prev := p.Rotate()
		assert.Equal(t, 0, prev)
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, [4]playfield.Point{
			{Col: 2, Row: 0},
			{Col: 2, Row: 1},
			{Col: 2, Row: 2},
			{Col: 2, Row: 3},
		}, p.Blocks())

		prev = p.Rotate()
		assert.Equal(t, 1, prev)
		assert.Equal(t, 0, p.Rotation)
	})

	t.Run("single state kind stays put", func(t *testing.T) {
		p := playfield.Spawn(playfield.KindO, 3)
		before := p.Blocks()

		p.Rotate()
		assert.Equal(t, 0, p.Rotation)
		assert.Equal(t, before, p.Blocks())
	})

	t.Run("rotate back restores blocks", func(t *testing.T) {
		for _, kind := range playfield.Kinds {
			for rot := 0; rot < playfield.RotationCount(kind); rot++ {
				p := playfield.Piece{X: 2, Y: 5, Kind: kind, Rotation: rot}
				before := p.Blocks()

				prev := p.Rotate()
				p.RotateBack(prev)

				assert.Equal(t, before, p.Blocks(), "kind %s rotation %d", kind, rot)
			}
		}
	})
}
