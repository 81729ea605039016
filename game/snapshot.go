package game

import (
	"image/color"
	"slices"
	"time"

	"github.com/plus3/blockfall/playfield"
)

// PieceView is a drawable piece: its kind, covered cells and fill colour.
type PieceView struct {
	Kind   playfield.Kind
	Blocks [4]playfield.Point
	Color  color.RGBA
}

func viewOf(p playfield.Piece) PieceView {
	return PieceView{
		Kind:   p.Kind,
		Blocks: p.Blocks(),
		Color:  p.Kind.Color(),
	}
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Columns int
	Rows    int
	Cells   [][]playfield.Cell

	State State
	// Active is false when no piece is falling: during the line clear flash and
	// after game over.
	Active  bool
	Current PieceView
	Ghost   [4]playfield.Point
	// Next holds rotation-0 blocks relative to the preview origin.
	Next PieceView

	Score     int
	Lines     int
	FallSpeed time.Duration

	FlashRows []int
	// FlashOn alternates every flash period while rows are flashing.
	FlashOn bool

	Exit Exit
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Columns:   s.grid.Columns(),
		Rows:      s.grid.Rows(),
		Cells:     s.grid.Cells(),
		State:     s.state,
		Active:    s.state == Playing || s.state == Paused,
		Next:      viewOf(playfield.Piece{Kind: s.next.Kind}),
		Score:     s.score,
		Lines:     s.lines,
		FallSpeed: s.fallSpeed,
		Exit:      s.exit,
	}

	if snap.Active {
		snap.Current = viewOf(s.current)
		ghost := s.current
		ghost.Move(0, s.grid.DropDistance(s.current))
		snap.Ghost = ghost.Blocks()
	}

	if s.anim.Active() {
		snap.FlashRows = slices.Clone(s.anim.Rows)
		snap.FlashOn = (s.elapsed/s.cfg.FlashPeriod)%2 == 0
	}

	return snap
}

// Flashing reports whether a row is part of the pending line clear.
func (s Snapshot) Flashing(row int) bool {
	return slices.Contains(s.FlashRows, row)
}
