package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/playfield"
)

func TestMapKeyGame(t *testing.T) {
	var in app.Input

	assert.True(t, mapKey(app.ScreenPlaying, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), &in))
	assert.True(t, mapKey(app.ScreenPlaying, tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModNone), &in))
	assert.True(t, mapKey(app.ScreenPlaying, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), &in))
	assert.True(t, mapKey(app.ScreenPlaying, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), &in))
	assert.False(t, mapKey(app.ScreenPlaying, tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), &in))

	assert.Equal(t, []game.Action{
		game.ActionMoveLeft,
		game.ActionMoveRight,
		game.ActionHardDrop,
		game.ActionQuitToMenu,
	}, in.Game)
	assert.Empty(t, in.Menu)
}

func TestMapKeyMenu(t *testing.T) {
	var in app.Input

	mapKey(app.ScreenMenu, tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), &in)
	mapKey(app.ScreenMenu, tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), &in)
	mapKey(app.ScreenMenu, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), &in)
	assert.False(t, mapKey(app.ScreenMenu, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), &in))

	assert.Equal(t, []app.MenuAction{app.MenuDown, app.MenuUp, app.MenuConfirm}, in.Menu)
	assert.Empty(t, in.Game)
}

func TestInterrupt(t *testing.T) {
	assert.True(t, interrupt(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, interrupt(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runAsync(ctx context.Context, screen tcell.Screen, a *app.App) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, screen, a, 5*time.Millisecond)
	}()
	return done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func TestRunQuitFromMenu(t *testing.T) {
	screen := newScreen(t)
	a := app.New(game.DefaultConfig())

	done := runAsync(context.Background(), screen, a)
	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	require.NoError(t, waitRun(t, done))
	assert.True(t, a.Done())
	assert.Equal(t, 0, a.Sessions())
}

func TestRunInterrupt(t *testing.T) {
	screen := newScreen(t)
	a := app.New(game.DefaultConfig())

	done := runAsync(context.Background(), screen, a)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	require.NoError(t, waitRun(t, done))
	assert.False(t, a.Done())
}

func TestRunContextCancelled(t *testing.T) {
	screen := newScreen(t)
	a := app.New(game.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, screen, a)
	cancel()

	assert.ErrorIs(t, waitRun(t, done), context.Canceled)
}

func TestDrawSession(t *testing.T) {
	screen := newScreen(t)

	grid := playfield.NewGrid(10, 20)
	grid.Set(0, 19, playfield.CellOf(playfield.KindZ))
	snap := game.Snapshot{
		Columns: 10,
		Rows:    20,
		Cells:   grid.Cells(),
		State:   game.Paused,
		Score:   300,
		Next:    game.PieceView{Kind: playfield.KindO, Color: playfield.KindO.Color()},
	}

	drawSession(screen, snap)

	_, _, style, _ := screen.GetContent(originX, originY+19)
	_, bg, _ := style.Decompose()
	assert.Equal(t, rgb(playfield.KindZ.Color()), bg)

	r, _, _, _ := screen.GetContent(originX+2, originY+19)
	assert.Equal(t, '·', r)

	r, _, _, _ = screen.GetContent(originX-1, originY)
	assert.Equal(t, '│', r)

	assert.Equal(t, "SCORE  300", readText(screen, originX+10*cellWidth+3, originY, 10))
	assert.Equal(t, " PAUSED ", readText(screen, originX+10*cellWidth+3, originY+10, 8))
}

func TestDrawFlashingRow(t *testing.T) {
	screen := newScreen(t)

	grid := playfield.NewGrid(10, 20)
	snap := game.Snapshot{
		Columns:   10,
		Rows:      20,
		Cells:     grid.Cells(),
		State:     game.LineClearAnimation,
		FlashRows: []int{19},
		FlashOn:   true,
	}

	drawSession(screen, snap)

	_, _, style, _ := screen.GetContent(originX+4, originY+19)
	assert.Equal(t, flashStyle, style)
}

func TestDrawMenu(t *testing.T) {
	screen := newScreen(t)
	a := app.New(game.DefaultConfig())
	a.Update(0, app.Input{Menu: []app.MenuAction{app.MenuDown}})

	drawMenu(screen, a)

	assert.Equal(t, "  Start  ", readText(screen, originX, originY+3, 9))
	assert.Equal(t, "> Quit <", readText(screen, originX, originY+5, 8))
}

func readText(s tcell.Screen, x, y, n int) string {
	runes := make([]rune, 0, n)
	for i := range n {
		r, _, _, _ := s.GetContent(x+i, y)
		runes = append(runes, r)
	}
	return string(runes)
}
