package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/game"
)

const (
	// each cell is two terminal columns wide so blocks look square
	cellWidth = 2
	originX   = 2
	originY   = 1
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	flashStyle  = tcell.StyleDefault.Background(tcell.ColorWhite)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawMenu(s tcell.Screen, a *app.App) {
	drawText(s, originX, originY, textStyle, "B L O C K F A L L")

	items, cursor := a.Menu()
	for i, item := range items {
		style := textStyle
		label := "  " + item.Label + "  "
		if i == cursor {
			style = cursorStyle
			label = "> " + item.Label + " <"
		}
		drawText(s, originX, originY+3+i*2, style, label)
	}

	drawText(s, originX, originY+4+len(items)*2, dimStyle, "arrows or j/k to choose, enter to confirm")
}

func drawSession(s tcell.Screen, snap game.Snapshot) {
	right := originX + snap.Columns*cellWidth
	for row := -1; row <= snap.Rows; row++ {
		s.SetContent(originX-1, originY+row, '│', nil, borderStyle)
		s.SetContent(right, originY+row, '│', nil, borderStyle)
	}
	for x := originX - 1; x <= right; x++ {
		s.SetContent(x, originY+snap.Rows, '─', nil, borderStyle)
	}
	s.SetContent(originX-1, originY+snap.Rows, '└', nil, borderStyle)
	s.SetContent(right, originY+snap.Rows, '┘', nil, borderStyle)

	for row := range snap.Rows {
		flashing := snap.FlashOn && snap.Flashing(row)
		for col := range snap.Columns {
			cell := snap.Cells[row][col]
			switch {
			case flashing:
				putCell(s, col, row, ' ', flashStyle)
			case cell.Filled():
				putCell(s, col, row, ' ', tcell.StyleDefault.Background(rgb(cell.Kind().Color())))
			default:
				putCell(s, col, row, '·', dimStyle)
			}
		}
	}

	if snap.Active {
		ghost := tcell.StyleDefault.Foreground(rgb(snap.Current.Color))
		for _, p := range snap.Ghost {
			if p.Row >= 0 {
				s.SetContent(originX+p.Col*cellWidth, originY+p.Row, '[', nil, ghost)
				s.SetContent(originX+p.Col*cellWidth+1, originY+p.Row, ']', nil, ghost)
			}
		}
		for _, p := range snap.Current.Blocks {
			if p.Row >= 0 {
				putCell(s, p.Col, p.Row, ' ', tcell.StyleDefault.Background(rgb(snap.Current.Color)))
			}
		}
	}

	panel := right + 3
	drawText(s, panel, originY, textStyle, fmt.Sprintf("SCORE  %d", snap.Score))
	drawText(s, panel, originY+1, textStyle, fmt.Sprintf("LINES  %d", snap.Lines))
	drawText(s, panel, originY+2, textStyle, fmt.Sprintf("SPEED  %dms", snap.FallSpeed.Milliseconds()))

	drawText(s, panel, originY+4, textStyle, "NEXT")
	next := tcell.StyleDefault.Background(rgb(snap.Next.Color))
	for _, p := range snap.Next.Blocks {
		x := panel + p.Col*cellWidth
		y := originY + 5 + p.Row
		s.SetContent(x, y, ' ', nil, next)
		s.SetContent(x+1, y, ' ', nil, next)
	}

	switch snap.State {
	case game.Paused:
		drawText(s, panel, originY+10, cursorStyle, " PAUSED ")
		drawText(s, panel, originY+11, dimStyle, "p to resume")
	case game.GameOver:
		drawText(s, panel, originY+10, cursorStyle, " GAME OVER ")
		drawText(s, panel, originY+11, dimStyle, "r restart, esc menu")
	}

	help := []string{"←→ move  ↓ drop", "↑ rotate  space slam", "p pause  q quit"}
	for i, line := range help {
		drawText(s, panel, originY+snap.Rows-len(help)+i, dimStyle, line)
	}
}

func putCell(s tcell.Screen, col, row int, r rune, style tcell.Style) {
	x := originX + col*cellWidth
	s.SetContent(x, originY+row, r, nil, style)
	s.SetContent(x+1, originY+row, ' ', nil, style)
}

// draw renders the current screen of a.
func draw(s tcell.Screen, a *app.App) {
	s.Clear()
	switch a.Screen() {
	case app.ScreenMenu:
		drawMenu(s, a)
	case app.ScreenPlaying:
		if session := a.Session(); session != nil {
			drawSession(s, session.Snapshot())
		}
	}
	s.Show()
}
