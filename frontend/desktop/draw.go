package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/game"
)

const (
	cellSize   = 30
	panelWidth = 180
	// debug text glyphs are 6x16 pixels
	glyphWidth = 6
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	boardColor      = color.RGBA{40, 40, 48, 255}
	gridLineColor   = color.RGBA{60, 60, 70, 255}
	flashColor      = color.RGBA{255, 255, 255, 255}
	bannerColor     = color.RGBA{0, 0, 0, 180}
	highlightColor  = color.RGBA{90, 90, 140, 255}
	buttonColor     = color.RGBA{50, 50, 70, 255}
)

// screenSize returns the window size for a board of the given dimensions.
func screenSize(cfg game.Config) (int, int) {
	return cfg.Columns*cellSize + panelWidth, cfg.Rows*cellSize
}

func drawMenu(screen *ebiten.Image, a *app.App) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	drawCentered(screen, "B L O C K F A L L", w, int(h/6))

	items, cursor := a.Menu()
	for i, item := range items {
		y := h/2 + float32(i)*70 - 25
		c := buttonColor
		if i == cursor {
			c = highlightColor
		}
		vector.DrawFilledRect(screen, w/2-100, y, 200, 50, c, false)
		drawCentered(screen, item.Label, w, int(y)+17)
	}

	drawCentered(screen, "Up/Down to choose, Enter to confirm", w, int(h)-40)
}

func drawSession(screen *ebiten.Image, snap game.Snapshot) {
	boardW := float32(snap.Columns * cellSize)
	boardH := float32(snap.Rows * cellSize)
	vector.DrawFilledRect(screen, 0, 0, boardW, boardH, boardColor, false)

	for row := range snap.Rows {
		for col := range snap.Columns {
			cell := snap.Cells[row][col]
			if cell.Filled() {
				drawCell(screen, 0, 0, col, row, cell.Kind().Color())
			} else {
				vector.StrokeRect(screen, float32(col*cellSize), float32(row*cellSize), cellSize, cellSize, 1, gridLineColor, false)
			}
		}
		if snap.FlashOn && snap.Flashing(row) {
			vector.DrawFilledRect(screen, 0, float32(row*cellSize), boardW, cellSize, flashColor, false)
		}
	}

	if snap.Active {
		c := snap.Current.Color
		ghost := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 90}
		for _, p := range snap.Ghost {
			if p.Row >= 0 {
				vector.StrokeRect(screen, float32(p.Col*cellSize)+2, float32(p.Row*cellSize)+2, cellSize-4, cellSize-4, 2, ghost, false)
			}
		}
		for _, p := range snap.Current.Blocks {
			if p.Row >= 0 {
				drawCell(screen, 0, 0, p.Col, p.Row, snap.Current.Color)
			}
		}
	}

	drawPanel(screen, snap, int(boardW))

	switch snap.State {
	case game.Paused:
		drawBanner(screen, boardW, boardH, "PAUSED", "P to resume")
	case game.GameOver:
		drawBanner(screen, boardW, boardH, "GAME OVER", "R to restart, Esc for menu")
	}
}

func drawPanel(screen *ebiten.Image, snap game.Snapshot, x int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", snap.Score), x+16, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", snap.Lines), x+16, 36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPEED  %dms", snap.FallSpeed.Milliseconds()), x+16, 56)

	ebitenutil.DebugPrintAt(screen, "NEXT", x+16, 96)
	for _, p := range snap.Next.Blocks {
		drawCell(screen, x+16, 120, p.Col, p.Row, snap.Next.Color)
	}

	help := []string{
		"<- ->  move",
		"down   soft drop",
		"up     rotate",
		"space  hard drop",
		"P      pause",
		"R      restart",
		"Esc    menu",
		"Q      quit",
	}
	for i, line := range help {
		ebitenutil.DebugPrintAt(screen, line, x+16, 260+i*18)
	}
}

func drawCell(screen *ebiten.Image, originX, originY, col, row int, c color.RGBA) {
	x := float32(originX + col*cellSize)
	y := float32(originY + row*cellSize)
	vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, c, false)
}

func drawBanner(screen *ebiten.Image, w, h float32, title, hint string) {
	vector.DrawFilledRect(screen, 0, h/2-40, w, 80, bannerColor, false)
	drawCentered(screen, title, w, int(h/2)-20)
	drawCentered(screen, hint, w, int(h/2)+4)
}

func drawCentered(screen *ebiten.Image, s string, width float32, y int) {
	x := int(width)/2 - len(s)*glyphWidth/2
	ebitenutil.DebugPrintAt(screen, s, x, y)
}
