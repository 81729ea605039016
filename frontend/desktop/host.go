// Package desktop runs the App in an ebiten window, with an optional Dear ImGui
// debug overlay drawn through cimgui-go's ebiten backend.
package desktop

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/app/debugui"
	"github.com/plus3/blockfall/game"
)

const title = "Blockfall"

// Options configures the desktop host.
type Options struct {
	Config game.Config
	// Debug draws the ImGui overlay; F1 toggles it while running.
	Debug bool
}

// Host implements ebiten.Game around an App.
type Host struct {
	app *app.App

	imgui     *ebitenbackend.EbitenBackend
	overlay   *debugui.Overlay
	inspector *debugui.SessionInspector
	timer     *debugui.FrameTimer
}

// Run opens the window and blocks until the App is done or the window closes.
func Run(a *app.App, opts Options) error {
	w, h := screenSize(opts.Config)
	host := &Host{app: a}

	if opts.Debug {
		host.imgui = ebitenbackend.NewEbitenBackend()
		host.imgui.CreateWindow(title, w+480, h)
		imgui.CurrentIO().SetIniFilename("")

		host.inspector = debugui.NewSessionInspector()
		host.overlay = debugui.NewOverlay(host.inspector, debugui.NewPerformanceStats(120))
		host.timer = debugui.NewFrameTimer()
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(title)
	}

	ebiten.SetTPS(60)
	return ebiten.RunGame(host)
}

func (h *Host) Update() error {
	if h.imgui != nil {
		h.imgui.BeginFrame()
		defer h.imgui.EndFrame()
	}

	in := h.readInput()
	h.app.Update(time.Second/time.Duration(ebiten.TPS()), in)

	if h.overlay != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			h.overlay.Toggle()
		}
		h.overlay.Render(h.app, h.timer.GetDeltaTime())
	}

	if h.app.Done() {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) readInput() app.Input {
	if h.overlay != nil && h.overlay.Input().WantCaptureKeyboard {
		return app.Input{Game: h.inspector.TakeActions()}
	}

	in := readInput(h.app.Screen(), inpututil.KeyPressDuration)
	if h.inspector != nil {
		in.Game = append(in.Game, h.inspector.TakeActions()...)
	}
	return in
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch h.app.Screen() {
	case app.ScreenMenu:
		drawMenu(screen, h.app)
	case app.ScreenPlaying:
		if s := h.app.Session(); s != nil {
			drawSession(screen, s.Snapshot())
		}
	}

	if h.imgui != nil {
		h.imgui.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imgui != nil {
		h.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
