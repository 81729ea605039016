// Package debugui renders Dear ImGui windows over a running App: session state,
// scheduler timing and buttons that feed actions into the next tick.
//
// Render must be called between the ImGui backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/app"
)

// Window is a single ImGui window drawn every frame.
type Window interface {
	Render(a *app.App, deltaTime float32)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input. Hosts
// drop game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay draws a set of windows and records ImGui's input capture state.
type Overlay struct {
	windows []Window
	input   InputState
	visible bool
}

// NewOverlay returns a visible overlay drawing windows in order.
func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{
		windows: windows,
		visible: true,
	}
}

// Render updates the input state and draws every window.
func (o *Overlay) Render(a *app.App, deltaTime float32) {
	if !o.visible {
		o.input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	o.input = InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}

	for _, w := range o.windows {
		w.Render(a, deltaTime)
	}
}

// Input returns the capture state from the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool {
	return o.visible
}
