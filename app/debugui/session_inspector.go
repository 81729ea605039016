package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/game"
)

// SessionInspector shows the running session and offers buttons for actions.
// Clicked actions are queued until the host takes them for the next tick.
type SessionInspector struct {
	pending []game.Action
}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{}
}

func (si *SessionInspector) Render(a *app.App, _ float32) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Screen: %s", a.Screen()))
	imgui.Text(fmt.Sprintf("Games started: %d", a.Sessions()))

	session := a.Session()
	if session == nil {
		imgui.End()
		return
	}

	snap := session.Snapshot()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Fall speed: %s", snap.FallSpeed))

	switch snap.State {
	case game.GameOver:
		imgui.TextColored(imgui.NewVec4(1, 0.3, 0.3, 1), "GAME OVER")
	case game.LineClearAnimation:
		imgui.TextColored(imgui.NewVec4(1, 1, 0.4, 1), fmt.Sprintf("Clearing rows %v", snap.FlashRows))
	}

	if snap.Active && imgui.TreeNodeStr("Falling piece") {
		imgui.BulletText(fmt.Sprintf("Kind: %s", snap.Current.Kind))
		for _, b := range snap.Current.Blocks {
			imgui.BulletText(fmt.Sprintf("(%d, %d)", b.Col, b.Row))
		}
		imgui.TreePop()
	}
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next.Kind))

	imgui.Separator()
	if imgui.Button("Pause") {
		si.pending = append(si.pending, game.ActionPauseToggle)
	}
	imgui.SameLine()
	if imgui.Button("Hard drop") {
		si.pending = append(si.pending, game.ActionHardDrop)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		si.pending = append(si.pending, game.ActionRestart)
	}

	imgui.End()
}

// TakeActions returns and clears the actions queued by button clicks.
func (si *SessionInspector) TakeActions() []game.Action {
	actions := si.pending
	si.pending = nil
	return actions
}
