package game

// InputSystem applies the tick's action batch. Rejected moves and rotations are
// dropped silently.
type InputSystem struct{}

func (i *InputSystem) Execute(frame *UpdateFrame) {
	s := frame.Session

	for _, action := range frame.Actions {
		switch action {
		case ActionQuitToMenu:
			s.exit = ExitToMenu
		case ActionQuitApplication:
			s.exit = ExitApplication
		case ActionPauseToggle:
			switch s.state {
			case Playing:
				s.state = Paused
				frame.Commands.Notify(EventPaused)
			case Paused:
				s.state = Playing
				frame.Commands.Notify(EventResumed)
			}
		case ActionRestart:
			if s.state == GameOver {
				s.reset(frame.Commands)
			}
		default:
			if s.state == Playing {
				steer(s, action)
			}
		}
	}

	frame.State = s.state
}

func steer(s *Session, action Action) {
	switch action {
	case ActionMoveLeft:
		s.shift(-1, 0)
	case ActionMoveRight:
		s.shift(1, 0)
	case ActionSoftDrop:
		s.shift(0, 1)
	case ActionRotateCW:
		prev := s.current.Rotate()
		if !s.grid.IsValid(s.current, 0, 0) {
			s.current.RotateBack(prev)
		}
	case ActionHardDrop:
		for s.grid.IsValid(s.current, 0, 1) {
			s.current.Move(0, 1)
		}
		// The lock itself happens on the gravity step.
		s.fallTimer = s.fallSpeed
	}
}

// LineClearSystem counts down the flash of completed rows, then removes them,
// scores them and spawns the next piece.
type LineClearSystem struct {
	RowsCleared int
}

func (l *LineClearSystem) Execute(frame *UpdateFrame) {
	if frame.State != LineClearAnimation {
		return
	}

	s := frame.Session
	s.anim.Remaining -= frame.DeltaTime
	if s.anim.Remaining > 0 {
		return
	}

	rows := s.anim.Rows
	s.grid.ClearRows(rows)
	s.score += len(rows) * s.cfg.PointsPerRow
	s.lines += len(rows)
	s.fallSpeed = s.cfg.FallSpeedFor(s.score)
	s.anim = Animation{}
	s.state = Playing
	l.RowsCleared += len(rows)

	s.advance(frame.Commands)
}

// GravitySystem drives the auto-fall timer and locks the piece once it can no
// longer fall.
type GravitySystem struct {
	Locks int
}

func (g *GravitySystem) Execute(frame *UpdateFrame) {
	if frame.State != Playing {
		return
	}

	s := frame.Session
	s.fallTimer += frame.DeltaTime
	if s.fallTimer < s.fallSpeed {
		return
	}
	s.fallTimer = 0

	if s.grid.IsValid(s.current, 0, 1) {
		s.current.Move(0, 1)
		return
	}

	s.grid.Lock(s.current)
	g.Locks++
	frame.Commands.Notify(EventPieceLocked)

	if rows := s.grid.CompleteRows(); len(rows) > 0 {
		s.anim = Animation{Rows: rows, Remaining: s.cfg.ClearDuration}
		s.state = LineClearAnimation
		frame.Commands.Notify(EventRowsCleared)
		return
	}

	s.advance(frame.Commands)
}
