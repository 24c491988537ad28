package game

import "github.com/plus3/blockfall/ecs"

// InputSystem applies queued player inputs. It runs in its own pipeline,
// once per input, outside the tick order.
type InputSystem struct {
	PieceRules
	Pending ecs.Query[pendingCommand]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	for cmd := range s.Pending.Values() {
		frame.Commands.Delete(cmd.EntityId)
		s.apply(frame.Commands, cmd.Command.Input)
	}
}

// apply drops inputs that the current state does not accept, and moves the
// playfield does not allow.
func (s *InputSystem) apply(commands *ecs.Commands, in Input) {
	status := s.Status.Get()
	switch in {
	case Quit:
		status.Quit = true
		s.emit(Event{Kind: EventQuit})
		return
	case PauseToggle:
		s.togglePause()
		return
	}

	if status.State != Moving {
		s.log().Debug("input ignored", "input", in.String(), "state", status.State.String())
		return
	}
	p, ok := s.Active.First()
	if !ok {
		return
	}

	switch in {
	case Rotate:
		if s.try(p, p.Pose.Piece.Rotated()) {
			s.emit(Event{Kind: EventRotated, Piece: p.Pose.Piece})
		}
	case Left:
		s.move(p, -1, 0)
	case Right:
		s.move(p, 1, 0)
	case SoftDrop:
		if !s.move(p, 0, 1) {
			s.setState(s.lockAndResolve(commands, p))
		}
	case HardDrop:
		s.hardDrop(commands, p)
	}
}

// ClearSystem collapses the rows found full on the previous lock, scores
// them, and spawns the next piece. It only acts on ticks that began in
// Clearing.
type ClearSystem struct {
	PieceRules
	Tick ecs.Singleton[TickInfo]
}

func (s *ClearSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Tick.Get().State != Clearing {
		return
	}
	s.setState(s.resolveClear(frame.Commands))
}

// GravitySystem moves the active piece down one row, locking it when it
// cannot descend. It only acts on ticks that began in Moving.
type GravitySystem struct {
	PieceRules
	Tick ecs.Singleton[TickInfo]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	if s.Tick.Get().State != Moving {
		return
	}
	if p, ok := s.Active.First(); ok {
		s.stepDown(frame.Commands, p)
	}
}
