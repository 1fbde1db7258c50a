package system

import (
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
)

// GoalSystem latches the win once the player reaches the goal region with
// the button down. An optional script can add further conditions but can
// never win without the button.
type GoalSystem struct {
	script *WinScript
	// announced is cleared when the player leaves the goal or the world
	// resets.
	announced bool
	resets    uint64
}

func NewGoalSystem(script *WinScript) *GoalSystem {
	return &GoalSystem{script: script}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil || w.Puzzle.Won {
		return
	}
	if r := w.Resets(); r != s.resets {
		s.resets = r
		s.announced = false
	}
	goal := w.Goal()
	if goal == nil || !goal.Contains(w.Player.Position) {
		s.announced = false
		return
	}
	if !w.Puzzle.ButtonActivated {
		if !s.announced {
			w.Log().Debug("goal reached with the door locked")
			s.announced = true
		}
		return
	}

	pos := w.Player.Position
	won, err := s.script.Eval(WinInput{
		InGoal:          true,
		ButtonActivated: true,
		Elapsed:         w.Elapsed(),
		X:               pos.X(),
		Y:               pos.Y(),
		Z:               pos.Z(),
		Falling:         w.Player.Falling,
		PaintedA:        w.Tiles().CountPainted(component.PaintedA),
		PaintedB:        w.Tiles().CountPainted(component.PaintedB),
	})
	if err != nil {
		w.Log().WithError(err).WithField("script", s.script.Name()).Warn("win script failed")
		return
	}
	if !won {
		return
	}

	w.Puzzle.Won = true
	w.Emit(ecs.EventWon, nil)
	w.Log().WithField("elapsed", w.Elapsed()).Info("level cleared")
}
