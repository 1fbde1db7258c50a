package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
)

// ButtonSystem latches the floor button when the player stands on it.
type ButtonSystem struct{}

func NewButtonSystem() *ButtonSystem { return &ButtonSystem{} }

func (s *ButtonSystem) Update(w *ecs.World) {
	if w == nil || w.Puzzle.ButtonActivated {
		return
	}
	b := w.Button()
	if b == nil || !onButton(*b, w.Player.Position.X(), w.Player.Position.Y(), w.Player.Position.Z()) {
		return
	}

	w.Puzzle.ButtonActivated = true
	w.Emit(ecs.EventButton, w.Puzzle.DoorColor())
	w.Log().WithField("door", w.Puzzle.DoorColor()).Info("button pressed")
}

func onButton(b component.Button, x, y, z float64) bool {
	center := cp.Vector{X: b.Center.X(), Y: b.Center.Z()}
	if center.Distance(cp.Vector{X: x, Y: z}) > b.Radius {
		return false
	}
	return y <= b.Height+b.Tolerance
}
