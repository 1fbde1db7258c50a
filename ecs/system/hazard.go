package system

import (
	"github.com/milk9111/portalroom/ecs"
)

// HazardSystem resets the session when the player stands in a live kill
// zone. Gated zones (the door laser) are harmless once the button is down.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pos := w.Player.Position
	buttonOn := w.Puzzle.ButtonActivated
	for _, zone := range w.KillZones() {
		if !zone.Lethal(pos, buttonOn) {
			continue
		}
		w.Log().WithField("zone", zone.Name).WithField("position", pos).Info("player hit laser, resetting")
		w.Reset()
		w.Emit(ecs.EventReset, ecs.ResetEvent{Reason: zone.Name})
		return
	}
}
