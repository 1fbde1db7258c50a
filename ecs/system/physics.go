package system

import (
	"github.com/milk9111/portalroom/ecs"
)

// PhysicsSystem integrates vertical free fall and keeps the player inside
// the floor margin.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p := &w.Player
	dt := w.Dt()
	if p.Falling {
		// A jump starts on the floor with upward velocity, so integrate on
		// either condition.
		if p.Position.Y() > 0 || p.VerticalVelocity > 0 {
			p.VerticalVelocity += *w.Spec().Player.Gravity * dt
			p.Position[1] += p.VerticalVelocity * dt
		}
		if p.Position.Y() <= 0 {
			p.Position[1] = 0
			p.VerticalVelocity = 0
			p.Falling = false
		}
	}

	p.Position = w.Room().Clamp(p.Position)
}
