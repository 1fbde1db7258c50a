package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
)

// groundEpsilon is how close to the floor the player must be to jump.
const groundEpsilon = 0.01

// PlayerControllerSystem applies the intents queued since the last tick, in
// arrival order.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, in := range w.DrainIntents() {
		switch in := in.(type) {
		case component.IntentMove:
			movePlayer(w, in.Direction)
		case component.IntentLook:
			w.Player.Yaw += in.DYaw
			w.Player.Pitch = component.ClampPitch(w.Player.Pitch + in.DPitch)
		case component.IntentFire:
			SpawnProjectile(w, in.Marker)
		case component.IntentJump:
			jump(w)
		case component.IntentReset:
			w.Reset()
			w.Emit(ecs.EventReset, ecs.ResetEvent{Reason: "input"})
			w.Log().Info("session reset")
		case component.IntentClearPortals:
			w.ResetPortals()
			w.Emit(ecs.EventCleared, nil)
			w.Log().Debug("portals cleared")
		}
	}

	w.Player.Position = w.Room().Clamp(w.Player.Position)
}

// floorDirection maps a move intent onto the floor plane (x, z) relative to
// the facing yaw.
func floorDirection(yaw float64, dir component.MoveDirection) cp.Vector {
	f := component.Forward(yaw)
	forward := cp.Vector{X: f.X(), Y: f.Z()}
	switch dir {
	case component.MoveBack:
		return forward.Neg()
	case component.MoveLeft:
		return forward.ReversePerp()
	case component.MoveRight:
		return forward.Perp()
	default:
		return forward
	}
}

func movePlayer(w *ecs.World, dir component.MoveDirection) {
	step := w.Spec().Player.MoveSpeed * w.Dt()
	d := floorDirection(w.Player.Yaw, dir).Mult(step)
	w.Player.Position = w.Player.Position.Add(mgl64.Vec3{d.X, 0, d.Y})
}

func jump(w *ecs.World) {
	v := w.Spec().Player.JumpVelocity
	if v <= 0 {
		return
	}
	p := &w.Player
	if p.Falling || p.Position.Y() > groundEpsilon {
		return
	}
	p.VerticalVelocity = v
	p.Falling = true
}
