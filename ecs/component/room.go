package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Room is the playable volume [0,Width] x [0,Height] x [0,Depth].
type Room struct {
	Width  float64
	Depth  float64
	Height float64
	Margin float64
	Spawn  mgl64.Vec3
}

// Floor is the walkable floor rectangle with X mapped to world x and Y to
// world z.
func (r Room) Floor() cp.BB {
	return cp.BB{L: r.Margin, B: r.Margin, R: r.Width - r.Margin, T: r.Depth - r.Margin}
}

// Clamp keeps p inside the floor rectangle. Height is left alone.
func (r Room) Clamp(p mgl64.Vec3) mgl64.Vec3 {
	bb := r.Floor()
	v := bb.ClampVect(&cp.Vector{X: p.X(), Y: p.Z()})
	return mgl64.Vec3{v.X, p.Y(), v.Y}
}

// Contains reports whether p is inside the room volume, faces inclusive.
func (r Room) Contains(p mgl64.Vec3) bool {
	return p.X() >= 0 && p.X() <= r.Width &&
		p.Y() >= 0 && p.Y() <= r.Height &&
		p.Z() >= 0 && p.Z() <= r.Depth
}
