package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const MaxPitch = 89.0

// Player is the singleton pose of the first-person player. Yaw and Pitch
// are in degrees; Position is at the feet.
type Player struct {
	Position         mgl64.Vec3
	Yaw              float64
	Pitch            float64
	VerticalVelocity float64
	Falling          bool
}

// Forward is the unit facing vector on the floor plane.
func Forward(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(r), 0, -math.Cos(r)}
}

// LookDirection is the unit view vector for yaw and pitch in degrees.
func LookDirection(yaw, pitch float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	p := mgl64.DegToRad(pitch)
	return mgl64.Vec3{
		math.Sin(y) * math.Cos(p),
		math.Sin(p),
		-math.Cos(y) * math.Cos(p),
	}
}

func ClampPitch(pitch float64) float64 {
	return mgl64.Clamp(pitch, -MaxPitch, MaxPitch)
}
