package component

import "github.com/go-gl/mathgl/mgl64"

// Projectile is a live paint shot. Velocity is fixed at spawn.
type Projectile struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Age      float64
	Marker   Marker
}
