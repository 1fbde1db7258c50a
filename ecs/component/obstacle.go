package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/common"
)

// Box is an axis-aligned region, faces inclusive.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func (b Box) Contains(p mgl64.Vec3) bool {
	return common.PointInBox(p, b.Min, b.Max)
}

// ContainsExcept ignores one axis, for hits on an axis-aligned plane.
func (b Box) ContainsExcept(p mgl64.Vec3, axis int) bool {
	return common.PointInBoxExcept(p, b.Min, b.Max, axis)
}

// KillZone resets the session when the player stands inside Box but outside
// every hole. Gated zones are disarmed once the button latch is on.
type KillZone struct {
	Name  string
	Box   Box
	Holes []Box
	Gated bool
}

// Lethal reports whether p triggers the zone.
func (k KillZone) Lethal(p mgl64.Vec3, buttonOn bool) bool {
	if k.Gated && buttonOn {
		return false
	}
	if !k.Box.Contains(p) {
		return false
	}
	for _, h := range k.Holes {
		if h.Contains(p) {
			return false
		}
	}
	return true
}

// Barrier is a bounded plane that stops projectiles. Bounds and holes are
// tested on the two in-plane axes only.
type Barrier struct {
	Name   string
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Bounds Box
	Holes  []Box
	Gated  bool
}

// Hit returns the segment parameter where start->end strikes the solid part
// of the barrier.
func (b Barrier) Hit(start, end mgl64.Vec3) (float64, bool) {
	t, ok := common.SegmentPlaneIntersect(start, end, b.Point, b.Normal)
	if !ok {
		return 0, false
	}
	p := common.PointOnSegment(start, end, t)
	axis := common.DominantAxis(b.Normal)
	if !b.Bounds.ContainsExcept(p, axis) {
		return 0, false
	}
	for _, h := range b.Holes {
		if h.ContainsExcept(p, axis) {
			return 0, false
		}
	}
	return t, true
}

// Button is the floor pressure plate.
type Button struct {
	Center    mgl64.Vec3
	Radius    float64
	Height    float64
	Tolerance float64
}
