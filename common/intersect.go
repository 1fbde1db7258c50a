package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SegmentBoxIntersect reports whether the segment start->end touches the
// axis-aligned box [boxMin, boxMax]. Faces are inclusive.
func SegmentBoxIntersect(start, end, boxMin, boxMax mgl64.Vec3) bool {
	tmin := 0.0
	tmax := 1.0
	dir := end.Sub(start)

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < Epsilon {
			if start[i] < boxMin[i] || start[i] > boxMax[i] {
				return false
			}
			continue
		}

		inv := 1.0 / dir[i]
		t1 := (boxMin[i] - start[i]) * inv
		t2 := (boxMax[i] - start[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}

	return tmin <= tmax && tmin <= 1.0
}

// SegmentPlaneIntersect returns the parameter t in [0,1] where the segment
// start->end crosses the infinite plane through planePoint with the given
// normal. ok is false for (near) parallel segments and for crossings outside
// the segment.
func SegmentPlaneIntersect(start, end, planePoint, planeNormal mgl64.Vec3) (t float64, ok bool) {
	dir := end.Sub(start)
	denom := planeNormal.Dot(dir)
	if math.Abs(denom) < Epsilon {
		return 0, false
	}
	t = planeNormal.Dot(planePoint.Sub(start)) / denom
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// PointOnSegment returns start + t*(end-start).
func PointOnSegment(start, end mgl64.Vec3, t float64) mgl64.Vec3 {
	return start.Add(end.Sub(start).Mul(t))
}

// PointInBox reports whether p lies inside [boxMin, boxMax], faces inclusive.
func PointInBox(p, boxMin, boxMax mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < boxMin[i] || p[i] > boxMax[i] {
			return false
		}
	}
	return true
}

// PointInBoxExcept is PointInBox ignoring one axis. Used for hit points on
// an axis-aligned plane, where the coordinate along the normal is noise.
func PointInBoxExcept(p, boxMin, boxMax mgl64.Vec3, skipAxis int) bool {
	for i := 0; i < 3; i++ {
		if i == skipAxis {
			continue
		}
		if p[i] < boxMin[i] || p[i] > boxMax[i] {
			return false
		}
	}
	return true
}

// BoxOfPoints returns the axis-aligned bounds of pts.
func BoxOfPoints(pts ...mgl64.Vec3) (boxMin, boxMax mgl64.Vec3) {
	if len(pts) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	boxMin = pts[0]
	boxMax = pts[0]
	for _, p := range pts[1:] {
		for i := 0; i < 3; i++ {
			boxMin[i] = math.Min(boxMin[i], p[i])
			boxMax[i] = math.Max(boxMax[i], p[i])
		}
	}
	return boxMin, boxMax
}

// ExpandBox grows a box by margin on every side.
func ExpandBox(boxMin, boxMax mgl64.Vec3, margin float64) (mgl64.Vec3, mgl64.Vec3) {
	m := mgl64.Vec3{margin, margin, margin}
	return boxMin.Sub(m), boxMax.Add(m)
}

// DominantAxis returns the index of the largest absolute component of n.
func DominantAxis(n mgl64.Vec3) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(n[i]) > math.Abs(n[axis]) {
			axis = i
		}
	}
	return axis
}
