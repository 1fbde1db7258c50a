package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSegmentBoxIntersect(t *testing.T) {
	boxMin := mgl64.Vec3{0, 0, 0}
	boxMax := mgl64.Vec3{1, 1, 1}

	cases := []struct {
		name       string
		start, end mgl64.Vec3
		want       bool
	}{
		{"outside_constant_x", mgl64.Vec3{2, -1, -1}, mgl64.Vec3{2, 2, 2}, false},
		{"through_center", mgl64.Vec3{-1, 0.5, 0.5}, mgl64.Vec3{2, 0.5, 0.5}, true},
		{"diagonal_through_center", mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{2, 2, 2}, true},
		{"touches_face_at_t1", mgl64.Vec3{-1, 0.5, 0.5}, mgl64.Vec3{0, 0.5, 0.5}, true},
		{"stops_short", mgl64.Vec3{-1, 0.5, 0.5}, mgl64.Vec3{-0.01, 0.5, 0.5}, false},
		{"starts_inside", mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.6, 0.6, 0.6}, true},
		{"degenerate_point_inside", mgl64.Vec3{0.2, 0.2, 0.2}, mgl64.Vec3{0.2, 0.2, 0.2}, true},
		{"degenerate_point_outside", mgl64.Vec3{1.2, 0.2, 0.2}, mgl64.Vec3{1.2, 0.2, 0.2}, false},
		{"passes_beside", mgl64.Vec3{-1, 1.5, 0.5}, mgl64.Vec3{2, 1.5, 0.5}, false},
		{"reversed_direction", mgl64.Vec3{2, 0.5, 0.5}, mgl64.Vec3{-1, 0.5, 0.5}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SegmentBoxIntersect(c.start, c.end, boxMin, boxMax); got != c.want {
				t.Fatalf("SegmentBoxIntersect(%v, %v) = %v, want %v", c.start, c.end, got, c.want)
			}
		})
	}
}

func TestSegmentPlaneIntersect(t *testing.T) {
	cases := []struct {
		name       string
		start, end mgl64.Vec3
		point      mgl64.Vec3
		normal     mgl64.Vec3
		wantT      float64
		wantOK     bool
	}{
		{
			name:   "crosses_midway",
			start:  mgl64.Vec3{1, 1, 8},
			end:    mgl64.Vec3{1, 1, 9},
			point:  mgl64.Vec3{0, 0, 8.5},
			normal: mgl64.Vec3{0, 0, 1},
			wantT:  0.5,
			wantOK: true,
		},
		{
			name:   "parallel",
			start:  mgl64.Vec3{0, 0, 8},
			end:    mgl64.Vec3{5, 3, 8},
			point:  mgl64.Vec3{0, 0, 8.5},
			normal: mgl64.Vec3{0, 0, 1},
		},
		{
			name:   "parallel_in_plane",
			start:  mgl64.Vec3{0, 0, 8.5},
			end:    mgl64.Vec3{5, 0, 8.5},
			point:  mgl64.Vec3{0, 0, 8.5},
			normal: mgl64.Vec3{0, 0, 1},
		},
		{
			name:   "short_of_plane",
			start:  mgl64.Vec3{0, 0, 7},
			end:    mgl64.Vec3{0, 0, 8},
			point:  mgl64.Vec3{0, 0, 8.5},
			normal: mgl64.Vec3{0, 0, 1},
		},
		{
			name:   "behind_start",
			start:  mgl64.Vec3{0, 0, 9},
			end:    mgl64.Vec3{0, 0, 10},
			point:  mgl64.Vec3{0, 0, 8.5},
			normal: mgl64.Vec3{0, 0, 1},
		},
		{
			name:   "ends_on_plane",
			start:  mgl64.Vec3{10, 0, 0},
			end:    mgl64.Vec3{9, 0, 0},
			point:  mgl64.Vec3{9, 0, 0},
			normal: mgl64.Vec3{1, 0, 0},
			wantT:  1,
			wantOK: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := SegmentPlaneIntersect(c.start, c.end, c.point, c.normal)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if ok && math.Abs(got-c.wantT) > 1e-9 {
				t.Fatalf("t = %v, want %v", got, c.wantT)
			}
		})
	}
}

func TestBoxHelpers(t *testing.T) {
	lo, hi := BoxOfPoints(mgl64.Vec3{3, 0, 1}, mgl64.Vec3{1, 2, 1}, mgl64.Vec3{2, 1, 5})
	if lo != (mgl64.Vec3{1, 0, 1}) || hi != (mgl64.Vec3{3, 2, 5}) {
		t.Fatalf("BoxOfPoints = %v %v", lo, hi)
	}

	lo, hi = ExpandBox(lo, hi, 0.5)
	if lo != (mgl64.Vec3{0.5, -0.5, 0.5}) || hi != (mgl64.Vec3{3.5, 2.5, 5.5}) {
		t.Fatalf("ExpandBox = %v %v", lo, hi)
	}

	if !PointInBox(mgl64.Vec3{3.5, 0, 1}, lo, hi) {
		t.Fatalf("face point should be inside")
	}
	if PointInBox(mgl64.Vec3{3.6, 0, 1}, lo, hi) {
		t.Fatalf("point past face should be outside")
	}
	if !PointInBoxExcept(mgl64.Vec3{1, 1, 100}, lo, hi, 2) {
		t.Fatalf("skipped axis should be ignored")
	}
	if DominantAxis(mgl64.Vec3{0, -0.2, 0.9}) != 2 {
		t.Fatalf("DominantAxis picked wrong axis")
	}
}
