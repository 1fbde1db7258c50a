package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/common"
)

// Tile is one rectangle of a subdivided wall. Corners run bottom-left,
// bottom-right, top-right, top-left and never change after construction.
type Tile struct {
	Corners [4]mgl64.Vec3
	Paint   PaintState

	Wall int
	Row  int
	Col  int
}

// Bounds returns the axis-aligned min/max of the four corners.
func (t Tile) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	return common.BoxOfPoints(t.Corners[:]...)
}

// Center is the middle of the tile's bounds.
func (t Tile) Center() mgl64.Vec3 {
	lo, hi := t.Bounds()
	return lo.Add(hi).Mul(0.5)
}

func (t Tile) Painted() bool {
	return t.Paint != Unpainted
}
