package ecs

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/portalroom/common"
	"github.com/milk9111/portalroom/ecs/component"
)

var ErrInvalidWall = errors.New("ecs: invalid wall")

// Cell addresses one tile of a wall grid.
type Cell struct {
	Row int
	Col int
}

// BuildWall subdivides the wall from start to end (floor-plane x,z) into
// rows x cols tiles, skipping gap cells. Tiles come out row-major from the
// floor up, starting at start.
func BuildWall(start, end cp.Vector, height float64, rows, cols int, gaps []Cell) ([]component.Tile, error) {
	if start.Distance(end) < common.Epsilon {
		return nil, fmt.Errorf("ecs: wall %v-%v has zero length: %w", start, end, ErrInvalidWall)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("ecs: wall %v-%v has %dx%d cells: %w", start, end, rows, cols, ErrInvalidWall)
	}
	if height <= 0 {
		return nil, fmt.Errorf("ecs: wall %v-%v has height %g: %w", start, end, height, ErrInvalidWall)
	}

	skip := make(map[Cell]struct{}, len(gaps))
	for _, g := range gaps {
		skip[g] = struct{}{}
	}

	step := end.Sub(start).Mult(1 / float64(cols))
	dy := height / float64(rows)
	tiles := make([]component.Tile, 0, rows*cols-len(skip))
	for row := 0; row < rows; row++ {
		bottom := float64(row) * dy
		top := float64(row+1) * dy
		for col := 0; col < cols; col++ {
			if _, ok := skip[Cell{Row: row, Col: col}]; ok {
				continue
			}
			left := start.Add(step.Mult(float64(col)))
			right := start.Add(step.Mult(float64(col + 1)))
			tiles = append(tiles, component.Tile{
				Corners: [4]mgl64.Vec3{
					{left.X, bottom, left.Y},
					{right.X, bottom, right.Y},
					{right.X, top, right.Y},
					{left.X, top, left.Y},
				},
				Row: row,
				Col: col,
			})
		}
	}
	return tiles, nil
}

// TileRegistry owns every wall tile of a session. Registration order is the
// collision and teleport scan order.
type TileRegistry struct {
	tiles []component.Tile
}

func NewTileRegistry() *TileRegistry {
	return &TileRegistry{}
}

func (r *TileRegistry) Add(tiles ...component.Tile) {
	if r == nil {
		return
	}
	r.tiles = append(r.tiles, tiles...)
}

func (r *TileRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tiles)
}

func (r *TileRegistry) At(i int) (component.Tile, bool) {
	if r == nil || i < 0 || i >= len(r.tiles) {
		return component.Tile{}, false
	}
	return r.tiles[i], true
}

// All returns a copy of the tiles.
func (r *TileRegistry) All() []component.Tile {
	if r == nil {
		return nil
	}
	return append([]component.Tile(nil), r.tiles...)
}

// Paint marks tile i with m's paint. Repainting with the same marker is a
// no-op. Reports whether the index was valid.
func (r *TileRegistry) Paint(i int, m component.Marker) bool {
	if r == nil || i < 0 || i >= len(r.tiles) {
		return false
	}
	r.tiles[i].Paint = m.Paint()
	return true
}

func (r *TileRegistry) ResetAll() {
	if r == nil {
		return
	}
	for i := range r.tiles {
		r.tiles[i].Paint = component.Unpainted
	}
}

func (r *TileRegistry) BoundingBox(i int) (mgl64.Vec3, mgl64.Vec3) {
	if r == nil || i < 0 || i >= len(r.tiles) {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	return r.tiles[i].Bounds()
}

// ExpandedBox is BoundingBox grown by margin on every side.
func (r *TileRegistry) ExpandedBox(i int, margin float64) (mgl64.Vec3, mgl64.Vec3) {
	lo, hi := r.BoundingBox(i)
	return common.ExpandBox(lo, hi, margin)
}

// FindPainted returns the first tile in registry order bearing paint.
func (r *TileRegistry) FindPainted(paint component.PaintState) (int, bool) {
	if r == nil {
		return -1, false
	}
	for i, t := range r.tiles {
		if t.Paint == paint {
			return i, true
		}
	}
	return -1, false
}

// CountPainted returns how many tiles bear paint.
func (r *TileRegistry) CountPainted(paint component.PaintState) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, t := range r.tiles {
		if t.Paint == paint {
			n++
		}
	}
	return n
}
