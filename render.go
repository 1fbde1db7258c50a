package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/portalroom/common"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
	"github.com/milk9111/portalroom/prefabs"
	"golang.org/x/image/colornames"
)

const (
	mapPadding = 48.0
	hudWidth   = 360.0
	// rowGap is the screen distance between the rows of one wall, drawn
	// outward from the room.
	rowGap      = 6.0
	tileStroke  = 4.0
	playerSize  = 8.0
	facingReach = 28.0
)

type palette struct {
	background color.Color
	floor      color.Color
	tile       color.Color
	markers    [2]color.Color
	laser      color.Color
	killZone   color.Color
	button     color.Color
	buttonOn   color.Color
	doorRed    color.Color
	doorGreen  color.Color
	goal       color.Color
	player     color.Color
}

func newPalette(spec prefabs.PaletteSpec) palette {
	return palette{
		background: color.RGBA{R: 18, G: 22, B: 30, A: 255},
		floor:      colornames.Darkslategray,
		tile:       spec.Tile.Or(colornames.Gray),
		markers: [2]color.Color{
			spec.MarkerA.Or(colornames.Royalblue),
			spec.MarkerB.Or(colornames.Gold),
		},
		laser:     spec.Laser.Or(color.RGBA{R: 255, A: 200}),
		killZone:  color.RGBA{R: 255, A: 48},
		button:    spec.Button.Or(colornames.Firebrick),
		buttonOn:  colornames.Limegreen,
		doorRed:   spec.DoorRed.Or(colornames.Red),
		doorGreen: spec.DoorGreen.Or(colornames.Limegreen),
		goal:      colornames.Lightgrey,
		player:    colornames.Crimson,
	}
}

// Renderer draws a top-down map of a snapshot: x runs right, z runs down.
type Renderer struct {
	palette palette
	debug   bool

	origin cp.Vector
	scale  float64
}

func NewRenderer(spec *prefabs.RoomSpec, debug bool) *Renderer {
	r := &Renderer{debug: debug}
	if spec != nil {
		r.palette = newPalette(spec.Palette)
	} else {
		r.palette = newPalette(prefabs.PaletteSpec{})
	}
	return r
}

func (r *Renderer) fit(room component.Room) {
	availW := common.BaseWidth - hudWidth - 2*mapPadding
	availH := common.BaseHeight - 2*mapPadding
	r.scale = min(availW/room.Width, availH/room.Depth)
	r.origin = cp.Vector{
		X: hudWidth + mapPadding + (availW-room.Width*r.scale)/2,
		Y: mapPadding + (availH-room.Depth*r.scale)/2,
	}
}

func (r *Renderer) project(p mgl64.Vec3) cp.Vector {
	return r.origin.Add(cp.Vector{X: p.X(), Y: p.Z()}.Mult(r.scale))
}

func (r *Renderer) Draw(screen *ebiten.Image, snap ecs.Snapshot) {
	if r == nil || screen == nil {
		return
	}

	screen.Fill(r.palette.background)
	r.fit(snap.Room)

	r.drawFloor(screen, snap.Room)
	if r.debug {
		r.drawKillZones(screen, snap)
	}
	r.drawTiles(screen, snap)
	r.drawButton(screen, snap)
	r.drawDoor(screen, snap)
	r.drawBarriers(screen, snap)
	r.drawProjectiles(screen, snap)
	r.drawPlayer(screen, snap)
	r.drawHUD(screen, snap)
}

func (r *Renderer) fillBox(screen *ebiten.Image, minX, minZ, maxX, maxZ float64, clr color.Color) {
	a := r.project(mgl64.Vec3{minX, 0, minZ})
	b := r.project(mgl64.Vec3{maxX, 0, maxZ})
	vector.FillRect(screen, float32(a.X), float32(a.Y), float32(b.X-a.X), float32(b.Y-a.Y), clr, false)
}

func (r *Renderer) strokeBox(screen *ebiten.Image, minX, minZ, maxX, maxZ float64, clr color.Color) {
	a := r.project(mgl64.Vec3{minX, 0, minZ})
	b := r.project(mgl64.Vec3{maxX, 0, maxZ})
	vector.StrokeRect(screen, float32(a.X), float32(a.Y), float32(b.X-a.X), float32(b.Y-a.Y), 1.0, clr, false)
}

func (r *Renderer) line(screen *ebiten.Image, a, b cp.Vector, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

func (r *Renderer) drawFloor(screen *ebiten.Image, room component.Room) {
	r.fillBox(screen, 0, 0, room.Width, room.Depth, r.palette.floor)
	floor := room.Floor()
	r.strokeBox(screen, floor.L, floor.B, floor.R, floor.T, colornames.Dimgray)
}

func (r *Renderer) drawKillZones(screen *ebiten.Image, snap ecs.Snapshot) {
	for _, k := range snap.KillZones {
		if k.Gated && snap.ButtonActivated {
			continue
		}
		r.fillBox(screen, k.Box.Min.X(), k.Box.Min.Z(), k.Box.Max.X(), k.Box.Max.Z(), r.palette.killZone)
		r.strokeBox(screen, k.Box.Min.X(), k.Box.Min.Z(), k.Box.Max.X(), k.Box.Max.Z(), r.palette.laser)
	}
}

// drawTiles draws each tile as a segment along its wall, one band per row.
func (r *Renderer) drawTiles(screen *ebiten.Image, snap ecs.Snapshot) {
	center := cp.Vector{X: snap.Room.Width / 2, Y: snap.Room.Depth / 2}
	for _, t := range snap.Tiles {
		a := cp.Vector{X: t.Corners[0].X(), Y: t.Corners[0].Z()}
		b := cp.Vector{X: t.Corners[1].X(), Y: t.Corners[1].Z()}

		out := b.Sub(a).Perp().Normalize()
		if a.Lerp(b, 0.5).Sub(center).Dot(out) < 0 {
			out = out.Neg()
		}
		shift := out.Mult(float64(t.Row) * rowGap)

		sa := r.project(t.Corners[0]).Add(shift)
		sb := r.project(t.Corners[1]).Add(shift)

		clr := r.palette.tile
		if m, ok := t.Paint.Marker(); ok {
			clr = r.palette.markers[m]
		}
		// Shrink each segment so neighbouring tiles stay distinct.
		inset := sb.Sub(sa).Mult(0.06)
		r.line(screen, sa.Add(inset), sb.Sub(inset), tileStroke, clr)
	}
}

func (r *Renderer) drawButton(screen *ebiten.Image, snap ecs.Snapshot) {
	if snap.Button == nil {
		return
	}
	clr := r.palette.button
	if snap.ButtonActivated {
		clr = r.palette.buttonOn
	}
	c := r.project(snap.Button.Center)
	vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(snap.Button.Radius*r.scale), clr, true)
}

func (r *Renderer) drawDoor(screen *ebiten.Image, snap ecs.Snapshot) {
	if snap.Goal != nil && r.debug {
		g := snap.Goal
		r.strokeBox(screen, g.Min.X(), g.Min.Z(), g.Max.X(), g.Max.Z(), r.palette.goal)
	}
	if snap.DoorBox == nil {
		return
	}
	clr := r.palette.doorRed
	if snap.Door == component.DoorGreen {
		clr = r.palette.doorGreen
	}
	d := snap.DoorBox
	r.line(screen, r.project(d.Min), r.project(d.Max), tileStroke+2, clr)
}

func (r *Renderer) drawBarriers(screen *ebiten.Image, snap ecs.Snapshot) {
	for _, b := range snap.Barriers {
		if b.Gated && snap.ButtonActivated {
			continue
		}
		r.line(screen, r.project(b.Bounds.Min), r.project(b.Bounds.Max), 2, r.palette.laser)
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, snap ecs.Snapshot) {
	for _, p := range snap.Projectiles {
		c := r.project(p.Position)
		vector.FillCircle(screen, float32(c.X), float32(c.Y), 4, r.palette.markers[p.Marker], true)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, snap ecs.Snapshot) {
	pos := r.project(snap.Player.Position)
	f := component.Forward(snap.Player.Yaw)
	tip := pos.Add(cp.Vector{X: f.X(), Y: f.Z()}.Mult(facingReach))

	r.line(screen, pos, tip, 2, colornames.White)
	size := float32(playerSize)
	if snap.Player.Falling {
		// Airborne players are drawn larger, scaled by height.
		size += float32(snap.Player.Position.Y())
	}
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y), size, r.palette.player, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap ecs.Snapshot) {
	p := snap.Player
	msg := fmt.Sprintf(
		"preset: %s\ntick: %d  t=%.2fs\nTPS: %.1f  FPS: %.1f\n\npos: %.2f %.2f %.2f\nyaw: %.1f  pitch: %.1f\nfalling: %v  vy: %.2f\n\nbutton: %v\ndoor: %s\nfired: A=%v B=%v\npainted: A=%d B=%d\nshots: %d",
		snap.Preset, snap.Tick, snap.Elapsed,
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		p.Position.X(), p.Position.Y(), p.Position.Z(),
		p.Yaw, p.Pitch,
		p.Falling, p.VerticalVelocity,
		snap.ButtonActivated,
		snap.Door,
		snap.MarkerFired[component.MarkerA], snap.MarkerFired[component.MarkerB],
		countPaint(snap, component.PaintedA), countPaint(snap, component.PaintedB),
		len(snap.Projectiles),
	)
	ebitenutil.DebugPrintAt(screen, msg, 12, 12)
	ebitenutil.DebugPrintAt(screen, "WASD move  arrows/mouse look\nLMB/RMB fire  Space jump\nR reset  P clear portals\nEsc pause", 12, common.BaseHeight-80)
}

func countPaint(snap ecs.Snapshot, paint component.PaintState) int {
	n := 0
	for _, t := range snap.Tiles {
		if t.Paint == paint {
			n++
		}
	}
	return n
}
