package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/ecs/component"
	"gopkg.in/yaml.v3"
)

// Snapshot is a read-only copy of the session for presentation.
type Snapshot struct {
	Preset          string               `yaml:"preset"`
	Tick            uint64               `yaml:"tick"`
	Elapsed         float64              `yaml:"elapsed"`
	Player          PlayerView           `yaml:"player"`
	Look            mgl64.Vec3           `yaml:"look"`
	Tiles           []TileView           `yaml:"tiles"`
	Projectiles     []ProjectileView     `yaml:"projectiles"`
	ButtonActivated bool                 `yaml:"button_activated"`
	Door            component.DoorColor  `yaml:"door"`
	Won             bool                 `yaml:"won"`
	MarkerFired     [2]bool              `yaml:"marker_fired"`
	Room            component.Room       `yaml:"-"`
	Barriers        []component.Barrier  `yaml:"-"`
	KillZones       []component.KillZone `yaml:"-"`
	Button          *component.Button    `yaml:"-"`
	Goal            *component.Box       `yaml:"-"`
	DoorBox         *component.Box       `yaml:"-"`
}

type PlayerView struct {
	Position         mgl64.Vec3 `yaml:"position"`
	Yaw              float64    `yaml:"yaw"`
	Pitch            float64    `yaml:"pitch"`
	VerticalVelocity float64    `yaml:"vertical_velocity"`
	Falling          bool       `yaml:"falling"`
}

type TileView struct {
	Corners [4]mgl64.Vec3        `yaml:"corners,flow"`
	Paint   component.PaintState `yaml:"paint"`
	Wall    int                  `yaml:"wall"`
	Row     int                  `yaml:"row"`
	Col     int                  `yaml:"col"`
}

type ProjectileView struct {
	Position mgl64.Vec3       `yaml:"position,flow"`
	Marker   component.Marker `yaml:"marker"`
	Age      float64          `yaml:"age"`
}

// Snapshot copies the current state. Mutating the result never touches the
// world.
func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}

	tiles := w.tiles.All()
	tileViews := make([]TileView, 0, len(tiles))
	for _, t := range tiles {
		tileViews = append(tileViews, TileView{Corners: t.Corners, Paint: t.Paint, Wall: t.Wall, Row: t.Row, Col: t.Col})
	}

	shots := w.shots.All()
	shotViews := make([]ProjectileView, 0, len(shots))
	for _, p := range shots {
		shotViews = append(shotViews, ProjectileView{Position: p.Position, Marker: p.Marker, Age: p.Age})
	}

	s := Snapshot{
		Preset:  w.spec.Name,
		Tick:    w.ticks,
		Elapsed: w.elapsed,
		Player: PlayerView{
			Position:         w.Player.Position,
			Yaw:              w.Player.Yaw,
			Pitch:            w.Player.Pitch,
			VerticalVelocity: w.Player.VerticalVelocity,
			Falling:          w.Player.Falling,
		},
		Look:            component.LookDirection(w.Player.Yaw, w.Player.Pitch),
		Tiles:           tileViews,
		Projectiles:     shotViews,
		ButtonActivated: w.Puzzle.ButtonActivated,
		Door:            w.Puzzle.DoorColor(),
		Won:             w.Puzzle.Won,
		MarkerFired:     w.Puzzle.MarkerFired,
		Room:            w.room,
		Barriers:        make([]component.Barrier, 0, len(w.barriers)),
		KillZones:       make([]component.KillZone, 0, len(w.killZones)),
	}
	for _, b := range w.barriers {
		b.Holes = append([]component.Box(nil), b.Holes...)
		s.Barriers = append(s.Barriers, b)
	}
	for _, k := range w.killZones {
		k.Holes = append([]component.Box(nil), k.Holes...)
		s.KillZones = append(s.KillZones, k)
	}
	if b := w.Button(); b != nil {
		button := *b
		s.Button = &button
	}
	if g := w.Goal(); g != nil {
		goal := *g
		s.Goal = &goal
	}
	if d := w.Door(); d != nil {
		door := *d
		s.DoorBox = &door
	}
	return s
}

// YAML renders the serializable part of the snapshot.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
