package ecs

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/portalroom/common"
	"github.com/milk9111/portalroom/ecs/component"
	"github.com/milk9111/portalroom/prefabs"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRoom = errors.New("ecs: invalid room")
	ErrNilPreset   = errors.New("ecs: preset is nil")
)

// Option configures a World at construction.
type Option func(*World)

// WithLogger routes world and system logs through log.
func WithLogger(log *logrus.Entry) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithSystems appends systems to the tick order.
func WithSystems(systems ...System) Option {
	return func(w *World) {
		for _, s := range systems {
			w.AddSystem(s)
		}
	}
}

// World is the single session object: it owns the tiles, projectiles,
// player and puzzle latches of one room, and the ordered systems that
// advance them.
type World struct {
	// Player and Puzzle are the singleton records mutated by systems.
	Player component.Player
	Puzzle component.PuzzleState

	spec      prefabs.RoomSpec
	room      component.Room
	tiles     *TileRegistry
	shots     *ProjectileSet
	barriers  []component.Barrier
	killZones []component.KillZone
	button    *component.Button
	goal      *component.Box
	door      *component.Box

	scheduler *Scheduler
	intents   []component.Intent
	events    EventQueue
	last      []Event

	dt      float64
	elapsed float64
	ticks   uint64
	resets  uint64

	log *logrus.Entry
}

// NewWorld validates preset and builds the room it describes. The world
// starts in its initial state with no systems unless WithSystems is given.
func NewWorld(preset *prefabs.RoomSpec, opts ...Option) (*World, error) {
	if preset == nil {
		return nil, ErrNilPreset
	}
	spec := preset.Normalized()

	room := component.Room{
		Width:  spec.Room.Width,
		Depth:  spec.Room.Depth,
		Height: spec.Room.Height,
		Margin: *spec.Room.Margin,
		Spawn:  spec.Room.Spawn,
	}
	if err := validateRoom(room); err != nil {
		return nil, err
	}

	w := &World{
		spec:      spec,
		room:      room,
		tiles:     NewTileRegistry(),
		shots:     NewProjectileSet(),
		scheduler: NewScheduler(),
		log:       logrus.NewEntry(logrus.StandardLogger()).WithField("preset", spec.Name),
	}

	for i, wall := range spec.Walls {
		gaps := make([]Cell, 0, len(wall.Gaps))
		for _, g := range wall.Gaps {
			gaps = append(gaps, Cell{Row: g.Row, Col: g.Col})
		}
		tiles, err := BuildWall(
			cp.Vector{X: wall.Start[0], Y: wall.Start[1]},
			cp.Vector{X: wall.End[0], Y: wall.End[1]},
			wall.Height, wall.Rows, wall.Cols, gaps,
		)
		if err != nil {
			return nil, fmt.Errorf("ecs: wall %d: %w", i, err)
		}
		for j := range tiles {
			tiles[j].Wall = i
		}
		w.tiles.Add(tiles...)
	}

	for i, b := range spec.Barriers {
		if b.Normal.Len() < common.Epsilon {
			return nil, fmt.Errorf("ecs: barrier %d %q has no normal: %w", i, b.Name, ErrInvalidRoom)
		}
		w.barriers = append(w.barriers, component.Barrier{
			Name:   b.Name,
			Point:  b.Point,
			Normal: b.Normal.Normalize(),
			Bounds: boxFromSpec(b.Bounds),
			Holes:  boxesFromSpec(b.Holes),
			Gated:  b.Gated,
		})
	}

	for _, k := range spec.KillZones {
		w.killZones = append(w.killZones, component.KillZone{
			Name:  k.Name,
			Box:   boxFromSpec(k.Box),
			Holes: boxesFromSpec(k.Holes),
			Gated: k.Gated,
		})
	}

	if spec.Button != nil {
		w.button = &component.Button{
			Center:    spec.Button.Center,
			Radius:    spec.Button.Radius,
			Height:    spec.Button.Height,
			Tolerance: spec.Button.Tolerance,
		}
	}
	if spec.Goal != nil {
		goal := boxFromSpec(*spec.Goal)
		w.goal = &goal
	}
	if spec.Door != nil {
		door := boxFromSpec(*spec.Door)
		w.door = &door
	}

	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	w.Reset()
	w.events.Drain()
	w.log.WithFields(logrus.Fields{
		"tiles":      w.tiles.Len(),
		"barriers":   len(w.barriers),
		"kill_zones": len(w.killZones),
	}).Debug("world built")

	return w, nil
}

func validateRoom(r component.Room) error {
	if r.Width <= 0 || r.Depth <= 0 || r.Height <= 0 {
		return fmt.Errorf("ecs: room %gx%gx%g: %w", r.Width, r.Depth, r.Height, ErrInvalidRoom)
	}
	if r.Margin < 0 || 2*r.Margin >= r.Width || 2*r.Margin >= r.Depth {
		return fmt.Errorf("ecs: room margin %g: %w", r.Margin, ErrInvalidRoom)
	}
	if !r.Contains(r.Spawn) {
		return fmt.Errorf("ecs: spawn %v outside room: %w", r.Spawn, ErrInvalidRoom)
	}
	return nil
}

func boxFromSpec(b prefabs.BoxSpec) component.Box {
	lo, hi := common.BoxOfPoints(b.Min, b.Max)
	return component.Box{Min: lo, Max: hi}
}

func boxesFromSpec(specs []prefabs.BoxSpec) []component.Box {
	if len(specs) == 0 {
		return nil
	}
	out := make([]component.Box, 0, len(specs))
	for _, b := range specs {
		out = append(out, boxFromSpec(b))
	}
	return out
}

// AddSystem appends a system to the tick order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Tick advances the simulation by dt. A won session is frozen: queued input
// is discarded and no system runs.
func (w *World) Tick(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	if w.Puzzle.Won {
		w.intents = w.intents[:0]
		w.last = w.events.Drain()
		return
	}

	w.dt = dt
	w.scheduler.Update(w, func() bool { return w.Puzzle.Won })
	w.elapsed += dt
	w.ticks++
	w.last = w.events.Drain()
}

// Reset restores the initial state of every mutable record. It runs to
// completion before returning, so later systems in the same tick only ever
// see the fully reset session.
func (w *World) Reset() {
	if w == nil {
		return
	}
	w.Player = component.Player{Position: w.room.Spawn}
	w.Puzzle = component.NewPuzzleState()
	w.tiles.ResetAll()
	w.shots.Clear()
	w.resets++
}

// Resets counts completed calls to Reset, including the one in NewWorld.
func (w *World) Resets() uint64 {
	if w == nil {
		return 0
	}
	return w.resets
}

// ResetPortals clears all paint, all projectiles and both fired latches.
func (w *World) ResetPortals() {
	if w == nil {
		return
	}
	w.tiles.ResetAll()
	w.shots.Clear()
	w.Puzzle.MarkerFired = [2]bool{}
}

// Enqueue queues an input intent for the next tick.
func (w *World) Enqueue(in component.Intent) {
	if w == nil || in == nil {
		return
	}
	w.intents = append(w.intents, in)
}

func (w *World) ApplyMovementIntent(dir component.MoveDirection) {
	w.Enqueue(component.IntentMove{Direction: dir})
}

func (w *World) SetLookDelta(dYaw, dPitch float64) {
	w.Enqueue(component.IntentLook{DYaw: dYaw, DPitch: dPitch})
}

func (w *World) Fire(m component.Marker) {
	w.Enqueue(component.IntentFire{Marker: m})
}

func (w *World) Jump() {
	w.Enqueue(component.IntentJump{})
}

func (w *World) ResetGame() {
	w.Enqueue(component.IntentReset{})
}

func (w *World) ClearPortals() {
	w.Enqueue(component.IntentClearPortals{})
}

// DrainIntents returns the queued intents in arrival order and empties the
// queue.
func (w *World) DrainIntents() []component.Intent {
	if w == nil || len(w.intents) == 0 {
		return nil
	}
	out := w.intents
	w.intents = nil
	return out
}

// PendingIntents reports how many intents wait for the next tick.
func (w *World) PendingIntents() int {
	if w == nil {
		return 0
	}
	return len(w.intents)
}

// Emit records an event for the current tick.
func (w *World) Emit(eventType string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: eventType, Data: data})
}

// Events returns the events emitted during the last tick.
func (w *World) Events() []Event {
	if w == nil {
		return nil
	}
	return append([]Event(nil), w.last...)
}

func (w *World) Spec() *prefabs.RoomSpec {
	if w == nil {
		return nil
	}
	return &w.spec
}

func (w *World) Name() string {
	if w == nil {
		return ""
	}
	return w.spec.Name
}

func (w *World) Room() component.Room {
	if w == nil {
		return component.Room{}
	}
	return w.room
}

func (w *World) Tiles() *TileRegistry {
	if w == nil {
		return nil
	}
	return w.tiles
}

func (w *World) Projectiles() *ProjectileSet {
	if w == nil {
		return nil
	}
	return w.shots
}

func (w *World) Barriers() []component.Barrier {
	if w == nil {
		return nil
	}
	return w.barriers
}

func (w *World) KillZones() []component.KillZone {
	if w == nil {
		return nil
	}
	return w.killZones
}

func (w *World) Button() *component.Button {
	if w == nil {
		return nil
	}
	return w.button
}

func (w *World) Goal() *component.Box {
	if w == nil {
		return nil
	}
	return w.goal
}

func (w *World) Door() *component.Box {
	if w == nil {
		return nil
	}
	return w.door
}

// Dt is the duration of the tick in progress.
func (w *World) Dt() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Elapsed is the simulation clock: the sum of all completed tick durations.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

func (w *World) Log() *logrus.Entry {
	if w == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return w.log
}

// EyePosition is the player's camera point.
func (w *World) EyePosition() mgl64.Vec3 {
	if w == nil {
		return mgl64.Vec3{}
	}
	return w.Player.Position.Add(mgl64.Vec3{0, w.spec.Player.EyeHeight, 0})
}
