package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
	"github.com/milk9111/portalroom/prefabs"
)

func openRoomSpec() *prefabs.RoomSpec {
	return &prefabs.RoomSpec{
		Name:       "open",
		Room:       prefabs.RoomDimsSpec{Width: 20, Depth: 20, Height: 9, Spawn: mgl64.Vec3{10, 0, 10}},
		Projectile: prefabs.ProjectileSpec{Lifetime: 1},
	}
}

func TestProjectileExpiresByAge(t *testing.T) {
	w := newTestSession(t, openRoomSpec())
	w.Projectiles().Spawn(component.Projectile{
		Position: mgl64.Vec3{10, 4, 10},
		Velocity: mgl64.Vec3{0.5, 0, 0},
		Marker:   component.MarkerA,
	})

	for i := 0; i < 3; i++ {
		w.Tick(0.25)
		if w.Projectiles().Len() != 1 {
			t.Fatalf("tick %d: projectile dropped early", i)
		}
		if countEvents(w, ecs.EventPainted)+countEvents(w, ecs.EventBlocked) != 0 {
			t.Fatalf("tick %d: unexpected collision", i)
		}
	}

	// Age reaches exactly the lifetime on the fourth tick.
	w.Tick(0.25)
	if w.Projectiles().Len() != 0 {
		t.Fatalf("projectile should expire at age == lifetime")
	}
}

func TestProjectileOutOfBounds(t *testing.T) {
	cases := []struct {
		name string
		drop bool
		want int
	}{
		{"retained_by_default", false, 1},
		{"dropped_when_configured", true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := classicSpec()
			spec.Projectile.DropOutOfBounds = c.drop
			w := newTestSession(t, spec)
			// Leaves through the floor without touching a tile.
			w.Projectiles().Spawn(component.Projectile{
				Position: mgl64.Vec3{10, 0.05, 10},
				Velocity: mgl64.Vec3{0, -1, 0},
				Marker:   component.MarkerA,
			})

			w.Tick(0.1)
			if w.Projectiles().Len() != c.want {
				t.Fatalf("expected %d projectiles, got %d", c.want, w.Projectiles().Len())
			}
			if c.want == 1 {
				w.Tick(0.1)
				if w.Projectiles().Len() != 1 || countEvents(w, ecs.EventPainted) != 0 {
					t.Fatalf("out-of-bounds projectile should linger untouched")
				}
			}
		})
	}
}

func TestProjectilePaintsFirstTile(t *testing.T) {
	w := newTestSession(t, classicSpec())
	w.Projectiles().Spawn(component.Projectile{
		Position: mgl64.Vec3{5.5, 1, 0.15},
		Velocity: mgl64.Vec3{0, 0, -1},
		Marker:   component.MarkerB,
	})

	w.Tick(0.1)

	tile, _ := w.Tiles().At(3)
	if tile.Paint != component.PaintedB {
		t.Fatalf("tile 3 paint = %v", tile.Paint)
	}
	if w.Projectiles().Len() != 0 {
		t.Fatalf("painting projectile should be consumed")
	}
	if !w.Puzzle.MarkerFired[component.MarkerB] || w.Puzzle.MarkerFired[component.MarkerA] {
		t.Fatalf("fired latches = %v", w.Puzzle.MarkerFired)
	}
	if countEvents(w, ecs.EventPainted) != 1 {
		t.Fatalf("expected one painted event")
	}
}

func TestPaintLatchConsumesBatch(t *testing.T) {
	w := newTestSession(t, classicSpec())
	shots := []component.Projectile{
		{Position: mgl64.Vec3{5.5, 1, 0.15}, Velocity: mgl64.Vec3{0, 0, -1}, Marker: component.MarkerA},
		{Position: mgl64.Vec3{15.5, 1, 0.15}, Velocity: mgl64.Vec3{0, 0, -1}, Marker: component.MarkerA},
		{Position: mgl64.Vec3{10, 4, 10}, Velocity: mgl64.Vec3{0, 0, -1}, Marker: component.MarkerA},
		{Position: mgl64.Vec3{10, 4, 12}, Velocity: mgl64.Vec3{0, 0, -1}, Marker: component.MarkerB},
	}
	for _, p := range shots {
		w.Projectiles().Spawn(p)
	}

	w.Tick(0.1)

	if w.Tiles().CountPainted(component.PaintedA) != 1 {
		t.Fatalf("expected exactly one A tile, got %d", w.Tiles().CountPainted(component.PaintedA))
	}
	if tile, _ := w.Tiles().At(3); tile.Paint != component.PaintedA {
		t.Fatalf("the first projectile in order should win")
	}
	left := w.Projectiles().All()
	if len(left) != 1 || left[0].Marker != component.MarkerB {
		t.Fatalf("A batch should be consumed, left %v", left)
	}

	// Later ticks: no new A may be fired or painted.
	w.Fire(component.MarkerA)
	w.Tick(0.1)
	if w.Projectiles().CountMarker(component.MarkerA) != 0 {
		t.Fatalf("A fired while latched")
	}
	w.Projectiles().Spawn(component.Projectile{Position: mgl64.Vec3{15.5, 1, 0.15}, Velocity: mgl64.Vec3{0, 0, -1}, Marker: component.MarkerA})
	w.Tick(0.1)
	if w.Tiles().CountPainted(component.PaintedA) != 1 {
		t.Fatalf("second A tile painted while latched")
	}
}

func puzzleBarriers() []prefabs.BarrierSpec {
	return []prefabs.BarrierSpec{
		{
			Name:   "door_laser",
			Point:  mgl64.Vec3{0, 0, 15},
			Normal: mgl64.Vec3{0, 0, 1},
			Bounds: prefabs.BoxSpec{Min: mgl64.Vec3{0, 0, 15}, Max: mgl64.Vec3{20, 9, 15}},
			Gated:  true,
		},
		{
			Name:   "button_laser_z",
			Point:  mgl64.Vec3{0, 0, 8.5},
			Normal: mgl64.Vec3{0, 0, 1},
			Bounds: prefabs.BoxSpec{Min: mgl64.Vec3{0, 0, 8.5}, Max: mgl64.Vec3{9, 9, 8.5}},
			Holes:  []prefabs.BoxSpec{{Min: mgl64.Vec3{4, 2, 8.5}, Max: mgl64.Vec3{5, 3, 8.5}}},
		},
	}
}

func TestProjectileBarriers(t *testing.T) {
	cases := []struct {
		name     string
		from     mgl64.Vec3
		buttonOn bool
		blocked  bool
	}{
		{"solid_laser", mgl64.Vec3{6, 2.5, 8.6}, false, true},
		{"through_hole", mgl64.Vec3{4.5, 2.5, 8.6}, false, false},
		{"door_locked", mgl64.Vec3{10, 4, 15.1}, false, true},
		{"door_open", mgl64.Vec3{10, 4, 15.1}, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := classicSpec()
			spec.Barriers = puzzleBarriers()
			w := newTestSession(t, spec)
			w.Puzzle.ButtonActivated = c.buttonOn
			w.Projectiles().Spawn(component.Projectile{Position: c.from, Velocity: mgl64.Vec3{0, 0, -1}, Marker: component.MarkerA})

			w.Tick(0.2)

			if got := countEvents(w, ecs.EventBlocked) == 1; got != c.blocked {
				t.Fatalf("blocked = %v, want %v", got, c.blocked)
			}
			if survived := w.Projectiles().Len() == 1; survived == c.blocked {
				t.Fatalf("survived = %v with blocked = %v", survived, c.blocked)
			}
			if w.Tiles().CountPainted(component.PaintedA) != 0 {
				t.Fatalf("a barrier hit must not paint")
			}
		})
	}
}
