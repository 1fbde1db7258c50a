package system

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
	"github.com/milk9111/portalroom/prefabs"
	"github.com/sirupsen/logrus"
)

func puzzleSpec() *prefabs.RoomSpec {
	spec := classicSpec()
	spec.Barriers = puzzleBarriers()
	spec.KillZones = []prefabs.KillZoneSpec{
		{
			Name:  "button_laser_z",
			Box:   prefabs.BoxSpec{Min: mgl64.Vec3{0, -0.5, 8}, Max: mgl64.Vec3{9, 9.5, 9}},
			Holes: []prefabs.BoxSpec{{Min: mgl64.Vec3{4, 2, 8}, Max: mgl64.Vec3{5, 3, 9}}},
		},
		{
			Name: "button_laser_x",
			Box:  prefabs.BoxSpec{Min: mgl64.Vec3{8.5, -0.5, 0}, Max: mgl64.Vec3{9.5, 9.5, 8.5}},
		},
		{
			Name:  "door_laser",
			Box:   prefabs.BoxSpec{Min: mgl64.Vec3{-0.5, -0.5, 14.5}, Max: mgl64.Vec3{20.5, 9.5, 15.5}},
			Gated: true,
		},
	}
	spec.Button = &prefabs.ButtonSpec{Center: mgl64.Vec3{2, 0, 2}, Radius: 2, Height: 0.833, Tolerance: 0.1}
	spec.Goal = &prefabs.BoxSpec{Min: mgl64.Vec3{6.17, -0.5, 19.9}, Max: mgl64.Vec3{13.83, 6.5, 20.1}}
	return spec
}

func TestLaserResetsSession(t *testing.T) {
	cases := []struct {
		name  string
		pos   mgl64.Vec3
		reset bool
	}{
		{"laser_z", mgl64.Vec3{3, 0, 8.5}, true},
		{"laser_x", mgl64.Vec3{9, 0, 4}, true},
		{"laser_z_hole", mgl64.Vec3{4.5, 2.5, 8.5}, false},
		{"door_locked", mgl64.Vec3{10, 0, 15}, true},
		{"clear_floor", mgl64.Vec3{15, 0, 5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestSession(t, puzzleSpec())
			w.Tiles().Paint(20, component.MarkerA)
			w.Player.Position = c.pos

			w.Tick(0.016)

			reset := countEvents(w, ecs.EventReset) == 1
			if reset != c.reset {
				t.Fatalf("reset = %v, want %v", reset, c.reset)
			}
			if reset {
				if w.Player.Position != (mgl64.Vec3{10, 0, 10}) {
					t.Fatalf("player at %v after reset", w.Player.Position)
				}
				if w.Tiles().CountPainted(component.PaintedA) != 0 {
					t.Fatalf("paint survived laser reset")
				}
			}
		})
	}
}

func TestButtonOpensDoor(t *testing.T) {
	w := newTestSession(t, puzzleSpec())
	w.Player.Position = mgl64.Vec3{2, 0, 2.1}

	w.Tick(0.016)

	if !w.Puzzle.ButtonActivated {
		t.Fatalf("button should latch")
	}
	if w.Snapshot().Door != component.DoorGreen {
		t.Fatalf("door should be green")
	}
	if countEvents(w, ecs.EventButton) != 1 {
		t.Fatalf("expected a button event")
	}

	w.Player.Position = mgl64.Vec3{10, 0, 15}
	w.Tick(0.016)
	if countEvents(w, ecs.EventReset) != 0 {
		t.Fatalf("open door should not reset")
	}
	if !w.Puzzle.ButtonActivated || w.Player.Position != (mgl64.Vec3{10, 0, 15}) {
		t.Fatalf("player should pass the open door, at %v", w.Player.Position)
	}

	// Latch is one-way.
	w.Player.Position = mgl64.Vec3{15, 0, 12}
	w.Tick(0.016)
	if !w.Puzzle.ButtonActivated || countEvents(w, ecs.EventButton) != 0 {
		t.Fatalf("button latch should hold without a new event")
	}
}

func TestButtonActivationBounds(t *testing.T) {
	cases := []struct {
		name string
		pos  mgl64.Vec3
		want bool
	}{
		{"center", mgl64.Vec3{2, 0, 2}, true},
		{"on_rim", mgl64.Vec3{4, 0, 2}, true},
		{"outside_radius", mgl64.Vec3{4.1, 0, 2}, false},
		{"within_height_tolerance", mgl64.Vec3{2, 0.9, 2}, true},
		{"above_button", mgl64.Vec3{2, 1, 2}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestSession(t, puzzleSpec())
			w.Player.Position = c.pos
			w.Tick(0.016)
			if w.Puzzle.ButtonActivated != c.want {
				t.Fatalf("button = %v, want %v", w.Puzzle.ButtonActivated, c.want)
			}
		})
	}
}

func TestGoalNeedsButton(t *testing.T) {
	w := newTestSession(t, puzzleSpec())
	w.Player.Position = mgl64.Vec3{10, 0, 19.9}

	w.Tick(0.016)
	if w.Puzzle.Won {
		t.Fatalf("goal without the button must not win")
	}

	w.Puzzle.ButtonActivated = true
	w.Tick(0.016)
	if !w.Puzzle.Won || countEvents(w, ecs.EventWon) != 1 {
		t.Fatalf("goal with the button should win")
	}

	// Everything is frozen once won.
	ticks := w.Ticks()
	w.ApplyMovementIntent(component.MoveBack)
	w.ResetGame()
	w.Projectiles().Spawn(component.Projectile{Position: mgl64.Vec3{10, 4, 10}, Velocity: mgl64.Vec3{1, 0, 0}})
	w.Tick(0.016)
	if w.Ticks() != ticks || !w.Puzzle.Won {
		t.Fatalf("won session kept ticking")
	}
	if w.Player.Position != (mgl64.Vec3{10, 0, 19.9}) {
		t.Fatalf("won session accepted input")
	}
	if w.Projectiles().All()[0].Position != (mgl64.Vec3{10, 4, 10}) {
		t.Fatalf("won session advanced projectiles")
	}
}

func TestGoalLockedDoorAnnouncement(t *testing.T) {
	inGoal := mgl64.Vec3{10, 0, 20}
	cases := []struct {
		name    string
		between func(w *ecs.World)
		want    int
	}{
		{"stays_in_goal", func(w *ecs.World) {}, 1},
		{"leaves_goal", func(w *ecs.World) {
			w.Player.Position = mgl64.Vec3{10, 0, 10}
			w.Tick(0.016)
			w.Player.Position = inGoal
		}, 2},
		{"world_reset", func(w *ecs.World) {
			w.Reset()
			w.Player.Position = inGoal
		}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logrus.New()
			l.SetOutput(&buf)
			l.SetLevel(logrus.DebugLevel)

			w, err := ecs.NewWorld(puzzleSpec(), ecs.WithLogger(logrus.NewEntry(l)), ecs.WithSystems(NewGoalSystem(nil)))
			if err != nil {
				t.Fatalf("NewWorld: %v", err)
			}
			w.Player.Position = inGoal
			w.Tick(0.016)
			c.between(w)
			w.Tick(0.016)

			if got := strings.Count(buf.String(), "goal reached with the door locked"); got != c.want {
				t.Fatalf("announced %d times, want %d", got, c.want)
			}
		})
	}
}

func TestGoalWithScript(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		button bool
		want   bool
	}{
		{"default_predicate", "won := in_goal && button_activated", true, true},
		{"script_cannot_skip_button", "won := true", false, false},
		{"script_can_refuse", "won := in_goal && elapsed > 100", true, false},
		{"script_sees_paint", "won := painted_a == 1 && painted_b == 0", true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			script, err := CompileWinScript(c.name, []byte(c.src))
			if err != nil {
				t.Fatalf("CompileWinScript: %v", err)
			}
			w, err := ecs.NewWorld(puzzleSpec(), ecs.WithLogger(quietLogger()), ecs.WithSystems(NewGoalSystem(script)))
			if err != nil {
				t.Fatalf("NewWorld: %v", err)
			}
			w.Tiles().Paint(0, component.MarkerA)
			w.Puzzle.ButtonActivated = c.button
			w.Player.Position = mgl64.Vec3{10, 0, 19.9}

			w.Tick(0.016)
			if w.Puzzle.Won != c.want {
				t.Fatalf("won = %v, want %v", w.Puzzle.Won, c.want)
			}
		})
	}
}

func TestPuzzlePresetPlaythrough(t *testing.T) {
	w, err := LoadSession("puzzle", ecs.WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	dt := w.Spec().TickSeconds

	// Walking straight into the locked door laser resets the run.
	w.Player.Position = mgl64.Vec3{10, 0, 14}
	w.ApplyMovementIntent(component.MoveBack)
	w.ApplyMovementIntent(component.MoveBack)
	for i := 0; i < 20 && countEvents(w, ecs.EventReset) == 0; i++ {
		w.ApplyMovementIntent(component.MoveBack)
		w.Tick(dt)
	}
	if w.Player.Position != w.Room().Spawn {
		t.Fatalf("door laser should send the player back to spawn, at %v", w.Player.Position)
	}

	// Portal into the laser cage: A on the back wall near spawn side, B on
	// the left wall beside the button.
	w.Tiles().Paint(8, component.MarkerA)   // back wall x 13.3-15
	w.Tiles().Paint(118, component.MarkerB) // left wall z 3.3-1.7
	w.Player.Position = mgl64.Vec3{14, 0, 0.1}
	w.Tick(dt)
	if countEvents(w, ecs.EventTeleported) != 1 {
		t.Fatalf("expected a teleport into the cage")
	}
	for i := 0; i < 5; i++ {
		w.Tick(dt)
	}
	if !w.Puzzle.ButtonActivated {
		t.Fatalf("teleport exit should land on the button, player at %v", w.Player.Position)
	}

	// Walk out through the open door to the goal.
	w.Player.Position = mgl64.Vec3{10, 0, 19.5}
	w.Player.Yaw = 180
	for i := 0; i < 20 && !w.Puzzle.Won; i++ {
		w.ApplyMovementIntent(component.MoveForward)
		w.Tick(dt)
	}
	if !w.Puzzle.Won {
		t.Fatalf("expected to clear the level, player at %v", w.Player.Position)
	}
}
