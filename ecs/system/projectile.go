package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/common"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
	"github.com/sirupsen/logrus"
)

// ProjectileSystem advances live projectiles and resolves them against the
// barriers and wall tiles.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// SpawnProjectile fires marker m from the player's eye along the look
// direction. It refuses while m's fired latch is set.
func SpawnProjectile(w *ecs.World, m component.Marker) bool {
	if w == nil || !m.Valid() || w.Puzzle.Fired(m) {
		return false
	}

	cfg := w.Spec().Projectile
	dir := component.LookDirection(w.Player.Yaw, w.Player.Pitch)
	p := component.Projectile{
		Position: w.EyePosition().Add(dir.Mul(cfg.SpawnOffset)),
		Velocity: dir.Mul(cfg.Speed),
		Marker:   m,
	}
	w.Projectiles().Spawn(p)
	w.Emit(ecs.EventFired, ecs.FiredEvent{Marker: m, Position: p.Position})
	w.Log().WithField("marker", m).Debug("fired")
	return true
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Dt()
	cfg := w.Spec().Projectile
	room := w.Room()
	tiles := w.Tiles()
	buttonOn := w.Puzzle.ButtonActivated

	live := w.Projectiles().All()
	survivors := make([]component.Projectile, 0, len(live))
	var painted [2]bool

	for _, p := range live {
		p.Age += dt
		if p.Age >= cfg.Lifetime {
			continue
		}

		from := p.Position
		p.Position = from.Add(p.Velocity.Mul(dt))

		if !room.Contains(p.Position) {
			if !cfg.DropOutOfBounds {
				survivors = append(survivors, p)
			}
			continue
		}

		if name, point, hit := firstBarrierHit(w.Barriers(), from, p.Position, buttonOn); hit {
			w.Emit(ecs.EventBlocked, ecs.BlockedEvent{Barrier: name, Marker: p.Marker, Point: point})
			w.Log().WithFields(logrus.Fields{"marker": p.Marker, "barrier": name}).Debug("projectile blocked")
			continue
		}

		idx, hit := firstTileHit(tiles, from, p.Position, cfg.Radius)
		if !hit {
			survivors = append(survivors, p)
			continue
		}
		if painted[p.Marker] || w.Puzzle.Fired(p.Marker) {
			// This color already landed; the rest of its batch is consumed
			// without painting.
			continue
		}
		tiles.Paint(idx, p.Marker)
		painted[p.Marker] = true
		w.Emit(ecs.EventPainted, ecs.PaintedEvent{Tile: idx, Marker: p.Marker})
		w.Log().WithFields(logrus.Fields{"marker": p.Marker, "tile": idx}).Info("portal painted")
	}

	w.Projectiles().Replace(survivors)
	for _, m := range []component.Marker{component.MarkerA, component.MarkerB} {
		if !painted[m] {
			continue
		}
		w.Puzzle.MarkerFired[m] = true
		w.Projectiles().DropMarker(m)
	}
}

func firstBarrierHit(barriers []component.Barrier, from, to mgl64.Vec3, buttonOn bool) (string, mgl64.Vec3, bool) {
	for _, b := range barriers {
		if b.Gated && buttonOn {
			continue
		}
		t, ok := b.Hit(from, to)
		if !ok {
			continue
		}
		return b.Name, common.PointOnSegment(from, to, t), true
	}
	return "", mgl64.Vec3{}, false
}

func firstTileHit(tiles *ecs.TileRegistry, from, to mgl64.Vec3, radius float64) (int, bool) {
	for i := 0; i < tiles.Len(); i++ {
		lo, hi := tiles.ExpandedBox(i, radius)
		if common.SegmentBoxIntersect(from, to, lo, hi) {
			return i, true
		}
	}
	return -1, false
}
