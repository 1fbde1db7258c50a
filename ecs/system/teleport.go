package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/common"
	"github.com/milk9111/portalroom/ecs"
	"github.com/sirupsen/logrus"
)

// TeleportSystem moves the player from a painted tile they touch to the
// first tile bearing the opposite paint.
type TeleportSystem struct{}

func NewTeleportSystem() *TeleportSystem {
	return &TeleportSystem{}
}

func (s *TeleportSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cfg := w.Spec().Teleport
	if w.Elapsed()-w.Puzzle.LastTeleport < *cfg.Cooldown {
		return
	}

	tiles := w.Tiles()
	pos := w.Player.Position
	for i := 0; i < tiles.Len(); i++ {
		tile, _ := tiles.At(i)
		marker, ok := tile.Paint.Marker()
		if !ok {
			continue
		}
		lo, hi := tiles.ExpandedBox(i, cfg.Proximity)
		if !common.PointInBox(pos, lo, hi) {
			continue
		}

		dest, ok := tiles.FindPainted(marker.Opposite().Paint())
		if !ok {
			w.Log().WithField("source", i).Debug("teleport skipped: no destination portal")
			return
		}
		teleport(w, i, dest)
		return
	}
}

func teleport(w *ecs.World, source, dest int) {
	cfg := w.Spec().Teleport
	room := w.Room()
	tile, _ := w.Tiles().At(dest)
	lo, _ := tile.Bounds()
	c := tile.Center()

	x, y, z := c.X(), lo.Y(), c.Z()
	yaw := w.Player.Yaw

	// Step off the destination wall and face into the room.
	if math.Abs(x) < cfg.BoundaryTolerance {
		x += cfg.Inset
		yaw = 90
	} else if math.Abs(x-room.Width) < cfg.BoundaryTolerance {
		x -= cfg.Inset
		yaw = -90
	}
	if math.Abs(z) < cfg.BoundaryTolerance {
		z += cfg.Inset
		yaw = 180
	} else if math.Abs(z-room.Depth) < cfg.BoundaryTolerance {
		z -= cfg.Inset
		yaw = 0
	}

	from := w.Player.Position
	w.Player.Position = room.Clamp(mgl64.Vec3{x, y, z})
	w.Player.Yaw = yaw
	w.Player.VerticalVelocity = 0
	w.Player.Falling = true
	w.Puzzle.LastTeleport = w.Elapsed()

	w.Emit(ecs.EventTeleported, ecs.TeleportedEvent{From: from, To: w.Player.Position, Source: source, Dest: dest})
	w.Log().WithFields(logrus.Fields{
		"source": source,
		"dest":   dest,
		"to":     w.Player.Position,
	}).Info("teleported")
}
