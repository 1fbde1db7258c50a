package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalroom/ecs/component"
)

// Event is a generic simulation event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventFired      = "fired"
	EventPainted    = "painted"
	EventBlocked    = "blocked"
	EventTeleported = "teleported"
	EventReset      = "reset"
	EventCleared    = "cleared"
	EventButton     = "button"
	EventWon        = "won"
)

type FiredEvent struct {
	Marker   component.Marker
	Position mgl64.Vec3
}

type PaintedEvent struct {
	Tile   int
	Marker component.Marker
}

// BlockedEvent reports a projectile stopped by a barrier.
type BlockedEvent struct {
	Barrier string
	Marker  component.Marker
	Point   mgl64.Vec3
}

type TeleportedEvent struct {
	From   mgl64.Vec3
	To     mgl64.Vec3
	Source int
	Dest   int
}

type ResetEvent struct {
	Reason string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
