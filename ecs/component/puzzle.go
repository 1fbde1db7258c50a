package component

import "math"

type DoorColor uint8

const (
	DoorRed DoorColor = iota
	DoorGreen
)

func (c DoorColor) String() string {
	if c == DoorGreen {
		return "green"
	}
	return "red"
}

// PuzzleState holds the session latches. ButtonActivated and Won only move
// from false to true; a reset is the only way back.
type PuzzleState struct {
	ButtonActivated bool
	Won             bool
	LastTeleport    float64
	MarkerFired     [2]bool
}

// NewPuzzleState returns the initial latches with the teleport cooldown
// already elapsed.
func NewPuzzleState() PuzzleState {
	return PuzzleState{LastTeleport: math.Inf(-1)}
}

func (s PuzzleState) DoorColor() DoorColor {
	if s.ButtonActivated {
		return DoorGreen
	}
	return DoorRed
}

func (s PuzzleState) Fired(m Marker) bool {
	if !m.Valid() {
		return false
	}
	return s.MarkerFired[m]
}

func (c DoorColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
