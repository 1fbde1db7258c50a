package component

// PaintState is the paint carried by a wall tile.
type PaintState uint8

const (
	Unpainted PaintState = iota
	PaintedA
	PaintedB
)

func (p PaintState) String() string {
	switch p {
	case PaintedA:
		return "A"
	case PaintedB:
		return "B"
	default:
		return "unpainted"
	}
}

// Marker returns the marker that produced this paint.
func (p PaintState) Marker() (Marker, bool) {
	switch p {
	case PaintedA:
		return MarkerA, true
	case PaintedB:
		return MarkerB, true
	default:
		return 0, false
	}
}

// Marker identifies one of the two paired projectile colors. Values index
// PuzzleState.MarkerFired.
type Marker uint8

const (
	MarkerA Marker = iota
	MarkerB
)

func (m Marker) Paint() PaintState {
	if m == MarkerB {
		return PaintedB
	}
	return PaintedA
}

func (m Marker) Opposite() Marker {
	if m == MarkerB {
		return MarkerA
	}
	return MarkerB
}

func (m Marker) Valid() bool {
	return m == MarkerA || m == MarkerB
}

func (m Marker) String() string {
	if m == MarkerB {
		return "B"
	}
	return "A"
}

func (p PaintState) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (m Marker) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
