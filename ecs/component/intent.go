package component

// Intent is an input action queued by the presentation and applied at the
// next tick boundary.
type Intent interface {
	intent()
}

type MoveDirection uint8

const (
	MoveForward MoveDirection = iota
	MoveBack
	MoveLeft
	MoveRight
)

func (d MoveDirection) String() string {
	switch d {
	case MoveForward:
		return "forward"
	case MoveBack:
		return "back"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}

type IntentMove struct {
	Direction MoveDirection
}

type IntentLook struct {
	DYaw   float64
	DPitch float64
}

type IntentFire struct {
	Marker Marker
}

type IntentJump struct{}

type IntentReset struct{}

type IntentClearPortals struct{}

func (IntentMove) intent()         {}
func (IntentLook) intent()         {}
func (IntentFire) intent()         {}
func (IntentJump) intent()         {}
func (IntentReset) intent()        {}
func (IntentClearPortals) intent() {}
