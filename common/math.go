package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Epsilon is the tolerance used for degenerate directions and parallel planes.
const Epsilon = 1e-6
