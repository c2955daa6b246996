package core

import "math"

// Input is the per-frame input snapshot the platform writes and the
// simulation reads once at the top of each tick. The simulation never
// mutates it except to clear FirePressed after consuming a fire request.
type Input struct {
	// Horizontal and Vertical are the movement axes in [-1, 1].
	Horizontal float64
	Vertical   float64

	// Boost is true while the boost key is held.
	Boost bool

	// Fire is true while the fire key is held.
	Fire bool

	// FirePressed is edge-triggered: set on a fresh fire press and
	// consumed once by the simulation.
	FirePressed bool
}

// Sanitize clamps the movement axes into range and re-normalizes the
// movement vector if its magnitude exceeds 1. The core has no channel to
// report malformed input, so out-of-range values are repaired, not rejected.
func (in *Input) Sanitize() {
	if math.IsNaN(in.Horizontal) || math.IsInf(in.Horizontal, 0) {
		in.Horizontal = 0
	}
	if math.IsNaN(in.Vertical) || math.IsInf(in.Vertical, 0) {
		in.Vertical = 0
	}

	in.Horizontal = ClampF(in.Horizontal, -1, 1)
	in.Vertical = ClampF(in.Vertical, -1, 1)

	if mag := math.Hypot(in.Horizontal, in.Vertical); mag > 1 {
		in.Horizontal /= mag
		in.Vertical /= mag
	}
}
