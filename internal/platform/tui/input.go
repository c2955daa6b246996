package tui

import (
	"time"

	"github.com/dmarkhas/novafall/internal/core"
)

const (
	// Terminals report key repeats, not releases. A key counts as held
	// while its last event is younger than this window.
	holdWindow = 150 * time.Millisecond
)

// keyTracker turns discrete terminal key events into the held-state
// input snapshot the simulation consumes. Each tracked key stores the
// expiry of its hold window; a fire event arriving after the previous
// window lapsed is a fresh press.
type keyTracker struct {
	left, right, up, down time.Time
	boost                 time.Time
	fire                  time.Time

	// pressPending carries the fire press edge until the simulation
	// consumes it.
	pressPending bool
}

// Press records a key event at the given time. Returns false for keys
// the tracker does not handle.
func (k *keyTracker) Press(key string, at time.Time) bool {
	expiry := at.Add(holdWindow)

	switch key {
	case "left", "a", "h":
		k.left = expiry
	case "right", "d", "l":
		k.right = expiry
	case "up", "w", "k":
		k.up = expiry
	case "down", "s", "j":
		k.down = expiry
	case "shift+left", "shift+right", "shift+up", "shift+down", "b":
		k.boost = expiry
	case " ", "f":
		if at.After(k.fire) {
			k.pressPending = true
		}
		k.fire = expiry
	default:
		return false
	}
	return true
}

// Snapshot builds the input for one simulation tick. The press edge is
// surfaced every tick until ConsumeEdge reports it satisfied.
func (k *keyTracker) Snapshot(at time.Time) core.Input {
	in := core.Input{
		Boost:       at.Before(k.boost),
		Fire:        at.Before(k.fire),
		FirePressed: k.pressPending,
	}

	if at.Before(k.left) {
		in.Horizontal -= 1
	}
	if at.Before(k.right) {
		in.Horizontal += 1
	}
	if at.Before(k.up) {
		in.Vertical -= 1
	}
	if at.Before(k.down) {
		in.Vertical += 1
	}

	return in
}

// ConsumeEdge syncs the pending press back from the input the simulation
// mutated. An unsatisfied press stays pending for the next tick.
func (k *keyTracker) ConsumeEdge(in *core.Input) {
	k.pressPending = in.FirePressed
}

// Reset drops all held keys and any pending press.
func (k *keyTracker) Reset() {
	*k = keyTracker{}
}
