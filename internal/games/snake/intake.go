package snake

import "sync/atomic"

// Intake is a single-slot pending direction written by input contexts and
// consumed once per tick by the simulation.
// Later requests overwrite earlier ones; nothing is queued.
type Intake struct {
	pending atomic.Int32
}

// Request stores d as the pending direction. Invalid values are ignored so
// that the slot only ever holds a heading or DirNone.
func (in *Intake) Request(d Direction) {
	if !d.Valid() {
		return
	}
	in.pending.Store(int32(d))
}

// take reads and clears the slot in one atomic step.
func (in *Intake) take() Direction {
	return Direction(in.pending.Swap(int32(DirNone)))
}
