package gadget

import "time"

// Handle refers to a spawned artifact. The zero Handle means nothing was
// spawned.
type Handle uint64

func (h Handle) Valid() bool {
	return h != 0
}

// Body is the caster's movement state as gadgets see it.
type Body interface {
	Position() (x, y float64)
	Grounded() bool
	FacingLeft() bool
	// Muzzle reports the launcher anchor; ok is false when none is configured.
	Muzzle() (x, y float64, ok bool)
}

// StatusSink receives the status flags movement and collision code read.
type StatusSink interface {
	SetInvisible(on bool, opacity float64)
	SetShielded(on bool)
	SetBootsPending(on bool)
}

// Spawner creates and moves artifacts in the current scene and applies area
// stuns on behalf of the caster.
type Spawner interface {
	PlaceMarker(x, y float64) Handle
	MoveMarker(h Handle, x, y float64) bool
	SpawnDecoy(x, y float64, stun time.Duration) Handle
	SpawnProjectile(x, y, vx, vy float64, stun, lifetime time.Duration) Handle
	// StunArea stuns every eligible entity within radius except the caster
	// and returns how many were hit.
	StunArea(x, y, radius float64, d time.Duration) int
}

// Host is everything a controller needs from the scene it lives in.
type Host interface {
	Body
	StatusSink
	Spawner
}
