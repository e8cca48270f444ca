package component

import (
	"time"

	"github.com/milk9111/acornrun/gadget"
)

// CheckpointMarker is the single respawn marker a player may have placed.
type CheckpointMarker struct {
	Owner gadget.Player
}

var CheckpointMarkerComponent = NewComponent[CheckpointMarker]()

// Decoy stuns the first opposing player that touches it.
type Decoy struct {
	Placer gadget.Player
	Stun   time.Duration
}

var DecoyComponent = NewComponent[Decoy]()

// Projectile flies in a straight line until it hits something solid, a
// target, or its TTL runs out.
type Projectile struct {
	Owner gadget.Player
	VX    float64
	VY    float64
	Stun  time.Duration
}

var ProjectileComponent = NewComponent[Projectile]()

// Muzzle is where launched projectiles leave a player, relative to the
// player's centre when facing right.
type Muzzle struct {
	OffsetX float64
	OffsetY float64
}

var MuzzleComponent = NewComponent[Muzzle]()
