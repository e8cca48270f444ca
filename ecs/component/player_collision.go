package component

import "time"

const (
	WallNone  = 0
	WallLeft  = 1
	WallRight = 2
)

// PlayerCollision stores per-player collision state derived from physics contacts.
type PlayerCollision struct {
	Grounded    bool
	GroundGrace time.Duration
	Wall        int
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
