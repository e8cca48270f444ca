package component

// Patrol walks an entity back and forth between MinX and MaxX. Dir is +1 or
// -1; the patrol script may flip it.
type Patrol struct {
	Speed float64
	MinX  float64
	MaxX  float64
	Dir   float64
}

var PatrolComponent = NewComponent[Patrol]()

// MovingPlatform shuttles between A and B at Speed.
type MovingPlatform struct {
	AX, AY  float64
	BX, BY  float64
	Speed   float64
	Forward bool
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()

// EnemyContact sends any player it touches back to their respawn point.
type EnemyContact struct {
	DestroyOnHit bool
}

var EnemyContactComponent = NewComponent[EnemyContact]()
