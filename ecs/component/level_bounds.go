package component

// LevelBounds stores the world-space bounds of the current level. A player
// whose centre drops below KillY is respawned.
type LevelBounds struct {
	Width  float64
	Height float64
	KillY  float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
