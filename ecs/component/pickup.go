package component

// Pickup is an acorn lying in the level. It bobs around BaseY and is worth
// Value acorns to whichever player touches it first.
type Pickup struct {
	Value        int
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	Initialized  bool
}

var PickupComponent = NewComponent[Pickup]()
