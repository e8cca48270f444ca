package component

// Solid marks level geometry that stops projectiles.
type Solid struct{}

var SolidComponent = NewComponent[Solid]()

// Climbable marks geometry a player may climb while the claws are selected.
type Climbable struct{}

var ClimbableComponent = NewComponent[Climbable]()
