package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. The
// physics system fills Body and Shape on first sight of the entity.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	// Static bodies never move; Kinematic bodies move only by the velocity
	// their owning system sets.
	Static    bool
	Kinematic bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Hitbox is the overlap box gameplay checks use, centred on Transform.
type Hitbox struct {
	Width  float64
	Height float64
}

var HitboxComponent = NewComponent[Hitbox]()
