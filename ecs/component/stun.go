package component

import "time"

// Stun freezes an entity's own movement until Remaining runs out. A new stun
// replaces the remaining time rather than adding to it.
type Stun struct {
	Remaining time.Duration
}

var StunComponent = NewComponent[Stun]()
