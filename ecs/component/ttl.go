package component

import "time"

// TTL destroys its entity once Remaining reaches zero.
type TTL struct {
	Remaining time.Duration
}

var TTLComponent = NewComponent[TTL]()
