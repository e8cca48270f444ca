package component

// RespawnRequest asks the respawn system to move a player back to their
// marker or spawn point after physics has run this tick.
type RespawnRequest struct {
	Reason string
}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
