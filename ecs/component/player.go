package component

import "github.com/milk9111/acornrun/gadget"

// Player holds movement tuning and spawn data for one of the two players.
type Player struct {
	Index gadget.Player

	MoveSpeed        float64
	JumpSpeed        float64
	BoostedJumpSpeed float64
	// AirControl scales lateral input while airborne; the wingsuit raises it.
	AirControl         float64
	WingsuitAirControl float64
	WingsuitFallSpeed  float64
	ClimbSpeed         float64

	SpawnX         float64
	SpawnY         float64
	RespawnOffsetY float64

	FacingLeft bool
	Climbing   bool
}

var PlayerComponent = NewComponent[Player]()
