package gadget

import (
	"fmt"
	"strings"
)

// Player identifies one of the two local players.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

// MaxPlayers is the number of co-located players.
const MaxPlayers = 2

// Capacity is how many gadgets a player may equip at once.
const Capacity = 3

func (p Player) Valid() bool {
	return p >= 0 && p < MaxPlayers
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	return fmt.Sprintf("P%d", int(p)+1)
}

// ID names a shop item. Activated gadgets carry phase state; ClimberClaws and
// Wingsuit are passive and only matter while selected.
type ID int

const (
	None ID = iota
	Checkpoint
	DummyAcorn
	Launcher
	TailSwipe
	InvisibilityCloak
	Shield
	Boots
	ClimberClaws
	Wingsuit

	numIDs
)

var idNames = [numIDs]string{
	None:              "",
	Checkpoint:        "Checkpoint",
	DummyAcorn:        "Acorn",
	Launcher:          "Launcher",
	TailSwipe:         "TailSwipe",
	InvisibilityCloak: "InvisibilityCloak",
	Shield:            "Shield",
	Boots:             "Boots",
	ClimberClaws:      "ClimberClaws",
	Wingsuit:          "Wingsuit",
}

// All returns every purchasable item in shop order.
func All() []ID {
	return []ID{TailSwipe, ClimberClaws, Checkpoint, InvisibilityCloak, Shield, Boots, Wingsuit, DummyAcorn, Launcher}
}

func (id ID) Valid() bool {
	return id > None && id < numIDs
}

// Passive reports whether the item has no activation and no cooldown.
func (id ID) Passive() bool {
	return id == ClimberClaws || id == Wingsuit
}

func (id ID) String() string {
	if id < 0 || id >= numIDs {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idNames[id]
}

// ParseID resolves an item name. "DummyAcorn" is accepted as an alias of "Acorn".
func ParseID(name string) (ID, error) {
	s := strings.TrimSpace(name)
	if strings.EqualFold(s, "DummyAcorn") {
		return DummyAcorn, nil
	}
	for id := Checkpoint; id < numIDs; id++ {
		if strings.EqualFold(idNames[id], s) {
			return id, nil
		}
	}
	return None, fmt.Errorf("gadget: unknown item %q", name)
}
