package gadget

// Slot is what the equipment HUD shows for one equip position.
type Slot struct {
	ID       ID
	Empty    bool
	Hidden   bool
	Selected bool
}

// Display is the read side of the equipment HUD for one player. It rebuilds
// its slots only when the controller reports a change.
type Display struct {
	controller *Controller
	version    uint64
	built      bool
	slots      [Capacity]Slot
}

func NewDisplay(c *Controller) *Display {
	return &Display{controller: c}
}

// Sync refreshes the slots if the equip list, the selection or a gadget's
// ready state changed, and reports whether it did.
func (d *Display) Sync() bool {
	if d == nil || d.controller == nil {
		return false
	}
	v := d.controller.Version()
	if d.built && v == d.version {
		return false
	}
	d.version = v
	d.built = true
	d.slots = BuildSlots(d.controller)
	return true
}

// Slots returns the last built slots.
func (d *Display) Slots() [Capacity]Slot {
	if d == nil {
		return emptySlots()
	}
	return d.slots
}

// BuildSlots renders the controller's equip list into HUD slots. A slot whose
// gadget is busy is hidden.
func BuildSlots(c *Controller) [Capacity]Slot {
	slots := emptySlots()
	equipped := c.Equipped()
	sel, hasSel := c.SelectedIndex()
	for i := 0; i < len(equipped) && i < Capacity; i++ {
		id := equipped[i]
		slots[i] = Slot{
			ID:       id,
			Hidden:   c.IsOnCooldown(id),
			Selected: hasSel && sel == i,
		}
	}
	return slots
}

func emptySlots() [Capacity]Slot {
	var slots [Capacity]Slot
	for i := range slots {
		slots[i].Empty = true
	}
	return slots
}
