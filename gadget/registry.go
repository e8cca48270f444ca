package gadget

import "slices"

// Registry is the session-wide record of what each player owns and has
// equipped, plus their acorn balance. It outlives scene loads and is only
// cleared by Reset.
type Registry struct {
	players [MaxPlayers]loadout
}

type loadout struct {
	owned    [numIDs]bool
	equipped []ID
	acorns   int
	revision uint64
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) loadout(p Player) *loadout {
	if r == nil || !p.Valid() {
		return nil
	}
	return &r.players[p]
}

// Purchase marks id as owned. It is idempotent and reports whether the item
// was newly added. Cost checks belong to the shop.
func (r *Registry) Purchase(p Player, id ID) bool {
	l := r.loadout(p)
	if l == nil || !id.Valid() || l.owned[id] {
		return false
	}
	l.owned[id] = true
	return true
}

// Equip appends id to the player's slots if it is owned, not yet equipped and
// a slot is free.
func (r *Registry) Equip(p Player, id ID) bool {
	l := r.loadout(p)
	if l == nil || !id.Valid() || !l.owned[id] {
		return false
	}
	if len(l.equipped) >= Capacity || slices.Contains(l.equipped, id) {
		return false
	}
	next := make([]ID, len(l.equipped), len(l.equipped)+1)
	copy(next, l.equipped)
	l.equipped = append(next, id)
	l.revision++
	return true
}

// Unequip removes id and shifts the later slots down so indices stay
// contiguous.
func (r *Registry) Unequip(p Player, id ID) bool {
	l := r.loadout(p)
	if l == nil {
		return false
	}
	idx := slices.Index(l.equipped, id)
	if idx < 0 {
		return false
	}
	next := make([]ID, 0, len(l.equipped)-1)
	next = append(next, l.equipped[:idx]...)
	next = append(next, l.equipped[idx+1:]...)
	l.equipped = next
	l.revision++
	return true
}

func (r *Registry) IsEquipped(p Player, id ID) bool {
	l := r.loadout(p)
	return l != nil && slices.Contains(l.equipped, id)
}

func (r *Registry) IsPurchased(p Player, id ID) bool {
	l := r.loadout(p)
	return l != nil && id.Valid() && l.owned[id]
}

// EquippedList returns a copy of the player's slots in slot order.
func (r *Registry) EquippedList(p Player) []ID {
	l := r.loadout(p)
	if l == nil {
		return nil
	}
	return slices.Clone(l.equipped)
}

func (r *Registry) EquippedCount(p Player) int {
	l := r.loadout(p)
	if l == nil {
		return 0
	}
	return len(l.equipped)
}

// Owned returns the player's purchased items in id order.
func (r *Registry) Owned(p Player) []ID {
	l := r.loadout(p)
	if l == nil {
		return nil
	}
	var out []ID
	for id := Checkpoint; id < numIDs; id++ {
		if l.owned[id] {
			out = append(out, id)
		}
	}
	return out
}

// Revision changes every time the player's equipped list changes.
func (r *Registry) Revision(p Player) uint64 {
	l := r.loadout(p)
	if l == nil {
		return 0
	}
	return l.revision
}

func (r *Registry) Acorns(p Player) int {
	l := r.loadout(p)
	if l == nil {
		return 0
	}
	return l.acorns
}

func (r *Registry) SetAcorns(p Player, amount int) {
	l := r.loadout(p)
	if l == nil {
		return
	}
	l.acorns = max(amount, 0)
}

func (r *Registry) AddAcorns(p Player, amount int) {
	l := r.loadout(p)
	if l == nil {
		return
	}
	l.acorns = max(l.acorns+amount, 0)
}

// Reset clears purchases, equipment and acorns for both players. Revisions
// keep counting so controllers notice the change.
func (r *Registry) Reset() {
	if r == nil {
		return
	}
	for i := range r.players {
		rev := r.players[i].revision
		r.players[i] = loadout{revision: rev + 1}
	}
}
