// Package shop sells gadgets for acorns and manages what each player has
// equipped. It writes only to the gadget registry.
package shop

import (
	"errors"
	"fmt"

	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/prefabs"
	"go.uber.org/zap"
)

var (
	ErrUnknownItem        = errors.New("shop: unknown item")
	ErrAlreadyOwned       = errors.New("shop: item already owned")
	ErrInsufficientAcorns = errors.New("shop: not enough acorns")
	ErrNotOwned           = errors.New("shop: item not owned")
	ErrSlotsFull          = errors.New("shop: all equip slots are taken")
)

// Item is one priced entry on the shelf.
type Item struct {
	ID          gadget.ID
	Cost        int
	Description string
}

type Shop struct {
	registry *gadget.Registry
	items    []Item
	byID     map[gadget.ID]Item
	log      *zap.Logger
}

func New(registry *gadget.Registry, spec *prefabs.ShopSpec, log *zap.Logger) (*Shop, error) {
	if registry == nil {
		return nil, fmt.Errorf("shop: nil registry")
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Shop{registry: registry, log: log}
	if err := s.SetItems(spec); err != nil {
		return nil, err
	}
	return s, nil
}

// SetItems replaces the shelf. Ownership and acorns are untouched.
func (s *Shop) SetItems(spec *prefabs.ShopSpec) error {
	if spec == nil {
		return fmt.Errorf("shop: nil spec")
	}
	items := make([]Item, 0, len(spec.Items))
	byID := make(map[gadget.ID]Item, len(spec.Items))
	for _, it := range spec.Items {
		id, err := gadget.ParseID(it.Item)
		if err != nil {
			return fmt.Errorf("shop: %w", err)
		}
		if _, dup := byID[id]; dup {
			return fmt.Errorf("shop: %s listed twice", id)
		}
		if it.Cost < 0 {
			return fmt.Errorf("shop: %s has negative cost %d", id, it.Cost)
		}
		item := Item{ID: id, Cost: it.Cost, Description: it.Description}
		items = append(items, item)
		byID[id] = item
	}
	s.items = items
	s.byID = byID
	return nil
}

func (s *Shop) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Shop) Item(id gadget.ID) (Item, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Buy spends the item's cost from p's acorns and adds it to p's owned set.
func (s *Shop) Buy(p gadget.Player, id gadget.ID) error {
	item, ok := s.byID[id]
	if !ok || !p.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownItem, id)
	}
	if s.registry.IsPurchased(p, id) {
		return ErrAlreadyOwned
	}
	acorns := s.registry.Acorns(p)
	if acorns < item.Cost {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientAcorns, id, item.Cost, acorns)
	}
	s.registry.SetAcorns(p, acorns-item.Cost)
	s.registry.Purchase(p, id)
	s.log.Info("item bought",
		zap.Stringer("player", p),
		zap.Stringer("item", id),
		zap.Int("cost", item.Cost),
		zap.Int("acorns", s.registry.Acorns(p)),
	)
	return nil
}

// ToggleEquip equips an owned item or unequips an equipped one, and reports
// whether the item ends up equipped.
func (s *Shop) ToggleEquip(p gadget.Player, id gadget.ID) (bool, error) {
	if s.registry.IsEquipped(p, id) {
		s.registry.Unequip(p, id)
		return false, nil
	}
	if !s.registry.IsPurchased(p, id) {
		return false, ErrNotOwned
	}
	if !s.registry.Equip(p, id) {
		return false, ErrSlotsFull
	}
	return true, nil
}

// GrantAll gives p every item on the shelf for free.
func (s *Shop) GrantAll(p gadget.Player) {
	for _, it := range s.items {
		s.registry.Purchase(p, it.ID)
	}
}

func (s *Shop) Registry() *gadget.Registry {
	return s.registry
}
