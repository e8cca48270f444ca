package shop

import (
	"errors"
	"testing"

	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/prefabs"
	"go.uber.org/zap/zaptest"
)

func newTestShop(t *testing.T) (*Shop, *gadget.Registry) {
	t.Helper()
	spec := &prefabs.ShopSpec{Items: []prefabs.ShopItemSpec{
		{Item: "Shield", Cost: 4},
		{Item: "Boots", Cost: 3},
		{Item: "Wingsuit", Cost: 3},
		{Item: "Launcher", Cost: 6},
		{Item: "Acorn", Cost: 0},
	}}
	r := gadget.NewRegistry()
	s, err := New(r, spec, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("new shop: %v", err)
	}
	return s, r
}

func TestBuy(t *testing.T) {
	tests := []struct {
		name       string
		acorns     int
		owned      bool
		item       gadget.ID
		wantErr    error
		wantAcorns int
	}{
		{name: "exact_change", acorns: 4, item: gadget.Shield, wantAcorns: 0},
		{name: "with_change", acorns: 10, item: gadget.Boots, wantAcorns: 7},
		{name: "too_poor", acorns: 2, item: gadget.Shield, wantErr: ErrInsufficientAcorns, wantAcorns: 2},
		{name: "already_owned", acorns: 10, owned: true, item: gadget.Shield, wantErr: ErrAlreadyOwned, wantAcorns: 10},
		{name: "not_on_shelf", acorns: 10, item: gadget.TailSwipe, wantErr: ErrUnknownItem, wantAcorns: 10},
		{name: "free_item", acorns: 0, item: gadget.DummyAcorn, wantAcorns: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, r := newTestShop(t)
			r.SetAcorns(gadget.PlayerOne, tc.acorns)
			if tc.owned {
				r.Purchase(gadget.PlayerOne, tc.item)
			}

			err := s.Buy(gadget.PlayerOne, tc.item)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Buy err = %v, want %v", err, tc.wantErr)
			}
			if got := r.Acorns(gadget.PlayerOne); got != tc.wantAcorns {
				t.Fatalf("acorns = %d, want %d", got, tc.wantAcorns)
			}
			if tc.wantErr == nil && !r.IsPurchased(gadget.PlayerOne, tc.item) {
				t.Fatalf("bought item not owned")
			}
			if r.IsPurchased(gadget.PlayerTwo, tc.item) {
				t.Fatalf("purchase leaked to the other player")
			}
		})
	}
}

func TestToggleEquip(t *testing.T) {
	s, r := newTestShop(t)
	s.GrantAll(gadget.PlayerOne)

	if _, err := s.ToggleEquip(gadget.PlayerTwo, gadget.Shield); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("equip of unowned item err = %v, want ErrNotOwned", err)
	}

	for _, id := range []gadget.ID{gadget.Shield, gadget.Boots, gadget.Wingsuit} {
		on, err := s.ToggleEquip(gadget.PlayerOne, id)
		if err != nil || !on {
			t.Fatalf("equip %v = %v, %v", id, on, err)
		}
	}
	if _, err := s.ToggleEquip(gadget.PlayerOne, gadget.Launcher); !errors.Is(err, ErrSlotsFull) {
		t.Fatalf("fourth equip err = %v, want ErrSlotsFull", err)
	}

	on, err := s.ToggleEquip(gadget.PlayerOne, gadget.Boots)
	if err != nil || on {
		t.Fatalf("toggle of equipped item = %v, %v, want unequipped", on, err)
	}
	if got := r.EquippedList(gadget.PlayerOne); len(got) != 2 || got[0] != gadget.Shield || got[1] != gadget.Wingsuit {
		t.Fatalf("equipped = %v, want [Shield Wingsuit]", got)
	}
}

func TestSetItemsRejectsBadShelves(t *testing.T) {
	tests := []struct {
		name  string
		items []prefabs.ShopItemSpec
	}{
		{"unknown", []prefabs.ShopItemSpec{{Item: "Jetpack", Cost: 1}}},
		{"duplicate", []prefabs.ShopItemSpec{{Item: "Shield", Cost: 1}, {Item: "shield", Cost: 2}}},
		{"negative", []prefabs.ShopItemSpec{{Item: "Shield", Cost: -1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestShop(t)
			before := len(s.Items())
			if err := s.SetItems(&prefabs.ShopSpec{Items: tc.items}); err == nil {
				t.Fatalf("expected error")
			}
			if len(s.Items()) != before {
				t.Fatalf("failed SetItems changed the shelf")
			}
		})
	}
}

func TestEmbeddedShelf(t *testing.T) {
	spec, err := prefabs.LoadShopSpec()
	if err != nil {
		t.Fatalf("load shop spec: %v", err)
	}
	s, err := New(gadget.NewRegistry(), spec, nil)
	if err != nil {
		t.Fatalf("new shop: %v", err)
	}
	if got, want := len(s.Items()), len(gadget.All()); got != want {
		t.Fatalf("shelf has %d items, want %d", got, want)
	}
}
