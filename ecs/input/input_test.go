package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/acornrun/config"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
)

type fakeKeyboard struct {
	held map[ebiten.Key]bool
	down map[ebiten.Key]bool
}

func (f *fakeKeyboard) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeKeyboard) JustPressed(k ebiten.Key) bool { return f.down[k] }

func defaultBindings(t *testing.T) [gadget.MaxPlayers]Bindings {
	t.Helper()
	cfg, err := config.Load("does-not-exist.toml")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	b, err := ParseAll(cfg.Players)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	return b
}

func TestParseBindings(t *testing.T) {
	b := defaultBindings(t)
	if b[0].Left != ebiten.KeyA || b[0].Use != ebiten.KeyR {
		t.Fatalf("player one = %+v", b[0])
	}
	if b[1].Jump != ebiten.KeyArrowUp || b[1].Previous != ebiten.KeyComma {
		t.Fatalf("player two = %+v", b[1])
	}
	if len(b[1].Slots) != 3 || b[1].Slots[2] != ebiten.KeyDigit0 {
		t.Fatalf("player two slots = %v", b[1].Slots)
	}
}

func TestParseBindingsRejectsUnknownKey(t *testing.T) {
	cfg := config.PlayerBindings{Left: "A", Right: "D", Up: "W", Down: "S", Jump: "W", Previous: "Q", Next: "E", Use: "NotAKey"}
	if _, err := ParseBindings(cfg); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := ParseAll([]config.PlayerBindings{cfg}); err == nil {
		t.Fatalf("expected error for a single player's bindings")
	}
}

func TestSystemWritesPerPlayerInput(t *testing.T) {
	w := ecs.NewWorld()
	players := make([]ecs.Entity, gadget.MaxPlayers)
	for i := range players {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Index: gadget.Player(i)}); err != nil {
			t.Fatalf("add player: %v", err)
		}
		if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{SelectSlot: -1}); err != nil {
			t.Fatalf("add input: %v", err)
		}
		players[i] = e
	}

	keys := &fakeKeyboard{
		held: map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyArrowUp: true, ebiten.KeyArrowRight: true},
		down: map[ebiten.Key]bool{ebiten.KeyDigit2: true, ebiten.KeyR: true, ebiten.KeyArrowUp: true, ebiten.KeyPeriod: true},
	}
	NewSystem(defaultBindings(t), keys).Update(w)

	one, _ := ecs.Get(w, players[0], component.InputComponent.Kind())
	if one.MoveX != -1 || one.SelectSlot != 1 || !one.UseGadget || one.Jump || one.SelectNext {
		t.Fatalf("player one input = %+v", one)
	}
	two, _ := ecs.Get(w, players[1], component.InputComponent.Kind())
	if two.MoveX != 1 || two.MoveY != -1 || !two.Jump || !two.JumpPressed || !two.SelectNext || two.UseGadget || two.SelectSlot != -1 {
		t.Fatalf("player two input = %+v", two)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	if got := axis(true, true); got != 0 {
		t.Fatalf("axis = %v, want 0", got)
	}
}
