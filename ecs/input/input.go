package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/acornrun/config"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
)

// Bindings is one player's parsed key map.
type Bindings struct {
	Left, Right, Up, Down ebiten.Key
	Jump                  ebiten.Key
	Slots                 []ebiten.Key
	Previous, Next, Use   ebiten.Key
}

// ParseKey resolves an ebiten key name such as "A", "ArrowUp" or "Digit1".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

func ParseBindings(cfg config.PlayerBindings) (Bindings, error) {
	var b Bindings
	fields := []struct {
		name string
		src  string
		dst  *ebiten.Key
	}{
		{"left", cfg.Left, &b.Left},
		{"right", cfg.Right, &b.Right},
		{"up", cfg.Up, &b.Up},
		{"down", cfg.Down, &b.Down},
		{"jump", cfg.Jump, &b.Jump},
		{"previous", cfg.Previous, &b.Previous},
		{"next", cfg.Next, &b.Next},
		{"use", cfg.Use, &b.Use},
	}
	for _, f := range fields {
		k, err := ParseKey(f.src)
		if err != nil {
			return Bindings{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = k
	}
	for i, name := range cfg.Slots {
		k, err := ParseKey(name)
		if err != nil {
			return Bindings{}, fmt.Errorf("slot %d: %w", i+1, err)
		}
		b.Slots = append(b.Slots, k)
	}
	return b, nil
}

// ParseAll parses the bindings for every player slot in order.
func ParseAll(cfgs []config.PlayerBindings) ([gadget.MaxPlayers]Bindings, error) {
	var out [gadget.MaxPlayers]Bindings
	if len(cfgs) != gadget.MaxPlayers {
		return out, fmt.Errorf("want bindings for %d players, got %d", gadget.MaxPlayers, len(cfgs))
	}
	for i, c := range cfgs {
		b, err := ParseBindings(c)
		if err != nil {
			return out, fmt.Errorf("player %d: %w", i+1, err)
		}
		out[i] = b
	}
	return out, nil
}

// Keyboard is the key state the system polls.
type Keyboard interface {
	Pressed(ebiten.Key) bool
	JustPressed(ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// System writes each player's keyboard state into its Input component.
type System struct {
	bindings [gadget.MaxPlayers]Bindings
	keys     Keyboard
}

// NewSystem polls ebiten's keyboard when keys is nil.
func NewSystem(bindings [gadget.MaxPlayers]Bindings, keys Keyboard) *System {
	if keys == nil {
		keys = ebitenKeyboard{}
	}
	return &System{bindings: bindings, keys: keys}
}

func (s *System) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input) {
		if !p.Index.Valid() {
			return
		}
		b := &s.bindings[p.Index]

		in.MoveX = axis(s.keys.Pressed(b.Left), s.keys.Pressed(b.Right))
		in.MoveY = axis(s.keys.Pressed(b.Up), s.keys.Pressed(b.Down))
		in.Jump = s.keys.Pressed(b.Jump)
		in.JumpPressed = s.keys.JustPressed(b.Jump)

		in.SelectSlot = -1
		for i, k := range b.Slots {
			if s.keys.JustPressed(k) {
				in.SelectSlot = i
				break
			}
		}
		in.SelectPrev = s.keys.JustPressed(b.Previous)
		in.SelectNext = s.keys.JustPressed(b.Next)
		in.UseGadget = s.keys.JustPressed(b.Use)
	})
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}
