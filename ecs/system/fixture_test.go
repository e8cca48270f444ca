package system

import (
	"testing"
	"time"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/ecs/entity"
	"github.com/milk9111/acornrun/gadget"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	t        *testing.T
	w        *ecs.World
	prefabs  *entity.Prefabs
	registry *gadget.Registry
	catalog  *gadget.Catalog
	players  [gadget.MaxPlayers]ecs.Entity
}

// newFixture places player one at (100, 100) and player two at (400, 100).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	p, err := entity.LoadPrefabs()
	if err != nil {
		t.Fatalf("load prefabs: %v", err)
	}
	f := &fixture{
		t:        t,
		w:        ecs.NewWorld(),
		prefabs:  p,
		registry: gadget.NewRegistry(),
		catalog:  gadget.NewCatalog(gadget.DefaultTuning()),
	}
	for i, x := range []float64{100, 400} {
		e, err := entity.NewPlayer(f.w, p.Player, gadget.Player(i), x, 100)
		if err != nil {
			t.Fatalf("new player %d: %v", i, err)
		}
		f.players[i] = e
	}
	return f
}

// equip gives player idx the listed gadgets and a controller.
func (f *fixture) equip(idx gadget.Player, ids ...gadget.ID) *gadget.Controller {
	f.t.Helper()
	for _, id := range ids {
		f.registry.Purchase(idx, id)
		if !f.registry.Equip(idx, id) {
			f.t.Fatalf("equip %v for %v failed", id, idx)
		}
	}
	ctrl, err := AttachGadgets(f.w, f.players[idx], f.registry, f.catalog, f.prefabs.Artifacts, zaptest.NewLogger(f.t))
	if err != nil {
		f.t.Fatalf("attach gadgets: %v", err)
	}
	return ctrl
}

// use presses the use key for player idx and runs one gadget tick.
func (f *fixture) use(idx gadget.Player) {
	f.t.Helper()
	in, ok := ecs.Get(f.w, f.players[idx], component.InputComponent.Kind())
	if !ok {
		f.t.Fatalf("player %v has no input", idx)
	}
	in.UseGadget = true
	NewGadgetSystem().Update(f.w)
}

func (f *fixture) moveTo(e ecs.Entity, x, y float64) {
	t, ok := ecs.Get(f.w, e, component.TransformComponent.Kind())
	if !ok {
		f.t.Fatalf("%v has no transform", e)
	}
	t.X, t.Y = x, y
}

func (f *fixture) position(e ecs.Entity) (float64, float64) {
	return positionOf(f.w, e)
}

func (f *fixture) status(idx gadget.Player) *component.StatusEffects {
	st, ok := ecs.Get(f.w, f.players[idx], component.StatusEffectsComponent.Kind())
	if !ok {
		f.t.Fatalf("player %v has no status effects", idx)
	}
	return st
}

func (f *fixture) npc(x, y float64) ecs.Entity {
	f.t.Helper()
	e, err := entity.NewNPC(f.w, &f.prefabs.World.NPC, x, y, x-50, x+50, false)
	if err != nil {
		f.t.Fatalf("new npc: %v", err)
	}
	return e
}

// ticksFor is how many fixed ticks it takes for d to fully elapse.
func ticksFor(d time.Duration) int {
	n := int(d / common.TickDuration)
	if time.Duration(n)*common.TickDuration < d {
		n++
	}
	return n
}

func run(w *ecs.World, ticks int, systems ...ecs.System) {
	sched := ecs.NewScheduler(systems...)
	for i := 0; i < ticks; i++ {
		sched.Update(w)
	}
}
