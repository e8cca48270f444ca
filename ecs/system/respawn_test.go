package system

import (
	"testing"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/ecs/entity"
	"github.com/milk9111/acornrun/gadget"
)

func (f *fixture) ground(idx gadget.Player) {
	pc, ok := ecs.Get(f.w, f.players[idx], component.PlayerCollisionComponent.Kind())
	if !ok {
		f.t.Fatalf("player %v has no collision state", idx)
	}
	pc.Grounded = true
}

func TestRespawnWithoutMarkerUsesSpawn(t *testing.T) {
	f := newFixture(t)
	e := f.players[gadget.PlayerOne]
	f.moveTo(e, 600, 300)
	requestRespawn(f.w, e, "test")

	NewRespawnSystem(nil).Update(f.w)

	if x, y := f.position(e); x != 100 || y != 100 {
		t.Fatalf("respawned at (%v,%v), want spawn (100,100)", x, y)
	}
	if ecs.Has(f.w, e, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("request should be consumed")
	}
	events := f.w.Events().Drain()
	if len(events) != 1 || events[0].Kind != ecs.EventRespawned {
		t.Fatalf("events = %v, want one respawn", events)
	}
}

func TestRespawnUsesMostRecentMarker(t *testing.T) {
	f := newFixture(t)
	e := f.players[gadget.PlayerOne]
	ctrl := f.equip(gadget.PlayerOne, gadget.Checkpoint)
	tuning := f.catalog.Tuning().Checkpoint
	p, _ := ecs.Get(f.w, e, component.PlayerComponent.Kind())

	f.ground(gadget.PlayerOne)
	f.moveTo(e, 200, 150)
	f.use(gadget.PlayerOne)

	run(f.w, ticksFor(tuning.Cooldown), NewGadgetSystem())
	if ctrl.IsOnCooldown(gadget.Checkpoint) {
		t.Fatalf("checkpoint should be ready again")
	}

	f.ground(gadget.PlayerOne)
	f.moveTo(e, 500, 250)
	f.use(gadget.PlayerOne)

	if got := ecs.Count(f.w, component.CheckpointMarkerComponent.Kind()); got != 1 {
		t.Fatalf("markers = %d, want a single relocated marker", got)
	}

	f.moveTo(e, 900, 900)
	requestRespawn(f.w, e, "test")
	NewRespawnSystem(nil).Update(f.w)

	wantX := 500 + tuning.OffsetX
	wantY := 250 + tuning.OffsetY + p.RespawnOffsetY
	if x, y := f.position(e); x != wantX || y != wantY {
		t.Fatalf("respawned at (%v,%v), want latest marker (%v,%v)", x, y, wantX, wantY)
	}
}

func TestRespawnWhenFallingOutOfLevel(t *testing.T) {
	f := newFixture(t)
	if _, err := entity.NewLevelBounds(f.w, 800, 600, 700); err != nil {
		t.Fatalf("new level bounds: %v", err)
	}
	e := f.players[gadget.PlayerTwo]
	f.moveTo(e, 420, 710)

	NewRespawnSystem(nil).Update(f.w)

	if x, y := f.position(e); x != 400 || y != 100 {
		t.Fatalf("fallen player at (%v,%v), want spawn (400,100)", x, y)
	}
	if x, y := f.position(f.players[gadget.PlayerOne]); x != 100 || y != 100 {
		t.Fatalf("player one should not move, at (%v,%v)", x, y)
	}
}
