package system

import (
	"time"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

// StunSystem counts down Stun components and removes them once they expire.
// Because the countdown lives on the stunned entity, destroying the entity
// mid-stun drops the timer with it.
type StunSystem struct {
	dt time.Duration
}

func NewStunSystem() *StunSystem {
	return &StunSystem{dt: common.TickDuration}
}

func (s *StunSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.StunComponent.Kind(), func(e ecs.Entity, stun *component.Stun) {
		stun.Remaining -= s.dt
		if stun.Remaining <= 0 {
			ecs.Remove(w, e, component.StunComponent.Kind())
		}
	})
}

// ApplyStun disables target for d. Stunning an already stunned target
// restarts its timer instead of stacking.
func ApplyStun(w *ecs.World, target, source ecs.Entity, d time.Duration) bool {
	if w == nil || d <= 0 || !ecs.IsAlive(w, target) {
		return false
	}
	if stun, ok := ecs.Get(w, target, component.StunComponent.Kind()); ok {
		stun.Remaining = d
	} else if err := ecs.Add(w, target, component.StunComponent.Kind(), &component.Stun{Remaining: d}); err != nil {
		return false
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventStunned, Entity: target, Source: source})
	return true
}

func IsStunned(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.StunComponent.Kind())
}

// stunnable reports whether TailSwipe and projectiles may stun e.
func stunnable(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.PlayerComponent.Kind()) ||
		ecs.Has(w, e, component.PatrolComponent.Kind()) ||
		ecs.Has(w, e, component.MovingPlatformComponent.Kind())
}
