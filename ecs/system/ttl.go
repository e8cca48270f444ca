package system

import (
	"time"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

// TTLSystem destroys entities whose time to live ran out.
type TTLSystem struct {
	dt time.Duration
}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{dt: common.TickDuration}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Remaining -= s.dt
		if ttl.Remaining <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}

// expireAfter gives e a TTL of d. A non-positive d, or a failed add, destroys
// e right away so it never lingers without a timer.
func expireAfter(w *ecs.World, e ecs.Entity, d time.Duration) error {
	if d <= 0 {
		ecs.DestroyEntity(w, e)
		return nil
	}
	if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: d}); err != nil {
		ecs.DestroyEntity(w, e)
		return err
	}
	return nil
}
