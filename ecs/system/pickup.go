package system

import (
	"math"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
	"go.uber.org/zap"
)

// PickupSystem bobs acorn pickups and credits them to the player who touches
// one first.
type PickupSystem struct {
	registry *gadget.Registry
	dt       float64
	log      *zap.Logger
}

func NewPickupSystem(registry *gadget.Registry, log *zap.Logger) *PickupSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &PickupSystem{registry: registry, dt: common.TickSeconds, log: log}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if !pickup.Initialized {
			pickup.BaseY = t.Y
			pickup.Initialized = true
		}
		pickup.BobPhase += pickup.BobSpeed * s.dt
		t.Y = pickup.BaseY + math.Sin(pickup.BobPhase)*pickup.BobAmplitude

		ecs.ForEach(w, component.PlayerComponent.Kind(), func(pe ecs.Entity, p *component.Player) {
			if !ecs.IsAlive(w, e) || !touching(w, e, pe) {
				return
			}
			s.registry.AddAcorns(p.Index, pickup.Value)
			w.Events().Push(ecs.Event{Kind: ecs.EventCollected, Entity: pe, Source: e, Value: pickup.Value})
			s.log.Debug("acorn collected", zap.Stringer("player", p.Index), zap.Int("total", s.registry.Acorns(p.Index)))
			ecs.DestroyEntity(w, e)
		})
	})
}
