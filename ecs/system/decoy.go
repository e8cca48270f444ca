package system

import (
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"go.uber.org/zap"
)

// DecoySystem springs dummy acorns. Only the opposing player triggers one;
// they are stopped and stunned, the decoy vanishes and its entity is
// destroyed when the stun window ends.
type DecoySystem struct {
	log *zap.Logger
}

func NewDecoySystem(log *zap.Logger) *DecoySystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &DecoySystem{log: log}
}

func (s *DecoySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DecoyComponent.Kind(), func(e ecs.Entity, d *component.Decoy) {
		var victim ecs.Entity
		ecs.ForEach(w, component.PlayerComponent.Kind(), func(pe ecs.Entity, p *component.Player) {
			if victim.Valid() || p.Index == d.Placer || !touching(w, e, pe) {
				return
			}
			victim = pe
		})
		if !victim.Valid() {
			return
		}

		stun := d.Stun
		x, y := positionOf(w, victim)
		Teleport(w, victim, x, y)
		ApplyStun(w, victim, e, stun)
		w.Events().Push(ecs.Event{Kind: ecs.EventDecoyTriggered, Entity: victim, Source: e})
		s.log.Debug("decoy triggered", zap.Stringer("victim", victim), zap.Duration("stun", stun))

		ecs.Remove(w, e, component.DecoyComponent.Kind())
		ecs.Remove(w, e, component.HitboxComponent.Kind())
		ecs.Remove(w, e, component.SpriteComponent.Kind())
		if err := expireAfter(w, e, stun); err != nil {
			s.log.Warn("decoy ttl", zap.Stringer("decoy", e), zap.Error(err))
		}
	})
}

func positionOf(w *ecs.World, e ecs.Entity) (float64, float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return t.X, t.Y
}
