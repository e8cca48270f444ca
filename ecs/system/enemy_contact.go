package system

import (
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

// EnemyContactSystem sends players touching a hostile NPC back to their
// respawn point. Invisible players pass unharmed.
type EnemyContactSystem struct{}

func NewEnemyContactSystem() *EnemyContactSystem {
	return &EnemyContactSystem{}
}

func (s *EnemyContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.EnemyContactComponent.Kind(), func(e ecs.Entity, ec *component.EnemyContact) {
		hit := false
		ecs.ForEach(w, component.PlayerComponent.Kind(), func(pe ecs.Entity, _ *component.Player) {
			if st, ok := ecs.Get(w, pe, component.StatusEffectsComponent.Kind()); ok && st.Invisible {
				return
			}
			if !touching(w, e, pe) {
				return
			}
			requestRespawn(w, pe, "enemy")
			hit = true
		})
		if hit && ec.DestroyOnHit {
			ecs.DestroyEntity(w, e)
		}
	})
}
