package system

import (
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"go.uber.org/zap"
)

// ProjectileSystem flies launched acorns and resolves what they hit. A
// projectile never affects its owner. The opposing player is sent back to
// their respawn point unless shielded, NPCs and platforms are stunned, and
// the projectile is destroyed on any hit including solid geometry.
type ProjectileSystem struct {
	dt  float64
	log *zap.Logger
}

func NewProjectileSystem(log *zap.Logger) *ProjectileSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectileSystem{dt: common.TickSeconds, log: log}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pr *component.Projectile, t *component.Transform) {
		t.X += pr.VX * s.dt
		t.Y += pr.VY * s.dt

		if s.hitPlayer(w, e, pr) || s.hitStunnable(w, e, pr) || hitSolid(w, e) {
			ecs.DestroyEntity(w, e)
		}
	})
}

func (s *ProjectileSystem) hitPlayer(w *ecs.World, e ecs.Entity, pr *component.Projectile) bool {
	hit := false
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(pe ecs.Entity, p *component.Player) {
		if hit || p.Index == pr.Owner || !touching(w, e, pe) {
			return
		}
		hit = true
		if st, ok := ecs.Get(w, pe, component.StatusEffectsComponent.Kind()); ok && st.Shielded {
			w.Events().Push(ecs.Event{Kind: ecs.EventBlocked, Entity: pe, Source: e})
			s.log.Debug("projectile blocked", zap.Stringer("player", p.Index))
			return
		}
		requestRespawn(w, pe, "projectile")
	})
	return hit
}

func (s *ProjectileSystem) hitStunnable(w *ecs.World, e ecs.Entity, pr *component.Projectile) bool {
	hit := false
	visit := func(target ecs.Entity) {
		if hit || !touching(w, e, target) {
			return
		}
		hit = true
		ApplyStun(w, target, e, pr.Stun)
	}
	ecs.ForEach(w, component.PatrolComponent.Kind(), func(target ecs.Entity, _ *component.Patrol) {
		visit(target)
	})
	ecs.ForEach(w, component.MovingPlatformComponent.Kind(), func(target ecs.Entity, _ *component.MovingPlatform) {
		visit(target)
	})
	return hit
}

func hitSolid(w *ecs.World, e ecs.Entity) bool {
	hit := false
	ecs.ForEach(w, component.SolidComponent.Kind(), func(solid ecs.Entity, _ *component.Solid) {
		if !hit && !ecs.Has(w, solid, component.MovingPlatformComponent.Kind()) && touching(w, e, solid) {
			hit = true
		}
	})
	return hit
}
