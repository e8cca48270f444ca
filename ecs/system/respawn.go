package system

import (
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"go.uber.org/zap"
)

// RespawnSystem performs pending respawn requests and catches players who
// fell out of the level. It runs after physics so the teleport is not undone
// by this tick's step. A player returns to their most recent checkpoint
// marker if one is placed in this scene, otherwise to their spawn point.
type RespawnSystem struct {
	log *zap.Logger
}

func NewRespawnSystem(log *zap.Logger) *RespawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &RespawnSystem{log: log}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if be, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, be, component.LevelBoundsComponent.Kind())
		ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Player, t *component.Transform) {
			if bounds.KillY > 0 && t.Y > bounds.KillY {
				requestRespawn(w, e, "fell")
			}
		})
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, req *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok {
			return
		}

		x, y := RespawnPoint(w, e)
		Teleport(w, e, x, y)
		p.Climbing = false

		w.Events().Push(ecs.Event{Kind: ecs.EventRespawned, Entity: e})
		s.log.Debug("player respawned",
			zap.Stringer("player", p.Index),
			zap.String("reason", req.Reason),
			zap.Float64("x", x),
			zap.Float64("y", y),
		)
	})
}

// RespawnPoint resolves where player e comes back: the latest marker plus the
// respawn offset, else the spawn point.
func RespawnPoint(w *ecs.World, e ecs.Entity) (float64, float64) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return positionOf(w, e)
	}
	if g, ok := ecs.Get(w, e, component.GadgetsComponent.Kind()); ok {
		if x, y, ok := g.Controller.Marker(); ok {
			return x, y + p.RespawnOffsetY
		}
	}
	return p.SpawnX, p.SpawnY
}
