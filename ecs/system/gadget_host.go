package system

import (
	"fmt"
	"time"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/ecs/entity"
	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/prefabs"
	"go.uber.org/zap"
)

// GadgetHost connects one player's gadget controller to the world. Handles
// it hands out are entity ids.
type GadgetHost struct {
	w         *ecs.World
	e         ecs.Entity
	player    gadget.Player
	artifacts prefabs.ArtifactsSpec
	log       *zap.Logger
}

var _ gadget.Host = (*GadgetHost)(nil)

func NewGadgetHost(w *ecs.World, e ecs.Entity, player gadget.Player, artifacts prefabs.ArtifactsSpec, log *zap.Logger) *GadgetHost {
	if log == nil {
		log = zap.NewNop()
	}
	return &GadgetHost{w: w, e: e, player: player, artifacts: artifacts, log: log}
}

func (h *GadgetHost) Position() (float64, float64) {
	t, ok := ecs.Get(h.w, h.e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return t.X, t.Y
}

func (h *GadgetHost) Grounded() bool {
	pc, ok := ecs.Get(h.w, h.e, component.PlayerCollisionComponent.Kind())
	return ok && pc.Grounded
}

func (h *GadgetHost) FacingLeft() bool {
	p, ok := ecs.Get(h.w, h.e, component.PlayerComponent.Kind())
	return ok && p.FacingLeft
}

func (h *GadgetHost) Muzzle() (float64, float64, bool) {
	m, ok := ecs.Get(h.w, h.e, component.MuzzleComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	x, y := h.Position()
	if h.FacingLeft() {
		return x - m.OffsetX, y + m.OffsetY, true
	}
	return x + m.OffsetX, y + m.OffsetY, true
}

func (h *GadgetHost) SetInvisible(on bool, opacity float64) {
	st, hasStatus := ecs.Get(h.w, h.e, component.StatusEffectsComponent.Kind())
	wasInvisible := hasStatus && st.Invisible
	if sprite, ok := ecs.Get(h.w, h.e, component.SpriteComponent.Kind()); ok {
		switch {
		case on:
			if hasStatus && !wasInvisible {
				st.RestoreAlpha = sprite.Alpha
			}
			sprite.Alpha = common.Clamp(opacity, 0.01, 1)
		case wasInvisible:
			sprite.Alpha = st.RestoreAlpha
		case !hasStatus:
			sprite.Alpha = 0
		}
	}
	if hasStatus {
		st.Invisible = on
	}
}

func (h *GadgetHost) SetShielded(on bool) {
	if st, ok := ecs.Get(h.w, h.e, component.StatusEffectsComponent.Kind()); ok {
		st.Shielded = on
	}
}

func (h *GadgetHost) SetBootsPending(on bool) {
	if st, ok := ecs.Get(h.w, h.e, component.StatusEffectsComponent.Kind()); ok {
		st.BootsPending = on
	}
}

func (h *GadgetHost) PlaceMarker(x, y float64) gadget.Handle {
	e, err := entity.NewCheckpointMarker(h.w, h.artifacts.Marker, h.player, x, y)
	if err != nil {
		h.log.Warn("place checkpoint marker", zap.Error(err))
		return 0
	}
	return gadget.Handle(e)
}

func (h *GadgetHost) MoveMarker(handle gadget.Handle, x, y float64) bool {
	e := ecs.Entity(handle)
	if !ecs.IsAlive(h.w, e) || !ecs.Has(h.w, e, component.CheckpointMarkerComponent.Kind()) {
		return false
	}
	t, ok := ecs.Get(h.w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	t.X, t.Y = x, y
	return true
}

func (h *GadgetHost) SpawnDecoy(x, y float64, stun time.Duration) gadget.Handle {
	e, err := entity.NewDecoy(h.w, h.artifacts.Decoy, h.player, x, y, stun)
	if err != nil {
		h.log.Warn("spawn decoy", zap.Error(err))
		return 0
	}
	return gadget.Handle(e)
}

func (h *GadgetHost) SpawnProjectile(x, y, vx, vy float64, stun, lifetime time.Duration) gadget.Handle {
	e, err := entity.NewProjectile(h.w, h.artifacts.Projectile, h.player, x, y, vx, vy, stun, lifetime)
	if err != nil {
		h.log.Warn("spawn projectile", zap.Error(err))
		return 0
	}
	return gadget.Handle(e)
}

func (h *GadgetHost) StunArea(x, y, radius float64, d time.Duration) int {
	hit := 0
	ecs.ForEach(h.w, component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Transform) {
		if e == h.e || !stunnable(h.w, e) {
			return
		}
		if !common.Within(t.X, t.Y, x, y, radius) {
			return
		}
		if ApplyStun(h.w, e, h.e, d) {
			hit++
		}
	})
	h.log.Debug("tail swipe", zap.Int("hit", hit))
	return hit
}

// AttachGadgets gives player entity e a gadget controller and HUD display
// bound to this world.
func AttachGadgets(w *ecs.World, e ecs.Entity, registry *gadget.Registry, catalog *gadget.Catalog, artifacts prefabs.ArtifactsSpec, log *zap.Logger) (*gadget.Controller, error) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("attach gadgets: %v is not a player", e)
	}
	if log == nil {
		log = zap.NewNop()
	}
	host := NewGadgetHost(w, e, p.Index, artifacts, log)
	ctrl := gadget.NewController(p.Index, registry, catalog, host, log)
	if err := ecs.Add(w, e, component.GadgetsComponent.Kind(), &component.Gadgets{
		Controller: ctrl,
		Display:    gadget.NewDisplay(ctrl),
	}); err != nil {
		return nil, err
	}
	return ctrl, nil
}
