package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/prefabs"
)

func artifactSprite(spec prefabs.ArtifactSpec, circle bool) *component.Sprite {
	return &component.Sprite{
		Width:  spec.Box.Width,
		Height: spec.Box.Height,
		Color:  spec.Color.RGBA,
		Circle: circle,
		Layer:  layerArtifact,
	}
}

// NewCheckpointMarker builds owner's respawn marker at (x, y).
func NewCheckpointMarker(w *ecs.World, spec prefabs.ArtifactSpec, owner gadget.Player, x, y float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("marker: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.CheckpointMarkerComponent.Kind(), &component.CheckpointMarker{Owner: owner}); err != nil {
		return 0, fmt.Errorf("marker: add checkpoint marker: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), artifactSprite(spec, false)); err != nil {
		return 0, fmt.Errorf("marker: add sprite: %w", err)
	}

	return entity, nil
}

// NewDecoy builds a dummy acorn that stuns the first opposing player to
// touch it.
func NewDecoy(w *ecs.World, spec prefabs.ArtifactSpec, placer gadget.Player, x, y float64, stun time.Duration) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("decoy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.DecoyComponent.Kind(), &component.Decoy{Placer: placer, Stun: stun}); err != nil {
		return 0, fmt.Errorf("decoy: add decoy: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: spec.Box.Width, Height: spec.Box.Height}); err != nil {
		return 0, fmt.Errorf("decoy: add hitbox: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), artifactSprite(spec, true)); err != nil {
		return 0, fmt.Errorf("decoy: add sprite: %w", err)
	}

	return entity, nil
}

// NewProjectile builds a launched acorn that lives for at most lifetime.
func NewProjectile(w *ecs.World, spec prefabs.ArtifactSpec, owner gadget.Player, x, y, vx, vy float64, stun, lifetime time.Duration) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
		Owner: owner,
		VX:    vx,
		VY:    vy,
		Stun:  stun,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: spec.Box.Width, Height: spec.Box.Height}); err != nil {
		return 0, fmt.Errorf("projectile: add hitbox: %w", err)
	}

	if lifetime > 0 {
		if err := ecs.Add(w, entity, component.TTLComponent.Kind(), &component.TTL{Remaining: lifetime}); err != nil {
			return 0, fmt.Errorf("projectile: add ttl: %w", err)
		}
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), artifactSprite(spec, true)); err != nil {
		return 0, fmt.Errorf("projectile: add sprite: %w", err)
	}

	return entity, nil
}
