package entity

import (
	"fmt"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/prefabs"
)

// NewNPC builds a patrolling hedgehog that walks between minX and maxX and
// sends touching players back to their respawn point.
func NewNPC(w *ecs.World, spec *prefabs.NPCSpec, x, y, minX, maxX float64, destroyOnHit bool) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("npc: nil spec")
	}
	if minX > maxX {
		minX, maxX = maxX, minX
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("npc: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PatrolComponent.Kind(), &component.Patrol{
		Speed: spec.Speed,
		MinX:  minX,
		MaxX:  maxX,
		Dir:   1,
	}); err != nil {
		return 0, fmt.Errorf("npc: add patrol: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyContactComponent.Kind(), &component.EnemyContact{
		DestroyOnHit: destroyOnHit || spec.DestroyOnHit,
	}); err != nil {
		return 0, fmt.Errorf("npc: add enemy contact: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:     spec.Box.Width,
		Height:    spec.Box.Height,
		Kinematic: true,
	}); err != nil {
		return 0, fmt.Errorf("npc: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: spec.Box.Width, Height: spec.Box.Height}); err != nil {
		return 0, fmt.Errorf("npc: add hitbox: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  spec.Box.Width,
		Height: spec.Box.Height,
		Color:  spec.Color.RGBA,
		Layer:  layerActor,
	}); err != nil {
		return 0, fmt.Errorf("npc: add sprite: %w", err)
	}

	return entity, nil
}
