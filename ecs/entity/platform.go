package entity

import (
	"fmt"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/prefabs"
)

// NewMovingPlatform builds a kinematic platform shuttling from (ax, ay) to
// (bx, by) and back.
func NewMovingPlatform(w *ecs.World, spec *prefabs.PlatformSpec, ax, ay, bx, by, width, height float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("platform: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: ax, Y: ay}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{
		AX: ax, AY: ay,
		BX: bx, BY: by,
		Speed:   spec.Speed,
		Forward: true,
	}); err != nil {
		return 0, fmt.Errorf("platform: add moving platform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:     width,
		Height:    height,
		Friction:  1,
		Kinematic: true,
	}); err != nil {
		return 0, fmt.Errorf("platform: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("platform: add hitbox: %w", err)
	}

	if err := ecs.Add(w, entity, component.SolidComponent.Kind(), &component.Solid{}); err != nil {
		return 0, fmt.Errorf("platform: add solid: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  width,
		Height: height,
		Color:  spec.Color.RGBA,
		Layer:  layerTerrain,
	}); err != nil {
		return 0, fmt.Errorf("platform: add sprite: %w", err)
	}

	return entity, nil
}
