package entity

import (
	"fmt"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/prefabs"
)

// NewAcornPickup builds a collectible acorn.
func NewAcornPickup(w *ecs.World, spec *prefabs.PickupSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("pickup: nil spec")
	}
	value := spec.Value
	if value <= 0 {
		value = 1
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{
		Value:        value,
		BobAmplitude: spec.BobAmplitude,
		BobSpeed:     spec.BobSpeed,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: spec.Size, Height: spec.Size}); err != nil {
		return 0, fmt.Errorf("pickup: add hitbox: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  spec.Size,
		Height: spec.Size,
		Color:  spec.Color.RGBA,
		Circle: true,
		Layer:  layerArtifact,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add sprite: %w", err)
	}

	return entity, nil
}
