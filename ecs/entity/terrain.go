package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

// NewSolid builds static level geometry centred on (x, y).
func NewSolid(w *ecs.World, x, y, width, height float64, tint color.RGBA) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("solid: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    width,
		Height:   height,
		Friction: 0.8,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("solid: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("solid: add hitbox: %w", err)
	}

	if err := ecs.Add(w, entity, component.SolidComponent.Kind(), &component.Solid{}); err != nil {
		return 0, fmt.Errorf("solid: add solid: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  width,
		Height: height,
		Color:  tint,
		Layer:  layerTerrain,
	}); err != nil {
		return 0, fmt.Errorf("solid: add sprite: %w", err)
	}

	return entity, nil
}

// NewClimbZone builds a non-solid area players can climb with the claws.
func NewClimbZone(w *ecs.World, x, y, width, height float64, tint color.RGBA) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("climb zone: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("climb zone: add hitbox: %w", err)
	}

	if err := ecs.Add(w, entity, component.ClimbableComponent.Kind(), &component.Climbable{}); err != nil {
		return 0, fmt.Errorf("climb zone: add climbable: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  width,
		Height: height,
		Color:  tint,
		Layer:  layerTerrain,
	}); err != nil {
		return 0, fmt.Errorf("climb zone: add sprite: %w", err)
	}

	return entity, nil
}

// NewLevelBounds records the scene size; players below killY are respawned.
func NewLevelBounds(w *ecs.World, width, height, killY float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  width,
		Height: height,
		KillY:  killY,
	}); err != nil {
		return 0, fmt.Errorf("level bounds: add bounds: %w", err)
	}
	return entity, nil
}
