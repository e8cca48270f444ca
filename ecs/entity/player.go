package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/prefabs"
)

const (
	layerTerrain  = 0
	layerArtifact = 1
	layerActor    = 2
)

// NewPlayer builds player idx standing at (x, y). The gadget controller is
// attached separately once the scene has a host for it.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, idx gadget.Player, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if !idx.Valid() {
		return 0, fmt.Errorf("player: invalid index %d", idx)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Index:              idx,
		MoveSpeed:          spec.MoveSpeed,
		JumpSpeed:          spec.JumpSpeed,
		BoostedJumpSpeed:   spec.BoostedJumpSpeed,
		AirControl:         spec.AirControl,
		WingsuitAirControl: spec.WingsuitAirControl,
		WingsuitFallSpeed:  spec.WingsuitFallSpeed,
		ClimbSpeed:         spec.ClimbSpeed,
		SpawnX:             x,
		SpawnY:             y,
		RespawnOffsetY:     spec.RespawnOffsetY,
		FacingLeft:         idx == gadget.PlayerTwo,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{SelectSlot: -1}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return 0, fmt.Errorf("player: add player collision: %w", err)
	}

	if err := ecs.Add(w, entity, component.StatusEffectsComponent.Kind(), &component.StatusEffects{}); err != nil {
		return 0, fmt.Errorf("player: add status effects: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Box.Width,
		Height:   spec.Box.Height,
		Mass:     spec.Mass,
		Friction: spec.Friction,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitboxComponent.Kind(), &component.Hitbox{Width: spec.Box.Width, Height: spec.Box.Height}); err != nil {
		return 0, fmt.Errorf("player: add hitbox: %w", err)
	}

	if spec.Muzzle.X != 0 || spec.Muzzle.Y != 0 {
		if err := ecs.Add(w, entity, component.MuzzleComponent.Kind(), &component.Muzzle{
			OffsetX: math.Abs(spec.Muzzle.X),
			OffsetY: spec.Muzzle.Y,
		}); err != nil {
			return 0, fmt.Errorf("player: add muzzle: %w", err)
		}
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  spec.Box.Width,
		Height: spec.Box.Height,
		Color:  spec.Color(int(idx)),
		Layer:  layerActor,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	return entity, nil
}

// FindPlayer returns the entity of player idx, if it is in the world.
func FindPlayer(w *ecs.World, idx gadget.Player) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if !found.Valid() && p.Index == idx {
			found = e
		}
	})
	return found, found.Valid()
}
