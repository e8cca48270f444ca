package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
)

// PlayerControllerSystem turns input into body velocity. It is where the
// gadget status flags and the passive gadgets reach movement: stun disables
// input, BootsPending boosts the next jump, the selected Wingsuit widens air
// control and caps fall speed, and selected ClimberClaws let the player climb
// inside climb zones.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input, pb *component.PhysicsBody) {
		defer func() { in.JumpPressed = false }()

		body := pb.Body
		if body == nil {
			return
		}
		vel := body.Velocity()

		if IsStunned(w, e) {
			p.Climbing = false
			body.SetVelocityVector(cp.Vector{X: 0, Y: vel.Y})
			return
		}

		pc, hasCollision := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		grounded := hasCollision && (pc.Grounded || pc.GroundGrace > 0)

		var ctrl *gadget.Controller
		if g, ok := ecs.Get(w, e, component.GadgetsComponent.Kind()); ok {
			ctrl = g.Controller
		}
		wingsuit := ctrl.IsSelected(gadget.Wingsuit)
		claws := ctrl.IsSelected(gadget.ClimberClaws)

		if in.MoveX < 0 {
			p.FacingLeft = true
		} else if in.MoveX > 0 {
			p.FacingLeft = false
		}

		target := in.MoveX * p.MoveSpeed
		vx := target
		if !grounded {
			control := p.AirControl
			if wingsuit {
				control = p.WingsuitAirControl
			}
			vx = common.Lerp(vel.X, target, common.Clamp(control, 0, 1))
		}

		vy := vel.Y
		p.Climbing = claws && inClimbZone(w, e)
		if p.Climbing {
			vy = in.MoveY * p.ClimbSpeed
		}

		if in.JumpPressed && (grounded || p.Climbing) {
			speed := p.JumpSpeed
			if st, ok := ecs.Get(w, e, component.StatusEffectsComponent.Kind()); ok && st.BootsPending {
				speed = p.BoostedJumpSpeed
				st.BootsPending = false
			}
			vy = -speed
			p.Climbing = false
			if hasCollision {
				pc.Grounded = false
				pc.GroundGrace = 0
			}
		}

		if wingsuit && !grounded && !p.Climbing && p.WingsuitFallSpeed > 0 && vy > p.WingsuitFallSpeed {
			vy = p.WingsuitFallSpeed
		}

		body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
	})
}

func inClimbZone(w *ecs.World, e ecs.Entity) bool {
	b, ok := boxOf(w, e)
	if !ok {
		return false
	}
	found := false
	ecs.ForEach(w, component.ClimbableComponent.Kind(), func(z ecs.Entity, _ *component.Climbable) {
		if found {
			return
		}
		if zb, ok := boxOf(w, z); ok && b.overlaps(zb) {
			found = true
		}
	})
	return found
}
