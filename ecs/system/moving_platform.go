package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

// MovingPlatformSystem shuttles platforms between their endpoints. Stunned
// platforms hold still.
type MovingPlatformSystem struct {
	dt float64
}

func NewMovingPlatformSystem() *MovingPlatformSystem {
	return &MovingPlatformSystem{dt: common.TickSeconds}
}

func (s *MovingPlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mp *component.MovingPlatform, t *component.Transform) {
		if IsStunned(w, e) || mp.Speed <= 0 {
			setKinematicVelocity(w, e, 0, 0)
			return
		}

		tx, ty := mp.AX, mp.AY
		if mp.Forward {
			tx, ty = mp.BX, mp.BY
		}
		dx, dy := tx-t.X, ty-t.Y
		dist := math.Hypot(dx, dy)

		if dist <= mp.Speed*s.dt {
			t.X, t.Y = tx, ty
			if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
				pb.Body.SetPosition(cp.Vector{X: tx, Y: ty})
			}
			setKinematicVelocity(w, e, 0, 0)
			mp.Forward = !mp.Forward
			return
		}

		vx, vy := dx/dist*mp.Speed, dy/dist*mp.Speed
		if !setKinematicVelocity(w, e, vx, vy) {
			t.X += vx * s.dt
			t.Y += vy * s.dt
		}
	})
}
