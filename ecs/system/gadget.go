package system

import (
	"time"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

// GadgetSystem advances every player's gadget timers and then applies this
// tick's selection and use commands, so a gadget that expires this tick
// cannot be fired and re-cooled in the same tick. Stunned players may still
// use gadgets; only their movement is disabled.
type GadgetSystem struct {
	dt time.Duration
}

func NewGadgetSystem() *GadgetSystem {
	return &GadgetSystem{dt: common.TickDuration}
}

func (s *GadgetSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.GadgetsComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, g *component.Gadgets, in *component.Input) {
		ctrl := g.Controller
		if ctrl == nil {
			return
		}
		ctrl.Tick(s.dt)

		if in.SelectSlot >= 0 {
			ctrl.SelectSlot(in.SelectSlot)
		}
		if in.SelectNext {
			ctrl.SelectNext()
		}
		if in.SelectPrev {
			ctrl.SelectPrevious()
		}
		if in.UseGadget {
			ctrl.UseSelected()
		}
		in.SelectSlot = -1
		in.SelectNext = false
		in.SelectPrev = false
		in.UseGadget = false

		g.Display.Sync()
	})
}
