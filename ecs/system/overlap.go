package system

import (
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

type box struct {
	x, y, w, h float64
}

// boxOf returns e's hitbox centred on its transform.
func boxOf(w *ecs.World, e ecs.Entity) (box, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return box{}, false
	}
	hb, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
	if !ok {
		return box{}, false
	}
	return box{x: t.X, y: t.Y, w: hb.Width, h: hb.Height}, true
}

func (a box) overlaps(b box) bool {
	return common.Overlaps(a.x, a.y, a.w, a.h, b.x, b.y, b.w, b.h)
}

func touching(w *ecs.World, a, b ecs.Entity) bool {
	ba, ok := boxOf(w, a)
	if !ok {
		return false
	}
	bb, ok := boxOf(w, b)
	if !ok {
		return false
	}
	return ba.overlaps(bb)
}

// requestRespawn marks a player to be sent back after physics this tick.
func requestRespawn(w *ecs.World, e ecs.Entity, reason string) {
	if ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
		return
	}
	_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Reason: reason})
}
