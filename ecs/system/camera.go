package system

import (
	"math"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

// minZoom is the furthest the shared camera pulls out before it starts
// following the players instead of showing the whole level.
const minZoom = 0.6

// CameraSystem frames both players on one screen. It zooms to fit the level
// and, when that would go below minZoom, tracks the players' midpoint.
type CameraSystem struct {
	camEntity  ecs.Entity
	viewWidth  float64
	viewHeight float64
}

func NewCameraSystem(viewWidth, viewHeight float64) *CameraSystem {
	if viewWidth <= 0 || viewHeight <= 0 {
		viewWidth, viewHeight = common.BaseWidth, common.BaseHeight
	}
	return &CameraSystem{viewWidth: viewWidth, viewHeight: viewHeight}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.Has(w, cs.camEntity, component.CameraComponent.Kind()) {
		if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = e
		} else {
			cs.camEntity = ecs.CreateEntity(w)
			if err := ecs.Add(w, cs.camEntity, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}); err != nil {
				panic("camera system: add camera: " + err.Error())
			}
		}
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	zoom := math.Min(cs.viewWidth/bounds.Width, cs.viewHeight/bounds.Height)
	zoom = common.Clamp(zoom, minZoom, 1)
	cam.Zoom = zoom

	viewW := cs.viewWidth / zoom
	viewH := cs.viewHeight / zoom

	cx, cy := bounds.Width/2, bounds.Height/2
	if sx, sy, n := playerMidpoint(w); n > 0 && (viewW < bounds.Width || viewH < bounds.Height) {
		cx, cy = sx, sy
	}

	cam.X = frame(cx, viewW, bounds.Width)
	cam.Y = frame(cy, viewH, bounds.Height)
}

// frame returns the left edge of a view of size view centred on c, kept
// inside [0, size]. A level smaller than the view is centred.
func frame(c, view, size float64) float64 {
	if view >= size {
		return (size - view) / 2
	}
	return common.Clamp(c-view/2, 0, size-view)
}

func playerMidpoint(w *ecs.World) (x, y float64, n int) {
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Player, t *component.Transform) {
		x += t.X
		y += t.Y
		n++
	})
	if n == 0 {
		return 0, 0, 0
	}
	return x / float64(n), y / float64(n), n
}
