package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
)

var (
	shieldColor = color.RGBA{R: 0x7f, G: 0xd4, B: 0xff, A: 0xff}
	stunColor   = color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}
	background  = color.RGBA{R: 0x1b, G: 0x22, B: 0x2c, A: 0xff}
)

// Renderer draws the world's sprites as flat shapes.
type Renderer struct {
	camEntity ecs.Entity
	drawables []drawable
}

type drawable struct {
	e     ecs.Entity
	t     *component.Transform
	s     *component.Sprite
	layer int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// View is the camera transform the last Draw used.
type View struct {
	X, Y, Zoom float64
}

func (v View) toScreen(x, y float64) (float32, float32) {
	return float32((x - v.X) * v.Zoom), float32((y - v.Y) * v.Zoom)
}

func (v View) scale(n float64) float32 {
	return float32(n * v.Zoom)
}

// Camera returns the current view, zoom 1 at the origin when there is no
// camera.
func (r *Renderer) Camera(w *ecs.World) View {
	if !ecs.Has(w, r.camEntity, component.CameraComponent.Kind()) {
		if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = e
		}
	}
	view := View{Zoom: 1}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		view.X, view.Y = cam.X, cam.Y
		if cam.Zoom > 0 {
			view.Zoom = cam.Zoom
		}
	}
	return view
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(background)
	view := r.Camera(w)

	r.drawables = r.drawables[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		r.drawables = append(r.drawables, drawable{e: e, t: t, s: s, layer: s.Layer})
	})
	sort.SliceStable(r.drawables, func(i, j int) bool {
		if r.drawables[i].layer != r.drawables[j].layer {
			return r.drawables[i].layer < r.drawables[j].layer
		}
		return uint64(r.drawables[i].e) < uint64(r.drawables[j].e)
	})

	for _, d := range r.drawables {
		drawSprite(screen, view, d.t, d.s)
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Player, t *component.Transform) {
		st, ok := ecs.Get(w, e, component.StatusEffectsComponent.Kind())
		if !ok || !st.Shielded {
			return
		}
		radius := 16.0
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			radius = math.Max(s.Width, s.Height) * 0.75
		}
		cx, cy := view.toScreen(t.X, t.Y)
		vector.StrokeCircle(screen, cx, cy, view.scale(radius), 2, shieldColor, true)
	})

	ecs.ForEach2(w, component.StunComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Stun, t *component.Transform) {
		top := 8.0
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			top = s.Height/2 + 6
		}
		drawStunMarker(screen, view, t.X, t.Y-top)
	})
}

func drawSprite(screen *ebiten.Image, view View, t *component.Transform, s *component.Sprite) {
	clr := fade(s.Color, s.Opacity())
	if s.Circle {
		cx, cy := view.toScreen(t.X, t.Y)
		vector.DrawFilledCircle(screen, cx, cy, view.scale(s.Width/2), clr, true)
		return
	}
	x, y := view.toScreen(t.X-s.Width/2, t.Y-s.Height/2)
	vector.DrawFilledRect(screen, x, y, view.scale(s.Width), view.scale(s.Height), clr, false)
}

// drawStunMarker draws three dots in a row above a stunned entity.
func drawStunMarker(screen *ebiten.Image, view View, x, y float64) {
	for i := -1; i <= 1; i++ {
		cx, cy := view.toScreen(x+float64(i)*6, y)
		vector.DrawFilledCircle(screen, cx, cy, view.scale(2), stunColor, true)
	}
}

// fade scales a premultiplied colour by a.
func fade(c color.RGBA, a float64) color.RGBA {
	a = common.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
