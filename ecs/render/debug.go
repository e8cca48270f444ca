package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DrawPhysicsDebug outlines every shape in space.
func DrawPhysicsDebug(space *cp.Space, screen *ebiten.Image, view View) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, view: view})
}

// DrawHitboxes outlines the overlap boxes gameplay checks use.
func DrawHitboxes(w *ecs.World, screen *ebiten.Image, view View) {
	if w == nil || screen == nil {
		return
	}
	outline := color.RGBA{R: 0xff, G: 0x60, B: 0xff, A: 0xc0}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.HitboxComponent.Kind(), func(_ ecs.Entity, t *component.Transform, hb *component.Hitbox) {
		x, y := view.toScreen(t.X-hb.Width/2, t.Y-hb.Height/2)
		vector.StrokeRect(screen, x, y, view.scale(hb.Width), view.scale(hb.Height), 1, outline, false)
	})
}

// DrawGadgetDebug prints each player's gadget phases, selection and status
// flags near the bottom of the screen.
func DrawGadgetDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	y := screen.Bounds().Dy() - 90
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.GadgetsComponent.Kind(), func(e ecs.Entity, p *component.Player, g *component.Gadgets) {
		var b strings.Builder
		fmt.Fprintf(&b, "%v", p.Index)
		if pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind()); ok {
			fmt.Fprintf(&b, " grounded=%v", pc.Grounded || pc.GroundGrace > 0)
		}
		if st, ok := ecs.Get(w, e, component.StatusEffectsComponent.Kind()); ok {
			fmt.Fprintf(&b, " inv=%v shield=%v boots=%v", st.Invisible, st.Shielded, st.BootsPending)
		}
		if stun, ok := ecs.Get(w, e, component.StunComponent.Kind()); ok {
			fmt.Fprintf(&b, " stun=%.1fs", stun.Remaining.Seconds())
		}
		if sel, ok := g.Controller.Selected(); ok {
			fmt.Fprintf(&b, " sel=%v", sel)
		}
		for _, id := range g.Controller.Equipped() {
			st := g.Controller.State(id)
			if id.Passive() {
				fmt.Fprintf(&b, "\n  %v passive", id)
				continue
			}
			fmt.Fprintf(&b, "\n  %v %v %.1fs", id, st.Phase, st.Remaining.Seconds())
		}
		x := 10
		if p.Index == gadget.PlayerTwo {
			x = screen.Bounds().Dx() / 2
		}
		ebitenutil.DebugPrintAt(screen, b.String(), x, y)
	})
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   View
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 0.9, G: 0.6, B: 0.1, A: 0.5}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.toScreen(a.X, a.Y)
	x2, y2 := d.view.toScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
