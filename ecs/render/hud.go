package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/gadget"
)

const (
	slotSize  = 36
	slotGap   = 6
	hudMargin = 16
	// selectedAlpha dims the icon in the selected slot.
	selectedAlpha = 0.5
)

var (
	slotFrame   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	slotCursor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelShadow = color.RGBA{A: 0x80}
)

// HUD draws each player's equipment slots and acorn count. Player one is
// anchored top left, player two top right.
type HUD struct {
	registry *gadget.Registry
}

func NewHUD(registry *gadget.Registry) *HUD {
	return &HUD{registry: registry}
}

func (h *HUD) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}
	screenW := float32(screen.Bounds().Dx())
	panelW := float32(gadget.Capacity*slotSize + (gadget.Capacity-1)*slotGap)

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.GadgetsComponent.Kind(), func(_ ecs.Entity, p *component.Player, g *component.Gadgets) {
		x0 := float32(hudMargin)
		if p.Index == gadget.PlayerTwo {
			x0 = screenW - hudMargin - panelW
		}
		y0 := float32(hudMargin)

		vector.DrawFilledRect(screen, x0-6, y0-6, panelW+12, slotSize+36, panelShadow, false)
		label := fmt.Sprintf("%v  acorns %d", p.Index, h.registry.Acorns(p.Index))
		ebitenutil.DebugPrintAt(screen, label, int(x0), int(y0)-4)

		drawSlots(screen, g.Display.Slots(), x0, y0+16)
	})
}

// drawSlots draws one player's slot row. Empty and busy slots show only their
// frame; the selected slot is dimmed and underlined.
func drawSlots(screen *ebiten.Image, slots [gadget.Capacity]gadget.Slot, x0, y0 float32) {
	for i, slot := range slots {
		x := x0 + float32(i*(slotSize+slotGap))
		vector.StrokeRect(screen, x, y0, slotSize, slotSize, 1, slotFrame, false)
		if slot.Selected {
			vector.DrawFilledRect(screen, x, y0+slotSize+3, slotSize, 2, slotCursor, false)
		}
		if slot.Empty || slot.Hidden {
			continue
		}
		icon := IconFor(slot.ID)
		alpha := 1.0
		if slot.Selected {
			alpha = selectedAlpha
		}
		vector.DrawFilledRect(screen, x+2, y0+2, slotSize-4, slotSize-4, fade(icon.Color, alpha), false)
		ebitenutil.DebugPrintAt(screen, icon.Label, int(x)+12, int(y0)+10)
	}
}
