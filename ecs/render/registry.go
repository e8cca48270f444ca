package render

import (
	"image/color"

	"github.com/milk9111/acornrun/gadget"
)

// Icon is how the HUD draws a gadget: a tinted tile with a short label.
type Icon struct {
	Label string
	Color color.RGBA
}

var icons = map[gadget.ID]Icon{
	gadget.Checkpoint:        {Label: "CP", Color: color.RGBA{R: 0x3d, G: 0xc4, B: 0x6b, A: 0xff}},
	gadget.DummyAcorn:        {Label: "AC", Color: color.RGBA{R: 0xb0, G: 0x6a, B: 0x2c, A: 0xff}},
	gadget.Launcher:          {Label: "LN", Color: color.RGBA{R: 0xe0, G: 0x4a, B: 0x3a, A: 0xff}},
	gadget.TailSwipe:         {Label: "TS", Color: color.RGBA{R: 0xf2, G: 0xb1, B: 0x34, A: 0xff}},
	gadget.InvisibilityCloak: {Label: "IN", Color: color.RGBA{R: 0x8a, G: 0x7c, B: 0xd9, A: 0xff}},
	gadget.Shield:            {Label: "SH", Color: color.RGBA{R: 0x4a, G: 0xa8, B: 0xe8, A: 0xff}},
	gadget.Boots:             {Label: "BT", Color: color.RGBA{R: 0xd9, G: 0x5f, B: 0xa8, A: 0xff}},
	gadget.ClimberClaws:      {Label: "CL", Color: color.RGBA{R: 0x7a, G: 0x9a, B: 0x4a, A: 0xff}},
	gadget.Wingsuit:          {Label: "WS", Color: color.RGBA{R: 0x5c, G: 0xc8, B: 0xc0, A: 0xff}},
}

// IconFor returns the HUD icon for id, or a grey tile labelled "??".
func IconFor(id gadget.ID) Icon {
	if icon, ok := icons[id]; ok {
		return icon
	}
	return Icon{Label: "??", Color: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}}
}
