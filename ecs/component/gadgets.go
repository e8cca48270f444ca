package component

import "github.com/milk9111/acornrun/gadget"

// Gadgets binds a player entity to its gadget controller and HUD view.
type Gadgets struct {
	Controller *gadget.Controller
	Display    *gadget.Display
}

var GadgetsComponent = NewComponent[Gadgets]()
