package component

// Input stores per-tick intent for a player. Edge-triggered fields are true
// only on the tick the key went down.
type Input struct {
	MoveX       float64
	MoveY       float64
	Jump        bool
	JumpPressed bool

	// SelectSlot is the slot picked by a number key this tick, or -1.
	SelectSlot int
	SelectNext bool
	SelectPrev bool
	UseGadget  bool
}

var InputComponent = NewComponent[Input]()

// ClearEdges resets the edge-triggered fields after they were consumed.
func (in *Input) ClearEdges() {
	in.JumpPressed = false
	in.SelectSlot = -1
	in.SelectNext = false
	in.SelectPrev = false
	in.UseGadget = false
}
