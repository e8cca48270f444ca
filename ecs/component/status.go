package component

// StatusEffects are the flags gadgets raise on their owner. Movement and
// collision systems read them; the jump that spends BootsPending clears it.
type StatusEffects struct {
	Invisible    bool
	Shielded     bool
	BootsPending bool

	// RestoreAlpha is the sprite alpha to put back when Invisible clears.
	RestoreAlpha float64
}

var StatusEffectsComponent = NewComponent[StatusEffects]()
