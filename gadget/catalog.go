package gadget

import "time"

// Kind groups gadgets by how their phases run.
type Kind int

const (
	// Instant gadgets fire once and go straight to cooldown.
	Instant Kind = iota
	// Timed gadgets stay active for a while; cooldown starts when they expire.
	Timed
	// Consumable gadgets arm a flag that movement code spends later; cooldown
	// starts at use.
	Consumable
)

func (k Kind) String() string {
	switch k {
	case Instant:
		return "instant"
	case Timed:
		return "timed"
	case Consumable:
		return "consumable"
	default:
		return "unknown"
	}
}

// Context is handed to effect functions.
type Context struct {
	Player     Player
	Host       Host
	Tuning     *Tuning
	controller *Controller
}

// Effect is the static record for one activated gadget.
type Effect struct {
	ID       ID
	Kind     Kind
	Cooldown time.Duration
	Active   time.Duration

	// Ready is the gadget's own precondition. Nil means always ready.
	Ready func(*Context) bool
	// Activate applies the effect and reports whether it fired.
	Activate func(*Context) bool
	// Deactivate ends a Timed gadget's effect.
	Deactivate func(*Context)
}

// Catalog maps activated gadgets to their effect records.
type Catalog struct {
	tuning  Tuning
	effects [numIDs]*Effect
}

func NewCatalog(t Tuning) *Catalog {
	c := &Catalog{tuning: t}
	c.register(&Effect{
		ID:       Checkpoint,
		Kind:     Instant,
		Cooldown: t.Checkpoint.Cooldown,
		Ready:    func(ctx *Context) bool { return ctx.Host.Grounded() },
		Activate: placeCheckpoint,
	})
	c.register(&Effect{
		ID:       DummyAcorn,
		Kind:     Instant,
		Cooldown: t.DummyAcorn.Cooldown,
		Activate: spawnDecoy,
	})
	c.register(&Effect{
		ID:       Launcher,
		Kind:     Instant,
		Cooldown: t.Launcher.Cooldown,
		Ready: func(ctx *Context) bool {
			_, _, ok := ctx.Host.Muzzle()
			return ok
		},
		Activate: launchProjectile,
	})
	c.register(&Effect{
		ID:       TailSwipe,
		Kind:     Instant,
		Cooldown: t.TailSwipe.Cooldown,
		Activate: tailSwipe,
	})
	c.register(&Effect{
		ID:       InvisibilityCloak,
		Kind:     Timed,
		Cooldown: t.Invisibility.Cooldown,
		Active:   t.Invisibility.Active,
		Activate: func(ctx *Context) bool {
			ctx.Host.SetInvisible(true, ctx.Tuning.Invisibility.Opacity)
			return true
		},
		Deactivate: func(ctx *Context) { ctx.Host.SetInvisible(false, 1) },
	})
	c.register(&Effect{
		ID:       Shield,
		Kind:     Timed,
		Cooldown: t.Shield.Cooldown,
		Active:   t.Shield.Active,
		Activate: func(ctx *Context) bool {
			ctx.Host.SetShielded(true)
			return true
		},
		Deactivate: func(ctx *Context) { ctx.Host.SetShielded(false) },
	})
	c.register(&Effect{
		ID:       Boots,
		Kind:     Consumable,
		Cooldown: t.Boots.Cooldown,
		Activate: func(ctx *Context) bool {
			ctx.Host.SetBootsPending(true)
			return true
		},
	})
	return c
}

func (c *Catalog) register(e *Effect) {
	c.effects[e.ID] = e
}

// Lookup returns the effect for id; passive and unknown items have none.
func (c *Catalog) Lookup(id ID) (*Effect, bool) {
	if c == nil || id < 0 || id >= numIDs {
		return nil, false
	}
	e := c.effects[id]
	return e, e != nil
}

func (c *Catalog) Tuning() Tuning {
	if c == nil {
		return Tuning{}
	}
	return c.tuning
}

func placeCheckpoint(ctx *Context) bool {
	x, y := ctx.Host.Position()
	x += ctx.Tuning.Checkpoint.OffsetX
	y += ctx.Tuning.Checkpoint.OffsetY
	return ctx.controller.placeMarker(x, y)
}

func spawnDecoy(ctx *Context) bool {
	x, y := ctx.Host.Position()
	t := ctx.Tuning.DummyAcorn
	return ctx.Host.SpawnDecoy(x+t.OffsetX, y+t.OffsetY, t.Stun).Valid()
}

func launchProjectile(ctx *Context) bool {
	x, y, ok := ctx.Host.Muzzle()
	if !ok {
		return false
	}
	t := ctx.Tuning.Launcher
	dir := 1.0
	if ctx.Host.FacingLeft() {
		dir = -1
	}
	h := ctx.Host.SpawnProjectile(x+t.OffsetX*dir, y+t.OffsetY, t.Speed*dir, 0, t.Stun, t.Lifetime)
	return h.Valid()
}

func tailSwipe(ctx *Context) bool {
	x, y := ctx.Host.Position()
	t := ctx.Tuning.TailSwipe
	ctx.Host.StunArea(x, y, t.Radius, t.Stun)
	return true
}
