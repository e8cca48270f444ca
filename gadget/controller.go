package gadget

import (
	"time"

	"go.uber.org/zap"
)

// Phase is where an activated gadget is in its use cycle.
type Phase int

const (
	Ready Phase = iota
	Active
	Cooldown
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Active:
		return "active"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// State is one gadget's phase and the time left in it. Remaining is zero
// while Ready.
type State struct {
	Phase     Phase
	Remaining time.Duration
}

// Busy reports whether the gadget cannot be used right now.
func (s State) Busy() bool {
	return s.Phase != Ready
}

// Controller owns one player's gadget timers, slot selection and the
// checkpoint marker, and dispatches use commands through the catalog.
type Controller struct {
	player   Player
	registry *Registry
	catalog  *Catalog
	host     Host
	log      *zap.Logger

	states   [numIDs]State
	equipped []ID
	revision uint64
	synced   bool
	selected int
	version  uint64

	marker  Handle
	markerX float64
	markerY float64
	hasMark bool
}

// NewController wires a controller for player p. A nil host leaves every
// gadget a permanent no-op; a nil logger is replaced with a no-op logger.
func NewController(p Player, registry *Registry, catalog *Catalog, host Host, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		player:   p,
		registry: registry,
		catalog:  catalog,
		host:     host,
		log:      log.With(zap.Stringer("player", p)),
	}
	c.sync()
	return c
}

func (c *Controller) Player() Player {
	return c.player
}

// SetCatalog swaps in a rebuilt catalog. Phase state is kept; new durations
// apply from the next transition.
func (c *Controller) SetCatalog(cat *Catalog) {
	if c == nil || cat == nil {
		return
	}
	c.catalog = cat
}

// Tick advances every timer by dt, then picks up equipment changes.
func (c *Controller) Tick(dt time.Duration) {
	if c == nil {
		return
	}
	for id := Checkpoint; id < numIDs; id++ {
		st := &c.states[id]
		switch st.Phase {
		case Active:
			st.Remaining -= dt
			if st.Remaining > 0 {
				continue
			}
			effect, ok := c.catalog.Lookup(id)
			if ok && effect.Deactivate != nil && c.host != nil {
				effect.Deactivate(c.context())
			}
			cooldown := time.Duration(0)
			if ok {
				cooldown = effect.Cooldown
			}
			c.enterCooldown(id, cooldown)
			c.log.Debug("gadget expired", zap.Stringer("gadget", id))
		case Cooldown:
			st.Remaining -= dt
			if st.Remaining <= 0 {
				*st = State{}
				c.version++
			}
		}
	}
	c.sync()
}

// minPhase keeps a phase alive until the next Tick when its configured
// duration is zero or negative, so a gadget fires at most once per tick.
const minPhase = time.Nanosecond

func (c *Controller) enterCooldown(id ID, d time.Duration) {
	c.states[id] = State{Phase: Cooldown, Remaining: max(d, minPhase)}
	c.version++
}

// sync re-reads the registry when its revision moved and clamps the selection
// into the new slot range.
func (c *Controller) sync() {
	rev := c.registry.Revision(c.player)
	if c.synced && rev == c.revision {
		return
	}
	c.synced = true
	c.revision = rev
	c.equipped = c.registry.EquippedList(c.player)
	c.selected = clamp(c.selected, 0, max(len(c.equipped)-1, 0))
	c.version++
}

// SelectSlot selects slot i if it holds an item.
func (c *Controller) SelectSlot(i int) bool {
	if c == nil {
		return false
	}
	c.sync()
	if i < 0 || i >= len(c.equipped) {
		return false
	}
	c.setSelected(i)
	return true
}

func (c *Controller) SelectNext() {
	if c == nil {
		return
	}
	c.sync()
	n := len(c.equipped)
	if n == 0 {
		return
	}
	c.setSelected((c.selected + 1) % n)
}

func (c *Controller) SelectPrevious() {
	if c == nil {
		return
	}
	c.sync()
	n := len(c.equipped)
	if n == 0 {
		return
	}
	c.setSelected((c.selected + n - 1) % n)
}

func (c *Controller) setSelected(i int) {
	if i == c.selected {
		return
	}
	c.selected = i
	c.version++
}

// UseSelected fires the selected gadget if it is equipped, ready and its own
// precondition holds. It reports whether the gadget fired.
func (c *Controller) UseSelected() bool {
	if c == nil {
		return false
	}
	c.sync()
	if len(c.equipped) == 0 {
		return false
	}
	id := c.equipped[c.selected]
	if !c.registry.IsEquipped(c.player, id) || c.states[id].Busy() || c.host == nil {
		return false
	}
	effect, ok := c.catalog.Lookup(id)
	if !ok || effect.Activate == nil {
		return false
	}
	ctx := c.context()
	if effect.Ready != nil && !effect.Ready(ctx) {
		return false
	}
	if !effect.Activate(ctx) {
		return false
	}

	switch effect.Kind {
	case Timed:
		c.states[id] = State{Phase: Active, Remaining: max(effect.Active, minPhase)}
		c.version++
	default:
		c.enterCooldown(id, effect.Cooldown)
	}
	c.log.Debug("gadget used", zap.Stringer("gadget", id), zap.Stringer("kind", effect.Kind))
	return true
}

func (c *Controller) context() *Context {
	return &Context{
		Player:     c.player,
		Host:       c.host,
		Tuning:     &c.catalog.tuning,
		controller: c,
	}
}

// placeMarker moves this player's marker, spawning it the first time or when
// the previous one is gone.
func (c *Controller) placeMarker(x, y float64) bool {
	if c.marker.Valid() && c.host.MoveMarker(c.marker, x, y) {
		c.markerX, c.markerY = x, y
		return true
	}
	h := c.host.PlaceMarker(x, y)
	if !h.Valid() {
		return false
	}
	c.marker = h
	c.markerX, c.markerY = x, y
	c.hasMark = true
	return true
}

// Marker returns the position of the most recently placed checkpoint.
func (c *Controller) Marker() (x, y float64, ok bool) {
	if c == nil || !c.hasMark {
		return 0, 0, false
	}
	return c.markerX, c.markerY, true
}

// State returns the phase of id. Passive items are always Ready.
func (c *Controller) State(id ID) State {
	if c == nil || id < 0 || id >= numIDs {
		return State{}
	}
	return c.states[id]
}

// IsOnCooldown reports whether id is Active or cooling down.
func (c *Controller) IsOnCooldown(id ID) bool {
	return c.State(id).Busy()
}

// SelectedIndex returns the selected slot; ok is false with nothing equipped.
func (c *Controller) SelectedIndex() (int, bool) {
	if c == nil {
		return 0, false
	}
	c.sync()
	if len(c.equipped) == 0 {
		return 0, false
	}
	return c.selected, true
}

// Selected returns the item in the selected slot.
func (c *Controller) Selected() (ID, bool) {
	i, ok := c.SelectedIndex()
	if !ok {
		return None, false
	}
	return c.equipped[i], true
}

// IsSelected reports whether id sits in the selected slot. Passive items only
// work while selected.
func (c *Controller) IsSelected(id ID) bool {
	sel, ok := c.Selected()
	return ok && sel == id
}

// Equipped returns the slot list the controller last observed.
func (c *Controller) Equipped() []ID {
	if c == nil {
		return nil
	}
	c.sync()
	out := make([]ID, len(c.equipped))
	copy(out, c.equipped)
	return out
}

// Version increases whenever anything the equipment display shows changes.
func (c *Controller) Version() uint64 {
	if c == nil {
		return 0
	}
	c.sync()
	return c.version
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
