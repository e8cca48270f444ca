package gadget

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

const testTick = 100 * time.Millisecond

type stunCall struct {
	x, y, radius float64
	d            time.Duration
}

type fakeHost struct {
	x, y       float64
	grounded   bool
	facingLeft bool
	hasMuzzle  bool

	invisible bool
	opacity   float64
	shielded  bool
	boots     bool

	next        Handle
	markers     map[Handle][2]float64
	decoys      int
	projectiles []float64
	stuns       []stunCall
}

func newFakeHost() *fakeHost {
	return &fakeHost{grounded: true, hasMuzzle: true, opacity: 1, markers: map[Handle][2]float64{}}
}

func (h *fakeHost) Position() (float64, float64) { return h.x, h.y }
func (h *fakeHost) Grounded() bool               { return h.grounded }
func (h *fakeHost) FacingLeft() bool             { return h.facingLeft }
func (h *fakeHost) Muzzle() (float64, float64, bool) {
	return h.x + 10, h.y, h.hasMuzzle
}

func (h *fakeHost) SetInvisible(on bool, opacity float64) {
	h.invisible = on
	h.opacity = opacity
}
func (h *fakeHost) SetShielded(on bool)     { h.shielded = on }
func (h *fakeHost) SetBootsPending(on bool) { h.boots = on }

func (h *fakeHost) PlaceMarker(x, y float64) Handle {
	h.next++
	h.markers[h.next] = [2]float64{x, y}
	return h.next
}

func (h *fakeHost) MoveMarker(m Handle, x, y float64) bool {
	if _, ok := h.markers[m]; !ok {
		return false
	}
	h.markers[m] = [2]float64{x, y}
	return true
}

func (h *fakeHost) SpawnDecoy(x, y float64, stun time.Duration) Handle {
	h.decoys++
	h.next++
	return h.next
}

func (h *fakeHost) SpawnProjectile(x, y, vx, vy float64, stun, lifetime time.Duration) Handle {
	h.projectiles = append(h.projectiles, vx)
	h.next++
	return h.next
}

func (h *fakeHost) StunArea(x, y, radius float64, d time.Duration) int {
	h.stuns = append(h.stuns, stunCall{x: x, y: y, radius: radius, d: d})
	return 1
}

func testTuning() Tuning {
	t := DefaultTuning()
	t.Invisibility.Active = 3 * time.Second
	t.Invisibility.Cooldown = 8 * time.Second
	t.Shield.Active = 2 * time.Second
	t.Shield.Cooldown = 4 * time.Second
	t.Boots.Cooldown = 6 * time.Second
	t.Checkpoint.Cooldown = time.Second
	t.Checkpoint.OffsetY = -4
	return t
}

func newTestController(t *testing.T, host Host, equip ...ID) (*Controller, *Registry) {
	t.Helper()
	r := NewRegistry()
	for _, id := range equip {
		r.Purchase(PlayerOne, id)
		if !r.Equip(PlayerOne, id) {
			t.Fatalf("equip %v failed", id)
		}
	}
	return NewController(PlayerOne, r, NewCatalog(testTuning()), host, zaptest.NewLogger(t)), r
}

func tickFor(c *Controller, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += testTick {
		c.Tick(testTick)
	}
}

func TestUseSelectedNoopCases(t *testing.T) {
	t.Run("nothing_equipped", func(t *testing.T) {
		c, _ := newTestController(t, newFakeHost())
		if c.UseSelected() {
			t.Fatalf("use with empty slots should be a no-op")
		}
	})

	t.Run("passive_item", func(t *testing.T) {
		c, _ := newTestController(t, newFakeHost(), Wingsuit)
		if c.UseSelected() {
			t.Fatalf("passive items have no activation")
		}
	})

	t.Run("nil_host", func(t *testing.T) {
		c, _ := newTestController(t, nil, Shield)
		if c.UseSelected() {
			t.Fatalf("controller without a host must not fire")
		}
	})

	t.Run("checkpoint_airborne", func(t *testing.T) {
		host := newFakeHost()
		host.grounded = false
		c, _ := newTestController(t, host, Checkpoint)
		if c.UseSelected() {
			t.Fatalf("checkpoint requires the player to be grounded")
		}
		if c.IsOnCooldown(Checkpoint) {
			t.Fatalf("failed precondition must not start cooldown")
		}
	})

	t.Run("launcher_without_muzzle", func(t *testing.T) {
		host := newFakeHost()
		host.hasMuzzle = false
		c, _ := newTestController(t, host, Launcher)
		if c.UseSelected() || len(host.projectiles) != 0 {
			t.Fatalf("launcher without muzzle should do nothing")
		}
	})
}

func TestUseSelectedTwiceInOneTick(t *testing.T) {
	host := newFakeHost()
	c, _ := newTestController(t, host, DummyAcorn)

	c.Tick(testTick)
	first := c.UseSelected()
	second := c.UseSelected()

	if !first || second {
		t.Fatalf("first=%v second=%v, want true then false", first, second)
	}
	if host.decoys != 1 {
		t.Fatalf("decoys spawned = %d, want 1", host.decoys)
	}
	if st := c.State(DummyAcorn); st.Phase != Cooldown {
		t.Fatalf("phase = %v, want cooldown", st.Phase)
	}
}

func TestZeroDurationsStillBlockForATick(t *testing.T) {
	tests := []struct {
		name  string
		id    ID
		tweak func(*Tuning)
		fired func(*fakeHost) int
	}{
		{"instant_zero_cooldown", TailSwipe, func(tu *Tuning) { tu.TailSwipe.Cooldown = 0 }, func(h *fakeHost) int { return len(h.stuns) }},
		{"instant_negative_cooldown", TailSwipe, func(tu *Tuning) { tu.TailSwipe.Cooldown = -time.Second }, func(h *fakeHost) int { return len(h.stuns) }},
		{"timed_zero_active", Shield, func(tu *Tuning) { tu.Shield.Active = 0; tu.Shield.Cooldown = 0 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := testTuning()
			tt.tweak(&tun)
			host := newFakeHost()
			r := NewRegistry()
			r.Purchase(PlayerOne, tt.id)
			if !r.Equip(PlayerOne, tt.id) {
				t.Fatalf("equip %v failed", tt.id)
			}
			c := NewController(PlayerOne, r, NewCatalog(tun), host, zaptest.NewLogger(t))

			c.Tick(testTick)
			first := c.UseSelected()
			second := c.UseSelected()
			if !first || second {
				t.Fatalf("first=%v second=%v, want true then false", first, second)
			}
			if tt.fired != nil {
				if n := tt.fired(host); n != 1 {
					t.Fatalf("fired %d times, want 1", n)
				}
			}
			if st := c.State(tt.id); st.Phase == Ready {
				t.Fatalf("phase = %v right after use, want busy", st.Phase)
			}

			for i := 0; i < 3 && c.State(tt.id).Phase != Ready; i++ {
				c.Tick(testTick)
			}
			if st := c.State(tt.id); st.Phase != Ready {
				t.Fatalf("phase = %v after ticking, want ready", st.Phase)
			}
			if !c.UseSelected() {
				t.Fatalf("use after the hold expired should succeed")
			}
		})
	}
}

func TestTimedLockoutIsActivePlusCooldown(t *testing.T) {
	tests := []struct {
		name   string
		id     ID
		active time.Duration
		cool   time.Duration
		flag   func(h *fakeHost) bool
	}{
		{"invisibility", InvisibilityCloak, 3 * time.Second, 8 * time.Second, func(h *fakeHost) bool { return h.invisible }},
		{"shield", Shield, 2 * time.Second, 4 * time.Second, func(h *fakeHost) bool { return h.shielded }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			host := newFakeHost()
			c, _ := newTestController(t, host, tc.id)

			if !c.UseSelected() {
				t.Fatalf("first use should fire")
			}
			if !tc.flag(host) {
				t.Fatalf("status flag not set on activation")
			}
			if st := c.State(tc.id); st.Phase != Active || st.Remaining != tc.active {
				t.Fatalf("state = %+v, want active %v", st, tc.active)
			}

			ticks := 0
			for c.State(tc.id).Phase == Active {
				c.Tick(testTick)
				ticks++
				if c.UseSelected() {
					t.Fatalf("fired while active")
				}
			}
			if tc.flag(host) {
				t.Fatalf("status flag still set after active phase")
			}
			if st := c.State(tc.id); st.Phase != Cooldown || st.Remaining != tc.cool {
				t.Fatalf("state after expiry = %+v, want full cooldown %v", st, tc.cool)
			}

			for c.State(tc.id).Phase == Cooldown {
				c.Tick(testTick)
				ticks++
			}
			lockout := time.Duration(ticks) * testTick
			if lockout != tc.active+tc.cool {
				t.Fatalf("lockout = %v, want %v", lockout, tc.active+tc.cool)
			}
			if !c.UseSelected() {
				t.Fatalf("should fire again once ready")
			}
		})
	}
}

func TestInvisibilitySetsOpacity(t *testing.T) {
	host := newFakeHost()
	c, _ := newTestController(t, host, InvisibilityCloak)
	c.UseSelected()
	if host.opacity != testTuning().Invisibility.Opacity {
		t.Fatalf("opacity = %v, want %v", host.opacity, testTuning().Invisibility.Opacity)
	}
	tickFor(c, 3*time.Second)
	if host.opacity != 1 {
		t.Fatalf("opacity not restored: %v", host.opacity)
	}
}

func TestBootsCooldownStartsAtUse(t *testing.T) {
	host := newFakeHost()
	c, _ := newTestController(t, host, Boots)

	if !c.UseSelected() {
		t.Fatalf("boots should fire")
	}
	if !host.boots {
		t.Fatalf("boots pending not armed")
	}
	if st := c.State(Boots); st.Phase != Cooldown || st.Remaining != 6*time.Second {
		t.Fatalf("state = %+v, want cooldown started at use", st)
	}

	// movement spends the boost; cooldown keeps running independently
	host.boots = false
	tickFor(c, 6*time.Second)
	if c.IsOnCooldown(Boots) {
		t.Fatalf("boots should be ready 6s after use regardless of consumption")
	}
	if host.boots {
		t.Fatalf("cooldown expiry must not re-arm boots")
	}
}

func TestCheckpointRelocatesSingleMarker(t *testing.T) {
	host := newFakeHost()
	c, _ := newTestController(t, host, Checkpoint)

	host.x, host.y = 10, 20
	if !c.UseSelected() {
		t.Fatalf("first checkpoint should fire")
	}
	tickFor(c, time.Second)

	host.x, host.y = 300, 40
	if !c.UseSelected() {
		t.Fatalf("second checkpoint should fire after cooldown")
	}

	if len(host.markers) != 1 {
		t.Fatalf("markers = %d, want a single relocated marker", len(host.markers))
	}
	x, y, ok := c.Marker()
	if !ok || x != 300 || y != 36 {
		t.Fatalf("marker = (%v,%v,%v), want most recent (300,36)", x, y, ok)
	}
}

func TestCheckpointRespawnsMarkerWhenGone(t *testing.T) {
	host := newFakeHost()
	c, _ := newTestController(t, host, Checkpoint)
	c.UseSelected()
	tickFor(c, time.Second)

	// scene lost the marker
	host.markers = map[Handle][2]float64{}
	host.x = 50
	if !c.UseSelected() {
		t.Fatalf("checkpoint should spawn a fresh marker")
	}
	if len(host.markers) != 1 {
		t.Fatalf("markers = %d, want 1", len(host.markers))
	}
}

func TestLauncherFacing(t *testing.T) {
	host := newFakeHost()
	host.facingLeft = true
	c, _ := newTestController(t, host, Launcher)
	c.UseSelected()
	if len(host.projectiles) != 1 || host.projectiles[0] >= 0 {
		t.Fatalf("projectile velocities = %v, want one leftward", host.projectiles)
	}
}

func TestTailSwipeUsesRadius(t *testing.T) {
	host := newFakeHost()
	c, _ := newTestController(t, host, TailSwipe)
	c.UseSelected()
	if len(host.stuns) != 1 {
		t.Fatalf("stun calls = %d, want 1", len(host.stuns))
	}
	want := testTuning().TailSwipe
	if host.stuns[0].radius != want.Radius || host.stuns[0].d != want.Stun {
		t.Fatalf("stun call = %+v, want radius %v duration %v", host.stuns[0], want.Radius, want.Stun)
	}
}

func TestSelection(t *testing.T) {
	c, _ := newTestController(t, newFakeHost(), Shield, Boots, TailSwipe)

	if i, ok := c.SelectedIndex(); !ok || i != 0 {
		t.Fatalf("initial selection = %d,%v", i, ok)
	}
	if c.SelectSlot(3) {
		t.Fatalf("slot past the end should be refused")
	}
	if !c.SelectSlot(2) {
		t.Fatalf("slot 2 should be selectable")
	}
	c.SelectNext()
	if i, _ := c.SelectedIndex(); i != 0 {
		t.Fatalf("next should wrap to 0, got %d", i)
	}
	c.SelectPrevious()
	if id, _ := c.Selected(); id != TailSwipe {
		t.Fatalf("previous should wrap to TailSwipe, got %v", id)
	}
}

func TestSelectionEmptyIsNoop(t *testing.T) {
	c, _ := newTestController(t, newFakeHost())
	c.SelectNext()
	c.SelectPrevious()
	if c.SelectSlot(0) {
		t.Fatalf("nothing to select")
	}
	if _, ok := c.SelectedIndex(); ok {
		t.Fatalf("selection should be undefined when empty")
	}
}

func TestSelectionClampsOnUnequip(t *testing.T) {
	c, r := newTestController(t, newFakeHost(), Shield, Boots)
	c.SelectSlot(1)
	before := c.Version()

	r.Unequip(PlayerOne, Boots)
	c.Tick(testTick)

	if i, ok := c.SelectedIndex(); !ok || i != 0 {
		t.Fatalf("selection = %d,%v, want clamped to 0", i, ok)
	}
	if c.Version() == before {
		t.Fatalf("equip change should bump the display version")
	}

	r.Unequip(PlayerOne, Shield)
	if _, ok := c.SelectedIndex(); ok {
		t.Fatalf("selection should be undefined once empty")
	}
}

func TestUnequippedGadgetKeepsTicking(t *testing.T) {
	c, r := newTestController(t, newFakeHost(), Shield)
	c.UseSelected()
	r.Unequip(PlayerOne, Shield)
	tickFor(c, 6*time.Second)
	if c.IsOnCooldown(Shield) {
		t.Fatalf("timers run for unequipped gadgets too")
	}
}

func TestSetCatalogKeepsPhase(t *testing.T) {
	c, _ := newTestController(t, newFakeHost(), DummyAcorn)
	c.UseSelected()
	tune := testTuning()
	tune.DummyAcorn.Cooldown = time.Second
	c.SetCatalog(NewCatalog(tune))
	if !c.IsOnCooldown(DummyAcorn) {
		t.Fatalf("swapping the catalog must not reset phases")
	}
}
