package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/acornrun/gadget"
	"gopkg.in/yaml.v3"
)

const GadgetsFile = "gadgets.yaml"

type CheckpointSpec struct {
	Cooldown Seconds    `yaml:"cooldown"`
	Offset   OffsetSpec `yaml:"offset"`
}

type AcornSpec struct {
	Cooldown Seconds    `yaml:"cooldown"`
	Stun     Seconds    `yaml:"stun"`
	Offset   OffsetSpec `yaml:"offset"`
}

type LauncherSpec struct {
	Cooldown Seconds    `yaml:"cooldown"`
	Stun     Seconds    `yaml:"stun"`
	Lifetime Seconds    `yaml:"lifetime"`
	Speed    float64    `yaml:"speed"`
	Offset   OffsetSpec `yaml:"offset"`
}

type TailSwipeSpec struct {
	Cooldown Seconds `yaml:"cooldown"`
	Stun     Seconds `yaml:"stun"`
	Radius   float64 `yaml:"radius"`
}

type InvisibilitySpec struct {
	Active   Seconds `yaml:"active"`
	Cooldown Seconds `yaml:"cooldown"`
	Opacity  float64 `yaml:"opacity"`
}

type TimedSpec struct {
	Active   Seconds `yaml:"active"`
	Cooldown Seconds `yaml:"cooldown"`
}

type CooldownSpec struct {
	Cooldown Seconds `yaml:"cooldown"`
}

type ArtifactSpec struct {
	Box   BoxSpec   `yaml:"box"`
	Color YAMLColor `yaml:"color"`
}

type ArtifactsSpec struct {
	Marker     ArtifactSpec `yaml:"marker"`
	Decoy      ArtifactSpec `yaml:"decoy"`
	Projectile ArtifactSpec `yaml:"projectile"`
}

// GadgetsSpec is the on-disk form of gadget tuning. Times are in seconds.
type GadgetsSpec struct {
	Checkpoint   CheckpointSpec   `yaml:"checkpoint"`
	Acorn        AcornSpec        `yaml:"acorn"`
	Launcher     LauncherSpec     `yaml:"launcher"`
	TailSwipe    TailSwipeSpec    `yaml:"tail_swipe"`
	Invisibility InvisibilitySpec `yaml:"invisibility"`
	Shield       TimedSpec        `yaml:"shield"`
	Boots        CooldownSpec     `yaml:"boots"`
	Artifacts    ArtifactsSpec    `yaml:"artifacts"`
}

func secondsOf(d time.Duration) Seconds {
	return Seconds(d.Seconds())
}

// DefaultGadgetsSpec is the built-in tuning expressed as a spec.
func DefaultGadgetsSpec() GadgetsSpec {
	t := gadget.DefaultTuning()
	return GadgetsSpec{
		Checkpoint: CheckpointSpec{
			Cooldown: secondsOf(t.Checkpoint.Cooldown),
			Offset:   OffsetSpec{X: t.Checkpoint.OffsetX, Y: t.Checkpoint.OffsetY},
		},
		Acorn: AcornSpec{
			Cooldown: secondsOf(t.DummyAcorn.Cooldown),
			Stun:     secondsOf(t.DummyAcorn.Stun),
			Offset:   OffsetSpec{X: t.DummyAcorn.OffsetX, Y: t.DummyAcorn.OffsetY},
		},
		Launcher: LauncherSpec{
			Cooldown: secondsOf(t.Launcher.Cooldown),
			Stun:     secondsOf(t.Launcher.Stun),
			Lifetime: secondsOf(t.Launcher.Lifetime),
			Speed:    t.Launcher.Speed,
			Offset:   OffsetSpec{X: t.Launcher.OffsetX, Y: t.Launcher.OffsetY},
		},
		TailSwipe: TailSwipeSpec{
			Cooldown: secondsOf(t.TailSwipe.Cooldown),
			Stun:     secondsOf(t.TailSwipe.Stun),
			Radius:   t.TailSwipe.Radius,
		},
		Invisibility: InvisibilitySpec{
			Active:   secondsOf(t.Invisibility.Active),
			Cooldown: secondsOf(t.Invisibility.Cooldown),
			Opacity:  t.Invisibility.Opacity,
		},
		Shield: TimedSpec{Active: secondsOf(t.Shield.Active), Cooldown: secondsOf(t.Shield.Cooldown)},
		Boots:  CooldownSpec{Cooldown: secondsOf(t.Boots.Cooldown)},
	}
}

func (s GadgetsSpec) Tuning() gadget.Tuning {
	return gadget.Tuning{
		Checkpoint: gadget.CheckpointTuning{
			Cooldown: s.Checkpoint.Cooldown.Duration(),
			OffsetX:  s.Checkpoint.Offset.X,
			OffsetY:  s.Checkpoint.Offset.Y,
		},
		DummyAcorn: gadget.DecoyTuning{
			Cooldown: s.Acorn.Cooldown.Duration(),
			Stun:     s.Acorn.Stun.Duration(),
			OffsetX:  s.Acorn.Offset.X,
			OffsetY:  s.Acorn.Offset.Y,
		},
		Launcher: gadget.LauncherTuning{
			Cooldown: s.Launcher.Cooldown.Duration(),
			Stun:     s.Launcher.Stun.Duration(),
			Lifetime: s.Launcher.Lifetime.Duration(),
			Speed:    s.Launcher.Speed,
			OffsetX:  s.Launcher.Offset.X,
			OffsetY:  s.Launcher.Offset.Y,
		},
		TailSwipe: gadget.SwipeTuning{
			Cooldown: s.TailSwipe.Cooldown.Duration(),
			Stun:     s.TailSwipe.Stun.Duration(),
			Radius:   s.TailSwipe.Radius,
		},
		Invisibility: gadget.InvisibilityTuning{
			Active:   s.Invisibility.Active.Duration(),
			Cooldown: s.Invisibility.Cooldown.Duration(),
			Opacity:  s.Invisibility.Opacity,
		},
		Shield: gadget.ShieldTuning{
			Active:   s.Shield.Active.Duration(),
			Cooldown: s.Shield.Cooldown.Duration(),
		},
		Boots: gadget.BootsTuning{Cooldown: s.Boots.Cooldown.Duration()},
	}
}

// LoadGadgetsSpec reads gadgets.yaml over the built-in defaults. On error the
// defaults are returned alongside it.
func LoadGadgetsSpec() (GadgetsSpec, error) {
	data, err := Load(GadgetsFile)
	if err != nil {
		return DefaultGadgetsSpec(), fmt.Errorf("prefabs: load %s: %w", GadgetsFile, err)
	}
	spec, err := ParseGadgetsSpec(data)
	if err != nil {
		return DefaultGadgetsSpec(), fmt.Errorf("prefabs: %s: %w", GadgetsFile, err)
	}
	return spec, nil
}

// ParseGadgetsSpec decodes data over the defaults and validates the result.
func ParseGadgetsSpec(data []byte) (GadgetsSpec, error) {
	spec := DefaultGadgetsSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}

// Validate rejects cooldowns and active windows that are not positive, and
// negative stun or lifetime values. A zero stun or lifetime is allowed.
func (s GadgetsSpec) Validate() error {
	positive := []struct {
		name string
		v    Seconds
	}{
		{"checkpoint.cooldown", s.Checkpoint.Cooldown},
		{"acorn.cooldown", s.Acorn.Cooldown},
		{"launcher.cooldown", s.Launcher.Cooldown},
		{"tail_swipe.cooldown", s.TailSwipe.Cooldown},
		{"invisibility.active", s.Invisibility.Active},
		{"invisibility.cooldown", s.Invisibility.Cooldown},
		{"shield.active", s.Shield.Active},
		{"shield.cooldown", s.Shield.Cooldown},
		{"boots.cooldown", s.Boots.Cooldown},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, float64(p.v))
		}
	}
	nonNegative := []struct {
		name string
		v    Seconds
	}{
		{"acorn.stun", s.Acorn.Stun},
		{"launcher.stun", s.Launcher.Stun},
		{"launcher.lifetime", s.Launcher.Lifetime},
		{"tail_swipe.stun", s.TailSwipe.Stun},
	}
	for _, n := range nonNegative {
		if n.v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", n.name, float64(n.v))
		}
	}
	return nil
}
