package gadget

import "time"

// Tuning holds the per-gadget numbers the catalog is built from. Distances
// are in pixels, speeds in pixels per second.
type Tuning struct {
	Checkpoint   CheckpointTuning
	DummyAcorn   DecoyTuning
	Launcher     LauncherTuning
	TailSwipe    SwipeTuning
	Invisibility InvisibilityTuning
	Shield       ShieldTuning
	Boots        BootsTuning
}

type CheckpointTuning struct {
	Cooldown time.Duration
	OffsetX  float64
	OffsetY  float64
}

type DecoyTuning struct {
	Cooldown time.Duration
	Stun     time.Duration
	OffsetX  float64
	OffsetY  float64
}

type LauncherTuning struct {
	Cooldown time.Duration
	Stun     time.Duration
	Lifetime time.Duration
	Speed    float64
	OffsetX  float64
	OffsetY  float64
}

type SwipeTuning struct {
	Cooldown time.Duration
	Stun     time.Duration
	Radius   float64
}

type InvisibilityTuning struct {
	Active   time.Duration
	Cooldown time.Duration
	Opacity  float64
}

type ShieldTuning struct {
	Active   time.Duration
	Cooldown time.Duration
}

type BootsTuning struct {
	Cooldown time.Duration
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DefaultTuning mirrors the cooldowns advertised in the shop.
func DefaultTuning() Tuning {
	return Tuning{
		Checkpoint: CheckpointTuning{Cooldown: seconds(13)},
		DummyAcorn: DecoyTuning{Cooldown: seconds(7), Stun: seconds(3), OffsetY: -6},
		Launcher: LauncherTuning{
			Cooldown: seconds(5),
			Stun:     seconds(3),
			Lifetime: seconds(4),
			Speed:    320,
		},
		TailSwipe:    SwipeTuning{Cooldown: seconds(8), Stun: seconds(1.5), Radius: 48},
		Invisibility: InvisibilityTuning{Active: seconds(3), Cooldown: seconds(8), Opacity: 185.0 / 255.0},
		Shield:       ShieldTuning{Active: seconds(3), Cooldown: seconds(8)},
		Boots:        BootsTuning{Cooldown: seconds(6)},
	}
}
