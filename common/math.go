package common

import (
	"math"
	"time"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; every system advances by TickDuration.
	TPS          = 60
	TickDuration = time.Second / TPS

	// Gravity is in pixels per second squared, Y down.
	Gravity = 1400.0
)

// TickSeconds is TickDuration as a float for physics integration.
var TickSeconds = TickDuration.Seconds()

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Overlaps reports whether two centred boxes intersect.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx)*2 < aw+bw && math.Abs(ay-by)*2 < ah+bh
}

// Within reports whether (x, y) lies within radius of (cx, cy), inclusive.
func Within(x, y, cx, cy, radius float64) bool {
	return math.Hypot(x-cx, y-cy) <= radius
}
