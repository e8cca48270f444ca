package component

import "image/color"

// Sprite is drawn as a filled shape; there is no texture atlas.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.RGBA
	// Alpha multiplies Color's alpha. Zero is treated as fully opaque.
	Alpha  float64
	Circle bool
	Layer  int
}

var SpriteComponent = NewComponent[Sprite]()

// Opacity returns the effective alpha multiplier.
func (s *Sprite) Opacity() float64 {
	if s.Alpha <= 0 {
		return 1
	}
	return s.Alpha
}
