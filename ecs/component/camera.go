package component

// Camera maps world pixels to the screen: screen = (world - X, Y) * Zoom.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
