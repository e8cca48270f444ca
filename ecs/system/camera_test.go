package system

import (
	"math"
	"testing"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/ecs/entity"
)

func TestCameraFraming(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		p1X, p2X      float64
		wantZoom      float64
		wantX, wantY  float64
	}{
		{
			name: "level_fits", width: 1280, height: 704,
			p1X: 100, p2X: 400,
			wantZoom: 1, wantX: 0, wantY: -8,
		},
		{
			name: "small_level_centred", width: 640, height: 360,
			p1X: 100, p2X: 400,
			wantZoom: 1, wantX: -320, wantY: -180,
		},
		{
			// 4000 wide needs zoom 0.32; clamped to minZoom the view is
			// 2133.3 wide and follows the players to the right edge.
			name: "wide_level_follows", width: 4000, height: 704,
			p1X: 3800, p2X: 3900,
			wantZoom: minZoom, wantX: 4000 - 1280/minZoom, wantY: (704 - 720/minZoom) / 2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if _, err := entity.NewLevelBounds(f.w, tc.width, tc.height, tc.height+96); err != nil {
				t.Fatalf("bounds: %v", err)
			}
			f.moveTo(f.players[0], tc.p1X, 100)
			f.moveTo(f.players[1], tc.p2X, 100)

			NewCameraSystem(1280, 720).Update(f.w)

			e, ok := ecs.First(f.w, component.CameraComponent.Kind())
			if !ok {
				t.Fatalf("camera system did not create a camera")
			}
			cam, _ := ecs.Get(f.w, e, component.CameraComponent.Kind())
			if math.Abs(cam.Zoom-tc.wantZoom) > 1e-9 {
				t.Fatalf("zoom = %v, want %v", cam.Zoom, tc.wantZoom)
			}
			if math.Abs(cam.X-tc.wantX) > 1e-6 || math.Abs(cam.Y-tc.wantY) > 1e-6 {
				t.Fatalf("camera at (%v, %v), want (%v, %v)", cam.X, cam.Y, tc.wantX, tc.wantY)
			}
		})
	}
}
