package nodecanvas

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom != 1 || cam.ZoomFactor() != 1 {
		t.Errorf("Zoom = %v, want 1", cam.Zoom)
	}
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", cam.X, cam.Y)
	}
	if s.PrimaryCamera() != cam {
		t.Error("first camera should be primary")
	}
}

func TestCameraViewMatrix(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 100, 50
	cam.Zoom = 2
	cam.MarkDirty()

	want := [6]float64{2, 0, 0, 2, 400 - 200, 300 - 100}
	if got := cam.computeViewMatrix(); got != want {
		t.Errorf("view = %v, want %v", got, want)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 37, -12
	cam.SetZoom(1.7)

	sx, sy := cam.WorldToScreen(123, 456)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEqual(wx, 123, 1e-6) || !approxEqual(wy, 456, 1e-6) {
		t.Errorf("roundtrip = (%v, %v), want (123, 456)", wx, wy)
	}
}

func TestVisibleBoundsZoom2(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.SetZoom(2)
	b := cam.VisibleBounds()
	want := Rect{X: -200, Y: -150, Width: 400, Height: 300}
	if !approxEqual(b.X, want.X, epsilon) || !approxEqual(b.Y, want.Y, epsilon) ||
		!approxEqual(b.Width, want.Width, epsilon) || !approxEqual(b.Height, want.Height, epsilon) {
		t.Errorf("VisibleBounds = %v, want %v", b, want)
	}
}

func TestSetZoomClamps(t *testing.T) {
	cam := newCamera(Rect{Width: 100, Height: 100})
	cam.SetZoom(0)
	if cam.Zoom != minZoom {
		t.Errorf("SetZoom(0) = %v, want %v", cam.Zoom, minZoom)
	}
	cam.SetZoom(1000)
	if cam.Zoom != maxZoom {
		t.Errorf("SetZoom(1000) = %v, want %v", cam.Zoom, maxZoom)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 10, 20
	cam.MarkDirty()

	sx, sy := 600.0, 100.0
	wx, wy := cam.ScreenToWorld(sx, sy)
	cam.ZoomAt(sx, sy, 1.5)

	if !approxEqual(cam.Zoom, 1.5, epsilon) {
		t.Errorf("Zoom = %v, want 1.5", cam.Zoom)
	}
	nx, ny := cam.ScreenToWorld(sx, sy)
	if !approxEqual(nx, wx, 1e-6) || !approxEqual(ny, wy, 1e-6) {
		t.Errorf("point under cursor moved from (%v, %v) to (%v, %v)", wx, wy, nx, ny)
	}
}

func TestCameraZoomTo(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ZoomTo(2, 0.5, ease.Linear)
	if !cam.Animating() {
		t.Fatal("ZoomTo should start an animation")
	}

	cam.update(0.25)
	if math.Abs(cam.Zoom-1.5) > 1e-4 {
		t.Errorf("Zoom halfway = %v, want 1.5", cam.Zoom)
	}
	cam.update(0.25)
	if math.Abs(cam.Zoom-2) > 1e-4 {
		t.Errorf("Zoom at end = %v, want 2", cam.Zoom)
	}
	if cam.Animating() {
		t.Error("animation should be finished")
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, -40, 1, ease.Linear)
	cam.update(0.5)
	cam.update(0.5)
	if math.Abs(cam.X-100) > 1e-3 || math.Abs(cam.Y+40) > 1e-3 {
		t.Errorf("position = (%v, %v), want (100, -40)", cam.X, cam.Y)
	}
	if cam.Animating() {
		t.Error("animation should be finished")
	}
}

func TestSceneRemoveCamera(t *testing.T) {
	s := NewScene()
	a := s.NewCamera(Rect{Width: 10, Height: 10})
	b := s.NewCamera(Rect{Width: 10, Height: 10})
	s.RemoveCamera(a)
	if len(s.Cameras()) != 1 || s.PrimaryCamera() != b {
		t.Error("b should be the only and primary camera")
	}
	s.RemoveCamera(b)
	if s.PrimaryCamera() != nil {
		t.Error("PrimaryCamera should be nil without cameras")
	}
}

func TestSceneUpdateRunsCameraUpdates(t *testing.T) {
	s := NewScene()
	s.SetSyntheticInputOnly(true)
	cam := s.NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, 0, 0.01, ease.Linear)
	for i := 0; i < 10; i++ {
		s.Update()
	}
	if cam.Animating() {
		t.Error("animation should finish within a few frames")
	}
	if math.Abs(cam.X-100) > 1e-3 {
		t.Errorf("X = %v, want 100", cam.X)
	}
}
