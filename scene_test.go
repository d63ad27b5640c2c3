package nodecanvas

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene()
	if s.Root() == nil || !s.Root().Interactable {
		t.Error("root should exist and be interactable")
	}
	if s.PrimaryCamera() != nil || len(s.Cameras()) != 0 {
		t.Error("a new scene should have no cameras")
	}
	if s.Grid.Visible || s.Grid.Spacing != 10 {
		t.Errorf("Grid = %+v, want hidden with spacing 10", s.Grid)
	}
	if s.EntityStore() != nil {
		t.Error("EntityStore should be nil")
	}
	if s.Modifiers() != 0 {
		t.Error("no modifiers should be held before the first Update")
	}
}

func TestPrimaryCameraAndRemoveCamera(t *testing.T) {
	tests := []struct {
		name      string
		create    int
		remove    []int // indexes into the created cameras
		removeNew bool  // also remove a camera the scene never owned
		wantLen   int
		wantFirst int // index of the expected primary, -1 for nil
	}{
		{"none", 0, nil, false, 0, -1},
		{"single", 1, nil, false, 1, 0},
		{"first of two", 2, nil, false, 2, 0},
		{"remove primary", 2, []int{0}, false, 1, 1},
		{"remove secondary", 2, []int{1}, false, 1, 0},
		{"remove all", 2, []int{0, 1}, false, 0, -1},
		{"remove twice", 2, []int{0, 0}, false, 1, 1},
		{"remove unknown", 1, nil, true, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			var cams []*Camera
			for i := 0; i < tt.create; i++ {
				cams = append(cams, s.NewCamera(Rect{Width: 800, Height: 600}))
			}
			for _, i := range tt.remove {
				s.RemoveCamera(cams[i])
			}
			if tt.removeNew {
				s.RemoveCamera(newCamera(Rect{}))
			}

			if got := len(s.Cameras()); got != tt.wantLen {
				t.Errorf("len(Cameras) = %d, want %d", got, tt.wantLen)
			}
			var want *Camera
			if tt.wantFirst >= 0 {
				want = cams[tt.wantFirst]
			}
			if got := s.PrimaryCamera(); got != want {
				t.Errorf("PrimaryCamera = %p, want %p", got, want)
			}
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	tests := []struct {
		name string
		// setup prepares the scene and queues whatever drives the frame.
		setup func(t *testing.T, s *Scene, box *Node)
	}{
		{
			// The runner queues the press, and the same Update delivers it.
			name: "runner before input",
			setup: func(t *testing.T, s *Scene, _ *Node) {
				runner, err := LoadTestScript([]byte(`{"steps":[{"action":"press","x":50,"y":50}]}`))
				if err != nil {
					t.Fatal(err)
				}
				s.SetTestRunner(runner)
			},
		},
		{
			// The box moves between frames; hit testing sees the new position.
			name: "transforms before input",
			setup: func(_ *testing.T, s *Scene, box *Node) {
				box.SetPosition(300, 300)
				s.InjectPress(350, 350)
			},
		},
		{
			// A camera tween that finishes this frame converts this frame's
			// press. Before the tween, screen (380, 280) is world (-20, -20).
			name: "camera before input",
			setup: func(_ *testing.T, s *Scene, _ *Node) {
				cam := s.NewCamera(Rect{Width: 800, Height: 600})
				cam.ScrollTo(50, 50, 0.001, ease.Linear)
				s.InjectPress(380, 280)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, box := newInputScene()
			var hits []*Node
			s.OnPointerDown(func(ctx PointerContext) { hits = append(hits, ctx.Node) })
			tt.setup(t, s, box)

			s.Update()

			if len(hits) != 1 || hits[0] != box {
				t.Errorf("hits after one Update = %v, want [box]", hits)
			}
		})
	}
}

func TestUpdateFinishesCameraTween(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 800, Height: 600})
	cam.ZoomTo(2, 0.001, ease.Linear)
	s.Update()
	if cam.Animating() || cam.Zoom != 2 {
		t.Errorf("Zoom = %v, Animating = %v; want 2, false", cam.Zoom, cam.Animating())
	}
}
