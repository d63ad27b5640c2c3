package nodecanvas

import (
	"image/color"
	"testing"
)

func TestGridLines(t *testing.T) {
	xs, ys := gridLines(Rect{X: 0, Y: 0, Width: 25, Height: 25}, 10)
	want := []float64{0, 10, 20}
	if len(xs) != len(want) || len(ys) != len(want) {
		t.Fatalf("xs = %v, ys = %v, want %v", xs, ys, want)
	}
	for i := range want {
		if xs[i] != want[i] || ys[i] != want[i] {
			t.Errorf("line %d = (%v, %v), want %v", i, xs[i], ys[i], want[i])
		}
	}
}

func TestGridLinesNegativeOrigin(t *testing.T) {
	xs, _ := gridLines(Rect{X: -15, Y: 0, Width: 30, Height: 10}, 10)
	want := []float64{-10, 0, 10}
	if len(xs) != len(want) {
		t.Fatalf("xs = %v, want %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestGridLinesDisabled(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Rect
		spacing float64
	}{
		{"zero spacing", Rect{Width: 100, Height: 100}, 0},
		{"negative spacing", Rect{Width: 100, Height: 100}, -5},
		{"too dense", Rect{Width: 10000, Height: 10000}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys := gridLines(tt.bounds, tt.spacing)
			if xs != nil || ys != nil {
				t.Errorf("got %d/%d lines, want none", len(xs), len(ys))
			}
		})
	}
}

func TestGeoM(t *testing.T) {
	x, y := geoM([6]float64{2, 0, 0, 3, 5, 7}).Apply(1, 1)
	if x != 7 || y != 10 {
		t.Errorf("Apply = (%v, %v), want (7, 10)", x, y)
	}
	m := [6]float64{1, 2, 3, 4, 5, 6}
	gx, gy := geoM(m).Apply(1, 1)
	tx, ty := transformPoint(m, 1, 1)
	if gx != tx || gy != ty {
		t.Errorf("geoM disagrees with transformPoint: (%v, %v) vs (%v, %v)", gx, gy, tx, ty)
	}
}

func TestCollectDrawables(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 10, 10, ColorWhite)
	a.SetZIndex(1)
	b := NewRect("b", 10, 10, ColorWhite)
	hidden := NewRect("hidden", 10, 10, ColorWhite)
	hidden.Visible = false
	empty := NewRect("empty", 0, 0, ColorWhite)
	group := NewContainer("group")
	child := NewRect("child", 5, 5, ColorWhite)
	group.AddChild(child)

	s.Root().AddChild(a)
	s.Root().AddChild(b)
	s.Root().AddChild(hidden)
	s.Root().AddChild(empty)
	s.Root().AddChild(group)
	updateWorldTransform(s.root, identityTransform, 1, false)

	items := s.collectDrawables(s.root, nil)
	var names []string
	for _, it := range items {
		names = append(names, it.node.Name)
	}
	want := []string{"b", "child", "a"}
	if len(names) != len(want) {
		t.Fatalf("drawn = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("drawn[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestColorToRGBAPremultiplied(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
}

func TestNewSceneGridDefaults(t *testing.T) {
	s := NewScene()
	if s.Grid.Visible {
		t.Error("grid should start hidden")
	}
	if s.Grid.Spacing <= 0 {
		t.Errorf("grid spacing = %v, want positive", s.Grid.Spacing)
	}
}
