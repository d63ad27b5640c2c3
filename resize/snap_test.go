package resize

import (
	"testing"

	"github.com/phanxgames/nodecanvas"
)

func TestGridShouldSnap(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		mods nodecanvas.KeyModifiers
		want bool
	}{
		{"default no mods", Grid{Spacing: 10}, 0, false},
		{"default shift", Grid{Spacing: 10}, nodecanvas.ModShift, true},
		{"default shift+ctrl", Grid{Spacing: 10}, nodecanvas.ModShift | nodecanvas.ModCtrl, true},
		{"custom modifier", Grid{Spacing: 10, Modifier: nodecanvas.ModAlt}, nodecanvas.ModShift, false},
		{"custom modifier held", Grid{Spacing: 10, Modifier: nodecanvas.ModAlt}, nodecanvas.ModAlt, true},
		{"always", Grid{Spacing: 10, Always: true}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.ShouldSnap(tt.mods); got != tt.want {
				t.Errorf("ShouldSnap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridSnapSize(t *testing.T) {
	tests := []struct {
		spacing float64
		in      size
		want    size
	}{
		{10, size{110, 64}, size{110, 60}},
		{10, size{104.9, 105}, size{100, 110}},
		{25, size{30, 40}, size{25, 50}},
		{10, size{-14, -16}, size{-10, -20}},
		{0, size{13, 17}, size{13, 17}},
		{-5, size{13, 17}, size{13, 17}},
	}
	for _, tt := range tests {
		g := Grid{Spacing: tt.spacing}
		if got := g.SnapSize(tt.in); got != tt.want {
			t.Errorf("Grid{%v}.SnapSize(%v) = %v, want %v", tt.spacing, tt.in, got, tt.want)
		}
	}
}

func TestClampMin(t *testing.T) {
	clamp := ClampMin(size{20, 10})
	if got := clamp(size{5, 50}); got != (size{20, 50}) {
		t.Errorf("clamp = %v, want {20 50}", got)
	}
	if got := clamp(size{-30, -30}); got != (size{20, 10}) {
		t.Errorf("clamp negative = %v, want {20 10}", got)
	}
}

func TestChain(t *testing.T) {
	double := func(s size) size { return size{s.Width * 2, s.Height * 2} }
	fn := Chain(Grid{Spacing: 10}.SnapSize, nil, double)
	if got := fn(size{14, 16}); got != (size{20, 40}) {
		t.Errorf("Chain = %v, want {20 40}", got)
	}
	if got := Chain()(size{3, 4}); got != (size{3, 4}) {
		t.Errorf("empty Chain = %v, want identity", got)
	}
}

func TestSnapFor(t *testing.T) {
	grid := Grid{Spacing: 10}
	clamp := ClampMin(size{50, 50})

	if fn := snapFor(nil, nil, nodecanvas.ModShift); fn != nil {
		t.Error("no snapper and no clamp should give nil")
	}
	if fn := snapFor(grid, nil, 0); fn != nil {
		t.Error("snapper without its modifier should give nil")
	}

	fn := snapFor(grid, nil, nodecanvas.ModShift)
	if fn == nil || fn(size{14, 16}) != (size{10, 20}) {
		t.Error("shift should enable grid snapping")
	}

	fn = snapFor(grid, clamp, 0)
	if fn == nil || fn(size{14, 16}) != (size{50, 50}) {
		t.Error("clamp should apply without shift")
	}

	fn = snapFor(grid, clamp, nodecanvas.ModShift)
	if got := fn(size{64, 14}); got != (size{60, 50}) {
		t.Errorf("grid then clamp = %v, want {60 50}", got)
	}
}
