package resize

import (
	"math"

	"github.com/phanxgames/nodecanvas"
)

// Snapper decides whether a pointer event should snap and how.
type Snapper interface {
	ShouldSnap(mods nodecanvas.KeyModifiers) bool
	SnapSize(nodecanvas.Size) nodecanvas.Size
}

// Grid snaps sizes to the nearest multiple of Spacing.
//
// By default it snaps only while Shift is held. Modifier overrides the key
// mask; Always snaps regardless of modifiers. A non-positive Spacing leaves
// sizes untouched.
type Grid struct {
	Spacing  float64
	Modifier nodecanvas.KeyModifiers
	Always   bool
}

// ShouldSnap reports whether mods enable snapping.
func (g Grid) ShouldSnap(mods nodecanvas.KeyModifiers) bool {
	if g.Always {
		return true
	}
	mask := g.Modifier
	if mask == 0 {
		mask = nodecanvas.ModShift
	}
	return mods.Has(mask)
}

// SnapSize rounds each dimension to the nearest multiple of Spacing.
func (g Grid) SnapSize(s nodecanvas.Size) nodecanvas.Size {
	if g.Spacing <= 0 {
		return s
	}
	return nodecanvas.Size{
		Width:  math.Round(s.Width/g.Spacing) * g.Spacing,
		Height: math.Round(s.Height/g.Spacing) * g.Spacing,
	}
}

// snapFor returns the snap function for an event: the Snapper when mods
// enable it, followed by clamp. Nil when neither applies.
func snapFor(sn Snapper, clamp SnapFunc, mods nodecanvas.KeyModifiers) SnapFunc {
	var grid SnapFunc
	if sn != nil && sn.ShouldSnap(mods) {
		grid = sn.SnapSize
	}
	switch {
	case grid == nil:
		return clamp
	case clamp == nil:
		return grid
	}
	return Chain(grid, clamp)
}

// ClampMin returns a SnapFunc that raises each dimension to at least minSize.
func ClampMin(minSize nodecanvas.Size) SnapFunc {
	return func(s nodecanvas.Size) nodecanvas.Size {
		return nodecanvas.Size{
			Width:  math.Max(s.Width, minSize.Width),
			Height: math.Max(s.Height, minSize.Height),
		}
	}
}

// Chain applies fns in order. Nil entries are skipped.
func Chain(fns ...SnapFunc) SnapFunc {
	return func(s nodecanvas.Size) nodecanvas.Size {
		for _, fn := range fns {
			if fn != nil {
				s = fn(s)
			}
		}
		return s
	}
}
