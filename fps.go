package nodecanvas

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsText formats the debug overlay: frame rates, primary camera zoom and
// the number of pointers currently held down.
func (s *Scene) statsText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	zoom := 1.0
	if cam := s.PrimaryCamera(); cam != nil {
		zoom = cam.ZoomFactor()
	}
	fmt.Fprintf(&b, "\nzoom: %.2f", zoom)
	down := 0
	for i := range s.pointers {
		if s.pointers[i].down {
			down++
		}
	}
	fmt.Fprintf(&b, "\npointers: %d", down)
	if s.Grid.Visible {
		fmt.Fprintf(&b, "\ngrid: %g", s.Grid.Spacing)
	}
	return b.String()
}

// drawStats prints the overlay in the top-left corner of screen when
// ShowStats is set.
func (s *Scene) drawStats(screen *ebiten.Image) {
	if !s.ShowStats {
		return
	}
	ebitenutil.DebugPrint(screen, s.statsText())
}
