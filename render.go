package nodecanvas

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxGridLines bounds the grid overlay when zoomed far out.
const maxGridLines = 400

// drawItem is one rect to draw, with its world transform and final alpha
// resolved during traversal.
type drawItem struct {
	node      *Node
	transform [6]float64
	alpha     float64
}

// Draw renders the scene. With no cameras the canvas is drawn 1:1 into
// screen; otherwise each camera renders into its viewport.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.drawBuf = s.collectDrawables(s.root, s.drawBuf[:0])

	if len(s.cameras) == 0 {
		b := screen.Bounds()
		bounds := Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
		s.drawView(screen, identityTransform, bounds)
	} else {
		for _, cam := range s.cameras {
			vp := cam.Viewport
			target := screen.SubImage(image.Rect(
				int(vp.X), int(vp.Y),
				int(vp.X+vp.Width), int(vp.Y+vp.Height),
			)).(*ebiten.Image)
			s.drawView(target, cam.computeViewMatrix(), cam.VisibleBounds())
		}
	}

	s.drawStats(screen)
	s.flushScreenshots(screen)
}

func (s *Scene) drawView(target *ebiten.Image, view [6]float64, visible Rect) {
	if s.Grid.Visible {
		s.drawGrid(target, view, visible)
	}
	var op ebiten.DrawImageOptions
	for _, it := range s.drawBuf {
		n := it.node
		if n.Type == NodeTypeText {
			drawText(target, n, multiplyAffine(view, it.transform), it.alpha)
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(geoM(multiplyAffine(view, it.transform)))
		op.ColorScale.Reset()
		a := n.Color.A * it.alpha
		op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
		target.DrawImage(WhitePixel, &op)
	}
}

// collectDrawables appends visible rect and text nodes to buf in painter order.
func (s *Scene) collectDrawables(n *Node, buf []drawItem) []drawItem {
	if !n.Visible {
		return buf
	}
	if (n.Type == NodeTypeRect && n.Width != 0 && n.Height != 0) || (n.Type == NodeTypeText && n.Text != "") {
		buf = append(buf, drawItem{node: n, transform: n.worldTransform, alpha: n.worldAlpha})
	}
	for _, child := range n.orderedChildren() {
		buf = s.collectDrawables(child, buf)
	}
	return buf
}

func (s *Scene) drawGrid(target *ebiten.Image, view [6]float64, visible Rect) {
	xs, ys := gridLines(visible, s.Grid.Spacing)
	clr := s.Grid.Color.toRGBA()
	for _, x := range xs {
		x0, y0 := transformPoint(view, x, visible.Y)
		x1, y1 := transformPoint(view, x, visible.Y+visible.Height)
		vector.StrokeLine(target, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
	}
	for _, y := range ys {
		x0, y0 := transformPoint(view, visible.X, y)
		x1, y1 := transformPoint(view, visible.X+visible.Width, y)
		vector.StrokeLine(target, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
	}
}

// gridLines returns the world coordinates of the vertical (xs) and
// horizontal (ys) grid lines crossing bounds. Nothing is returned for a
// non-positive spacing or when the line count would exceed maxGridLines.
func gridLines(bounds Rect, spacing float64) (xs, ys []float64) {
	if spacing <= 0 {
		return nil, nil
	}
	if bounds.Width/spacing+bounds.Height/spacing > maxGridLines {
		return nil, nil
	}
	for x := math.Ceil(bounds.X/spacing) * spacing; x <= bounds.X+bounds.Width; x += spacing {
		xs = append(xs, x)
	}
	for y := math.Ceil(bounds.Y/spacing) * spacing; y <= bounds.Y+bounds.Height; y += spacing {
		ys = append(ys, y)
	}
	return xs, ys
}

// geoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
