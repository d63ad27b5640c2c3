package nodecanvas

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a TrueType face at a fixed size, rendered with Ebitengine's text/v2.
type Font struct {
	face *text.GoTextFace
	lh   float64
}

// LoadFont parses TTF or OTF data and returns a face of the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

var defaultFont *Font

// DefaultFont returns the built-in Go Regular face at 13px. Panics if the
// embedded font data cannot be parsed.
func DefaultFont() *Font {
	if defaultFont == nil {
		f, err := LoadFont(goregular.TTF, 13)
		if err != nil {
			panic("nodecanvas: " + err.Error())
		}
		defaultFont = f
	}
	return defaultFont
}

// Measure returns the rendered width and height of s.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// NewText creates a text node. A nil font uses DefaultFont. Width and Height
// track the measured text.
func NewText(name, str string, font *Font, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeText}
	nodeDefaults(n)
	n.Color = c
	if font == nil {
		font = DefaultFont()
	}
	n.Font = font
	n.SetText(str)
	return n
}

// SetText replaces the text of a text node and re-measures it.
func (n *Node) SetText(str string) {
	n.Text = str
	if n.Font != nil {
		n.Width, n.Height = n.Font.Measure(str)
	}
}

func drawText(target *ebiten.Image, n *Node, m [6]float64, alpha float64) {
	if n.Font == nil || n.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(m)
	op.LineSpacing = n.Font.lh
	a := n.Color.A * alpha
	op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
	text.Draw(target, n.Text, n.Font.face, op)
}
