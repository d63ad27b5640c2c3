package resize

import "github.com/phanxgames/nodecanvas"

// Horizontal is the horizontal side a handle sits on.
type Horizontal uint8

const (
	Left  Horizontal = iota // dragging moves the left edge; the right edge stays put
	Right                   // dragging moves the right edge; X is unchanged
)

// Vertical is the vertical side a handle sits on.
type Vertical uint8

const (
	Top    Vertical = iota // dragging moves the top edge; the bottom edge stays put
	Bottom                 // dragging moves the bottom edge; Y is unchanged
)

// Handle identifies which corner of a node is being dragged.
type Handle struct {
	Horizontal Horizontal
	Vertical   Vertical
}

// The four corner handles.
var (
	TopLeft     = Handle{Left, Top}
	TopRight    = Handle{Right, Top}
	BottomLeft  = Handle{Left, Bottom}
	BottomRight = Handle{Right, Bottom}
)

// Corners lists the four corner handles in drawing order.
var Corners = [4]Handle{TopLeft, TopRight, BottomLeft, BottomRight}

func (h Handle) String() string {
	v := "top"
	if h.Vertical == Bottom {
		v = "bottom"
	}
	if h.Horizontal == Right {
		return v + "-right"
	}
	return v + "-left"
}

// SnapFunc quantizes or otherwise constrains a resized size.
type SnapFunc func(nodecanvas.Size) nodecanvas.Size

// Outcome is the size and position a node should take for one pointer
// position during a resize.
type Outcome struct {
	Size     nodecanvas.Size
	Position nodecanvas.Vec2
}

// Params are the inputs of ComputeOutcome. Snap may be nil.
type Params struct {
	StartSize     nodecanvas.Size
	StartPosition nodecanvas.Vec2
	Delta         nodecanvas.Vec2
	Handle        Handle
	Snap          SnapFunc
}

// ApplyHandleDelta grows startSize by delta. Left and top handles invert the
// sign, so dragging toward the node's interior shrinks it.
func ApplyHandleDelta(startSize nodecanvas.Size, delta nodecanvas.Vec2, h Handle) nodecanvas.Size {
	hm, vm := 1.0, 1.0
	if h.Horizontal != Right {
		hm = -1
	}
	if h.Vertical != Bottom {
		vm = -1
	}
	return nodecanvas.Size{
		Width:  startSize.Width + delta.X*hm,
		Height: startSize.Height + delta.Y*vm,
	}
}

// AdjustedPosition returns the position that keeps the edge opposite the
// handle where it was: a left handle shifts X by the width change, a top
// handle shifts Y by the height change.
func AdjustedPosition(startPos nodecanvas.Vec2, startSize, nextSize nodecanvas.Size, h Handle) nodecanvas.Vec2 {
	p := startPos
	if h.Horizontal == Left {
		p.X += startSize.Width - nextSize.Width
	}
	if h.Vertical == Top {
		p.Y += startSize.Height - nextSize.Height
	}
	return p
}

// ComputeOutcome resizes, snaps, then positions. The position is computed
// against the snapped size.
func ComputeOutcome(p Params) Outcome {
	size := ApplyHandleDelta(p.StartSize, p.Delta, p.Handle)
	if p.Snap != nil {
		size = p.Snap(size)
	}
	return Outcome{
		Size:     size,
		Position: AdjustedPosition(p.StartPosition, p.StartSize, size, p.Handle),
	}
}

// Session evaluates a resize for a pointer delta measured from the start of
// the drag. Every call recomputes from the captured start state, so results
// never drift across calls.
type Session func(delta nodecanvas.Vec2, snap SnapFunc) Outcome

// NewSession captures the start state of a drag.
func NewSession(startSize nodecanvas.Size, startPosition nodecanvas.Vec2, h Handle) Session {
	return func(delta nodecanvas.Vec2, snap SnapFunc) Outcome {
		return ComputeOutcome(Params{
			StartSize:     startSize,
			StartPosition: startPosition,
			Delta:         delta,
			Handle:        h,
			Snap:          snap,
		})
	}
}

// ToCanvasDelta converts the screen-space movement from start to current
// into canvas space by dividing by scale. A zero scale is treated as 1.
func ToCanvasDelta(start, current nodecanvas.Vec2, scale float64) nodecanvas.Vec2 {
	if scale == 0 {
		scale = 1
	}
	return nodecanvas.Vec2{
		X: (current.X - start.X) / scale,
		Y: (current.Y - start.Y) / scale,
	}
}
