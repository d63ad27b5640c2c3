package resize

import (
	"fmt"

	"github.com/phanxgames/nodecanvas"
)

// Handles are the four corner nodes attached to a resizable node.
type Handles struct {
	ctrl    *Controller
	size    float64
	nodes   [4]*nodecanvas.Node
	readout *nodecanvas.Node
}

// Attach adds four interactable corner squares of the given size as
// children of the controller's target. Pressing one starts a resize with
// the matching corner. Panics if the controller has no target.
func Attach(ctrl *Controller, size float64, color nodecanvas.Color) *Handles {
	target := ctrl.Target()
	if target == nil {
		panic("resize: Attach needs a controller with a Target")
	}
	hs := &Handles{ctrl: ctrl, size: size}
	for i, corner := range Corners {
		n := nodecanvas.NewRect(fmt.Sprintf("%s/handle-%s", target.Name, corner), size, size, color)
		n.ZIndex = 1
		n.UserData = corner
		n.OnPointerDown = func(ctx nodecanvas.PointerContext) {
			ctrl.StartResize(ctx, corner)
		}
		target.AddChild(n)
		hs.nodes[i] = n
	}
	hs.Layout()
	return hs
}

// Node returns the handle node for a corner.
func (hs *Handles) Node(h Handle) *nodecanvas.Node {
	for i, corner := range Corners {
		if corner == h {
			return hs.nodes[i]
		}
	}
	return nil
}

// ShowSize adds a "W x H" label under the target that Layout keeps current.
// A nil font uses nodecanvas.DefaultFont. Calling it again is a no-op.
func (hs *Handles) ShowSize(font *nodecanvas.Font, color nodecanvas.Color) *nodecanvas.Node {
	if hs.readout != nil {
		return hs.readout
	}
	target := hs.ctrl.Target()
	hs.readout = nodecanvas.NewText(target.Name+"/size", "", font, color)
	target.AddChild(hs.readout)
	hs.Layout()
	return hs.readout
}

// Layout centers each handle on its corner of the target's current size.
func (hs *Handles) Layout() {
	target := hs.ctrl.Target()
	if r := hs.readout; r != nil && !r.IsDisposed() {
		r.SetText(fmt.Sprintf("%.0f x %.0f", target.Width, target.Height))
		r.SetPosition(0, target.Height+hs.size)
	}
	half := hs.size / 2
	for i, corner := range Corners {
		n := hs.nodes[i]
		if n == nil || n.IsDisposed() {
			continue
		}
		x, y := -half, -half
		if corner.Horizontal == Right {
			x += target.Width
		}
		if corner.Vertical == Bottom {
			y += target.Height
		}
		n.SetPosition(x, y)
	}
}

// Detach cancels any active resize and disposes the handle nodes and the
// size label.
func (hs *Handles) Detach() {
	hs.ctrl.Cancel()
	if hs.readout != nil {
		hs.readout.Dispose()
		hs.readout = nil
	}
	for i, n := range hs.nodes {
		if n != nil {
			n.Dispose()
			hs.nodes[i] = nil
		}
	}
}

// ApplyTo returns an OnResize callback that writes each outcome into node
// and, when handles is non-nil, keeps the handles on the corners.
func ApplyTo(node *nodecanvas.Node, handles *Handles) func(Outcome) {
	return func(o Outcome) {
		node.SetSize(o.Size)
		node.SetPosition(o.Position.X, o.Position.Y)
		if handles != nil {
			handles.Layout()
		}
	}
}
