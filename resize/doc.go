// Package resize turns a drag on a corner handle into a new node size and
// position.
//
// The math is pure: [ComputeOutcome] maps a start size, start position,
// canvas-space pointer delta and [Handle] to an [Outcome], optionally passing
// the resized size through a [SnapFunc] first. The position is always
// computed against the final (snapped) size, so the edge opposite the
// dragged handle never moves.
//
// [Controller] wires the math to a [nodecanvas.Scene]: a pointer down on a
// handle captures the pointer and opens a [Session], every pointer move is
// converted from screen to canvas space through the camera zoom and
// evaluated against the session, and pointer up tears everything down.
//
//	ctrl := resize.New(resize.Config{
//		Scene:  scene,
//		Target: box,
//		Snap:   resize.Grid{Spacing: 10},
//	})
//	handles := resize.Attach(ctrl, 8, handleColor)
//	ctrl.OnResize = resize.ApplyTo(box, handles)
//
// Sizes are not clamped unless Config.Clamp is set, for example to
// [ClampMin]. [Handles.ShowSize] adds a live "W x H" readout.
package resize
