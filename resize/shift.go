package resize

import "github.com/phanxgames/nodecanvas"

// ShiftTracker mirrors modifier state somewhere else for the duration of a
// drag. Track is called on pointer down; the returned stop function is
// called exactly once when the drag ends.
type ShiftTracker interface {
	Track(ctx nodecanvas.PointerContext) (stop func())
}

// ModifierSync is a ShiftTracker that reports Shift state changes to
// OnChange while a drag is active. It listens to the scene's modifier
// changes, so pressing or releasing Shift is reported even while the
// pointer is still. OnChange(true) fires at most once per press, and a held
// Shift is reported released when tracking stops.
type ModifierSync struct {
	Scene    *nodecanvas.Scene
	OnChange func(held bool)
}

// Track starts mirroring from the modifiers of the pointer down event.
func (m *ModifierSync) Track(ctx nodecanvas.PointerContext) func() {
	held := ctx.Modifiers.Has(nodecanvas.ModShift)
	if held {
		m.report(true)
	}

	h := m.Scene.OnModifiersChange(func(mods nodecanvas.KeyModifiers) {
		if now := mods.Has(nodecanvas.ModShift); now != held {
			held = now
			m.report(held)
		}
	})

	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		h.Remove()
		if held {
			m.report(false)
		}
	}
}

func (m *ModifierSync) report(held bool) {
	if m.OnChange != nil {
		m.OnChange(held)
	}
}

// GridPreview returns a ModifierSync that shows the scene's snap grid while
// Shift is held during a drag. Releasing Shift restores the grid's
// visibility from before the preview.
func GridPreview(scene *nodecanvas.Scene) *ModifierSync {
	var showing, prev bool
	return &ModifierSync{
		Scene: scene,
		OnChange: func(held bool) {
			switch {
			case held && !showing:
				showing, prev = true, scene.Grid.Visible
				scene.Grid.Visible = true
			case !held && showing:
				showing = false
				scene.Grid.Visible = prev
			}
		},
	}
}
