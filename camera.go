package nodecanvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	minZoom = 0.05
	maxZoom = 20
)

// cameraAnim holds the active tweens of a camera animation. A nil tween
// leaves its field alone.
type cameraAnim struct {
	tweenX    *gween.Tween
	tweenY    *gween.Tween
	tweenZoom *gween.Tween
}

// Camera controls the view into the canvas: position, zoom and viewport.
// The view is Translate(viewport center) * Scale(Zoom) * Translate(-X, -Y).
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	anim *cameraAnim
}

func newCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// ZoomFactor returns the current zoom, the number of screen pixels per
// canvas unit.
func (c *Camera) ZoomFactor() float64 {
	return c.Zoom
}

// SetZoom sets the zoom factor, clamped to a sane range.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = clampZoom(z)
	c.dirty = true
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the screen position (sx, sy) fixed on screen. This is what a scroll wheel
// zoom does.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.SetZoom(c.Zoom * factor)
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X += wx - nx
	c.Y += wy - ny
	c.dirty = true
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	a := c.animation()
	a.tweenX = gween.New(float32(c.X), float32(x), duration, easeFn)
	a.tweenY = gween.New(float32(c.Y), float32(y), duration, easeFn)
}

// ZoomTo animates the zoom factor over duration seconds.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	a := c.animation()
	a.tweenZoom = gween.New(float32(c.Zoom), float32(clampZoom(zoom)), duration, easeFn)
}

// Animating reports whether a ScrollTo or ZoomTo is still running.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

func (c *Camera) animation() *cameraAnim {
	if c.anim == nil {
		c.anim = &cameraAnim{}
	}
	return c.anim
}

// update advances camera animations. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.anim == nil {
		return
	}
	step := func(t **gween.Tween, field *float64) {
		if *t == nil {
			return
		}
		val, done := (*t).Update(dt)
		*field = float64(val)
		if done {
			*t = nil
		}
	}
	step(&c.anim.tweenX, &c.X)
	step(&c.anim.tweenY, &c.Y)
	step(&c.anim.tweenZoom, &c.Zoom)
	if c.anim.tweenX == nil && c.anim.tweenY == nil && c.anim.tweenZoom == nil {
		c.anim = nil
	}
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the camera's visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	x0, y0 := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	x1, y1 := c.ScreenToWorld(c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// assigning X, Y or Zoom directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

func clampZoom(z float64) float64 {
	if z < minZoom {
		return minZoom
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
