package resize

import "github.com/phanxgames/nodecanvas"

// State is the controller's interaction state.
type State uint8

const (
	StateIdle     State = iota // no drag in progress
	StateResizing              // a handle is being dragged
)

func (s State) String() string {
	if s == StateResizing {
		return "resizing"
	}
	return "idle"
}

// ZoomSource reports how many screen pixels one canvas unit covers.
// *nodecanvas.Camera implements it.
type ZoomSource interface {
	ZoomFactor() float64
}

// Config configures a Controller. Only Scene is required.
type Config struct {
	Scene *nodecanvas.Scene
	// Target is the node being resized. When Position or Size is nil the
	// start state is read from Target, and callbacks are suppressed once the
	// dragged handle no longer resolves to Target. Deltas are in canvas
	// space, so Target's parent should be an unscaled canvas-space node.
	Target *nodecanvas.Node
	// Position and Size return the node's current geometry at pointer down.
	Position func() nodecanvas.Vec2
	Size     func() nodecanvas.Size
	// OnResize receives every outcome. It may also be set on the Controller.
	OnResize func(Outcome)
	// Zoom defaults to the scene's primary camera, or a zoom of 1 when the
	// scene has none.
	Zoom ZoomSource
	// Snap decides per event whether to snap. Nil never snaps.
	Snap Snapper
	// Clamp runs after Snap on every event. Nil leaves sizes unbounded.
	Clamp SnapFunc
	// Shift mirrors modifier state during a drag. Nil disables mirroring.
	Shift ShiftTracker
}

// Controller drives one node's resize interaction. It is idle until
// StartResize is called from a handle's pointer down, and returns to idle on
// pointer up or Cancel. Only one session is active at a time.
type Controller struct {
	// OnResize receives the outcome of every pointer move while resizing.
	OnResize func(Outcome)

	scene    *nodecanvas.Scene
	target   *nodecanvas.Node
	position func() nodecanvas.Vec2
	size     func() nodecanvas.Size
	zoom     ZoomSource
	snap     Snapper
	clamp    SnapFunc
	shift    ShiftTracker

	state        State
	handleNode   *nodecanvas.Node
	handle       Handle
	pointerID    int
	startPointer nodecanvas.Vec2
	session      Session
	stopShift    func()
	moveHandle   nodecanvas.CallbackHandle
	upHandle     nodecanvas.CallbackHandle
}

// New creates an idle Controller. Panics if cfg.Scene is nil, or if neither
// Target nor both Position and Size are given.
func New(cfg Config) *Controller {
	if cfg.Scene == nil {
		panic("resize: nil scene")
	}
	c := &Controller{
		OnResize: cfg.OnResize,
		scene:    cfg.Scene,
		target:   cfg.Target,
		position: cfg.Position,
		size:     cfg.Size,
		zoom:     cfg.Zoom,
		snap:     cfg.Snap,
		clamp:    cfg.Clamp,
		shift:    cfg.Shift,
	}
	if c.position == nil || c.size == nil {
		if cfg.Target == nil {
			panic("resize: Target is required when Position or Size is nil")
		}
		if c.position == nil {
			c.position = cfg.Target.Position
		}
		if c.size == nil {
			c.size = cfg.Target.Size
		}
	}
	return c
}

// Target returns the node being resized, or nil.
func (c *Controller) Target() *nodecanvas.Node {
	return c.target
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// IsResizing reports whether a drag is in progress.
func (c *Controller) IsResizing() bool {
	return c.state == StateResizing
}

// ActiveHandle returns the corner being dragged and whether a drag is active.
func (c *Controller) ActiveHandle() (Handle, bool) {
	return c.handle, c.state == StateResizing
}

// StartResize begins a resize from a pointer down on a handle node. Events
// without a node are ignored. An active session is ended first.
func (c *Controller) StartResize(ctx nodecanvas.PointerContext, h Handle) {
	if ctx.Node == nil {
		return
	}
	if c.state == StateResizing {
		c.end()
	}

	startSize := c.size()
	startPos := c.position()

	if c.shift != nil {
		c.stopShift = c.shift.Track(ctx)
	}
	c.scene.CapturePointer(ctx.PointerID, ctx.Node)

	c.state = StateResizing
	c.handleNode = ctx.Node
	c.handle = h
	c.pointerID = ctx.PointerID
	c.startPointer = ctx.Screen()
	c.session = NewSession(startSize, startPos, h)

	c.moveHandle = c.scene.OnPointerMove(c.handleMove)
	c.upHandle = c.scene.OnPointerUp(c.handleUp)

	c.scene.Logf("resize start node=%q handle=%s size=%vx%v", c.targetName(), h, startSize.Width, startSize.Height)
}

// Cancel ends an active resize without a final callback and releases the
// pointer capture. No-op when idle.
func (c *Controller) Cancel() {
	if c.state != StateResizing {
		return
	}
	if c.scene.CapturedNode(c.pointerID) == c.handleNode {
		c.scene.ReleasePointer(c.pointerID)
	}
	c.scene.Logf("resize cancel node=%q", c.targetName())
	c.end()
}

func (c *Controller) handleMove(ctx nodecanvas.PointerContext) {
	if c.state != StateResizing || c.session == nil || ctx.PointerID != c.pointerID {
		return
	}

	delta := ToCanvasDelta(c.startPointer, ctx.Screen(), c.zoomFactor())

	if !c.handleAttached() {
		return
	}
	outcome := c.session(delta, snapFor(c.snap, c.clamp, ctx.Modifiers))
	if c.OnResize != nil {
		c.OnResize(outcome)
	}
}

func (c *Controller) handleUp(ctx nodecanvas.PointerContext) {
	if c.state != StateResizing || ctx.PointerID != c.pointerID {
		return
	}
	c.scene.Logf("resize end node=%q", c.targetName())
	c.end()
}

// end returns to idle and releases everything acquired by StartResize.
func (c *Controller) end() {
	c.state = StateIdle
	c.session = nil
	c.startPointer = nodecanvas.Vec2{}
	c.handleNode = nil
	if c.stopShift != nil {
		c.stopShift()
		c.stopShift = nil
	}
	c.moveHandle.Remove()
	c.upHandle.Remove()
	c.moveHandle = nodecanvas.CallbackHandle{}
	c.upHandle = nodecanvas.CallbackHandle{}
}

// handleAttached reports whether the dragged handle still belongs to a live
// node: the target when one is configured, otherwise the handle itself.
func (c *Controller) handleAttached() bool {
	h := c.handleNode
	if h == nil || h.IsDisposed() {
		return false
	}
	if c.target == nil {
		return true
	}
	return h.Closest(func(n *nodecanvas.Node) bool { return n == c.target }) != nil
}

func (c *Controller) zoomFactor() float64 {
	if c.zoom != nil {
		return c.zoom.ZoomFactor()
	}
	if cam := c.scene.PrimaryCamera(); cam != nil {
		return cam.ZoomFactor()
	}
	return 1
}

func (c *Controller) targetName() string {
	if c.target == nil {
		return ""
	}
	return c.target.Name
}
