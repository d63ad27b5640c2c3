package nodecanvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // world units
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	lastSX    float64
	lastSY    float64
	hitNode   *Node
	hoverNode *Node
	dragging  bool
	button    MouseButton // captured at press time
}

// --- Handler registry ---

type handler[C any] struct {
	id uint32
	fn func(C)
}

type handlerRegistry struct {
	pointerDown  []handler[PointerContext]
	pointerUp    []handler[PointerContext]
	pointerMove  []handler[PointerContext]
	pointerEnter []handler[PointerContext]
	pointerLeave []handler[PointerContext]
	click        []handler[ClickContext]
	dragStart    []handler[DragContext]
	drag         []handler[DragContext]
	dragEnd      []handler[DragContext]
	modifiers    []handler[KeyModifiers]
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Safe to call from
// inside a handler that is currently being dispatched, and safe to call twice.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id)
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id)
	case EventDragStart:
		h.reg.dragStart = removeHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeHandler(h.reg.dragEnd, h.id)
	case EventModifiersChange:
		h.reg.modifiers = removeHandler(h.reg.modifiers, h.id)
	}
}

// removeHandler returns s without the entry for id. The result never shares
// its backing array with s, so a dispatch loop ranging over s is unaffected.
func removeHandler[C any](s []handler[C], id uint32) []handler[C] {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType) (uint32, CallbackHandle) {
	r.nextID++
	return r.nextID, CallbackHandle{id: r.nextID, reg: r, event: event}
}

// --- Scene-level event registration ---
//
// Scene-level handlers run before the per-node callback of the target node,
// so they observe every event even when the pointer leaves the node.

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	id, h := s.handlers.add(EventPointerDown)
	s.handlers.pointerDown = append(s.handlers.pointerDown, handler[PointerContext]{id, fn})
	return h
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	id, h := s.handlers.add(EventPointerUp)
	s.handlers.pointerUp = append(s.handlers.pointerUp, handler[PointerContext]{id, fn})
	return h
}

// OnPointerMove registers a scene-level callback for pointer move events.
// It fires for hover and for movement with a button held.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	id, h := s.handlers.add(EventPointerMove)
	s.handlers.pointerMove = append(s.handlers.pointerMove, handler[PointerContext]{id, fn})
	return h
}

// OnPointerEnter registers a scene-level callback for pointer enter events.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	id, h := s.handlers.add(EventPointerEnter)
	s.handlers.pointerEnter = append(s.handlers.pointerEnter, handler[PointerContext]{id, fn})
	return h
}

// OnPointerLeave registers a scene-level callback for pointer leave events.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	id, h := s.handlers.add(EventPointerLeave)
	s.handlers.pointerLeave = append(s.handlers.pointerLeave, handler[PointerContext]{id, fn})
	return h
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	id, h := s.handlers.add(EventClick)
	s.handlers.click = append(s.handlers.click, handler[ClickContext]{id, fn})
	return h
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	id, h := s.handlers.add(EventDragStart)
	s.handlers.dragStart = append(s.handlers.dragStart, handler[DragContext]{id, fn})
	return h
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	id, h := s.handlers.add(EventDrag)
	s.handlers.drag = append(s.handlers.drag, handler[DragContext]{id, fn})
	return h
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	id, h := s.handlers.add(EventDragEnd)
	s.handlers.dragEnd = append(s.handlers.dragEnd, handler[DragContext]{id, fn})
	return h
}

// OnModifiersChange registers a scene-level callback that receives the new
// modifier set whenever it differs from the previous frame. It fires at the
// start of input processing, before any pointer event of that frame, and
// does not need the pointer to move.
func (s *Scene) OnModifiersChange(fn func(KeyModifiers)) CallbackHandle {
	id, h := s.handlers.add(EventModifiersChange)
	s.handlers.modifiers = append(s.handlers.modifiers, handler[KeyModifiers]{id, fn})
	return h
}

// Modifiers returns the modifier keys seen by the last input frame.
func (s *Scene) Modifiers() KeyModifiers {
	return s.lastMods
}

// CapturePointer routes all events for pointerID to the given node until the
// pointer is released or ReleasePointer is called.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = node
	}
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// CapturedNode returns the node capturing pointerID, or nil.
func (s *Scene) CapturedNode(pointerID int) *Node {
	if pointerID >= 0 && pointerID < maxPointers {
		return s.captured[pointerID]
	}
	return nil
}

// SetDragDeadZone sets the minimum movement in world units before a drag starts.
func (s *Scene) SetDragDeadZone(d float64) {
	s.dragDeadZone = d
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's Width x Height.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Type == NodeTypeContainer || (n.Width == 0 && n.Height == 0) {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending
// interactable nodes to buf. Skips Visible=false or Interactable=false subtrees.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.orderedChildren() {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update to handle mouse, touch and
// injected input. World transforms are refreshed before this runs.
func (s *Scene) processInput() {
	mods := readModifiers() | s.injectedMods
	if mods != s.lastMods {
		s.lastMods = mods
		for _, h := range s.handlers.modifiers {
			h.fn(mods)
		}
	}
	cam := s.PrimaryCamera()

	injected := s.processInjectedInput(cam, mods)
	if s.syntheticOnly || (s.testRunner != nil && !s.testRunner.done) {
		return
	}
	if !injected {
		s.processMousePointer(cam, mods)
	}
	s.processTouchPointers(cam, mods)
}

// screenToWorld converts screen coordinates to world coordinates using the primary camera.
func screenToWorld(cam *Camera, sx, sy float64) (float64, float64) {
	if cam != nil {
		return cam.ScreenToWorld(sx, sy)
	}
	return sx, sy
}

func (s *Scene) processMousePointer(cam *Camera, mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	wx, wy := screenToWorld(cam, sx, sy)

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(0, wx, wy, sx, sy, pressed, button, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers(cam *Camera, mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		sx, sy := float64(tx), float64(ty)
		wx, wy := screenToWorld(cam, sx, sy)
		s.processPointer(slot, wx, wy, sx, sy, true, MouseButtonLeft, mods)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, ps.lastSX, ps.lastSY, false, MouseButtonLeft, mods)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9). Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// pointerEvent is the per-frame sample handed to the dispatch functions.
type pointerEvent struct {
	id      int
	wx, wy  float64
	sx, sy  float64
	pressed bool
	button  MouseButton
	mods    KeyModifiers
}

// processPointer runs the pointer state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, wx, wy, sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]

	target := s.captured[pointerID]
	if target != nil && target.disposed {
		s.captured[pointerID] = nil
		target = nil
	}
	if target == nil {
		target = s.hitTest(wx, wy)
	}

	ev := pointerEvent{id: pointerID, wx: wx, wy: wy, sx: sx, sy: sy, pressed: pressed, button: button, mods: mods}
	if ps.down {
		ev.button = ps.button
	}

	if target != ps.hoverNode {
		if ps.hoverNode != nil && !ps.hoverNode.disposed {
			s.firePointer(EventPointerLeave, ps.hoverNode, ev)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, ev)
		}
		ps.hoverNode = target
	}

	moved := wx != ps.lastX || wy != ps.lastY || sx != ps.lastSX || sy != ps.lastSY

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.hitNode = target
		ps.dragging = false
		ev.button = button
		s.firePointer(EventPointerDown, target, ev)

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDrag(EventDragEnd, ps.hitNode, ev, ps.startX, ps.startY, wx-ps.lastX, wy-ps.lastY)
		} else if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, ev)
		}
		s.firePointer(EventPointerUp, target, ev)

		s.captured[pointerID] = nil
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false

	case pressed && ps.down:
		if moved {
			s.firePointer(EventPointerMove, target, ev)
			if !ps.dragging {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
					s.fireDrag(EventDragStart, ps.hitNode, ev, ps.startX, ps.startY, dx, dy)
				}
			}
			if ps.dragging {
				s.fireDrag(EventDrag, ps.hitNode, ev, ps.startX, ps.startY, wx-ps.lastX, wy-ps.lastY)
			}
		}

	default:
		if moved {
			s.firePointer(EventPointerMove, target, ev)
		}
	}

	ps.lastX, ps.lastY = wx, wy
	ps.lastSX, ps.lastSY = sx, sy
}

// --- Event dispatch ---

func (s *Scene) firePointer(event EventType, node *Node, ev pointerEvent) {
	ctx := PointerContext{
		Node: node, GlobalX: ev.wx, GlobalY: ev.wy,
		ScreenX: ev.sx, ScreenY: ev.sy, Pressed: ev.pressed,
		Button: ev.button, PointerID: ev.id, Modifiers: ev.mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(ev.wx, ev.wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}

	var scene []handler[PointerContext]
	var perNode func(PointerContext)
	switch event {
	case EventPointerDown:
		scene = s.handlers.pointerDown
		if node != nil {
			perNode = node.OnPointerDown
		}
	case EventPointerUp:
		scene = s.handlers.pointerUp
		if node != nil {
			perNode = node.OnPointerUp
		}
	case EventPointerMove:
		scene = s.handlers.pointerMove
		if node != nil {
			perNode = node.OnPointerMove
		}
	case EventPointerEnter:
		scene = s.handlers.pointerEnter
		if node != nil {
			perNode = node.OnPointerEnter
		}
	case EventPointerLeave:
		scene = s.handlers.pointerLeave
		if node != nil {
			perNode = node.OnPointerLeave
		}
	}

	for _, h := range scene {
		h.fn(ctx)
	}
	if perNode != nil {
		perNode(ctx)
	}
	s.emitInteractionEvent(event, node, ctx.GlobalX, ctx.GlobalY, ctx.LocalX, ctx.LocalY, ev.button, ev.mods, DragContext{})
}

func (s *Scene) fireClick(node *Node, ev pointerEvent) {
	ctx := ClickContext{
		Node: node, GlobalX: ev.wx, GlobalY: ev.wy,
		Button: ev.button, PointerID: ev.id, Modifiers: ev.mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(ev.wx, ev.wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
	s.emitInteractionEvent(EventClick, node, ev.wx, ev.wy, ctx.LocalX, ctx.LocalY, ev.button, ev.mods, DragContext{})
}

func (s *Scene) fireDrag(event EventType, node *Node, ev pointerEvent, startX, startY, deltaX, deltaY float64) {
	ctx := DragContext{
		Node: node, GlobalX: ev.wx, GlobalY: ev.wy,
		StartX: startX, StartY: startY, DeltaX: deltaX, DeltaY: deltaY,
		Button: ev.button, PointerID: ev.id, Modifiers: ev.mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(ev.wx, ev.wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}

	var scene []handler[DragContext]
	var perNode func(DragContext)
	switch event {
	case EventDragStart:
		scene = s.handlers.dragStart
		if node != nil {
			perNode = node.OnDragStart
		}
	case EventDrag:
		scene = s.handlers.drag
		if node != nil {
			perNode = node.OnDrag
		}
	case EventDragEnd:
		scene = s.handlers.dragEnd
		if node != nil {
			perNode = node.OnDragEnd
		}
	}

	for _, h := range scene {
		h.fn(ctx)
	}
	if perNode != nil {
		perNode(ctx)
	}
	s.emitInteractionEvent(event, node, ev.wx, ev.wy, ctx.LocalX, ctx.LocalY, ev.button, ev.mods, ctx)
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, wx, wy, lx, ly float64,
	button MouseButton, mods KeyModifiers, drag DragContext) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:      eventType,
		EntityID:  node.EntityID,
		GlobalX:   wx,
		GlobalY:   wy,
		LocalX:    lx,
		LocalY:    ly,
		Button:    button,
		Modifiers: mods,
		StartX:    drag.StartX,
		StartY:    drag.StartY,
		DeltaX:    drag.DeltaX,
		DeltaY:    drag.DeltaY,
	})
}
