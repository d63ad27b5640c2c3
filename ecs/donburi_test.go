package ecs

import (
	"testing"

	"github.com/phanxgames/nodecanvas"
	"github.com/phanxgames/nodecanvas/resize"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []nodecanvas.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e nodecanvas.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(nodecanvas.InteractionEvent{
		Type:     nodecanvas.EventPointerDown,
		EntityID: 42,
		GlobalX:  100,
		GlobalY:  200,
		Button:   nodecanvas.MouseButtonLeft,
	})
	store.EmitEvent(nodecanvas.InteractionEvent{
		Type:      nodecanvas.EventDrag,
		EntityID:  42,
		DeltaX:    3,
		Modifiers: nodecanvas.ModShift,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatal("events should not be delivered before processing")
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != nodecanvas.EventPointerDown || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.GlobalX != 100 || e0.GlobalY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.GlobalX, e0.GlobalY)
	}
	e1 := received[1]
	if e1.Type != nodecanvas.EventDrag || e1.DeltaX != 3 || !e1.Modifiers.Has(nodecanvas.ModShift) {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store nodecanvas.EntityStore = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e nodecanvas.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e nodecanvas.InteractionEvent) {
		count2++
	})

	store.EmitEvent(nodecanvas.InteractionEvent{Type: nodecanvas.EventClick})
	InteractionEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("subscribers got %d and %d events, want 1 each", count1, count2)
	}
}

func TestPublishResize(t *testing.T) {
	world := donburi.NewWorld()

	var got []ResizeEvent
	ResizeEventType.Subscribe(world, func(w donburi.World, e ResizeEvent) {
		got = append(got, e)
	})

	publish := PublishResize(world, 7)
	publish(resize.Outcome{Size: nodecanvas.Size{Width: 120, Height: 130}, Position: nodecanvas.Vec2{X: -20, Y: -30}})
	publish(resize.Outcome{Size: nodecanvas.Size{Width: 110, Height: 60}})
	events.ProcessAllEvents(world)

	if len(got) != 2 {
		t.Fatalf("expected 2 resize events, got %d", len(got))
	}
	want := ResizeEvent{EntityID: 7, Size: nodecanvas.Size{Width: 120, Height: 130}, Position: nodecanvas.Vec2{X: -20, Y: -30}}
	if got[0] != want {
		t.Errorf("event 0 = %+v, want %+v", got[0], want)
	}
	if got[1].Size != (nodecanvas.Size{Width: 110, Height: 60}) {
		t.Errorf("event 1 size = %v", got[1].Size)
	}
}

// A drag on a resize handle reaches the world both as interaction events for
// the handle's entity and as resize events for the box.
func TestSceneResizeBridge(t *testing.T) {
	world := donburi.NewWorld()
	s := nodecanvas.NewScene()
	s.SetSyntheticInputOnly(true)
	s.SetEntityStore(NewDonburiStore(world))

	box := nodecanvas.NewRect("box", 100, 100, nodecanvas.ColorWhite)
	box.EntityID = 1
	s.Root().AddChild(box)

	ctrl := resize.New(resize.Config{Scene: s, Target: box})
	handles := resize.Attach(ctrl, 8, nodecanvas.ColorWhite)
	handles.Node(resize.BottomRight).EntityID = 2
	apply := resize.ApplyTo(box, handles)
	publish := PublishResize(world, box.EntityID)
	ctrl.OnResize = func(o resize.Outcome) {
		apply(o)
		publish(o)
	}

	var downs []uint32
	InteractionEventType.Subscribe(world, func(w donburi.World, e nodecanvas.InteractionEvent) {
		if e.Type == nodecanvas.EventPointerDown {
			downs = append(downs, e.EntityID)
		}
	})
	var sizes []nodecanvas.Size
	ResizeEventType.Subscribe(world, func(w donburi.World, e ResizeEvent) {
		if e.EntityID == 1 {
			sizes = append(sizes, e.Size)
		}
	})

	s.InjectPress(100, 100)
	s.InjectMove(150, 120)
	s.InjectRelease(150, 120)
	for s.PendingInjections() > 0 {
		s.Update()
	}
	events.ProcessAllEvents(world)

	if len(downs) != 1 || downs[0] != 2 {
		t.Errorf("pointer down entities = %v, want [2]", downs)
	}
	if len(sizes) != 1 || sizes[0] != (nodecanvas.Size{Width: 150, Height: 120}) {
		t.Errorf("resize sizes = %v, want [{150 120}]", sizes)
	}
	if box.Size() != (nodecanvas.Size{Width: 150, Height: 120}) {
		t.Errorf("box size = %v", box.Size())
	}
}
