package ecs

import (
	"github.com/phanxgames/nodecanvas"
	"github.com/phanxgames/nodecanvas/resize"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for nodecanvas interaction events.
var InteractionEventType = events.NewEventType[nodecanvas.InteractionEvent]()

// ResizeEvent is published for every outcome of a resize drag.
type ResizeEvent struct {
	EntityID uint32
	Size     nodecanvas.Size
	Position nodecanvas.Vec2
}

// ResizeEventType is the Donburi event type for resize outcomes.
var ResizeEventType = events.NewEventType[ResizeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
func NewDonburiStore(world donburi.World) nodecanvas.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event nodecanvas.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// PublishResize returns a resize callback that publishes each outcome as a
// ResizeEvent for entityID.
func PublishResize(world donburi.World, entityID uint32) func(resize.Outcome) {
	return func(o resize.Outcome) {
		ResizeEventType.Publish(world, ResizeEvent{
			EntityID: entityID,
			Size:     o.Size,
			Position: o.Position,
		})
	}
}
