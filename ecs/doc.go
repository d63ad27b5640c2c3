// Package ecs bridges nodecanvas events into a [Donburi] world.
//
// [NewDonburiStore] forwards pointer, click and drag interactions as
// [InteractionEventType] events. [PublishResize] turns a resize controller's
// outcomes into [ResizeEventType] events so ECS systems can apply them:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	ctrl.OnResize = ecs.PublishResize(world, box.EntityID)
//
// Events are queued; call ProcessEvents on the event type (or
// events.ProcessAllEvents) from a system to deliver them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
