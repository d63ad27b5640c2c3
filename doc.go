// Package nodecanvas is a small retained-mode 2D canvas for node editors,
// built on [Ebitengine].
//
// It provides the scene graph ([Node]), a zoomable [Camera], and a pointer
// input state machine with per-pointer capture and scene-level handlers.
// The resize sub-package builds interactive corner-handle resizing on top of
// it; the ecs sub-package forwards events into a [Donburi] world.
//
// # Quick start
//
//	scene := nodecanvas.NewScene()
//	scene.NewCamera(nodecanvas.Rect{Width: 800, Height: 600})
//
//	box := nodecanvas.NewRect("box", 120, 80, nodecanvas.Color{R: 0.3, G: 0.7, B: 1, A: 1})
//	box.SetPosition(-60, -40)
//	scene.Root().AddChild(box)
//
//	nodecanvas.Run(scene, nodecanvas.RunConfig{Title: "Canvas", Width: 800, Height: 600})
//
// # Input
//
// Pointer 0 is the mouse, pointers 1-9 are touches. Every frame
// [Scene.Update] samples each pointer, converts screen coordinates to world
// (canvas) coordinates through the primary camera, and dispatches events.
// Scene-level handlers registered with [Scene.OnPointerMove] and friends run
// before the per-node callbacks, and the [CallbackHandle] they return
// removes them again. [Scene.CapturePointer] routes a pointer to one node
// until it is released.
//
// Pointer move events fire on every movement, with or without a button
// held, and carry both screen and world coordinates.
//
// # Testing interactions
//
// [Scene.InjectPress], [Scene.InjectMove], [Scene.InjectRelease] and
// [Scene.InjectModifiers] feed synthetic input through the same state
// machine, one event per Update. [LoadTestScript] sequences them from JSON.
//
// # Diagnostics
//
// [Scene.SetDebugMode] turns on [Scene.Logf] output on stderr and panics on
// use of disposed nodes. [Scene.ShowStats] draws frame rates, zoom and held
// pointers over the canvas, and [Scene.Screenshot] (or a "screenshot" test
// script step) writes the next frame to ScreenshotDir as PNG.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package nodecanvas
