package nodecanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
}

// GridOverlay describes the snap grid drawn behind the canvas content.
type GridOverlay struct {
	// Spacing is the distance between grid lines in world units.
	// Zero hides the grid.
	Spacing float64
	Color   Color
	// Visible toggles drawing. Resize snap previews flip it while Shift is held.
	Visible bool
}

// Scene is the top-level object that owns the node tree, cameras and input state.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before each Draw when its alpha is non-zero.
	ClearColor Color
	// Grid is the snap grid overlay.
	Grid GridOverlay
	// ShowStats draws frame rate, zoom and pointer counts over the canvas.
	ShowStats bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cameras []*Camera
	drawBuf []drawItem

	// Input state
	handlers     handlerRegistry
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	lastMods     KeyModifiers

	// Synthetic input
	injectQueue   []syntheticPointerEvent
	injectedMods  KeyModifiers
	syntheticOnly bool
	testRunner    *TestRunner

	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		dragDeadZone:  defaultDragDeadZone,
		ScreenshotDir: "screenshots",
		Grid: GridOverlay{
			Spacing: 10,
			Color:   Color{R: 1, G: 1, B: 1, A: 0.08},
		},
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update runs the scripted test runner, advances camera animations and
// processes input. Event handlers run synchronously inside Update.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	// Hit testing needs current world transforms.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	for _, cam := range s.cameras {
		cam.update(dt)
	}
	s.processInput()
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// The first camera is the primary camera used for input.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// PrimaryCamera returns the camera used for screen-to-world conversion of
// input, or nil when the scene has no cameras.
func (s *Scene) PrimaryCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// EntityStore returns the ECS bridge, or nil.
func (s *Scene) EntityStore() EntityStore {
	return s.store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees print warnings, and Logf writes to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
