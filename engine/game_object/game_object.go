package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu      *sync.Mutex
	id      uint64
	enabled atomic.Bool

	transform common.Transform

	text    common.TextDescriptor
	hasText bool
}

// GameObject defines the interface for a scene entity that cameras can be bound to.
// A GameObject carries a world transform and, when it is a reader surface, the glyph grid
// of the paginated content laid out from its origin (columns along +X, rows along -Y).
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled.
	// Cameras bound to a disabled object are skipped by the scene.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Transform returns the object's world transform.
	//
	// Returns:
	//   - common.Transform: the world transform
	Transform() common.Transform

	// Position returns the object's world position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// TextDescriptor returns the glyph grid of the object's reader surface.
	//
	// Returns:
	//   - common.TextDescriptor: the glyph grid
	//   - bool: false when the object is not a reader surface
	TextDescriptor() (common.TextDescriptor, bool)

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetTransform replaces the object's world transform.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t common.Transform)

	// SetPosition sets the object's world position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetTextDescriptor makes the object a reader surface with the given glyph grid.
	// The pagination provider updates it whenever the row count changes.
	//
	// Parameters:
	//   - desc: the glyph grid
	SetTextDescriptor(desc common.TextDescriptor)

	// ClearTextDescriptor removes the reader surface from the object.
	ClearTextDescriptor()
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject at the origin.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:        &sync.Mutex{},
		transform: common.IdentityTransform(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Transform() common.Transform {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform.Translation.Elem()
}

func (g *gameObject) TextDescriptor() (common.TextDescriptor, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.text, g.hasText
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetTransform(t common.Transform) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform = t
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Translation = mgl32.Vec3{x, y, z}
}

func (g *gameObject) SetTextDescriptor(desc common.TextDescriptor) {
	desc.Validate()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.text = desc
	g.hasText = true
}

func (g *gameObject) ClearTextDescriptor() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.text = common.TextDescriptor{}
	g.hasText = false
}
