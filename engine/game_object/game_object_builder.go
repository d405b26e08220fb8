package game_object

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled.
//
// Parameters:
//   - enabled: false to have cameras bound to the object skipped
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial world position of the GameObject.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Translation = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial world orientation of the GameObject.
//
// Parameters:
//   - q: the orientation
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(q mgl32.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Rotation = q
	}
}

// WithTextDescriptor makes the GameObject a reader surface.
// Glyph sizes must be positive.
//
// Parameters:
//   - desc: the glyph grid of the surface
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the text descriptor
func WithTextDescriptor(desc common.TextDescriptor) GameObjectBuilderOption {
	return func(obj *gameObject) {
		desc.Validate()
		obj.text = desc
		obj.hasText = true
	}
}
