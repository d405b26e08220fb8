package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
)

// Mode selects which per-frame system drives the camera.
type Mode int

const (
	// ModeFly is free keyboard/mouse flight.
	ModeFly Mode = iota
	// ModeFollow orbits a bound target object.
	ModeFollow
	// ModeReader tracks the rows of a bound reader surface.
	ModeReader
)

func (m Mode) String() string {
	switch m {
	case ModeFly:
		return "fly"
	case ModeFollow:
		return "follow"
	case ModeReader:
		return "reader"
	default:
		return "unknown"
	}
}

// Capabilities are the per-camera enable flags for each kind of motion.
type Capabilities struct {
	Translation bool
	Rotation    bool
	Zoom        bool
	Scroll      bool
}

// AllCapabilities enables every kind of motion.
func AllCapabilities() Capabilities {
	return Capabilities{Translation: true, Rotation: true, Zoom: true, Scroll: true}
}

// Target is the object a Follow or Reader camera is bound to.
type Target interface {
	// Transform returns the target's world transform.
	Transform() common.Transform

	// TextDescriptor returns the glyph grid of the target's reader surface.
	// The boolean is false when the target carries no reader surface.
	TextDescriptor() (common.TextDescriptor, bool)
}

// CameraController defines the union interface for the camera control systems.
// A controller owns all per-camera motion state and writes the resulting transform to a Camera each frame.
// Embeds readerCameraController (the row-offset handshake with the pagination provider)
// and modeCameraController (mode, capability and dormancy control for the mode owner).
type CameraController interface {
	readerCameraController
	modeCameraController

	// UpdateExtent measures the visible rows and columns of the target's reader surface from the
	// camera frustum. It must run for every camera before any camera's Update in the same frame.
	// Does nothing outside Reader mode or when the target carries no reader surface.
	//
	// Parameters:
	//   - cam: the camera being driven
	//   - target: the bound target object
	UpdateExtent(cam Camera, target Target)

	// Update runs the active mode's motion systems for one frame and writes the camera transform.
	// Follow and Reader modes require a non-nil target.
	//
	// Parameters:
	//   - dt: the frame delta in seconds
	//   - frame: the input gathered since the previous frame
	//   - cam: the camera being driven
	//   - target: the bound target object, may be nil in Fly mode
	Update(dt float32, frame input.Frame, cam Camera, target Target)

	// Zoom requests a zoom change. The target zoom moves by raw times the zoom sensitivity
	// and is clamped to [ZoomMin, ZoomMax]. Ignored when zoom is disabled.
	//
	// Parameters:
	//   - raw: the raw zoom amount, positive moves away from the content
	Zoom(raw float32)

	// ZoomDistance returns the current eased zoom distance.
	//
	// Returns:
	//   - float32: the current zoom
	ZoomDistance() float32

	// TargetZoom returns the zoom distance being eased toward.
	//
	// Returns:
	//   - float32: the target zoom
	TargetZoom() float32

	// Pitch returns the current pitch in degrees.
	Pitch() float32

	// Yaw returns the current yaw in degrees.
	Yaw() float32

	// SetPitch sets the pitch in degrees and marks it as changed so the lean system holds it.
	//
	// Parameters:
	//   - degrees: the new pitch
	SetPitch(degrees float32)
}

// readerCameraController defines the reader-surface methods shared with the pagination provider.
type readerCameraController interface {
	// SetRowOffsetRequested records the row the pagination provider is currently displaying.
	//
	// Parameters:
	//   - row: the displayed row offset
	SetRowOffsetRequested(row uint32)

	// RowOffsetRequested returns the last row written by the pagination provider.
	RowOffsetRequested() uint32

	// RowOffsetReported returns the row the camera is actually centered on, derived from its eased position.
	//
	// Returns:
	//   - uint32: the reported row offset
	RowOffsetReported() uint32

	// TakeRowOffsetDelta returns the accumulated discrete row change and clears it.
	// The pagination provider calls this once per frame and applies the result to its row offset.
	//
	// Returns:
	//   - int32: the signed number of rows to advance
	TakeRowOffsetDelta() int32

	// VisibleRows returns the number of glyph rows currently inside the frustum.
	VisibleRows() float32

	// VisibleColumns returns the number of glyph columns currently inside the frustum.
	VisibleColumns() float32

	// Column returns the column the camera is centered on.
	Column() uint32

	// ScrollResidual returns the sub-row scroll accumulator.
	ScrollResidual() float32

	// SwipeResidual returns the sub-column swipe accumulator.
	SwipeResidual() float32
}

// modeCameraController defines the methods used by the owner of camera modes.
type modeCameraController interface {
	// Mode returns the active mode.
	Mode() Mode

	// SetMode switches the active mode.
	//
	// Parameters:
	//   - mode: the new mode
	SetMode(mode Mode)

	// Capabilities returns the enabled motion kinds.
	Capabilities() Capabilities

	// SetCapabilityRestrictions enables or disables each kind of motion.
	//
	// Parameters:
	//   - translation: pointer-driven translation, swipe and scroll
	//   - rotation: mouse look and lean
	//   - zoom: zoom requests
	//   - scroll: wheel-driven scroll
	SetCapabilityRestrictions(translation, rotation, zoom, scroll bool)

	// SetModeWithRestrictions switches mode and capabilities together.
	//
	// Parameters:
	//   - mode: the new mode
	//   - caps: the enabled motion kinds
	SetModeWithRestrictions(mode Mode, caps Capabilities)

	// Target returns the ID of the bound target object. The boolean is false when none is bound.
	//
	// Returns:
	//   - uint64: the target object ID
	//   - bool: whether a target is bound
	Target() (uint64, bool)

	// SetTarget binds the camera to the object with the given ID. Zero unbinds.
	//
	// Parameters:
	//   - id: the target object ID
	SetTarget(id uint64)

	// PutToSleep makes the controller dormant. Easing then runs at a fixed nominal delta.
	PutToSleep()

	// WakeUp makes the controller awake. Easing uses the real frame delta.
	WakeUp()

	// IsAwake reports whether the controller is awake.
	IsAwake() bool
}
