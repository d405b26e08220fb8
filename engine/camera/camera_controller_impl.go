package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// KeyBindings maps camera actions to key codes (see common.Key*).
type KeyBindings struct {
	Forward  uint32
	Backward uint32
	Left     uint32
	Right    uint32
	Up       uint32
	Down     uint32

	// PerspectiveToggle switches between perspective and orthographic projection while PerspectiveModifier is held.
	PerspectiveToggle   uint32
	PerspectiveModifier uint32

	// ZoomModifier routes the wheel to zoom instead of scroll in Reader mode while held.
	ZoomModifier uint32

	ColumnLeft  uint32
	ColumnRight uint32
}

// DefaultKeyBindings returns WASD flight with Space/Left Shift for vertical motion.
//
// Returns:
//   - KeyBindings: the default bindings
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:             common.KeyW,
		Backward:            common.KeyS,
		Left:                common.KeyA,
		Right:               common.KeyD,
		Up:                  common.KeySpace,
		Down:                common.KeyLeftShift,
		PerspectiveToggle:   common.KeyEnter,
		PerspectiveModifier: common.KeyLeftControl,
		ZoomModifier:        common.KeyLeftControl,
		ColumnLeft:          common.KeyLeft,
		ColumnRight:         common.KeyRight,
	}
}

// cameraControllerImpl is the single implementation of CameraController.
// It holds the per-camera state for every mode; only the active mode's systems mutate it.
type cameraControllerImpl struct {
	mu *sync.Mutex

	mode     Mode
	caps     Capabilities
	awake    bool
	targetID uint64
	keys     KeyBindings

	// Sensitivities
	sensitivity            float32
	swipeSensitivity       float32
	mouseScrollSensitivity float32
	wheelScrollSensitivity float32
	zoomSensitivity        float32
	followZoomSensitivity  float32

	// Fly motion
	accel    float32
	maxSpeed float32
	friction float32
	velocity mgl32.Vec3

	// Easing time-constants in seconds
	scrollEasingSeconds            float32
	swipeEasingSeconds             float32
	translationEasingSeconds       float32
	translationEasingScrollSeconds float32
	rotationEasingSeconds          float32
	zoomEasingSeconds              float32
	leanEasingSeconds              float32
	leanResetEasingSeconds         float32

	// translationEasingCurrent is the live easing rate, blended toward one of the two translation constants.
	translationEasingCurrent float32

	// Orientation in degrees
	pitch        float32
	yaw          float32
	pitchMax     float32
	pitchChanged bool

	zoom       float32
	targetZoom float32

	invertY              bool
	resetRotationOnOrtho bool

	// Reader surface state
	scrollAccum       float32
	swipeAccum        float32
	column            uint32
	columnMax         uint32
	columnInitialized bool
	columnKeyHeld     float32
	rowConstantOffset float32
	targetRowPrev     float32

	extent visibleExtent

	scrollIdleSeconds   float32
	scrollIdleRemaining float32

	keyScrollDelaySeconds float32
	pixelsPerLine         float32
	followPixelsPerLine   float32

	targetTranslation mgl32.Vec3
	targetRotation    mgl32.Quat

	handshake rowOffsetHandshake
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with the documented defaults.
// The controller starts awake, in Fly mode, with every capability enabled.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:    &sync.Mutex{},
		mode:  ModeFly,
		caps:  AllCapabilities(),
		awake: true,
		keys:  DefaultKeyBindings(),

		sensitivity:            DefaultSensitivity,
		swipeSensitivity:       DefaultSwipeSensitivity,
		mouseScrollSensitivity: DefaultMouseScrollSensitivity,
		wheelScrollSensitivity: DefaultWheelScrollSensitivity,
		zoomSensitivity:        DefaultZoomSensitivity,
		followZoomSensitivity:  DefaultFollowZoomSensitivity,

		accel:    DefaultAccel,
		maxSpeed: DefaultMaxSpeed,
		friction: DefaultFriction,

		scrollEasingSeconds:            DefaultScrollEasingSeconds,
		swipeEasingSeconds:             DefaultSwipeEasingSeconds,
		translationEasingSeconds:       DefaultTranslationEasingSeconds,
		translationEasingScrollSeconds: DefaultTranslationEasingScrollSeconds,
		rotationEasingSeconds:          DefaultRotationEasingSeconds,
		zoomEasingSeconds:              DefaultZoomEasingSeconds,
		leanEasingSeconds:              DefaultLeanEasingSeconds,
		leanResetEasingSeconds:         DefaultLeanResetEasingSeconds,

		pitchMax:   DefaultPitchMax,
		zoom:       DefaultZoom,
		targetZoom: DefaultZoom,

		resetRotationOnOrtho: true,

		extent: visibleExtent{rows: DefaultVisibleRows},

		scrollIdleSeconds:     DefaultScrollIdleSeconds,
		keyScrollDelaySeconds: DefaultKeyScrollDelaySeconds,
		pixelsPerLine:         input.DefaultPixelsPerLine,
		followPixelsPerLine:   DefaultFollowPixelsPerLine,

		targetRotation: mgl32.QuatIdent(),
	}

	for _, option := range options {
		option(cc)
	}

	cc.translationEasingCurrent = cc.translationEasingSeconds
	cc.clampZoomToMode()
	return cc
}

func (cc *cameraControllerImpl) UpdateExtent(cam Camera, target Target) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.mode != ModeReader || target == nil {
		return
	}
	desc, ok := target.TextDescriptor()
	if !ok {
		return
	}
	desc.Validate()
	cc.measureExtent(cam.Transform(), cam.Projection(), desc, target.Transform().Translation.Z())
}

func (cc *cameraControllerImpl) Update(dt float32, frame input.Frame, cam Camera, target Target) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	easeDt := cc.effectiveDelta(dt)
	switch cc.mode {
	case ModeFly:
		cc.updateFly(easeDt, frame, cam)
	case ModeFollow:
		common.Assert(target != nil, "follow camera updated without a target")
		cc.updateFollow(easeDt, frame, cam, target)
	case ModeReader:
		common.Assert(target != nil, "reader camera updated without a target")
		cc.updateReader(easeDt, dt, frame, cam, target)
	}
}

func (cc *cameraControllerImpl) Zoom(raw float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.zoomRequest(raw, cc.zoomSensitivity)
}

func (cc *cameraControllerImpl) ZoomDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoom
}

func (cc *cameraControllerImpl) TargetZoom() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.targetZoom
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) SetPitch(degrees float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = degrees
	cc.pitchChanged = true
}

func (cc *cameraControllerImpl) Mode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *cameraControllerImpl) SetMode(mode Mode) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.mode = mode
	cc.clampZoomToMode()
}

func (cc *cameraControllerImpl) Capabilities() Capabilities {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.caps
}

func (cc *cameraControllerImpl) SetCapabilityRestrictions(translation, rotation, zoom, scroll bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.caps = Capabilities{Translation: translation, Rotation: rotation, Zoom: zoom, Scroll: scroll}
}

func (cc *cameraControllerImpl) SetModeWithRestrictions(mode Mode, caps Capabilities) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.mode = mode
	cc.caps = caps
	cc.clampZoomToMode()
}

// clampZoomToMode pulls the zoom and its target into the current mode's range.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clampZoomToMode() {
	lo := ZoomMin
	if cc.mode == ModeFollow {
		lo = FollowZoomMin
	}
	cc.zoom = common.Clamp(cc.zoom, lo, ZoomMax)
	cc.targetZoom = common.Clamp(cc.targetZoom, lo, ZoomMax)
}

func (cc *cameraControllerImpl) Target() (uint64, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.targetID, cc.targetID != 0
}

func (cc *cameraControllerImpl) SetTarget(id uint64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.targetID != id {
		cc.columnInitialized = false
	}
	cc.targetID = id
}
