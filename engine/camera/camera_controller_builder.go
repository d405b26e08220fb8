package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMode sets the initial mode.
//
// Parameters:
//   - mode: the starting mode
//
// Returns:
//   - CameraControllerOption: functional option to set the mode
func WithMode(mode Mode) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mode = mode
	}
}

// WithCapabilities sets the initially enabled motion kinds.
//
// Parameters:
//   - caps: the enabled motion kinds
//
// Returns:
//   - CameraControllerOption: functional option to set the capabilities
func WithCapabilities(caps Capabilities) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.caps = caps
	}
}

// WithTarget binds the controller to a target object ID.
//
// Parameters:
//   - id: the target object ID, zero for none
//
// Returns:
//   - CameraControllerOption: functional option to bind the target
func WithTarget(id uint64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.targetID = id
	}
}

// WithKeyBindings replaces the default key bindings.
//
// Parameters:
//   - keys: the key bindings
//
// Returns:
//   - CameraControllerOption: functional option to set the key bindings
func WithKeyBindings(keys KeyBindings) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.keys = keys
	}
}

// WithZoom sets the initial zoom distance and target zoom.
//
// Parameters:
//   - zoom: distance from the target, clamped to [ZoomMin, ZoomMax]
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom
func WithZoom(zoom float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoom = zoom
		cc.targetZoom = zoom
	}
}

// WithSensitivity sets the mouse-look sensitivity used by Fly and Follow modes.
//
// Parameters:
//   - sensitivity: degrees per pointer unit per second
//
// Returns:
//   - CameraControllerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.sensitivity = sensitivity
	}
}

// WithScrollSensitivity sets the pointer and wheel scroll sensitivities.
//
// Parameters:
//   - mouse: scale of vertical pointer motion before easing
//   - wheel: glyph units added per wheel line
//
// Returns:
//   - CameraControllerOption: functional option to set the scroll sensitivities
func WithScrollSensitivity(mouse, wheel float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseScrollSensitivity = mouse
		cc.wheelScrollSensitivity = wheel
	}
}

// WithSwipeSensitivity sets the horizontal pointer swipe sensitivity. Zero disables swiping.
//
// Parameters:
//   - sensitivity: scale of horizontal pointer motion before easing
//
// Returns:
//   - CameraControllerOption: functional option to set the swipe sensitivity
func WithSwipeSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.swipeSensitivity = sensitivity
	}
}

// WithZoomSensitivity sets the additive zoom sensitivity (Reader and Fly) and the multiplicative one (Follow).
//
// Parameters:
//   - additive: target zoom change per raw zoom unit
//   - follow: fractional zoom change per wheel line in Follow mode
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom sensitivities
func WithZoomSensitivity(additive, follow float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSensitivity = additive
		cc.followZoomSensitivity = follow
	}
}

// WithFlyMotion sets the Fly mode acceleration, speed limit and friction.
//
// Parameters:
//   - accel: acceleration in units per second squared
//   - maxSpeed: velocity length limit
//   - friction: fraction of velocity removed per second while no key is held
//
// Returns:
//   - CameraControllerOption: functional option to set fly motion
func WithFlyMotion(accel, maxSpeed, friction float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.accel = accel
		cc.maxSpeed = maxSpeed
		cc.friction = friction
	}
}

// WithScrollEasing sets the easing time-constants of the scroll and swipe accumulators.
//
// Parameters:
//   - scroll: seconds for the vertical pointer accumulator
//   - swipe: seconds for the horizontal pointer accumulator
//
// Returns:
//   - CameraControllerOption: functional option to set accumulator easing
func WithScrollEasing(scroll, swipe float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.scrollEasingSeconds = scroll
		cc.swipeEasingSeconds = swipe
	}
}

// WithTranslationEasing sets the translation easing time-constants.
//
// Parameters:
//   - normal: seconds used outside key-repeat scrolling
//   - keyScroll: seconds used while an arrow key repeats
//
// Returns:
//   - CameraControllerOption: functional option to set translation easing
func WithTranslationEasing(normal, keyScroll float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.translationEasingSeconds = normal
		cc.translationEasingScrollSeconds = keyScroll
	}
}

// WithRotationEasing sets the rotation easing time-constant.
//
// Parameters:
//   - seconds: easing time-constant
//
// Returns:
//   - CameraControllerOption: functional option to set rotation easing
func WithRotationEasing(seconds float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotationEasingSeconds = seconds
	}
}

// WithZoomEasing sets the zoom easing time-constant.
//
// Parameters:
//   - seconds: easing time-constant
//
// Returns:
//   - CameraControllerOption: functional option to set zoom easing
func WithZoomEasing(seconds float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomEasingSeconds = seconds
	}
}

// WithLean sets the lean angle and its easing time-constants.
//
// Parameters:
//   - pitchMax: lean angle in degrees while scrolling
//   - lean: seconds to ease into the lean
//   - reset: seconds to ease back to level
//
// Returns:
//   - CameraControllerOption: functional option to configure lean
func WithLean(pitchMax, lean, reset float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitchMax = pitchMax
		cc.leanEasingSeconds = lean
		cc.leanResetEasingSeconds = reset
	}
}

// WithInvertY flips the vertical direction of rows and lean.
//
// Parameters:
//   - invert: whether rows grow upward
//
// Returns:
//   - CameraControllerOption: functional option to set Y inversion
func WithInvertY(invert bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.invertY = invert
	}
}

// WithRowConstantOffset sets the fixed row offset between the surface origin and the first content row.
//
// Parameters:
//   - rows: the offset in rows
//
// Returns:
//   - CameraControllerOption: functional option to set the row offset
func WithRowConstantOffset(rows float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rowConstantOffset = rows
	}
}

// WithScrollIdle sets how long after the last wheel event the scroll residual starts returning to a row.
//
// Parameters:
//   - seconds: idle duration
//
// Returns:
//   - CameraControllerOption: functional option to set the idle duration
func WithScrollIdle(seconds float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.scrollIdleSeconds = seconds
	}
}

// WithKeyScrollDelay sets the hold time between key-repeat column steps.
//
// Parameters:
//   - seconds: delay between steps
//
// Returns:
//   - CameraControllerOption: functional option to set the key-scroll delay
func WithKeyScrollDelay(seconds float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.keyScrollDelaySeconds = seconds
	}
}

// WithPixelsPerLine sets the pixel-to-line wheel conversion for Reader and Follow modes.
//
// Parameters:
//   - reader: pixels per line in Reader mode
//   - follow: pixels per line in Follow mode
//
// Returns:
//   - CameraControllerOption: functional option to set wheel conversion
func WithPixelsPerLine(reader, follow float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pixelsPerLine = reader
		cc.followPixelsPerLine = follow
	}
}

// WithResetRotationOnOrtho controls whether switching to orthographic projection levels the camera.
//
// Parameters:
//   - reset: whether yaw and pitch reset on the switch
//
// Returns:
//   - CameraControllerOption: functional option to set the reset behavior
func WithResetRotationOnOrtho(reset bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.resetRotationOnOrtho = reset
	}
}
