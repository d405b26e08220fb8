package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
)

// swipeOffset is the horizontal offset of the camera from the surface origin.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) swipeOffset(desc common.TextDescriptor) float32 {
	return float32(cc.column)*desc.GlyphWidth + cc.swipeAccum
}

// scrollOffset is the signed vertical offset of the camera from the surface origin.
// The sub-row residual only contributes strictly between the content boundaries.
// Rows grow downward unless invertY is set.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) scrollOffset(desc common.TextDescriptor, rows RowsMetaData, pitchCompensation float32) float32 {
	scroll := (rows.TargetRow+float32(cc.handshake.delta))*desc.GlyphHeight + pitchCompensation
	if rows.betweenBoundaries() {
		scroll += cc.scrollAccum
	}
	if cc.invertY {
		return scroll
	}
	return -scroll
}

// blendTranslationEasing moves the live translation easing rate toward the key-scroll
// constant on key-repeat frames and toward the normal constant otherwise.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) blendTranslationEasing(keyScroll bool) {
	want := cc.translationEasingSeconds
	if keyScroll {
		want = cc.translationEasingScrollSeconds
	}
	cc.translationEasingCurrent = common.Lerp(cc.translationEasingCurrent, want, EasingRateBlend)
}

// composeTranslation builds the target camera position from the target object, the zoom
// distance along the yaw/pitch direction, and the swipe and scroll offsets.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) composeTranslation(targetPos mgl32.Vec3, swipe, scroll float32) mgl32.Vec3 {
	dir := common.UnitVectorFromYawPitch(mgl32.DegToRad(cc.yaw), mgl32.DegToRad(cc.pitch))
	return targetPos.
		Add(dir.Mul(cc.zoom)).
		Add(common.AxisX.Mul(swipe)).
		Add(common.AxisY.Mul(scroll))
}

// applyTranslation eases the camera toward the target translation. A row jump larger than
// one and a half screens lands on the target in a single frame.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyTranslation(dt float32, cam Camera, rows RowsMetaData) {
	factor := common.EaseFactor(dt, cc.translationEasingCurrent)
	if common.Abs(rows.RowDelta) > rows.snapThreshold() {
		factor = 1
	}
	current := cam.Transform().Translation
	cam.SetTranslation(common.LerpVec3(current, cc.targetTranslation, factor))
}
