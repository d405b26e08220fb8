package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
)

// updateReader runs one Reader frame. Visible extents must already be measured for this frame.
// easeDt drives every easing computation; realDt drives the scroll idle timer.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updateReader(easeDt, realDt float32, frame input.Frame, cam Camera, target Target) {
	desc, ok := target.TextDescriptor()
	if !ok {
		return
	}
	desc.Validate()

	cc.columnMax = desc.Columns
	if !cc.columnInitialized {
		cc.column = desc.Columns / 2
		cc.columnInitialized = true
	}
	cc.tickScrollIdle(realDt)

	rows := cc.rowsMetaData(desc)

	in := scrollInput{pointerX: frame.PointerDelta.X(), pointerY: frame.PointerDelta.Y()}
	if wheel, ok := frame.WheelDelta(cc.pixelsPerLine); ok {
		if frame.Pressed(cc.keys.ZoomModifier) {
			cc.zoomRequest(wheel, cc.zoomSensitivity)
		} else {
			in.wheel, in.hasWheel = wheel, true
		}
	}

	zooming := cc.isZooming()
	if zooming {
		cc.applyZoom(easeDt)
	}

	var scrollSignal float32
	if cc.caps.Translation {
		scrollSignal += in.pointerY
	}
	if cc.caps.Scroll {
		scrollSignal += in.wheel
	}
	pitchCompensation := cc.lean(easeDt, scrollSignal, rows)
	cc.applyRotation(easeDt, cam)

	cc.stepColumnKeys(easeDt, frame)
	cc.accumulateSwipe(easeDt, in, desc)
	cc.accumulateScroll(easeDt, in, desc, rows)

	targetPos := target.Transform().Translation
	cc.blendTranslationEasing(frame.KeyScroll() != input.KeyScrollNone)
	cc.targetTranslation = cc.composeTranslation(
		targetPos,
		cc.swipeOffset(desc),
		cc.scrollOffset(desc, rows, pitchCompensation),
	)
	cc.applyTranslation(easeDt, cam, rows)

	if zooming {
		cc.zoomAdjustment(cam, target, desc)
	}

	cc.reportRow(cam.Transform().Translation.Y(), targetPos.Y(), desc.GlyphHeight, rows)
}
