package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
)

// scrollInput is the per-frame input relevant to the accumulators.
type scrollInput struct {
	pointerX, pointerY float32
	wheel              float32
	hasWheel           bool
}

// tickScrollIdle advances the idle timer by the real frame delta.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) tickScrollIdle(dt float32) {
	cc.scrollIdleRemaining = max(cc.scrollIdleRemaining-dt, 0)
	if cc.scrollIdleRemaining == 0 {
		cc.pitchChanged = false
	}
}

// accumulateSwipe folds horizontal pointer motion into the swipe residual and converts
// whole glyph widths into column steps. The column stays within [0, 2*columns].
// Caller must hold the mutex.
func (cc *cameraControllerImpl) accumulateSwipe(dt float32, in scrollInput, desc common.TextDescriptor) {
	if cc.caps.Translation {
		cc.swipeAccum += in.pointerX * cc.swipeSensitivity * (dt / max(cc.swipeEasingSeconds, minEasingSeconds))
	}
	cc.swipeAccum = finiteOrZero(cc.swipeAccum)

	gw := desc.GlyphWidth
	limit := 2 * desc.Columns
	for common.Abs(cc.swipeAccum) >= gw {
		step := common.Sign(cc.swipeAccum)
		if step > 0 {
			if cc.column < limit {
				cc.column++
			}
		} else if cc.column > 0 {
			cc.column--
		}
		cc.swipeAccum -= gw * step
	}
	cc.column = min(cc.column, limit)
}

// accumulateScroll folds vertical pointer motion and wheel input into the scroll residual and
// converts whole glyph heights into row-offset delta. Steps toward a reached boundary are dropped.
// With no wheel input and the idle timer finished, the residual eases back to the nearest row.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) accumulateScroll(dt float32, in scrollInput, desc common.TextDescriptor, rows RowsMetaData) {
	if cc.caps.Translation {
		cc.scrollAccum += in.pointerY * cc.mouseScrollSensitivity * (dt / max(cc.scrollEasingSeconds, minEasingSeconds))
	}
	if cc.caps.Scroll && in.hasWheel {
		cc.scrollAccum += in.wheel * cc.wheelScrollSensitivity
		cc.scrollIdleRemaining = cc.scrollIdleSeconds
	}
	cc.scrollAccum = finiteOrZero(cc.scrollAccum)

	gh := desc.GlyphHeight
	if !in.hasWheel && cc.scrollIdleRemaining == 0 {
		cc.scrollAccum = idleReturn(cc.scrollAccum, gh)
	}

	for common.Abs(cc.scrollAccum) >= gh {
		step := common.Sign(cc.scrollAccum)
		blocked := (step < 0 && rows.TextStartReached) || (step > 0 && rows.TextEndReached)
		if !blocked {
			cc.handshake.delta += int32(step)
		}
		cc.scrollAccum -= gh * step
	}
}

// idleReturn moves a residual one step toward 0 (within half a glyph) or toward a full signed glyph.
func idleReturn(residual, glyph float32) float32 {
	var target float32
	if common.Abs(residual) >= glyph/2 {
		target = common.Sign(residual) * glyph
	}
	residual = common.Lerp(residual, target, IdleReturnFactor)
	if common.Abs(residual-target) < IdleSnapEpsilon {
		return target
	}
	return residual
}

// stepColumnKeys steps the column while a column key is held, once per key-scroll delay.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) stepColumnKeys(dt float32, frame input.Frame) {
	right := frame.Pressed(cc.keys.ColumnRight)
	left := frame.Pressed(cc.keys.ColumnLeft)
	if right == left {
		cc.columnKeyHeld = 0
		return
	}
	cc.columnKeyHeld += dt
	if cc.columnKeyHeld < cc.keyScrollDelaySeconds {
		return
	}
	cc.columnKeyHeld = 0
	if right {
		if cc.column < 2*cc.columnMax {
			cc.column++
		}
	} else if cc.column > 0 {
		cc.column--
	}
}

func finiteOrZero(v float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return v
}
