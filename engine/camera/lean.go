package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
)

// lean tilts the camera against the scroll direction and returns the vertical compensation
// that keeps the centered row in view at the leaned pitch. At either content boundary, or with
// rotation disabled, the lean relaxes toward zero.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) lean(dt, scroll float32, rows RowsMetaData) float32 {
	if cc.invertY {
		scroll = -scroll
	}

	targetPitch, seconds := float32(0), cc.leanResetEasingSeconds
	if cc.caps.Rotation && rows.betweenBoundaries() {
		switch {
		case scroll < 0:
			targetPitch, seconds = cc.pitchMax, cc.leanEasingSeconds
			cc.pitchChanged = true
		case scroll > 0:
			targetPitch, seconds = -cc.pitchMax, cc.leanEasingSeconds
			cc.pitchChanged = true
		case cc.pitchChanged:
			targetPitch, seconds = cc.pitch, cc.leanEasingSeconds
		}
	}

	rate := common.EaseFactor(dt, seconds)
	cc.pitch = common.Lerp(cc.pitch, targetPitch, rate)
	cc.yaw = common.Lerp(cc.yaw, 0, rate)
	return float32(math.Sin(float64(mgl32.DegToRad(cc.pitch)))) * cc.zoom * 2
}

// applyRotation eases the camera orientation toward the lean pitch about X.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyRotation(dt float32, cam Camera) {
	cc.targetRotation = mgl32.QuatRotate(mgl32.DegToRad(cc.pitch), common.AxisX)
	current := cam.Transform().Rotation
	cam.SetRotation(common.SlerpQuat(current, cc.targetRotation, common.EaseFactor(dt, cc.rotationEasingSeconds)))
}
