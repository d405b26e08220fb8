package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// updateFollow runs one Follow frame: mouse look, multiplicative wheel zoom and orbit placement.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updateFollow(dt float32, frame input.Frame, cam Camera, target Target) {
	if cc.caps.Rotation {
		cc.mouseLook(dt, frame)
	}
	if cc.caps.Zoom {
		scalar := float32(1)
		for _, amount := range frame.WheelAmounts(cc.followPixelsPerLine) {
			scalar *= 1 - amount*cc.followZoomSensitivity
		}
		cc.zoom = common.Clamp(cc.zoom*scalar, FollowZoomMin, ZoomMax)
		cc.targetZoom = cc.zoom
	}

	dir := common.UnitVectorFromYawPitch(mgl32.DegToRad(cc.yaw), mgl32.DegToRad(cc.pitch))
	cc.targetTranslation = target.Transform().Translation.Add(dir.Mul(cc.zoom))
	cc.targetRotation = common.YawPitchRotation(cc.yaw, cc.pitch)
	cam.SetTransform(common.Transform{Translation: cc.targetTranslation, Rotation: cc.targetRotation})
}
