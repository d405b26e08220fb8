package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
)

// zoomRequest moves the target zoom by raw*sensitivity within [ZoomMin, ZoomMax].
// Caller must hold the mutex.
func (cc *cameraControllerImpl) zoomRequest(raw, sensitivity float32) {
	if !cc.caps.Zoom {
		return
	}
	cc.targetZoom = common.Clamp(cc.targetZoom+raw*sensitivity, ZoomMin, ZoomMax)
}

// isZooming reports whether the eased zoom has not reached its target.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) isZooming() bool {
	return cc.zoom != cc.targetZoom
}

// applyZoom eases the zoom toward the target zoom.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyZoom(dt float32) {
	cc.zoom = common.Lerp(cc.zoom, cc.targetZoom, common.EaseFactor(dt, cc.zoomEasingSeconds))
	if common.Abs(cc.zoom-cc.targetZoom) < ZoomSnapEpsilon {
		cc.zoom = cc.targetZoom
	}
}

// zoomAdjustment measures the view at the target zoom and emits the row-offset correction that keeps
// the centered row centered once the zoom settles. The measured counts become the eased targets.
// Columns are recorded but emit no correction.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) zoomAdjustment(cam Camera, target Target, desc common.TextDescriptor) {
	contentZ := target.Transform().Translation.Z()

	synthetic := cam.Transform()
	synthetic.Translation = common.AxisZ.Mul(cc.targetZoom + contentZ)
	rows, columns, _ := measure(synthetic, cam.Projection(), desc, contentZ)

	old := cc.extent.rowsOrTarget()
	cc.handshake.delta += int32(common.Floor((old - rows) / 2))
	cc.extent.setTargets(rows, columns)
}
