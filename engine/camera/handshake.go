package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
)

// rowOffsetHandshake is the shared state between the camera and the pagination provider.
// requested is written by the provider, reported and delta by the camera.
// The provider reads and clears delta exactly once per frame.
type rowOffsetHandshake struct {
	requested uint32
	reported  uint32
	delta     int32
}

func (cc *cameraControllerImpl) SetRowOffsetRequested(row uint32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.handshake.requested = row
}

func (cc *cameraControllerImpl) RowOffsetRequested() uint32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.handshake.requested
}

func (cc *cameraControllerImpl) RowOffsetReported() uint32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.handshake.reported
}

func (cc *cameraControllerImpl) TakeRowOffsetDelta() int32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	d := cc.handshake.delta
	cc.handshake.delta = 0
	return d
}

func (cc *cameraControllerImpl) VisibleRows() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.extent.rows
}

func (cc *cameraControllerImpl) VisibleColumns() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.extent.columns
}

func (cc *cameraControllerImpl) Column() uint32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.column
}

func (cc *cameraControllerImpl) ScrollResidual() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.scrollAccum
}

func (cc *cameraControllerImpl) SwipeResidual() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.swipeAccum
}

func (cc *cameraControllerImpl) PutToSleep() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.awake = false
}

func (cc *cameraControllerImpl) WakeUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.awake = true
}

func (cc *cameraControllerImpl) IsAwake() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.awake
}

// effectiveDelta returns the delta used for easing: the real delta while awake,
// DormantDeltaSeconds while dormant. This is the only place the dormancy flag is read.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) effectiveDelta(dt float32) float32 {
	if cc.awake {
		return dt
	}
	return DormantDeltaSeconds
}

// reportRow derives the row the camera is centered on from its eased vertical offset to the target.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) reportRow(cameraY, targetY, glyphHeight float32, rows RowsMetaData) {
	offset := cameraY - targetY
	if offset < 0 {
		offset = -offset
	}
	row := common.Round(offset/glyphHeight - cc.rowConstantOffset - rows.VisibleRowsHalf)
	if row < 0 {
		row = 0
	}
	cc.handshake.reported = uint32(row)
}
