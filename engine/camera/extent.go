package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
)

// frustumBorders are the frustum plane crossings on the content plane.
type frustumBorders struct {
	top, bottom, left, right float32
}

// visibleExtent tracks the measured visible rows and columns and their eased targets.
// A target is "unset" until the first measurement.
type visibleExtent struct {
	rows    float32
	columns float32

	rowsTarget       float32
	hasRowsTarget    bool
	columnsTarget    float32
	hasColumnsTarget bool

	borders frustumBorders
}

// rowsOrTarget returns the eased row target when set, otherwise the measured rows.
func (e *visibleExtent) rowsOrTarget() float32 {
	if e.hasRowsTarget {
		return e.rowsTarget
	}
	return e.rows
}

// record stores a new measurement. The eased targets follow only when unset or when the
// measurement is unchanged from the previous frame, so a zoom in flight cannot overwrite them.
func (e *visibleExtent) record(rows, columns float32) {
	if !e.hasRowsTarget || rows == e.rows {
		e.rowsTarget = rows
		e.hasRowsTarget = true
	}
	if !e.hasColumnsTarget || columns == e.columns {
		e.columnsTarget = columns
		e.hasColumnsTarget = true
	}
	e.rows = rows
	e.columns = columns
}

// setTargets overwrites both eased targets.
func (e *visibleExtent) setTargets(rows, columns float32) {
	e.rowsTarget, e.hasRowsTarget = rows, true
	e.columnsTarget, e.hasColumnsTarget = columns, true
}

// measure computes the visible rows and columns a camera at transform would see on the content plane.
// Only the camera depth and orientation matter: x and y are zeroed before the frustum is built.
func measure(transform common.Transform, projection Projection, desc common.TextDescriptor, contentZ float32) (float32, float32, frustumBorders) {
	transform.Translation = mgl32.Vec3{0, 0, transform.Translation.Z()}
	f := CalcFrustum(transform, projection)

	z := contentZ + ContentDepthOffset
	b := frustumBorders{
		top:    f.BorderY(z, true),
		bottom: f.BorderY(z, false),
		left:   f.BorderX(z, false),
		right:  f.BorderX(z, true),
	}
	rows := (b.top - b.bottom) / desc.GlyphHeight
	columns := (b.right - b.left) / desc.GlyphWidth
	return rows, columns, b
}

// measureExtent measures the camera's current view and records it.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) measureExtent(transform common.Transform, projection Projection, desc common.TextDescriptor, contentZ float32) {
	rows, columns, borders := measure(transform, projection, desc, contentZ)
	cc.extent.record(rows, columns)
	cc.extent.borders = borders
}
