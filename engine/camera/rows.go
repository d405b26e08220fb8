package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
)

// RowsMetaData is the per-frame summary of where the camera sits in the paginated content.
// It is built at the start of a Reader frame and discarded at the end.
type RowsMetaData struct {
	// TargetRow is the row the camera should center on.
	TargetRow float32
	// RowDelta is the change of TargetRow since the previous frame.
	RowDelta float32
	// RowChanged reports whether RowDelta is non-zero.
	RowChanged bool
	// RowMax is the total row count of the content.
	RowMax float32
	// VisibleRows is the eased visible row count, or the measured one when no target is set.
	VisibleRows float32
	// VisibleRowsHalf is half of VisibleRows.
	VisibleRowsHalf float32
	// TextStartReached is true when the provider displays the first row.
	TextStartReached bool
	// TextEndReached is true when the target row touches the last row.
	TextEndReached bool
}

// rowsMetaData builds the frame's RowsMetaData and records the target row for the next frame.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) rowsMetaData(desc common.TextDescriptor) RowsMetaData {
	visible := cc.extent.rowsOrTarget()
	half := visible / 2
	requested := cc.handshake.requested

	targetRow := cc.rowConstantOffset + float32(requested) + half
	rowDelta := targetRow - cc.targetRowPrev
	cc.targetRowPrev = targetRow

	rowMax := float32(desc.Rows)
	return RowsMetaData{
		TargetRow:        targetRow,
		RowDelta:         rowDelta,
		RowChanged:       rowDelta != 0,
		RowMax:           rowMax,
		VisibleRows:      visible,
		VisibleRowsHalf:  half,
		TextStartReached: requested == 0,
		TextEndReached:   common.Ceil(targetRow)+1 >= rowMax,
	}
}

// snapThreshold is the row jump above which translation skips easing.
func (r RowsMetaData) snapThreshold() float32 {
	return r.VisibleRows + r.VisibleRowsHalf
}

// betweenBoundaries reports whether neither end of the content is reached.
func (r RowsMetaData) betweenBoundaries() bool {
	return !r.TextStartReached && !r.TextEndReached
}
