package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func middleRows() RowsMetaData {
	return RowsMetaData{TargetRow: 50, VisibleRows: 20, VisibleRowsHalf: 10, RowMax: 1000}
}

func TestLean(t *testing.T) {
	t.Run("scrolling back leans up", func(t *testing.T) {
		cc := newReader(WithLean(3, 0.5, 0.2))
		comp := cc.lean(1, -1, middleRows())
		assert.Equal(t, float32(3), cc.pitch)
		assert.True(t, cc.pitchChanged)
		expected := math.Sin(float64(mgl32.DegToRad(3))) * float64(DefaultZoom) * 2
		assert.InDelta(t, expected, comp, 1e-5)
	})

	t.Run("scrolling forward leans down", func(t *testing.T) {
		cc := newReader(WithLean(3, 0.5, 0.2))
		cc.lean(1, 2, middleRows())
		assert.Equal(t, float32(-3), cc.pitch)
	})

	t.Run("inverted Y flips the lean", func(t *testing.T) {
		cc := newReader(WithLean(3, 0.5, 0.2), WithInvertY(true))
		cc.lean(1, 2, middleRows())
		assert.Equal(t, float32(3), cc.pitch)
	})

	t.Run("changed pitch is held while idle", func(t *testing.T) {
		cc := newReader(WithLean(3, 0.5, 0.2))
		cc.SetPitch(1.5)
		cc.lean(1, 0, middleRows())
		assert.Equal(t, float32(1.5), cc.pitch)
	})

	t.Run("lean relaxes with the reset rate", func(t *testing.T) {
		cc := newReader(WithLean(3, 0.5, 0.4))
		cc.pitch = 2
		cc.yaw = 4
		cc.lean(0.1, 0, middleRows())
		assert.InDelta(t, 1.5, cc.pitch, 1e-6)
		assert.InDelta(t, 3, cc.yaw, 1e-6)
	})

	t.Run("boundaries relax the lean", func(t *testing.T) {
		cc := newReader(WithLean(3, 0.5, 0.2))
		cc.pitch = 3
		rows := middleRows()
		rows.TextStartReached = true
		cc.lean(1, -5, rows)
		assert.Equal(t, float32(0), cc.pitch)
	})

	t.Run("disabled rotation relaxes with the reset rate", func(t *testing.T) {
		cc := newReader(WithLean(3, 0.5, 0.4))
		cc.SetCapabilityRestrictions(true, false, true, true)
		cc.pitch = 2
		cc.lean(0.1, -1, middleRows())
		assert.InDelta(t, 1.5, cc.pitch, 1e-6)
		assert.False(t, cc.pitchChanged)
	})

	t.Run("disabled rotation settles a lean in progress", func(t *testing.T) {
		cc := newReader()
		cc.SetCapabilityRestrictions(true, false, true, true)
		cc.pitch = 3
		var comp float32
		for range 120 {
			comp = cc.lean(frameDt, 0, middleRows())
		}
		assert.InDelta(t, 0, cc.pitch, 1e-3)
		assert.InDelta(t, 0, comp, 1e-2)
	})
}

func TestApplyRotation(t *testing.T) {
	cc := newReader(WithRotationEasing(0.5))
	cam := newTestCamera(7)
	cc.pitch = 3

	cc.applyRotation(0.25, cam)
	partial := cam.Transform().Rotation
	assert.False(t, partial.ApproxEqualThreshold(mgl32.QuatIdent(), 1e-7))

	cc.applyRotation(1, cam)
	assert.Equal(t, mgl32.QuatRotate(mgl32.DegToRad(3), common.AxisX), cam.Transform().Rotation)
}
