package camera

import (
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/stretchr/testify/assert"
)

func TestZoomRequest(t *testing.T) {
	t.Run("target zoom is clamped to the upper bound", func(t *testing.T) {
		cc := newReader(WithZoom(95))
		cc.Zoom(150)
		assert.Equal(t, float32(100), cc.TargetZoom())
		assert.Equal(t, float32(95), cc.ZoomDistance())
	})

	t.Run("target zoom is clamped to the lower bound", func(t *testing.T) {
		cc := newReader()
		cc.Zoom(-50)
		assert.Equal(t, ZoomMin, cc.TargetZoom())
	})

	t.Run("sensitivity scales the request", func(t *testing.T) {
		cc := newReader(WithZoomSensitivity(0.5, DefaultFollowZoomSensitivity))
		cc.Zoom(4)
		assert.Equal(t, DefaultZoom+2, cc.TargetZoom())
	})

	t.Run("disabled zoom ignores requests", func(t *testing.T) {
		cc := newReader()
		cc.SetCapabilityRestrictions(true, true, false, true)
		cc.Zoom(10)
		assert.Equal(t, DefaultZoom, cc.TargetZoom())
	})

	t.Run("any request sequence stays in bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		cc := newReader()
		for range 1000 {
			cc.Zoom((rng.Float32() - 0.5) * 400)
			assert.GreaterOrEqual(t, cc.targetZoom, ZoomMin)
			assert.LessOrEqual(t, cc.targetZoom, ZoomMax)
		}
	})

	t.Run("construction clamps the initial zoom", func(t *testing.T) {
		cc := newReader(WithZoom(500))
		assert.Equal(t, ZoomMax, cc.ZoomDistance())
	})
}

func TestApplyZoom(t *testing.T) {
	cc := newReader(WithZoomEasing(0.5))
	cc.targetZoom = 17
	assert.True(t, cc.isZooming())

	cc.applyZoom(0.25)
	assert.InDelta(t, 12, cc.zoom, 1e-5)

	cc.applyZoom(1)
	assert.Equal(t, float32(17), cc.zoom)
	assert.False(t, cc.isZooming())
}

func TestZoomAdjustment(t *testing.T) {
	cc := newReader()
	cam := newTestCamera(7)
	target := newTestTarget(unitGlyphs(1000, 80))
	cc.UpdateExtent(cam, target)
	before := cc.extent.rowsOrTarget()

	// At depth 3.05 the visible half-height is 3.0, so 6 rows remain visible.
	cc.targetZoom = 3.05
	cc.zoomAdjustment(cam, target, target.desc)

	assert.InDelta(t, 6.0, cc.extent.rowsTarget, 1e-3)
	assert.InDelta(t, 6.0, cc.extent.columnsTarget, 1e-3)
	assert.Equal(t, int32(common.Floor((before-cc.extent.rowsTarget)/2)), cc.handshake.delta)
	assert.Equal(t, int32(3), cc.handshake.delta)

	// Zooming back out emits the opposite correction: (6 - 13.9) / 2 floors to -4, not -3.
	cc.handshake.delta = 0
	cc.targetZoom = 7
	cc.zoomAdjustment(cam, target, target.desc)
	assert.Equal(t, int32(-4), cc.handshake.delta)
}
