package input

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameWheelDelta(t *testing.T) {
	t.Run("no events", func(t *testing.T) {
		_, ok := Frame{}.WheelDelta(DefaultPixelsPerLine)
		assert.False(t, ok)
	})

	t.Run("mixed units are summed and negated", func(t *testing.T) {
		f := NewFrame(mgl32.Vec2{}, []WheelEvent{
			{Y: -1, Unit: ScrollUnitLine},
			{Y: -40, Unit: ScrollUnitPixel},
		}, nil, nil)
		d, ok := f.WheelDelta(20)
		require.True(t, ok)
		assert.InDelta(t, 3.0, d, 1e-6)
	})

	t.Run("zero pixels per line falls back to default", func(t *testing.T) {
		f := NewFrame(mgl32.Vec2{}, []WheelEvent{{Y: 20, Unit: ScrollUnitPixel}}, nil, nil)
		d, _ := f.WheelDelta(0)
		assert.InDelta(t, -1.0, d, 1e-6)
	})

	t.Run("per event amounts", func(t *testing.T) {
		f := NewFrame(mgl32.Vec2{}, []WheelEvent{{Y: 1}, {Y: 106, Unit: ScrollUnitPixel}}, nil, nil)
		assert.Equal(t, []float32{1, 2}, f.WheelAmounts(53))
	})
}

func TestFrameKeys(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []uint32
		justPressed []uint32
		expected    KeyScroll
	}{
		{"nothing held", nil, nil, KeyScrollNone},
		{"first press is not a repeat", []uint32{common.KeyDown}, []uint32{common.KeyDown}, KeyScrollNone},
		{"held down repeats", []uint32{common.KeyDown}, nil, KeyScrollDown},
		{"held up repeats", []uint32{common.KeyUp}, nil, KeyScrollUp},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFrame(mgl32.Vec2{}, nil, tc.pressed, tc.justPressed)
			assert.Equal(t, tc.expected, f.KeyScroll())
		})
	}

	f := NewFrame(mgl32.Vec2{}, nil, []uint32{common.KeyD, common.KeyW, common.KeyS}, nil)
	assert.Equal(t, float32(1), f.Axis(common.KeyD, common.KeyA))
	assert.Equal(t, float32(0), f.Axis(common.KeyS, common.KeyW))
}

func TestCollectorSnapshot(t *testing.T) {
	c := NewCollector()

	c.CursorMoved(100, 100)
	c.CursorMoved(103, 96)
	c.PointerMoved(1, 1)
	c.Scroll(0, -2, ScrollUnitLine)
	c.KeyDown(common.KeyDown)
	c.KeyDown(common.KeyDown)

	f := c.Snapshot()
	assert.Equal(t, mgl32.Vec2{4, -3}, f.PointerDelta)
	assert.Len(t, f.Wheel, 1)
	assert.True(t, f.JustPressed(common.KeyDown))
	assert.Equal(t, KeyScrollNone, f.KeyScroll())

	// Held key repeats on the next frame, transient state is cleared.
	c.KeyDown(common.KeyDown)
	f = c.Snapshot()
	assert.True(t, f.Empty())
	assert.True(t, f.Held())
	assert.Equal(t, KeyScrollDown, f.KeyScroll())

	c.KeyUp(common.KeyDown)
	f = c.Snapshot()
	assert.False(t, f.Pressed(common.KeyDown))
	assert.False(t, f.Held())
}

func TestCollectorLastActivity(t *testing.T) {
	c := NewCollector()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return at }

	c.Scroll(0, 1, ScrollUnitLine)
	assert.Equal(t, at, c.LastActivity())
}
