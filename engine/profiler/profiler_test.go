package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordTick(t *testing.T) {
	p := NewProfiler()
	assert.Equal(t, float32(0), p.Ticks().Mean())

	for _, dt := range []float32{0.02, 0.01, 0.03} {
		p.RecordTick(dt)
	}

	stats := p.Ticks()
	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 0.01, stats.Min, 1e-6)
	assert.InDelta(t, 0.03, stats.Max, 1e-6)
	assert.InDelta(t, 0.02, stats.Mean(), 1e-6)
}

func TestTickReportsOncePerInterval(t *testing.T) {
	p := NewProfiler()
	start := p.lastTime
	now := start
	p.now = func() time.Time { return now }

	p.RecordTick(1.0 / 60.0)
	now = start.Add(500 * time.Millisecond)
	assert.False(t, p.Tick())
	assert.Equal(t, 1, p.Ticks().Count)

	now = start.Add(time.Second)
	assert.True(t, p.Tick())
	assert.Equal(t, 0, p.Ticks().Count)
	assert.Equal(t, 0, p.frameCount)

	now = now.Add(10 * time.Millisecond)
	assert.False(t, p.Tick())
}
