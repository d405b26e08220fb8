package input

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Collector accumulates raw platform input between frames and hands it out as Frame snapshots.
// Window callbacks and the tick loop run on different goroutines, so all methods are safe for concurrent use.
type Collector struct {
	mu *sync.Mutex

	pointer   mgl32.Vec2
	cursor    mgl32.Vec2
	hasCursor bool
	wheel     []WheelEvent

	pressed     map[uint32]struct{}
	justPressed map[uint32]struct{}

	lastActivity time.Time
	now          func() time.Time
}

// NewCollector creates an empty Collector.
//
// Returns:
//   - *Collector: the new collector
func NewCollector() *Collector {
	return &Collector{
		mu:           &sync.Mutex{},
		pressed:      make(map[uint32]struct{}),
		justPressed:  make(map[uint32]struct{}),
		now:          time.Now,
		lastActivity: time.Now(),
	}
}

// KeyDown records a key press. Repeats of an already held key are not "just pressed".
//
// Parameters:
//   - key: the key code (see common.Key*)
func (c *Collector) KeyDown(key uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, held := c.pressed[key]; !held {
		c.justPressed[key] = struct{}{}
	}
	c.pressed[key] = struct{}{}
	c.touch()
}

// KeyUp records a key release.
//
// Parameters:
//   - key: the key code (see common.Key*)
func (c *Collector) KeyUp(key uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pressed, key)
	c.touch()
}

// Scroll records a wheel event.
//
// Parameters:
//   - x, y: the wheel deltas
//   - unit: the unit the deltas were reported in
func (c *Collector) Scroll(x, y float32, unit ScrollUnit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wheel = append(c.wheel, WheelEvent{X: x, Y: y, Unit: unit})
	c.touch()
}

// CursorMoved records an absolute cursor position and accumulates the motion since the previous one.
// The first position only establishes the baseline.
//
// Parameters:
//   - x, y: cursor position in screen units
func (c *Collector) CursorMoved(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos := mgl32.Vec2{x, y}
	if c.hasCursor {
		c.pointer = c.pointer.Add(pos.Sub(c.cursor))
	}
	c.cursor = pos
	c.hasCursor = true
	c.touch()
}

// PointerMoved accumulates a relative pointer motion.
//
// Parameters:
//   - dx, dy: motion in screen units (+Y is down)
func (c *Collector) PointerMoved(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointer = c.pointer.Add(mgl32.Vec2{dx, dy})
	c.touch()
}

// ResetCursor forgets the cursor baseline, e.g. after the cursor leaves the window.
func (c *Collector) ResetCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasCursor = false
}

// Snapshot returns the input gathered since the previous snapshot and clears the per-frame state.
// Held keys persist across snapshots.
//
// Returns:
//   - Frame: the frame snapshot
func (c *Collector) Snapshot() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := Frame{
		PointerDelta: c.pointer,
		Wheel:        c.wheel,
		pressed:      make(map[uint32]struct{}, len(c.pressed)),
		justPressed:  c.justPressed,
	}
	for k := range c.pressed {
		f.pressed[k] = struct{}{}
	}

	c.pointer = mgl32.Vec2{}
	c.wheel = nil
	c.justPressed = make(map[uint32]struct{})
	return f
}

// LastActivity returns the time of the most recent input event.
//
// Returns:
//   - time.Time: the time of the last recorded event
func (c *Collector) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

// touch records activity. Caller must hold the mutex.
func (c *Collector) touch() {
	c.lastActivity = c.now()
}
