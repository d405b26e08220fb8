package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/Carmen-Shannon/oxy-reader/engine/scene"
	"github.com/Carmen-Shannon/oxy-reader/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets the window the engine reads input from and runs its message loop on.
// Without a window the engine runs headless and input must be fed through Input().
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithInput sets the input collector, for harnesses that feed input themselves.
//
// Parameters:
//   - c: the collector to snapshot each tick
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInput(c *input.Collector) EngineBuilderOption {
	return func(e *engine) {
		e.input = c
	}
}

// WithScene registers a scene at the given key during engine construction.
// Scenes tick in ascending key order.
//
// Parameters:
//   - key: the ordering key (lower ticks first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithRenderFrameLimit sets the render frame rate cap in frames per second.
// Pass 0 to uncap the render loop. Defaults to 60.
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}

// WithDormantAfter sets how long input must stay idle before cameras are put to sleep.
// Pass 0 to only sleep on focus loss.
//
// Parameters:
//   - d: the idle duration (default 2s)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDormantAfter(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.dormantAfter = max(d, 0)
	}
}
