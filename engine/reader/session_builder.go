package reader

import (
	"github.com/Carmen-Shannon/oxy-reader/engine/camera"
)

type sessionConfig struct {
	aspect            float32
	fov               float32
	computeWorkers    int
	controllerOptions []camera.CameraControllerOption
	onRowChange       func(status Status)
}

// SessionOption is a functional option for configuring a Session.
type SessionOption func(c *sessionConfig)

// WithAspect sets the camera aspect ratio.
//
// Parameters:
//   - aspect: viewport width divided by height
//
// Returns:
//   - SessionOption: option function to apply
func WithAspect(aspect float32) SessionOption {
	return func(c *sessionConfig) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithFov sets the camera's vertical field of view.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - SessionOption: option function to apply
func WithFov(fov float32) SessionOption {
	return func(c *sessionConfig) {
		c.fov = fov
	}
}

// WithComputeWorkers sets the scene's extent worker count.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SessionOption: option function to apply
func WithComputeWorkers(n int) SessionOption {
	return func(c *sessionConfig) {
		c.computeWorkers = max(n, 1)
	}
}

// WithControllerOptions passes options through to the camera controller. Mode and target are set
// by the session first and can be overridden.
//
// Parameters:
//   - options: camera controller options
//
// Returns:
//   - SessionOption: option function to apply
func WithControllerOptions(options ...camera.CameraControllerOption) SessionOption {
	return func(c *sessionConfig) {
		c.controllerOptions = append(c.controllerOptions, options...)
	}
}

// WithRowChangeCallback registers a function called from Tick whenever the document offset moves.
//
// Parameters:
//   - callback: function receiving the new status
//
// Returns:
//   - SessionOption: option function to apply
func WithRowChangeCallback(callback func(status Status)) SessionOption {
	return func(c *sessionConfig) {
		c.onRowChange = callback
	}
}
