package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionKind selects between perspective and orthographic projection.
type ProjectionKind int

const (
	// ProjectionPerspective projects with a vertical field of view.
	ProjectionPerspective ProjectionKind = iota
	// ProjectionOrthographic projects with a fixed vertical extent.
	ProjectionOrthographic
)

// Projection holds the parameters of a camera projection.
// Only the fields relevant to Kind are read when building the matrix.
type Projection struct {
	Kind ProjectionKind

	// Fov is the vertical field of view in radians (perspective only).
	Fov float32
	// Aspect is width / height.
	Aspect float32
	// Near is the near clipping distance.
	Near float32
	// Far is the far clipping distance.
	Far float32

	// Scale multiplies the fixed vertical extent (orthographic only).
	Scale float32
	// FixedVertical is the visible height in world units at scale 1 (orthographic only).
	FixedVertical float32
}

// PerspectiveProjection returns a perspective projection with a 45 degree vertical field of view.
//
// Returns:
//   - Projection: the default perspective projection
func PerspectiveProjection() Projection {
	return Projection{
		Kind:   ProjectionPerspective,
		Fov:    math.Pi / 4,
		Aspect: 1.0,
		Near:   0.1,
		Far:    1000.0,
	}
}

// OrthographicProjection returns an orthographic projection scaled 3x over a fixed vertical extent of 2.
//
// Returns:
//   - Projection: the default orthographic projection
func OrthographicProjection() Projection {
	return Projection{
		Kind:          ProjectionOrthographic,
		Aspect:        1.0,
		Near:          0.0,
		Far:           1000.0,
		Scale:         3.0,
		FixedVertical: 2.0,
	}
}

// Matrix builds the column-major projection matrix.
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func (p Projection) Matrix() mgl32.Mat4 {
	if p.Kind == ProjectionOrthographic {
		halfHeight := p.Scale * p.FixedVertical / 2
		halfWidth := halfHeight * p.Aspect
		return mgl32.Ortho(-halfWidth, halfWidth, -halfHeight, halfHeight, p.Near, p.Far)
	}
	return mgl32.Perspective(p.Fov, p.Aspect, p.Near, p.Far)
}

// IsPerspective reports whether the projection is perspective.
func (p Projection) IsPerspective() bool {
	return p.Kind == ProjectionPerspective
}
