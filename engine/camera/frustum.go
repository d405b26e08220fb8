package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
)

// CalcFrustum computes the world-space frustum of a camera placed at transform with the given projection.
// It is a pure function of its inputs.
//
// Parameters:
//   - transform: the camera's world transform
//   - projection: the camera's projection
//
// Returns:
//   - common.Frustum: the six normalized frustum planes
func CalcFrustum(transform common.Transform, projection Projection) common.Frustum {
	view := transform.Matrix().Inv()
	return common.ExtractFrustumFromMatrix(projection.Matrix().Mul4(view))
}
