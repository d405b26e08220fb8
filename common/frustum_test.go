package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func viewProjAt(proj mgl32.Mat4, t Transform) mgl32.Mat4 {
	return proj.Mul4(t.Matrix().Inv())
}

func TestExtractFrustumFromMatrix(t *testing.T) {
	t.Run("planes are normalized", func(t *testing.T) {
		f := ExtractFrustumFromMatrix(mgl32.Perspective(mgl32.DegToRad(60), 1.5, 0.1, 100))
		for i, p := range f.Planes {
			n := mgl32.Vec3(p.Normal)
			assert.InDelta(t, 1.0, n.Len(), 1e-5, "plane %d", i)
		}
	})

	t.Run("origin in front of camera is inside", func(t *testing.T) {
		f := ExtractFrustumFromMatrix(viewProjAt(
			mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100),
			TransformFromXYZ(0, 0, 10),
		))
		for i, p := range f.Planes {
			assert.Greater(t, p.Distance, float32(0), "plane %d", i)
		}
	})
}

func TestFrustumBorders(t *testing.T) {
	t.Run("perspective borders scale with distance", func(t *testing.T) {
		fovy := mgl32.DegToRad(90)
		f := ExtractFrustumFromMatrix(viewProjAt(
			mgl32.Perspective(fovy, 2, 0.1, 1000),
			TransformFromXYZ(0, 0, 7),
		))

		halfHeight := float32(7-0.05) * float32(math.Tan(float64(fovy)/2))
		assert.InDelta(t, halfHeight, f.BorderY(0.05, true), 1e-3)
		assert.InDelta(t, -halfHeight, f.BorderY(0.05, false), 1e-3)
		assert.InDelta(t, 2*halfHeight, f.BorderX(0.05, true), 1e-3)
		assert.InDelta(t, -2*halfHeight, f.BorderX(0.05, false), 1e-3)
	})

	t.Run("orthographic borders ignore distance", func(t *testing.T) {
		proj := mgl32.Ortho(-4, 4, -3, 3, 0.1, 1000)
		near := ExtractFrustumFromMatrix(viewProjAt(proj, TransformFromXYZ(0, 0, 5)))
		far := ExtractFrustumFromMatrix(viewProjAt(proj, TransformFromXYZ(0, 0, 50)))

		assert.InDelta(t, 3, near.BorderY(0, true), 1e-4)
		assert.InDelta(t, -3, near.BorderY(0, false), 1e-4)
		assert.InDelta(t, near.BorderY(0, true), far.BorderY(0, true), 1e-3)
		assert.InDelta(t, 4, far.BorderX(0, true), 1e-3)
	})

	t.Run("degenerate plane solves to zero", func(t *testing.T) {
		var p Plane
		_, ok := p.SolveY(0, 1)
		assert.False(t, ok)
		_, ok = p.SolveX(0, 1)
		assert.False(t, ok)
	})
}
