// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a rigid world-space placement: a translation and a unit rotation.
// Scale is not tracked, cameras and reader surfaces are never scaled.
type Transform struct {
	// Translation is the world-space position.
	Translation mgl32.Vec3
	// Rotation is the world-space orientation. It is expected to be normalized.
	Rotation mgl32.Quat
}

// IdentityTransform returns a Transform at the origin with no rotation.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// TransformFromXYZ returns a Transform positioned at (x, y, z) with no rotation.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - Transform: the positioned transform
func TransformFromXYZ(x, y, z float32) Transform {
	return Transform{Translation: mgl32.Vec3{x, y, z}, Rotation: mgl32.QuatIdent()}
}

// Matrix builds the model matrix (translation * rotation) for the transform.
//
// Returns:
//   - mgl32.Mat4: the column-major model matrix
func (t Transform) Matrix() mgl32.Mat4 {
	tr := t.Translation
	return mgl32.Translate3D(tr[0], tr[1], tr[2]).Mul4(t.Rotation.Mat4())
}

// TextDescriptor describes the glyph grid of a reader surface.
// GlyphWidth and GlyphHeight are world units per column and row and must be positive.
type TextDescriptor struct {
	// GlyphWidth is the world-space width of a single column.
	GlyphWidth float32
	// GlyphHeight is the world-space height of a single row.
	GlyphHeight float32
	// Rows is the total number of rows in the paginated content.
	Rows uint32
	// Columns is the number of columns in a row of content.
	Columns uint32
}

// Validate asserts that the glyph dimensions are usable as divisors.
func (d TextDescriptor) Validate() {
	Assert(d.GlyphWidth > 0, "text descriptor glyph width must be positive, got %v", d.GlyphWidth)
	Assert(d.GlyphHeight > 0, "text descriptor glyph height must be positive, got %v", d.GlyphHeight)
}
