package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// AxisX is the world +X axis.
	AxisX = mgl32.Vec3{1, 0, 0}
	// AxisY is the world +Y axis.
	AxisY = mgl32.Vec3{0, 1, 0}
	// AxisZ is the world +Z axis.
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// vectorEpsilon is the squared length under which a vector is treated as zero.
const vectorEpsilon = 1e-12

// NormalizeOrZero normalizes v, returning the zero vector when v has no usable length.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the unit vector, or the zero vector
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() < vectorEpsilon {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// LerpVec3 interpolates component-wise from a to b. A factor of 1 or more returns b exactly.
//
// Parameters:
//   - a: the start vector
//   - b: the end vector
//   - t: the interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	if t >= 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

// SlerpQuat spherically interpolates from a to b. A factor of 1 or more returns b exactly.
func SlerpQuat(a, b mgl32.Quat, t float32) mgl32.Quat {
	if t >= 1 {
		return b
	}
	return mgl32.QuatSlerp(a, b, t)
}

// UnitVectorFromYawPitch returns the unit offset direction for a camera orbiting at the given yaw and pitch.
// The ray starts along +Z, is rotated about Y by yaw, then about the horizontal axis (ray x Y) by pitch.
// Positive pitch lifts the ray above the horizontal plane.
//
// Parameters:
//   - yaw: rotation about the Y axis in radians
//   - pitch: elevation in radians
//
// Returns:
//   - mgl32.Vec3: the unit direction
func UnitVectorFromYawPitch(yaw, pitch float32) mgl32.Vec3 {
	ray := mgl32.Rotate3DY(yaw).Mul3x1(AxisZ)
	pitchAxis := NormalizeOrZero(ray.Cross(AxisY))
	if pitchAxis == (mgl32.Vec3{}) {
		return ray
	}
	return mgl32.QuatRotate(pitch, pitchAxis).Rotate(ray)
}

// YawPitchRotation builds the orientation for a yaw about Y followed by a pitch about -X.
// Both angles are in degrees.
//
// Parameters:
//   - yawDeg: yaw in degrees
//   - pitchDeg: pitch in degrees
//
// Returns:
//   - mgl32.Quat: the combined rotation
func YawPitchRotation(yawDeg, pitchDeg float32) mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(yawDeg), AxisY)
	pitch := mgl32.QuatRotate(mgl32.DegToRad(pitchDeg), AxisX.Mul(-1))
	return yaw.Mul(pitch).Normalize()
}

// ForwardVector returns the world-space forward direction (-Z) of the rotation.
func ForwardVector(rotation mgl32.Quat) mgl32.Vec3 {
	return rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// ForwardWalkVector returns the forward direction flattened onto the XZ plane.
// Returns the zero vector when looking straight up or down.
func ForwardWalkVector(rotation mgl32.Quat) mgl32.Vec3 {
	f := ForwardVector(rotation)
	return NormalizeOrZero(mgl32.Vec3{f.X(), 0, f.Z()})
}

// StrafeVector returns the horizontal right-hand direction perpendicular to ForwardWalkVector.
func StrafeVector(rotation mgl32.Quat) mgl32.Vec3 {
	f := ForwardWalkVector(rotation)
	return mgl32.Vec3{-f.Z(), 0, f.X()}
}

// Round rounds half away from zero.
func Round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// Floor returns the greatest integer value less than or equal to v.
func Floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// Ceil returns the least integer value greater than or equal to v.
func Ceil(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
