package common

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any signed integer or float type.
type Number interface {
	constraints.Signed | constraints.Float
}

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Assert panics with a formatted message when cond is false.
// It is reserved for programming errors such as violated preconditions.
//
// Parameters:
//   - cond: the condition that must hold
//   - format: fmt-style message used when the condition fails
//   - args: arguments for format
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

// Clamp bounds v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values, 1 for positive values and 0 for zero.
func Sign[T Number](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Lerp interpolates from a to b by t. A factor of 1 or more returns b exactly.
//
// Parameters:
//   - a: the start value
//   - b: the end value
//   - t: the interpolation factor
//
// Returns:
//   - T: the interpolated value
func Lerp[T constraints.Float](a, b, t T) T {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// EaseFactor converts a frame delta and an easing time-constant into a lerp factor capped at 1.
// A non-positive time-constant means "no easing" and yields 1.
//
// Parameters:
//   - dt: the frame delta in seconds
//   - seconds: the easing time-constant in seconds
//
// Returns:
//   - float32: min(dt/seconds, 1)
func EaseFactor(dt, seconds float32) float32 {
	if seconds <= 0 {
		return 1
	}
	return min(dt/seconds, 1)
}
