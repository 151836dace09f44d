// Package math provides the value types scripts use for game math:
// vectors, quaternions, colors and transforms.
//
// Arithmetic is componentwise. Mul and Div multiply or divide matching
// fields of two values; use Scale for scalar multiplication. Methods with
// an Assign suffix, Normalize and Resize mutate the receiver and return it
// so calls can be chained.
package math

import "math"

// Epsilon is the default tolerance for approximate comparisons.
const Epsilon float32 = 1e-6

// Equal reports whether a and b differ by less than tolerance.
func Equal(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) < tolerance
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// normalizeFactor returns the factor that scales a value of the given
// squared length to unit length, and false when the value must be left
// alone. Only lengths of exactly 0 or exactly 1 are skipped.
func normalizeFactor(lengthSq float32) (float32, bool) {
	length := sqrtf(lengthSq)
	if length == 0 || length == 1 {
		return 1, false
	}
	return 1 / length, true
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cosf(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func acosf(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func asinf(x float32) float32 {
	return float32(math.Asin(float64(x)))
}

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
