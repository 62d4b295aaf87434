// Package arith defines the numeric type sets shared by the stride packages
// and the magnitude helpers used for tolerance comparisons.
//
// The type sets follow Go's built-in arithmetic kinds. Magnitude follows the
// usual convention for approximate comparison: the magnitude of a real value
// is its absolute value, and the magnitude of a complex value is reported in
// the associated real type (float32 for complex64, float64 for complex128).
// Types outside these sets have no magnitude, so handing one to a kernel
// fails at compile time rather than at run time.
package arith

import "math/cmplx"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for all types with built-in addition and ordering.
// It is the element constraint for the scan and reduce kernels.
type Number interface {
	Integers | Floats
}

// Complexes is a constraint for complex types.
type Complexes interface {
	~complex64 | ~complex128
}

// Abs returns |x|. NaN propagates.
func Abs[T SignedInts | Floats](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |a - b|. The subtraction is ordered so the result is exact
// for unsigned types, where a-b would wrap when a < b. If either operand is
// NaN the result is NaN.
func AbsDiff[T Number](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

// Mag returns the magnitude |x| of a complex value as a float64.
func Mag[T Complexes](x T) float64 {
	return cmplx.Abs(complex128(x))
}

// MagDiff64 returns |a - b| for complex64 operands, in the real magnitude
// type float32.
func MagDiff64(a, b complex64) float32 {
	return float32(Mag(a - b))
}

// MagDiff128 returns |a - b| for complex128 operands, in the real magnitude
// type float64.
func MagDiff128(a, b complex128) float64 {
	return Mag(a - b)
}
