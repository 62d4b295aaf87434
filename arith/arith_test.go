package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	require.Equal(t, 3, Abs(-3))
	require.Equal(t, 3, Abs(3))
	require.Equal(t, int8(0), Abs(int8(0)))
	require.Equal(t, 2.5, Abs(-2.5))
	require.Equal(t, float32(2.5), Abs(float32(2.5)))
}

func TestAbsNaN(t *testing.T) {
	require.True(t, math.IsNaN(Abs(math.NaN())))
}

func TestAbsDiff(t *testing.T) {
	require.Equal(t, 5, AbsDiff(2, 7))
	require.Equal(t, 5, AbsDiff(7, 2))
	require.Equal(t, 0.25, AbsDiff(1.0, 1.25))
	require.Equal(t, int64(0), AbsDiff(int64(-4), int64(-4)))
}

func TestAbsDiffUnsignedNoWrap(t *testing.T) {
	// 3 - 250 would wrap to 9 in uint8 arithmetic.
	require.Equal(t, uint8(247), AbsDiff(uint8(3), uint8(250)))
	require.Equal(t, uint8(247), AbsDiff(uint8(250), uint8(3)))
	require.Equal(t, uint64(1), AbsDiff(uint64(0), uint64(1)))
}

func TestAbsDiffNaN(t *testing.T) {
	require.True(t, math.IsNaN(AbsDiff(math.NaN(), 1.0)))
	require.True(t, math.IsNaN(AbsDiff(1.0, math.NaN())))
}

func TestMagDiff64(t *testing.T) {
	// 3-4-5 triangle: |(3+4i)| = 5.
	require.Equal(t, float32(5), MagDiff64(complex(4, 6), complex(1, 2)))
	require.Equal(t, float32(0), MagDiff64(complex(1, 1), complex(1, 1)))
}

func TestMagDiff128(t *testing.T) {
	require.Equal(t, 5.0, MagDiff128(complex(4, 6), complex(1, 2)))

	// The constant 1+1e-6 rounds when stored, so the recovered difference is
	// the rounded operand minus 1, not 1e-6 exactly.
	want := float64(1+1e-6) - 1
	require.Equal(t, want, MagDiff128(complex(1, 0), complex(1+1e-6, 0)))
	require.InDelta(t, 1e-6, MagDiff128(complex(1, 0), complex(1+1e-6, 0)), 1e-12)
}

func TestMag(t *testing.T) {
	require.Equal(t, 5.0, Mag(complex(3, 4)))
	require.Equal(t, 5.0, Mag(complex64(complex(3, 4))))

	type phasor complex128
	require.Equal(t, 13.0, Mag(phasor(complex(5, 12))))
}
