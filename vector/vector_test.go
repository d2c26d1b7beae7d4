// Package vector_test verifies Vector ownership and the Dot kernel.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvmul/vector"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// TestNewCopiesInput ensures mutating the source slice does not leak into the Vector.
func TestNewCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	v := vector.New(src) // vector owns a copy
	src[0] = 100         // mutate caller slice

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, got) // original value survives

	out := v.Slice() // copy out
	out[1] = 200     // mutate the copy
	got, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

// TestAtOutOfRange checks bounds errors on both sides.
func TestAtOutOfRange(t *testing.T) {
	v := vector.New([]float64{1.5})

	_, err := v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestDot covers the table of small integer, float and complex cases.
func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"empty", nil, nil, 0},
		{"single", []int{3}, []int{4}, 12},
		{"three", []int{1, 2, 3}, []int{4, 5, 6}, 32},
		{"negative", []int{-1, 2}, []int{3, -4}, -11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.Dot(vector.New(tc.a), vector.New(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	f, err := vector.Dot(vector.New([]float64{0.5, 2}), vector.New([]float64{4, 0.25}))
	require.NoError(t, err)
	require.Equal(t, 2.5, f)

	c, err := vector.Dot(vector.New([]complex128{1 + 1i}), vector.New([]complex128{1 - 1i}))
	require.NoError(t, err)
	require.Equal(t, complex128(2), c)
}

// TestDotLengthMismatch ensures mismatched operands fail with both lengths in the message.
func TestDotLengthMismatch(t *testing.T) {
	_, err := vector.Dot(vector.New([]int{1, 2}), vector.New([]int{1}))
	require.ErrorIs(t, err, vector.ErrLengthMismatch)
	require.Contains(t, err.Error(), "got 2 and 1")
}

// TestGather verifies strided extraction and its bounds checks.
func TestGather(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6} // 3×2 row-major

	col, err := vector.Gather(src, 1, 2, 3) // column 1
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, col.Slice())

	empty, err := vector.Gather(src, 0, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())

	_, err = vector.Gather(src, 1, 2, 4) // runs past the end
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = vector.Gather(src, 0, 0, 2) // zero stride
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestEqualAndString checks comparison and rendering helpers.
func TestEqualAndString(t *testing.T) {
	a := vector.New([]int{1, 2})
	require.True(t, a.Equal(vector.New([]int{1, 2})))
	require.False(t, a.Equal(vector.New([]int{2, 1})))
	require.False(t, a.Equal(vector.New([]int{1})))
	require.Equal(t, "[1 2]", a.String())
}

// TestDotCommutative checks dot(a,b) == dot(b,a) on random integer vectors.
func TestDotCommutative(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("dot is commutative", prop.ForAll(
		func(xs []int64) bool {
			a := vector.New(xs)
			rev := make([]int64, len(xs)) // any second vector of equal length
			for i := range xs {
				rev[i] = xs[len(xs)-1-i] - int64(i)
			}
			b := vector.New(rev)
			ab, err1 := vector.Dot(a, b)
			ba, err2 := vector.Dot(b, a)

			return err1 == nil && err2 == nil && ab == ba
		},
		gen.SliceOf(gen.Int64Range(-1000, 1000)),
	))

	properties.TestingRun(t)
}
