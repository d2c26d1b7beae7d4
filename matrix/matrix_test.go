// Package matrix_test contains unit tests for Matrix construction, access and rendering.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsBadShape ensures a mismatched buffer or negative extents never construct.
func TestNewRejectsBadShape(t *testing.T) {
	_, err := matrix.New([]int{1, 2, 3}, 2, 2) // 3 elements for 2×2
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New([]int{}, -1, 0) // negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zeros[int](2, -3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Identity[int](-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	require.Panics(t, func() { matrix.MustNew([]int{1}, 2, 2) })
}

// TestExtentsOverflow rejects extents whose product wraps to a length an
// empty buffer would satisfy.
func TestExtentsOverflow(t *testing.T) {
	huge := math.MaxInt/2 + 1 // huge*4 wraps to 0

	_, err := matrix.New([]int{}, huge, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Contains(t, err.Error(), "overflows int")

	_, err = matrix.FromBuffer([]int{}, 4, huge)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zeros[int](huge, huge)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Identity[int](huge)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.New([]int{}, huge, 0) // zero cells never overflow
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}

// TestNewCopiesBuffer ensures the matrix owns its storage.
func TestNewCopiesBuffer(t *testing.T) {
	src := []int{1, 2, 3, 4}
	m, err := matrix.New(src, 2, 2)
	require.NoError(t, err)

	src[0] = 99 // mutate caller buffer
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	out := m.Data() // copy out
	out[3] = 99
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

// TestAtRowMajorOffset verifies (i, j) lives at i*cols + j.
func TestAtRowMajorOffset(t *testing.T) {
	m := seq(t, 3, 4) // 1..12

	rows, cols := m.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	require.Equal(t, 12, m.Len())

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			off, err := m.Offset(i, j)
			require.NoError(t, err)
			require.Equal(t, i*cols+j, off)

			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, i*cols+j+1, v)
		}
	}
}

// TestAtOutOfRange ensures bad indices return ErrOutOfRange instead of panicking.
func TestAtOutOfRange(t *testing.T) {
	m := seq(t, 2, 2)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])
	}
	_, err := m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.ColumnView(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowAndCol checks row slices and strided column gathers.
func TestRowAndCol(t *testing.T) {
	m := seq(t, 3, 2) // {1 2, 3 4, 5 6}

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, row.Slice())

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, col.Slice())

	view, err := m.ColumnView(0)
	require.NoError(t, err)
	require.Equal(t, 3, view.Len())
	v, err := view.At(2)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	_, err = view.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStringRendering checks the bracketed row-grouped form for several shapes.
func TestStringRendering(t *testing.T) {
	tests := []struct {
		name string
		m    *matrix.Matrix[int]
		want string
	}{
		{"2x3", seq(t, 2, 3), "{1 2 3, 4 5 6}"},
		{"3x2", seq(t, 3, 2), "{1 2, 3 4, 5 6}"},
		{"1x1", seq(t, 1, 1), "{1}"},
		{"empty", matrix.MustNew([]int{}, 0, 0), "{}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.m.String())
			require.Equal(t, tc.want, fmt.Sprint(tc.m))
		})
	}

	f := matrix.MustNew([]float64{0.5, 2}, 1, 2)
	require.Equal(t, "{0.5 2}", f.String())
}

// TestGoString checks the debug rendering used by %#v.
func TestGoString(t *testing.T) {
	m := matrix.MustNew([]int{22, 28, 49, 64}, 2, 2)
	require.Equal(t, "Matrix { rows: 2, cols: 2, data: {22 28, 49 64} }", fmt.Sprintf("%#v", m))

	var nilM *matrix.Matrix[int]
	require.Equal(t, "<nil>", nilM.String())
}

// TestEqual covers shape and element comparison.
func TestEqual(t *testing.T) {
	a := seq(t, 2, 2)
	require.True(t, a.Equal(seq(t, 2, 2)))
	require.False(t, a.Equal(seq(t, 1, 4)))
	require.False(t, a.Equal(matrix.MustNew([]int{1, 2, 3, 5}, 2, 2)))
	require.False(t, a.Equal(nil))

	var nilM *matrix.Matrix[int]
	require.True(t, nilM.Equal(nil))
}

// TestFromBufferAdopts checks shape validation of the zero-copy constructor.
func TestFromBufferAdopts(t *testing.T) {
	m, err := matrix.FromBuffer([]int{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	require.Equal(t, "{1 2, 3 4}", m.String())

	_, err = matrix.FromBuffer([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
