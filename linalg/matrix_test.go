package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsdiag/errs"
)

func TestTranspose(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	tr := Transpose(m)
	r, c := tr.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, ToRows(tr))

	// The result must not alias the input.
	tr.Set(0, 0, 99)
	require.Equal(t, 1.0, m.At(0, 0))
}

func TestMultiply(t *testing.T) {
	t.Run("2x3 by 3x2", func(t *testing.T) {
		a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
		b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

		out, err := Multiply(a, b)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{58, 64}, {139, 154}}, ToRows(out))
	})

	t.Run("inner dimension mismatch", func(t *testing.T) {
		a := mat.NewDense(2, 3, nil)
		b := mat.NewDense(2, 2, nil)

		out, err := Multiply(a, b)
		require.Nil(t, out)
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("empty operand", func(t *testing.T) {
		var empty mat.Dense
		_, err := Multiply(&empty, mat.NewDense(1, 1, []float64{1}))
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("transposed view operand", func(t *testing.T) {
		x := mat.NewDense(3, 2, []float64{1, 1, 1, 2, 1, 3})
		out, err := Multiply(x.T(), x)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{3, 6}, {6, 14}}, ToRows(out))
	})
}

func TestInvert(t *testing.T) {
	t.Run("2x2", func(t *testing.T) {
		m := mat.NewDense(2, 2, []float64{4, 7, 2, 6})

		inv, err := Invert(m)
		require.NoError(t, err)

		want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
		got := ToRows(inv)
		for i := range want {
			for j := range want[i] {
				require.InDelta(t, want[i][j], got[i][j], 1e-12)
			}
		}

		prod, err := Multiply(m, inv)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(prod, mat.NewDiagDense(2, []float64{1, 1}), 1e-12))
	})

	t.Run("exactly singular", func(t *testing.T) {
		m := mat.NewDense(2, 2, []float64{3, 3, 3, 3})

		inv, err := Invert(m)
		require.Nil(t, inv)
		require.ErrorIs(t, err, errs.ErrSingularMatrix)

		var cond mat.Condition
		require.True(t, errors.As(err, &cond))
		require.True(t, math.IsInf(float64(cond), 1))
	})

	t.Run("numerically singular", func(t *testing.T) {
		// Rank 2; LU leaves only round-off in the last pivot.
		m := mat.NewDense(3, 3, []float64{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		})

		_, err := Invert(m)
		require.ErrorIs(t, err, errs.ErrSingularMatrix)
	})

	t.Run("non square", func(t *testing.T) {
		_, err := Invert(mat.NewDense(2, 3, nil))
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		var empty mat.Dense
		_, err := Invert(&empty)
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 3.0, m.At(1, 0))

	_, err = FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = FromRows(nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = FromRows([][]float64{{}})
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestDiagonal(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.Equal(t, []float64{1, 5, 9}, Diagonal(m))
	require.Equal(t, []float64{1, 5}, Diagonal(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))
}
