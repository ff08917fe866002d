package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/olsdiag/errs"
)

func TestResiduals_Definition(t *testing.T) {
	s := weatherSample()
	slope, intercept := 0.0134, 0.0271

	res, err := Residuals(s.X, s.Y, slope, intercept)
	require.NoError(t, err)
	require.Len(t, res, s.Len())
	for i := range res {
		require.Equal(t, s.Y[i]-(float64(slope*s.X[i])+intercept), res[i])
	}
}

func TestResiduals_SumToZeroForOLS(t *testing.T) {
	s := weatherSample()
	m, err := FitSample(s)
	require.NoError(t, err)

	res, err := Residuals(s.X, s.Y, m.Slope, m.Intercept)
	require.NoError(t, err)

	sum, weighted := 0.0, 0.0
	for i, r := range res {
		sum += r
		weighted += r * s.X[i]
	}
	require.InDelta(t, 0.0, sum, tolerance)
	require.InDelta(t, 0.0, weighted, 1e-7, "residuals are orthogonal to x")
}

func TestResiduals_Errors(t *testing.T) {
	_, err := Residuals([]float64{1, 2}, []float64{1}, 1, 0)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	res, err := Residuals(nil, nil, 1, 0)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestLeverageDelta(t *testing.T) {
	t.Run("two over four", func(t *testing.T) {
		d, err := LeverageDelta(2.0, 4.0)
		require.NoError(t, err)
		require.Equal(t, 0.75, d)
	})

	t.Run("sign does not matter", func(t *testing.T) {
		d, err := LeverageDelta(-2.0, 4.0)
		require.NoError(t, err)
		require.Equal(t, 0.75, d)
	})

	t.Run("zero leave-one-out residual", func(t *testing.T) {
		_, err := LeverageDelta(1.0, 0)
		require.ErrorIs(t, err, errs.ErrDivisionByZero)
	})

	t.Run("NaN propagates", func(t *testing.T) {
		d, err := LeverageDelta(math.NaN(), 1.0)
		require.NoError(t, err)
		require.True(t, math.IsNaN(d))
	})
}

func TestLeverageDelta_MatchesHatDiagonal(t *testing.T) {
	// For an OLS fit, r_i = (1 - h_ii)·r_(i), so the delta equals 1 - (1 - h_ii)².
	s := Sample{
		X: []float64{1, 2, 3, 4, 5},
		Y: []float64{2.1, 3.9, 6.2, 7.8, 10.1},
	}
	full, err := FitSample(s)
	require.NoError(t, err)

	for i := range s.Len() {
		pivot, err := LeaveOneOut(s, i)
		require.NoError(t, err)

		with := Residual(s.X[i], s.Y[i], full.Slope, full.Intercept)
		without := Residual(s.X[i], s.Y[i], pivot.Slope, pivot.Intercept)
		delta, err := LeverageDelta(with, without)
		require.NoError(t, err)

		h, err := full.Leverage(i)
		require.NoError(t, err)
		require.InDelta(t, 1-(1-h)*(1-h), delta, 1e-6, "point %d", i)
	}
}

func TestMean(t *testing.T) {
	m, err := Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 2.5, m)

	m, err = Mean([]float64{-3})
	require.NoError(t, err)
	require.Equal(t, -3.0, m)

	_, err = Mean(nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}
