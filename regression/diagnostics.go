package regression

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/olsdiag/errs"
)

// Residual returns the signed error y − (slope·x + intercept) of one point.
func Residual(x, y, slope, intercept float64) float64 {
	// The explicit conversion keeps the product from being fused into an FMA,
	// so the result is bit-for-bit the textbook expression.
	return y - (float64(slope*x) + intercept)
}

// Residuals returns the per-point signed errors of the line (slope, intercept)
// over the sample (xs, ys): e[i] = ys[i] − (slope·xs[i] + intercept).
//
// Returns errs.ErrDimensionMismatch if len(xs) != len(ys).
func Residuals(xs, ys []float64, slope, intercept float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("residuals of %d x values and %d y values: %w", len(xs), len(ys), errs.ErrDimensionMismatch)
	}

	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = Residual(xs[i], ys[i], slope, intercept)
	}

	return out, nil
}

// LeverageDelta returns 1 − (residualWith/residualWithout)².
//
// residualWith is a point's residual under the fit that includes it and
// residualWithout its residual under the leave-one-out fit. Values near 1 mean
// the point pulls the line strongly towards itself.
//
// Returns errs.ErrDivisionByZero if residualWithout is exactly zero. NaN
// inputs are not rejected and propagate to a NaN result.
func LeverageDelta(residualWith, residualWithout float64) (float64, error) {
	if residualWithout == 0 {
		return 0, fmt.Errorf("leverage delta with zero leave-one-out residual: %w", errs.ErrDivisionByZero)
	}

	return 1 - (residualWith*residualWith)/(residualWithout*residualWithout), nil
}

// Mean returns the arithmetic mean of xs.
//
// Returns errs.ErrEmptyInput for an empty slice.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("mean: %w", errs.ErrEmptyInput)
	}

	return stat.Mean(xs, nil), nil
}
