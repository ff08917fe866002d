package regression

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsdiag/internal/pool"
)

// designMatrix builds the N×2 design matrix [1 | xs] on pooled storage. The
// matrix must not be used after release is called.
func designMatrix(xs []float64) (*mat.Dense, func()) {
	data, release := pool.GetFloat64Slice(2 * len(xs))
	for i, v := range xs {
		data[2*i] = 1
		data[2*i+1] = v
	}

	return mat.NewDense(len(xs), 2, data), release
}

// allEqual reports whether every value equals the first one.
func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}

	return true
}

// firstNonFinite returns the index of the first point with a NaN or ±Inf coordinate.
func firstNonFinite(xs, ys []float64) (int, bool) {
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return i, true
		}
	}

	return 0, false
}

// calculateRSquared calculates the coefficient of determination.
//
// Formula: R² = 1 - SSres/SStot. Returns 0 when the observed values are
// constant (SStot = 0).
func calculateRSquared(observed, predicted []float64, mean float64) float64 {
	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
