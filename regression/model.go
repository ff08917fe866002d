package regression

import (
	"fmt"

	"github.com/arloliu/olsdiag/errs"
	"github.com/arloliu/olsdiag/linalg"
)

// Model is a fitted simple linear regression y = Intercept + Slope·x.
//
// A Model is immutable once produced by Fit. When the underlying sample
// changes, for example because a point was dragged, a new Model must be fit.
//
// Fields:
//   - Slope: Coefficient of x (β₁)
//   - Intercept: Constant term (β₀)
//   - Hat: N×N projection matrix X(XᵗX)⁻¹Xᵗ, row-major
type Model struct {
	// Slope is the fitted coefficient of x.
	Slope float64
	// Intercept is the fitted constant term.
	Intercept float64
	// Hat is the N×N hat matrix. Hat[i][i] is the leverage of point i.
	Hat [][]float64
}

var _ Estimator = (*Model)(nil)

// N returns the number of observations the model was fit on.
func (m *Model) N() int {
	return len(m.Hat)
}

// Estimate returns the fitted value Intercept + Slope·x.
func (m *Model) Estimate(x float64) float64 {
	return float64(m.Slope*x) + m.Intercept
}

// Coefficients returns the model coefficients [intercept, slope].
func (m *Model) Coefficients() []float64 {
	return []float64{m.Intercept, m.Slope}
}

// Leverage returns the hat-matrix diagonal entry Hat[i][i].
//
// This is the classical leverage statistic. It is unrelated to LeverageDelta,
// which compares residuals between a full and a leave-one-out fit.
func (m *Model) Leverage(i int) (float64, error) {
	if i < 0 || i >= len(m.Hat) {
		return 0, fmt.Errorf("leverage of point %d of %d: %w", i, len(m.Hat), errs.ErrIndexOutOfRange)
	}

	return m.Hat[i][i], nil
}

// HatDiagonal returns the leverage of every point, or nil for an empty model.
func (m *Model) HatDiagonal() []float64 {
	hat, err := linalg.FromRows(m.Hat)
	if err != nil {
		return nil
	}

	return linalg.Diagonal(hat)
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	hat := make([][]float64, len(m.Hat))
	for i, row := range m.Hat {
		hat[i] = append([]float64(nil), row...)
	}

	return &Model{Slope: m.Slope, Intercept: m.Intercept, Hat: hat}
}

// Formula returns a human-readable representation of the fitted line.
func (m *Model) Formula() string {
	return fmt.Sprintf("y = %.2f + %.2f * x", m.Intercept, m.Slope)
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Slope: %.4f, Intercept: %.4f, N: %d, Formula: %s}",
		m.Slope, m.Intercept, m.N(), m.Formula())
}

// Summary holds goodness-of-fit statistics of a Model over a sample.
//
// Fields:
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error of the residuals (lower is better)
//   - XMean, YMean: Means of the sample coordinates
type Summary struct {
	RSquared float64
	RMSE     float64
	XMean    float64
	YMean    float64
}

// String returns a string representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{R²: %.4f, RMSE: %.4f, x̄: %.4f, ȳ: %.4f}",
		s.RSquared, s.RMSE, s.XMean, s.YMean)
}

// Summarize computes goodness-of-fit statistics of m over the sample (xs, ys).
//
// The sample does not have to be the one m was fit on; summarizing the full
// sample against a leave-one-out model is valid.
func (m *Model) Summarize(xs, ys []float64) (Summary, error) {
	if len(xs) != len(ys) {
		return Summary{}, fmt.Errorf("summarize %d x values and %d y values: %w", len(xs), len(ys), errs.ErrDimensionMismatch)
	}
	if len(xs) == 0 {
		return Summary{}, fmt.Errorf("summarize: %w", errs.ErrEmptyInput)
	}

	predicted := make([]float64, len(xs))
	for i, x := range xs {
		predicted[i] = m.Estimate(x)
	}

	xMean, _ := Mean(xs)
	yMean, _ := Mean(ys)

	return Summary{
		RSquared: calculateRSquared(ys, predicted, yMean),
		RMSE:     calculateRMSE(ys, predicted),
		XMean:    xMean,
		YMean:    yMean,
	}, nil
}
