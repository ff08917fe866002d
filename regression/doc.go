// Package regression provides the ordinary-least-squares (OLS) engine behind the
// interactive regression-diagnostics scatterplot.
//
// The package fits a simple linear model y = intercept + slope·x through the
// normal equations and exposes the diagnostics the scatterplot displays:
//
//   - Regression line: slope and intercept of the fitted Model
//   - Hat matrix: H = X(XᵗX)⁻¹Xᵗ, whose diagonal is each point's leverage
//   - Residuals: observed minus fitted value for every point
//   - Leverage delta: 1 − (r_with/r_without)², comparing a point's residual
//     under the full fit and under the fit that leaves the point out
//   - Mean: arithmetic mean, used for the deviance-from-mean guide
//
// # Usage
//
//	xs := []float64{1, 2, 3, 4}
//	ys := []float64{3, 5, 7, 9}
//
//	model, err := regression.Fit(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Formula()) // y = 1.00 + 2.00 * x
//
//	residuals, _ := regression.Residuals(xs, ys, model.Slope, model.Intercept)
//	leverage, _ := model.Leverage(0) // hat[0][0]
//
// # Leave-one-out
//
// LeaveOneOut refits the model without one observation. Comparing the residual
// of that observation under both fits yields the leverage delta:
//
//	pivot, _ := regression.LeaveOneOut(sample, i)
//	with := regression.Residual(xs[i], ys[i], model.Slope, model.Intercept)
//	without := regression.Residual(xs[i], ys[i], pivot.Slope, pivot.Intercept)
//	delta, err := regression.LeverageDelta(with, without)
//
// The leverage delta is an ad hoc influence measure and is not the textbook
// leverage statistic; the latter is the hat-matrix diagonal returned by
// Model.Leverage. Both are kept side by side on purpose.
//
// # Errors
//
// All functions fail fast with sentinels from the errs package:
// errs.ErrDimensionMismatch for unequal x/y lengths, errs.ErrSingularMatrix for
// fewer than two points or constant x, errs.ErrDivisionByZero for a zero
// leave-one-out residual, and errs.ErrEmptyInput for the mean of nothing.
//
// # Performance Characteristics
//
//   - Fit: O(N²) time and memory, dominated by the N×N hat matrix
//   - Residuals, Mean: O(N)
//
// The engine targets small interactive samples (tens of points) refit on every
// pointer-move event. Nothing is cached between calls; every call allocates
// fresh results.
package regression
