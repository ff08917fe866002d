// Package olsdiag explains how single points influence a simple linear
// regression.
//
// It fits y = intercept + slope·x by ordinary least squares and derives the
// diagnostics an interactive scatter plot needs while the user drags a point:
// the residual of the point with and without it in the fit, the leverage
// delta 1 − (with/without)², the hat-matrix diagonal and the relative change
// of the slope.
//
// # Core Features
//
//   - Normal-equations OLS fit with the full N×N hat matrix
//   - Leave-one-out refits and leverage deltas
//   - Drag sessions that recompute every diagnostic per pointer move
//   - Pure view-state computation (scales, colours, segments, labels)
//   - JSON datasets, optionally compressed with Zstd, S2, LZ4 or gzip
//
// # Basic Usage
//
//	model, err := olsdiag.Fit([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
//	// model.Slope == 2, model.Intercept == 0, model.Hat[i][i] is the leverage of point i
//
// Dragging a point:
//
//	sess, frame, _ := olsdiag.StartDrag(sample, 3)
//	frame, err = sess.Move(40, 0.9)
//	fmt.Println(frame.LeverageDelta, frame.HatDiagonal)
//	baseline, _ := sess.End()
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The regression,
// interact, scene and dataset packages hold the full API.
package olsdiag

import (
	"github.com/arloliu/olsdiag/dataset"
	"github.com/arloliu/olsdiag/interact"
	"github.com/arloliu/olsdiag/internal/hash"
	"github.com/arloliu/olsdiag/regression"
	"github.com/arloliu/olsdiag/scene"
)

// Fit fits y = intercept + slope·x by ordinary least squares and returns the
// model with its hat matrix.
//
// Returns errs.ErrDimensionMismatch when xs and ys differ in length and
// errs.ErrSingularMatrix when all x values are equal or there are fewer than
// two points.
func Fit(xs, ys []float64) (*regression.Model, error) {
	return regression.Fit(xs, ys)
}

// Residuals returns y − (slope·x + intercept) for every point.
func Residuals(xs, ys []float64, slope, intercept float64) ([]float64, error) {
	return regression.Residuals(xs, ys, slope, intercept)
}

// LeverageDelta returns 1 − (residualWith/residualWithout)².
//
// Returns errs.ErrDivisionByZero when residualWithout is zero.
func LeverageDelta(residualWith, residualWithout float64) (float64, error) {
	return regression.LeverageDelta(residualWith, residualWithout)
}

// Mean returns the arithmetic mean of xs, or errs.ErrEmptyInput for an empty slice.
func Mean(xs []float64) (float64, error) {
	return regression.Mean(xs)
}

// LeaveOneOut fits the sample without point i.
func LeaveOneOut(xs, ys []float64, i int) (*regression.Model, error) {
	s, err := regression.NewSample(xs, ys)
	if err != nil {
		return nil, err
	}

	return regression.LeaveOneOut(s, i)
}

// LoadDataset reads a JSON dataset. By default the first 10 records are kept
// with dewPoint as x and humidity as y.
func LoadDataset(path string, opts ...dataset.Option) (*dataset.Dataset, error) {
	return dataset.Load(path, opts...)
}

// StartDrag begins a drag session on point index of sample.
func StartDrag(sample regression.Sample, index int, opts ...interact.Option) (*interact.Session, *interact.Frame, error) {
	return interact.Start(sample, index, opts...)
}

// ComputeScene fits sample and lays it out on a width×height chart with the
// default margins.
func ComputeScene(sample regression.Sample, width, height float64) (*scene.State, error) {
	dims, err := scene.NewDimensions(width, height)
	if err != nil {
		return nil, err
	}

	model, err := regression.FitSample(sample)
	if err != nil {
		return nil, err
	}

	return scene.Compute(sample, model, dims)
}

// Fingerprint returns the xxHash64 of the coordinates. Equal samples share a
// fingerprint.
func Fingerprint(xs, ys []float64) uint64 {
	return hash.Floats(xs, ys)
}
