package interact

import (
	"math"

	"github.com/arloliu/olsdiag/regression"
)

// Frame is the diagnostic state of one drag step.
//
// Frames are snapshots that own their data: editing a frame changes neither
// the session nor other frames. Model is refit for every frame; Pivot is a
// copy of the leave-one-out fit computed at drag start.
type Frame struct {
	// Index is the dragged point.
	Index int
	// X and Y are the dragged point's current coordinates.
	X, Y float64
	// Sample is the full sample with the dragged point at (X, Y).
	Sample regression.Sample
	// Model is the fit of Sample.
	Model *regression.Model
	// Pivot is the fit without the dragged point.
	Pivot *regression.Model
	// XMean is the mean of Sample.X.
	XMean float64
	// YHat and YHatPivot are the fitted values at X under Model and Pivot.
	YHat      float64
	YHatPivot float64
	// RegressionGap is YHatPivot − YHat, the vertical distance between the
	// two regression lines at X.
	RegressionGap float64
	// ResidualWith is the dragged point's residual under Model.
	ResidualWith float64
	// ResidualWithout is the dragged point's residual under Pivot.
	ResidualWithout float64
	// LeverageDelta is 1 − (ResidualWith/ResidualWithout)². It is NaN when
	// ResidualWithout is zero; LeverageDeltaErr then holds the reason.
	LeverageDelta    float64
	LeverageDeltaErr error
	// HatDiagonal is Model.Hat[Index][Index], the classical leverage.
	HatDiagonal float64
	// SlopeRelativeChange is (Pivot.Slope − Model.Slope) / Model.Slope. It
	// follows IEEE semantics (±Inf or NaN) when Model.Slope is zero.
	SlopeRelativeChange float64
	// Fingerprint identifies Sample; see hash.Floats.
	Fingerprint uint64
}

// newFrame computes a frame for sample s with point i dragged.
func newFrame(s regression.Sample, i int, model, pivot *regression.Model, fingerprint uint64) (*Frame, error) {
	x, y, err := s.Point(i)
	if err != nil {
		return nil, err
	}
	h, err := model.Leverage(i)
	if err != nil {
		return nil, err
	}
	xMean, err := regression.Mean(s.X)
	if err != nil {
		return nil, err
	}

	f := &Frame{
		Index:       i,
		X:           x,
		Y:           y,
		Sample:      s,
		Model:       model,
		Pivot:       pivot.Clone(),
		XMean:       xMean,
		YHat:        model.Estimate(x),
		YHatPivot:   pivot.Estimate(x),
		HatDiagonal: h,
		Fingerprint: fingerprint,
	}
	f.RegressionGap = f.YHatPivot - f.YHat
	f.ResidualWith = regression.Residual(x, y, model.Slope, model.Intercept)
	f.ResidualWithout = regression.Residual(x, y, pivot.Slope, pivot.Intercept)
	f.SlopeRelativeChange = (pivot.Slope - model.Slope) / model.Slope

	delta, err := regression.LeverageDelta(f.ResidualWith, f.ResidualWithout)
	if err != nil {
		f.LeverageDelta = math.NaN()
		f.LeverageDeltaErr = err
	} else {
		f.LeverageDelta = delta
	}

	return f, nil
}
