package scene

import (
	"fmt"

	"github.com/arloliu/olsdiag/errs"
	"github.com/arloliu/olsdiag/interact"
	"github.com/arloliu/olsdiag/regression"
)

// Info panel layout.
const (
	InfoX          = 10
	InfoY          = 10
	InfoLineHeight = 15
)

// Overlay is the view of one drag frame drawn on top of a State.
//
// The scales of the State are kept: the dragged point may leave the plotting
// area but the axes do not move.
type Overlay struct {
	Index int `json:"index"`
	// Point is the dragged point at its current position, coloured by its
	// current hat diagonal.
	Point Point   `json:"point"`
	XMean float64 `json:"xMean"`
	// MeanLine and RegressionLine replace the static ones while dragging.
	MeanLine       Segment `json:"meanLine"`
	RegressionLine Segment `json:"regressionLine"`
	// PivotLine is the fit without the dragged point.
	PivotLine Segment `json:"pivotLine"`
	// Gap joins the two regression lines at the dragged x.
	Gap      Segment    `json:"gap"`
	GapLabel Label      `json:"gapLabel"`
	Residual Annotation `json:"residual"`
	Deviance Annotation `json:"deviance"`
	// Info holds the diagnostic text lines, top to bottom.
	Info []Label `json:"info"`
}

// ComputeFrame lays out frame over state. Returns errs.ErrIndexOutOfRange
// when the frame drags a point that state does not have.
func ComputeFrame(state *State, frame *interact.Frame) (*Overlay, error) {
	if state == nil || frame == nil {
		return nil, fmt.Errorf("compute frame: %w", errs.ErrEmptyInput)
	}
	if frame.Index < 0 || frame.Index >= len(state.Points) {
		return nil, fmt.Errorf("compute frame: point %d of %d: %w", frame.Index, len(state.Points), errs.ErrIndexOutOfRange)
	}

	xs, ys := state.XScale, state.YScale
	cx := xs.Map(frame.X)
	yHat, yHatPivot := ys.Map(frame.YHat), ys.Map(frame.YHatPivot)

	o := &Overlay{
		Index:          frame.Index,
		Point:          newPoint(xs, ys, frame.Index, frame.X, frame.Y, frame.HatDiagonal),
		XMean:          frame.XMean,
		MeanLine:       meanLine(xs, ys, frame.XMean),
		RegressionLine: regressionLine(xs, ys, frame.Model),
		PivotLine:      regressionLine(xs, ys, frame.Pivot),
		Gap:            Segment{X1: cx, Y1: yHatPivot, X2: cx, Y2: yHat},
		GapLabel: Label{
			X:    cx + LabelOffset,
			Y:    midpoint(yHat, yHatPivot),
			Text: FormatDistance(frame.RegressionGap),
		},
		Residual: residualAnnotation(xs, ys, frame.Index, frame.X, frame.Y, frame.Model),
		Deviance: devianceAnnotation(xs, ys, frame.Index, frame.X, frame.Y, frame.XMean),
	}

	for i, text := range InfoLines(frame) {
		o.Info = append(o.Info, Label{X: InfoX, Y: InfoY + float64(i*InfoLineHeight), Text: text})
	}

	return o, nil
}

// ReferenceLine draws e across the x domain of state, on the same scales as
// the regression line. Use it to compare the fit against a fixed line such as
// regression.NewLine(slope, intercept).
func ReferenceLine(state *State, e regression.Estimator) (Segment, error) {
	if state == nil || e == nil {
		return Segment{}, fmt.Errorf("reference line: %w", errs.ErrEmptyInput)
	}

	return regressionLine(state.XScale, state.YScale, e), nil
}

// InfoLines returns the diagnostic text of a frame.
func InfoLines(frame *interact.Frame) []string {
	with := FormatDistance(frame.ResidualWith)
	without := FormatDistance(frame.ResidualWithout)

	return []string{
		"Residual with selected data: " + with,
		"Residual without selected data: " + without,
		fmt.Sprintf("1 - (%s/%s): %s", with, without, FormatDistance(frame.LeverageDelta)),
		"Hat matrix diagonal: " + FormatDistance(frame.HatDiagonal),
		"Slope relative change: " + FormatDistance(frame.SlopeRelativeChange),
	}
}
