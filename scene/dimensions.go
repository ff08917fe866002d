package scene

import (
	"fmt"
	"math"

	"github.com/arloliu/olsdiag/errs"
)

// ViewportFraction is the share of the smaller viewport side used by SquareDimensions.
const ViewportFraction = 0.9

// Margin is the space between the chart border and the plotting area, in pixels.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// DefaultMargin leaves room for the axes at the bottom and on the left.
func DefaultMargin() Margin {
	return Margin{Top: 10, Right: 10, Bottom: 50, Left: 50}
}

// Dimensions describes the chart size and the bounded plotting area.
type Dimensions struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Margin        Margin  `json:"margin"`
	BoundedWidth  float64 `json:"boundedWidth"`
	BoundedHeight float64 `json:"boundedHeight"`
}

// NewDimensions returns the dimensions of a width×height chart with DefaultMargin.
func NewDimensions(width, height float64) (Dimensions, error) {
	return NewDimensionsWithMargin(width, height, DefaultMargin())
}

// NewDimensionsWithMargin returns the dimensions of a width×height chart.
//
// Returns errs.ErrInvalidDimensions when the margins leave no drawable area or
// any value is not finite.
func NewDimensionsWithMargin(width, height float64, m Margin) (Dimensions, error) {
	for _, v := range []float64{width, height, m.Top, m.Right, m.Bottom, m.Left} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Dimensions{}, fmt.Errorf("chart %gx%g: %w", width, height, errs.ErrInvalidDimensions)
		}
	}

	d := Dimensions{
		Width:         width,
		Height:        height,
		Margin:        m,
		BoundedWidth:  width - m.Left - m.Right,
		BoundedHeight: height - m.Top - m.Bottom,
	}
	if d.BoundedWidth <= 0 || d.BoundedHeight <= 0 {
		return Dimensions{}, fmt.Errorf("chart %gx%g leaves %gx%g inside the margins: %w",
			width, height, d.BoundedWidth, d.BoundedHeight, errs.ErrInvalidDimensions)
	}

	return d, nil
}

// SquareDimensions returns a square chart whose side is ViewportFraction of
// the smaller viewport side.
func SquareDimensions(viewportWidth, viewportHeight float64) (Dimensions, error) {
	side := ViewportFraction * math.Min(viewportWidth, viewportHeight)
	return NewDimensions(side, side)
}
