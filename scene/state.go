package scene

import (
	"fmt"

	"github.com/arloliu/olsdiag/errs"
	"github.com/arloliu/olsdiag/regression"
)

const (
	// PointRadius is the radius of a data point marker.
	PointRadius = 6
	// LabelOffset is the gap between a segment and its label.
	LabelOffset = 10
)

// Segment is a straight line between two pixel positions.
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Label is a piece of text anchored at a pixel position.
type Label struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Annotation is a segment with its distance label.
type Annotation struct {
	Index   int     `json:"index"`
	Segment Segment `json:"segment"`
	Label   Label   `json:"label"`
}

// Point is a data point marker.
type Point struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	R     float64 `json:"r"`
	// Leverage is the hat-matrix diagonal of the point; Fill is Reds(Leverage).
	Leverage float64 `json:"leverage"`
	Fill     string  `json:"fill"`
}

// State is the static view of a fitted sample.
//
// Residuals and Deviances are hidden until a point is dragged; they are
// computed up front so a renderer only has to toggle them.
type State struct {
	Dimensions Dimensions  `json:"dimensions"`
	XScale     LinearScale `json:"xScale"`
	YScale     LinearScale `json:"yScale"`
	XMean      float64     `json:"xMean"`
	Slope      float64     `json:"slope"`
	Intercept  float64     `json:"intercept"`

	Points []Point `json:"points"`
	// RegressionLine spans the x domain.
	RegressionLine Segment `json:"regressionLine"`
	// MeanLine is the vertical line at XMean spanning the y domain.
	MeanLine Segment `json:"meanLine"`
	// Residuals run vertically from each point to the regression line.
	Residuals []Annotation `json:"residuals"`
	// Deviances run horizontally from each point to the mean line.
	Deviances []Annotation `json:"deviances"`
}

// Compute lays out sample and its fit inside dims.
//
// The scales are niced extents of the sample. Returns errs.ErrDimensionMismatch
// when model was fit on a sample of a different size.
func Compute(sample regression.Sample, model *regression.Model, dims Dimensions) (*State, error) {
	if err := sample.Validate(); err != nil {
		return nil, fmt.Errorf("compute scene: %w", err)
	}
	if model == nil || model.N() != sample.Len() {
		return nil, fmt.Errorf("compute scene: model does not match a sample of %d points: %w",
			sample.Len(), errs.ErrDimensionMismatch)
	}

	xScale, err := NewLinearScale(sample.X, 0, dims.BoundedWidth)
	if err != nil {
		return nil, fmt.Errorf("compute scene: x scale: %w", err)
	}
	yScale, err := NewLinearScale(sample.Y, dims.BoundedHeight, 0)
	if err != nil {
		return nil, fmt.Errorf("compute scene: y scale: %w", err)
	}
	xMean, err := regression.Mean(sample.X)
	if err != nil {
		return nil, fmt.Errorf("compute scene: %w", err)
	}

	st := &State{
		Dimensions:     dims,
		XScale:         xScale,
		YScale:         yScale,
		XMean:          xMean,
		Slope:          model.Slope,
		Intercept:      model.Intercept,
		RegressionLine: regressionLine(xScale, yScale, model),
		MeanLine:       meanLine(xScale, yScale, xMean),
		Points:         make([]Point, sample.Len()),
		Residuals:      make([]Annotation, sample.Len()),
		Deviances:      make([]Annotation, sample.Len()),
	}

	for i := range sample.Len() {
		x, y := sample.X[i], sample.Y[i]
		st.Points[i] = newPoint(xScale, yScale, i, x, y, model.Hat[i][i])
		st.Residuals[i] = residualAnnotation(xScale, yScale, i, x, y, model)
		st.Deviances[i] = devianceAnnotation(xScale, yScale, i, x, y, xMean)
	}

	return st, nil
}

func newPoint(xs, ys LinearScale, i int, x, y, leverage float64) Point {
	return Point{
		Index:    i,
		X:        x,
		Y:        y,
		CX:       xs.Map(x),
		CY:       ys.Map(y),
		R:        PointRadius,
		Leverage: leverage,
		Fill:     Reds(leverage),
	}
}

// regressionLine draws e across the x domain.
func regressionLine(xs, ys LinearScale, e regression.Estimator) Segment {
	d0, d1 := xs.Domain()

	return Segment{
		X1: xs.Map(d0),
		Y1: ys.Map(e.Estimate(d0)),
		X2: xs.Map(d1),
		Y2: ys.Map(e.Estimate(d1)),
	}
}

func meanLine(xs, ys LinearScale, xMean float64) Segment {
	d0, d1 := ys.Domain()
	px := xs.Map(xMean)

	return Segment{X1: px, Y1: ys.Map(d0), X2: px, Y2: ys.Map(d1)}
}

// residualAnnotation labels the point with yHat - y, the distance the
// regression line sits above it.
func residualAnnotation(xs, ys LinearScale, i int, x, y float64, e regression.Estimator) Annotation {
	yHat := e.Estimate(x)
	cx, cy, hy := xs.Map(x), ys.Map(y), ys.Map(yHat)

	return Annotation{
		Index:   i,
		Segment: Segment{X1: cx, Y1: cy, X2: cx, Y2: hy},
		Label:   Label{X: cx + LabelOffset, Y: midpoint(cy, hy), Text: FormatDistance(yHat - y)},
	}
}

// devianceAnnotation labels the point with xMean - x.
func devianceAnnotation(xs, ys LinearScale, i int, x, y, xMean float64) Annotation {
	cx, cy, mx := xs.Map(x), ys.Map(y), xs.Map(xMean)

	return Annotation{
		Index:   i,
		Segment: Segment{X1: cx, Y1: cy, X2: mx, Y2: cy},
		Label:   Label{X: midpoint(cx, mx), Y: cy - LabelOffset, Text: FormatDistance(xMean - x)},
	}
}
