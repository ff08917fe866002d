package regression

// Estimator predicts y for a given x.
//
// *Model implements Estimator. The scene package draws regression lines from
// any Estimator, so callers can plug in a fixed line without fitting.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x float64) float64
	// Coefficients returns the model coefficients [intercept, slope].
	Coefficients() []float64
}

// Line is an Estimator for a fixed line y = Intercept + Slope·x.
type Line struct {
	Slope     float64
	Intercept float64
}

var _ Estimator = Line{}

// NewLine creates a fixed-line estimator.
func NewLine(slope, intercept float64) Line {
	return Line{Slope: slope, Intercept: intercept}
}

// Estimate returns Intercept + Slope·x.
func (l Line) Estimate(x float64) float64 {
	return float64(l.Slope*x) + l.Intercept
}

// Coefficients returns [intercept, slope].
func (l Line) Coefficients() []float64 {
	return []float64{l.Intercept, l.Slope}
}
