package scene

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/olsdiag/errs"
)

// DefaultTickCount is the tick count Nice aims for.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// LinearScale maps a continuous data domain onto a pixel range.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns the scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// NewLinearScale returns a scale whose domain is the extent of values,
// extended to round tick boundaries, mapped onto [r0, r1].
func NewLinearScale(values []float64, r0, r1 float64) (LinearScale, error) {
	if len(values) == 0 {
		return LinearScale{}, fmt.Errorf("scale extent: %w", errs.ErrEmptyInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return LinearScale{}, fmt.Errorf("scale extent: value %d is %g: %w", i, v, errs.ErrNonFiniteValue)
		}
	}

	return NewLinear(floats.Min(values), floats.Max(values), r0, r1).Nice(DefaultTickCount), nil
}

// Domain returns the data interval.
func (s LinearScale) Domain() (float64, float64) {
	return s.d0, s.d1
}

// Range returns the pixel interval.
func (s LinearScale) Range() (float64, float64) {
	return s.r0, s.r1
}

// Map converts a data value to pixels. Values outside the domain are
// extrapolated. A zero-width domain maps everything to the range midpoint.
func (s LinearScale) Map(v float64) float64 {
	return interpolate(s.r0, s.r1, normalize(s.d0, s.d1, v))
}

// Invert converts pixels back to a data value.
func (s LinearScale) Invert(px float64) float64 {
	return interpolate(s.d0, s.d1, normalize(s.r0, s.r1, px))
}

// Nice extends the domain so both ends fall on multiples of a tick step
// chosen for roughly count ticks. The direction of the domain is kept; a
// zero-width domain is returned unchanged.
func (s LinearScale) Nice(count int) LinearScale {
	start, stop := s.d0, s.d1
	reversed := stop < start
	if reversed {
		start, stop = stop, start
	}
	if start == stop || count <= 0 {
		return s
	}

	var prestep float64
	for range 10 {
		step := tickIncrement(start, stop, count)
		if step == prestep {
			break
		}

		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return s
		}
		prestep = step
	}

	if reversed {
		start, stop = stop, start
	}
	s.d0, s.d1 = start, stop

	return s
}

// MarshalJSON encodes the scale as its domain and range.
func (s LinearScale) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Domain [2]float64 `json:"domain"`
		Range  [2]float64 `json:"range"`
	}{
		Domain: [2]float64{s.d0, s.d1},
		Range:  [2]float64{s.r0, s.r1},
	})
}

// tickIncrement returns the tick step for [start, stop]. A positive result is
// the step itself; a negative result -k means a step of 1/k, which keeps
// decimal steps exact.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}

	return -math.Pow(10, -power) / factor
}

func normalize(a, b, v float64) float64 {
	if b == a {
		return 0.5
	}

	return (v - a) / (b - a)
}

func interpolate(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
