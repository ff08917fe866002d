package regression

import (
	"fmt"

	"github.com/arloliu/olsdiag/errs"
)

// Sample is an ordered sequence of (x, y) observations.
//
// The index of a point is its stable identity across recomputation: a drag
// replaces the coordinates of index i, a leave-one-out fit removes index i.
// Methods never modify the receiver; derived samples own fresh slices.
type Sample struct {
	X []float64
	Y []float64
}

// NewSample copies xs and ys into a new Sample.
//
// Returns errs.ErrDimensionMismatch if the slices differ in length.
func NewSample(xs, ys []float64) (Sample, error) {
	s := Sample{X: xs, Y: ys}
	if err := s.Validate(); err != nil {
		return Sample{}, err
	}

	return s.Clone(), nil
}

// Len returns the number of observations.
func (s Sample) Len() int {
	return len(s.X)
}

// Validate checks that X and Y have the same length.
func (s Sample) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("sample has %d x values and %d y values: %w", len(s.X), len(s.Y), errs.ErrDimensionMismatch)
	}

	return nil
}

// Clone returns a deep copy of the sample.
func (s Sample) Clone() Sample {
	return Sample{
		X: append([]float64(nil), s.X...),
		Y: append([]float64(nil), s.Y...),
	}
}

// Point returns the coordinates of observation i.
func (s Sample) Point(i int) (x, y float64, err error) {
	if err := s.checkIndex(i); err != nil {
		return 0, 0, err
	}

	return s.X[i], s.Y[i], nil
}

// WithPoint returns a copy of the sample with observation i moved to (x, y).
func (s Sample) WithPoint(i int, x, y float64) (Sample, error) {
	if err := s.checkIndex(i); err != nil {
		return Sample{}, err
	}

	out := s.Clone()
	out.X[i] = x
	out.Y[i] = y

	return out, nil
}

// Without returns a copy of the sample with observation i removed.
func (s Sample) Without(i int) (Sample, error) {
	if err := s.checkIndex(i); err != nil {
		return Sample{}, err
	}

	n := s.Len()
	out := Sample{
		X: make([]float64, 0, n-1),
		Y: make([]float64, 0, n-1),
	}
	out.X = append(append(out.X, s.X[:i]...), s.X[i+1:]...)
	out.Y = append(append(out.Y, s.Y[:i]...), s.Y[i+1:]...)

	return out, nil
}

func (s Sample) checkIndex(i int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("point %d of %d: %w", i, s.Len(), errs.ErrIndexOutOfRange)
	}

	return nil
}
