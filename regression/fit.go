package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsdiag/errs"
	"github.com/arloliu/olsdiag/linalg"
)

// Fit fits y = intercept + slope·x by ordinary least squares.
//
// The coefficients are the normal-equations solution β = (XᵗX)⁻¹Xᵗy over the
// design matrix X = [1 | xs]. The hat matrix H = X(XᵗX)⁻¹Xᵗ is computed from
// the same inverse.
//
// Parameters:
//   - xs: Independent variable, one value per observation
//   - ys: Dependent variable, same length as xs
//
// Returns:
//   - *Model: Fitted slope, intercept and N×N hat matrix
//   - error: errs.ErrDimensionMismatch if len(xs) != len(ys);
//     errs.ErrSingularMatrix if there are fewer than two points, all x values
//     are equal, or XᵗX is numerically singular; errs.ErrNonFiniteValue if any
//     coordinate is NaN or ±Inf
//
// The design is not centred, so x values that sit far from zero relative to
// their spread (e.g. 1e5, 1e5+1, ...) make XᵗX ill-conditioned. When its
// condition number exceeds mat.ConditionTolerance the fit fails with
// errs.ErrSingularMatrix even though the x values are distinct; subtract an
// offset from xs first if that matters.
//
// Cost is O(N²) in time and memory because of the hat matrix; do not call it
// on large samples.
func Fit(xs, ys []float64) (*Model, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, fmt.Errorf("fit %d x values and %d y values: %w", n, len(ys), errs.ErrDimensionMismatch)
	}
	if n < 2 {
		return nil, fmt.Errorf("fit needs at least 2 points, got %d: %w", n, errs.ErrSingularMatrix)
	}
	if i, ok := firstNonFinite(xs, ys); ok {
		return nil, fmt.Errorf("fit: point %d is (%g, %g): %w", i, xs[i], ys[i], errs.ErrNonFiniteValue)
	}
	if allEqual(xs) {
		return nil, fmt.Errorf("fit: all %d x values equal %g: %w", n, xs[0], errs.ErrSingularMatrix)
	}

	x, release := designMatrix(xs)
	defer release()
	xt := linalg.Transpose(x)

	xtx, err := linalg.Multiply(xt, x)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	xtxInv, err := linalg.Invert(xtx)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	// (XᵗX)⁻¹Xᵗ is shared by β and H.
	pinv, err := linalg.Multiply(xtxInv, xt)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	y := mat.NewDense(n, 1, append([]float64(nil), ys...))
	beta, err := linalg.Multiply(pinv, y)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	hat, err := linalg.Multiply(x, pinv)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	return &Model{
		Slope:     beta.At(1, 0),
		Intercept: beta.At(0, 0),
		Hat:       linalg.ToRows(hat),
	}, nil
}

// FitSample fits the sample s. See Fit.
func FitSample(s Sample) (*Model, error) {
	return Fit(s.X, s.Y)
}

// LeaveOneOut fits the sample without observation i.
//
// The returned model has N-1 rows in its hat matrix. Returns
// errs.ErrIndexOutOfRange for an invalid index and any error of Fit for the
// reduced sample, e.g. errs.ErrSingularMatrix when removing i leaves a single
// distinct x value.
func LeaveOneOut(s Sample, i int) (*Model, error) {
	reduced, err := s.Without(i)
	if err != nil {
		return nil, fmt.Errorf("leave-one-out: %w", err)
	}

	m, err := FitSample(reduced)
	if err != nil {
		return nil, fmt.Errorf("leave-one-out without point %d: %w", i, err)
	}

	return m, nil
}
