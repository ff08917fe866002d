// Package errs defines the sentinel errors shared by all olsdiag packages.
//
// Callers match them with errors.Is. Packages add context by wrapping:
//
//	return nil, fmt.Errorf("invert %dx%d: %w", r, c, errs.ErrSingularMatrix)
package errs

import "errors"

var (
	// ErrDimensionMismatch indicates operand shapes are incompatible, e.g. a
	// matrix product whose inner dimensions differ or x/y slices of unequal length.
	ErrDimensionMismatch = errors.New("olsdiag: dimension mismatch")

	// ErrSingularMatrix indicates a matrix that cannot be inverted, or whose
	// condition number exceeds mat.ConditionTolerance. For an OLS fit this
	// means constant x values, fewer than two points, or x values so far from
	// zero relative to their spread that the uncentred XᵗX is ill-conditioned.
	ErrSingularMatrix = errors.New("olsdiag: singular matrix")

	// ErrDivisionByZero indicates a zero denominator, e.g. a leverage delta
	// whose leave-one-out residual is exactly zero.
	ErrDivisionByZero = errors.New("olsdiag: division by zero")

	// ErrNonFiniteValue indicates a NaN or ±Inf coordinate where finite values are required.
	ErrNonFiniteValue = errors.New("olsdiag: non-finite value")

	// ErrInvalidDimensions indicates a chart size that leaves no drawable area inside the margins.
	ErrInvalidDimensions = errors.New("olsdiag: invalid chart dimensions")

	// ErrEmptyInput indicates an operation that is undefined on empty input.
	ErrEmptyInput = errors.New("olsdiag: empty input")

	// ErrIndexOutOfRange indicates a point index outside the sample.
	ErrIndexOutOfRange = errors.New("olsdiag: index out of range")

	// ErrSessionClosed is returned by a drag session after End was called.
	ErrSessionClosed = errors.New("olsdiag: drag session closed")

	// ErrInvalidDataset indicates a dataset file that could not be turned into a sample.
	ErrInvalidDataset = errors.New("olsdiag: invalid dataset")

	// ErrDecodedTooLarge indicates compressed input that expands past the
	// decoded size limit.
	ErrDecodedTooLarge = errors.New("olsdiag: decoded data too large")

	// ErrUnsupportedCompression indicates an unknown compression type.
	ErrUnsupportedCompression = errors.New("olsdiag: unsupported compression")
)
