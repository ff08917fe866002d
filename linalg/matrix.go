package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsdiag/errs"
)

// Transpose returns a newly allocated copy of mᵗ.
func Transpose(m mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(m.T())
}

// Multiply returns the matrix product a·b.
//
// Returns errs.ErrDimensionMismatch if the column count of a differs from the
// row count of b, and errs.ErrEmptyInput if either operand is zero-sized.
func Multiply(a, b mat.Matrix) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar == 0 || ac == 0 || br == 0 || bc == 0 {
		return nil, fmt.Errorf("multiply %dx%d by %dx%d: %w", ar, ac, br, bc, errs.ErrEmptyInput)
	}
	if ac != br {
		return nil, fmt.Errorf("multiply %dx%d by %dx%d: %w", ar, ac, br, bc, errs.ErrDimensionMismatch)
	}

	var out mat.Dense
	out.Mul(a, b)

	return &out, nil
}

// Invert returns m⁻¹ for a square matrix m.
//
// Returns errs.ErrDimensionMismatch for non-square input and
// errs.ErrSingularMatrix when m is singular or near-singular. In the singular
// case the returned error also wraps the mat.Condition reported by gonum.
func Invert(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("invert %dx%d: %w", r, c, errs.ErrEmptyInput)
	}
	if r != c {
		return nil, fmt.Errorf("invert %dx%d: not square: %w", r, c, errs.ErrDimensionMismatch)
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("invert %dx%d: %w: %w", r, c, errs.ErrSingularMatrix, cond)
		}

		return nil, fmt.Errorf("invert %dx%d: %w", r, c, err)
	}

	return &inv, nil
}

// FromRows builds a dense matrix from row slices. The input is copied.
//
// Returns errs.ErrEmptyInput for no rows or empty rows and
// errs.ErrDimensionMismatch for ragged rows.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("from rows: %w", errs.ErrEmptyInput)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("from rows: row %d has %d columns, want %d: %w", i, len(row), cols, errs.ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}

// ToRows copies m into a freshly allocated slice of rows.
func ToRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range r {
		row := make([]float64, c)
		for j := range c {
			row[j] = m.At(i, j)
		}
		rows[i] = row
	}

	return rows
}

// Diagonal returns the main diagonal of m.
func Diagonal(m mat.Matrix) []float64 {
	r, c := m.Dims()
	n := min(r, c)
	diag := make([]float64, n)
	for i := range n {
		diag[i] = m.At(i, i)
	}

	return diag
}
