// Package linalg provides the dense matrix primitives used by the OLS engine:
// transpose, product and inverse, plus conversions between gonum matrices and
// row slices.
//
// All operations are built on gonum.org/v1/gonum/mat. Unlike the raw gonum
// API, which panics on shape errors, every fallible function here validates
// its operands first and returns a sentinel from the errs package:
//
//   - errs.ErrDimensionMismatch: incompatible or non-square operands, ragged rows
//   - errs.ErrEmptyInput: zero-sized operands
//   - errs.ErrSingularMatrix: non-invertible input
//
// # Near-singular input
//
// Invert fails fast. The inverse is computed from an LU factorization and the
// reciprocal condition number is estimated from the same factorization. When
// the matrix is exactly singular, or its condition number exceeds
// mat.ConditionTolerance, Invert returns no matrix and an error that matches
// both errs.ErrSingularMatrix and the underlying mat.Condition value.
package linalg
