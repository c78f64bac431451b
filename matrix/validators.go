// SPDX-License-Identifier: MIT
// Package matrix: single, canonical source of truth for common guards.
// Validators return plain sentinels (no wrapping) so call sites can wrap
// uniformly with opErrorf. Each validator states what it checks and what
// it assumes; composite checks follow a fixed sequence (nil → shape).

package matrix

// validateNotNil ensures both operands of a binary operation are non-nil.
// Returns ErrNilMatrix on violation.
// Complexity: O(1).
func validateNotNil[T Numeric](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes non-nil operands (caller must run validateNotNil first).
// Returns ErrDimensionMismatch on violation.
// Complexity: O(1).
func validateSameShape[T Numeric](a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible ensures the inner dimensions agree (a.cols == b.rows).
// Assumes non-nil operands.
// Returns ErrDimensionMismatch on violation.
// Complexity: O(1).
func validateMulCompatible[T Numeric](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// checkIndex validates 0 ≤ i < rows and 0 ≤ j < cols.
// Returns ErrOutOfRange on violation.
// Complexity: O(1).
func (m *Matrix[T]) checkIndex(i, j int) error {
	if i < 0 || i >= m.rows {
		return ErrOutOfRange
	}
	if j < 0 || j >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// checkRow validates 0 ≤ i < rows.
// Returns ErrOutOfRange on violation.
// Complexity: O(1).
func (m *Matrix[T]) checkRow(i int) error {
	if i < 0 || i >= m.rows {
		return ErrOutOfRange
	}

	return nil
}
