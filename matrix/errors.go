// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Sentinels are returned plain from
// validators; operation facades wrap them once via opErrorf so callers
// still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or cols). The 0×0 empty matrix is valid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At, Row, Slice) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows is returned by FromRowsStrict when the supplied rows
	// do not all share the length of the first row.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil *Matrix operand was passed to a
	// package-level operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Call only with err != nil.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
