// Package matrix: construction, element access and raw conversion for
// the dense Matrix container. Operations live in ops.go, transpose.go
// and slice.go.

package matrix

import (
	"fmt"
	"strings"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAt       = "At"
	opRow      = "Row"
	opSlice    = "Slice"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opScale    = "Scale"
	opHadamard = "Hadamard"
)

// New creates a rows×cols Matrix with every element set to T's zero value.
// Stage 1 (Validate): reject negative dimensions; zero is allowed, and
// New(0, 0) yields the valid empty matrix.
// Stage 2 (Prepare): allocate the row-major backing storage.
// Stage 3 (Finalize): return the new Matrix or ErrBadShape.
// Complexity: O(rows·cols) time and memory.
func New[T Numeric](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	// Allocate and return
	return zeroed[T](rows, cols), nil
}

// FromRows builds a Matrix by adopting the supplied rows directly — the
// slices are moved in, not copied, and the caller must not use them
// afterwards. An empty outer slice yields the 0×0 empty matrix;
// otherwise cols is taken from the first row.
//
// FromRows performs NO rectangularity validation: supplying rows of
// uneven length silently violates the container invariant. That is a
// documented caller obligation; use FromRowsStrict when the input is
// not already trusted.
// Complexity: O(1) — no element is touched.
func FromRows[T Numeric](rows [][]T) *Matrix[T] {
	// Empty input maps to the canonical empty matrix.
	if len(rows) == 0 {
		return &Matrix[T]{data: [][]T{}}
	}

	// Adopt the storage as-is; cols comes from the first row.
	return &Matrix[T]{rows: len(rows), cols: len(rows[0]), data: rows}
}

// FromRowsStrict is the validated counterpart of FromRows: it adopts the
// supplied rows only after confirming every row matches the length of
// the first, returning ErrRaggedRows otherwise.
// Complexity: O(rows) time (length checks only), O(1) memory.
func FromRowsStrict[T Numeric](rows [][]T) (*Matrix[T], error) {
	// Verify rectangularity against the first row.
	if len(rows) > 0 {
		want := len(rows[0])
		for i := 1; i < len(rows); i++ {
			if len(rows[i]) != want {
				return nil, fmt.Errorf("FromRowsStrict: row %d: %w", i, ErrRaggedRows)
			}
		}
	}

	return FromRows(rows), nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols // return stored column count
}

// At retrieves the element at (i, j).
// Stage 1 (Validate): bounds check via checkIndex.
// Stage 2 (Execute): read from the backing storage.
// Returns ErrOutOfRange (wrapped) when either coordinate is invalid.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	// Validate coordinates or fail with the sentinel.
	if err := m.checkIndex(i, j); err != nil {
		var zero T
		return zero, opErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, err))
	}

	// Return stored value
	return m.data[i][j], nil
}

// Row returns a copy of row i. The returned slice is independent of the
// matrix storage.
// Returns ErrOutOfRange (wrapped) when i is invalid.
// Complexity: O(cols) time and memory.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	// Validate the row index.
	if err := m.checkRow(i); err != nil {
		return nil, opErrorf(opRow, fmt.Errorf("(%d): %w", i, err))
	}

	// Copy the row out.
	out := make([]T, m.cols)
	copy(out, m.data[i])

	return out, nil
}

// Clone returns a deep copy of the matrix; the copy owns fresh storage.
// Complexity: O(rows·cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([][]T, m.rows)
	for i, row := range m.data {
		// copy each row into freshly allocated storage
		data[i] = make([]T, len(row))
		copy(data[i], row)
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether m and other have the same shape and identical
// elements. A nil other is never equal.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i][j] != other.data[i][j] {
				return false
			}
		}
	}

	return true
}

// ToRows consumes the matrix: it hands back the row-major backing
// storage without copying and resets the receiver to the 0×0 empty
// matrix, so the ownership transfer is explicit and observable.
// Complexity: O(1).
func (m *Matrix[T]) ToRows() [][]T {
	out := m.data
	m.rows, m.cols, m.data = 0, 0, [][]T{}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Each row renders as "[a, b, c]" on its own line.
// Complexity: O(rows·cols) for string construction.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		sb.WriteByte('[') // open row
		for j = 0; j < m.cols; j++ { // iterate over columns
			fmt.Fprintf(&sb, "%v", m.data[i][j])
			if j < m.cols-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
