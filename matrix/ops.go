// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over the dense container —
// element-wise addition and subtraction, matrix multiplication,
// matrix–vector product, scalar scaling and the Hadamard product.
// All kernels perform strict fail-fast validation through the central
// validators and wrap sentinels once with the operation tag.

package matrix

// addSub computes element-wise out = a ± b into a fresh matrix.
// Internal helper so Add and Sub share validation, allocation and the
// accumulation loop; sub selects the sign. Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix          (nil operand)
//   - ErrDimensionMismatch  (shape mismatch)
//
// Complexity: O(rows·cols) time, O(rows·cols) memory for the result.
func addSub[T Numeric](a, b *Matrix[T], sub bool, tag string) (*Matrix[T], error) {
	// Validate operands: nil first, then shape.
	if err := validateNotNil(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}

	// Copy the left operand, then accumulate the right into it.
	out := a.Clone()
	var i, j int // loop iterators (deterministic i→j order)
	for i = 0; i < out.rows; i++ {
		for j = 0; j < out.cols; j++ {
			if sub {
				out.data[i][j] -= b.data[i][j]
			} else {
				out.data[i][j] += b.data[i][j]
			}
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh matrix.
// Both operands are left unchanged; the result is a copy of A with each
// element incremented by the corresponding element of B.
//
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
// Complexity: O(rows·cols) time and memory.
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh
// matrix. Note that subtraction on unsigned element types wraps, per Go
// arithmetic.
//
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
// Complexity: O(rows·cols) time and memory.
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// AddInPlace accumulates b into the receiver element by element, with no
// result allocation. It is the consuming counterpart of Add: for equal
// inputs, m.AddInPlace(b) leaves m observably identical to Add(m, b).
//
// Errors: ErrNilMatrix (nil argument), ErrDimensionMismatch (shape mismatch);
// on error the receiver is untouched.
// Complexity: O(rows·cols) time, O(1) memory.
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	// Validate before any element is written.
	if err := validateNotNil(m, b); err != nil {
		return opErrorf(opAdd, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return opErrorf(opAdd, err)
	}

	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			m.data[i][j] += b.data[i][j]
		}
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate operands (non-nil, a.Cols == b.Rows).
//   - Stage 2: allocate C with shape a.Rows × b.Cols.
//   - Stage 3: canonical i→j→k triple loop; each entry is the dot
//     product of row i of A and column j of B, accumulated from T's
//     zero value.
//
// This is the naive O(n³) kernel on purpose; blocked, Strassen-style or
// SIMD variants are a known improvement area, not a correctness gap.
//
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch).
// Complexity: O(a.Rows·a.Cols·b.Cols) time, O(a.Rows·b.Cols) memory.
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	// Validate operands via canonical validators.
	if err := validateNotNil(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Allocate the result with the outer dimensions.
	out := zeroed[T](a.rows, b.cols)

	var (
		i, j, k int // loop iterators (deterministic i→j→k order)
		acc     T   // dot-product accumulator, seeded with the zero value
	)
	for i = 0; i < a.rows; i++ {
		for j = 0; j < b.cols; j++ {
			acc = 0
			for k = 0; k < a.cols; k++ {
				acc += a.data[i][k] * b.data[k][j] // accumulate product
			}
			out.data[i][j] = acc
		}
	}

	return out, nil
}

// MulVec computes the matrix–vector product y = M·x, returning a fresh
// vector of length m.Rows.
//
// Errors: ErrDimensionMismatch when len(x) != m.Cols (a nil x only
// matches a zero-column matrix).
// Complexity: O(rows·cols) time, O(rows) memory.
func MulVec[T Numeric](m *Matrix[T], x []T) ([]T, error) {
	if m == nil {
		return nil, opErrorf(opMulVec, ErrNilMatrix)
	}
	// The vector must match the column count exactly.
	if len(x) != m.cols {
		return nil, opErrorf(opMulVec, ErrDimensionMismatch)
	}

	out := make([]T, m.rows)
	var i, j int
	var acc T
	for i = 0; i < m.rows; i++ {
		acc = 0
		for j = 0; j < m.cols; j++ {
			acc += m.data[i][j] * x[j]
		}
		out[i] = acc
	}

	return out, nil
}

// Scale returns a fresh matrix with every element of m multiplied by k.
// The operand is left unchanged.
//
// Errors: ErrNilMatrix (nil operand).
// Complexity: O(rows·cols) time and memory.
func Scale[T Numeric](m *Matrix[T], k T) (*Matrix[T], error) {
	if m == nil {
		return nil, opErrorf(opScale, ErrNilMatrix)
	}

	out := m.Clone()
	var i, j int
	for i = 0; i < out.rows; i++ {
		for j = 0; j < out.cols; j++ {
			out.data[i][j] *= k
		}
	}

	return out, nil
}

// Hadamard computes the element-wise (Schur) product C[i,j] = A[i,j]·B[i,j]
// and returns a fresh matrix. Operands must share a shape and are left
// unchanged.
//
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
// Complexity: O(rows·cols) time and memory.
func Hadamard[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}

	out := a.Clone()
	var i, j int
	for i = 0; i < out.rows; i++ {
		for j = 0; j < out.cols; j++ {
			out.data[i][j] *= b.data[i][j]
		}
	}

	return out, nil
}
