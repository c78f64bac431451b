// SPDX-License-Identifier: MIT

// Package matrix: domain types for the dense container.
// This file intentionally contains ONLY the element constraint and the
// Matrix type itself. Errors live in errors.go, shared guards in
// validators.go, kernels in ops.go, per the package conventions.
package matrix

// Numeric is the element capability set required by the container:
// copyable, zero-valued by default, and closed under + and *.
// The ~ forms admit named types whose underlying type is numeric.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Matrix is a dense, row-major matrix of Numeric elements.
// data holds exactly rows slices of cols elements each; a Matrix with
// rows == 0 && cols == 0 is the valid empty matrix.
//
// A Matrix exclusively owns its backing storage: no two matrices alias
// the same rows. Constructors that "move" storage in (FromRows) or out
// (ToRows) transfer that ownership; every other operation deep-copies.
//
// Complexity notes: accessors are O(1); Clone, Transpose and the binary
// operations are O(rows·cols) or worse as documented per method.
type Matrix[T Numeric] struct {
	rows, cols int   // dimensions; invariant: len(data) == rows
	data       [][]T // row-major backing storage, each row of length cols
}

// zeroed allocates a rows×cols matrix of T's zero value.
// Callers must pass non-negative dimensions; New validates for the public path.
// Complexity: O(rows·cols) time and memory.
func zeroed[T Numeric](rows, cols int) *Matrix[T] {
	data := make([][]T, rows)
	for i := range data {
		data[i] = make([]T, cols)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}
}
