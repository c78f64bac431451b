// Package densemat is a small in-memory library for dense, row-major
// matrices over any numeric element type.
//
// What is densemat?
//
//	A pure-Go, generics-based matrix container that brings together:
//		• One container, many element kinds: ints, floats, complex — Matrix[T]
//		• Construction: zero-filled New, move-in FromRows, validated FromRowsStrict
//		• In-place transpose and row slicing by arbitrary index sequences
//		• Algebra: Add/Sub/Mul, matrix–vector, scalar and Hadamard products
//		• Sentinel errors matched via errors.Is — no panics on bad shapes
//
// Everything is organized under a single subpackage:
//
//	matrix/ — the Matrix[T] container and its operation surface
//
// Quick example:
//
//	m := matrix.FromRows([][]int{{2, 1}, {-1, 1}})
//	m.Transpose()
//
//	go get github.com/akarpovskii/densemat/matrix
package densemat
