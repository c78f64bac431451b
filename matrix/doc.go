// Package matrix provides a generic dense, row-major matrix container
// and the linear-algebra operations that go with it.
//
// The matrix package provides:
//
//   - Matrix[T] — a value container parameterized over the Numeric
//     constraint (all integer, float and complex kinds), storing its
//     elements row by row.
//   - Constructors: New (zero-filled), FromRows (adopts caller storage
//     without copying), FromRowsStrict (rejects ragged input).
//   - In-place Transpose, row extraction via Slice/SliceRange, read-only
//     element access via At.
//   - Operations: Add, Sub, AddInPlace, Mul, MulVec, Scale, Hadamard —
//     all fail-fast with sentinel errors on shape violations.
//
// Dense storage is best when most cells carry meaningful values; memory
// is O(rows·cols) and multiplication is the canonical O(n³) kernel.
//
// See the examples in this package for usage patterns.
package matrix
