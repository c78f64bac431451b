// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Slice returns a new matrix whose rows are copies of the receiver's
// rows named by indices, in the order given. Indices may repeat and may
// be out of order; the output's row k equals the receiver's row
// indices[k]. The result is built through the FromRows path, so calling
// Slice with no indices yields the 0×0 empty matrix.
//
// Returns ErrOutOfRange (wrapped) if any index is not a valid row index;
// the receiver is never mutated.
// Complexity: O(len(indices)·cols) time and memory.
func (m *Matrix[T]) Slice(indices ...int) (*Matrix[T], error) {
	picked := make([][]T, 0, len(indices))
	for _, i := range indices {
		// Validate each requested row before copying.
		if err := m.checkRow(i); err != nil {
			return nil, opErrorf(opSlice, fmt.Errorf("row %d: %w", i, err))
		}
		// Append a full copy of the row to the accumulator.
		row := make([]T, m.cols)
		copy(row, m.data[i])
		picked = append(picked, row)
	}

	return FromRows(picked), nil
}

// SliceRange returns a copy of the contiguous row run [lo, hi) as a new
// matrix, delegating to Slice.
//
// Returns ErrOutOfRange (wrapped) if lo > hi or the run exceeds the
// matrix bounds.
// Complexity: O((hi-lo)·cols) time and memory.
func (m *Matrix[T]) SliceRange(lo, hi int) (*Matrix[T], error) {
	// Validate the run before materializing indices.
	if lo < 0 || hi < lo || hi > m.rows {
		return nil, opErrorf(opSlice, fmt.Errorf("range [%d,%d): %w", lo, hi, ErrOutOfRange))
	}

	indices := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		indices = append(indices, i)
	}

	return m.Slice(indices...)
}
