// SPDX-License-Identifier: MIT

package matrix

// Transpose mutates the matrix in place into its transpose.
//
// Implementation:
//   - Stage 1: allocate a fresh cols×rows buffer.
//   - Stage 2: copy data[j][i] into the new buffer at [i][j].
//   - Stage 3: swap the buffer in and exchange the dimension fields.
//
// The full reallocation is a deliberate simplicity choice: in-place
// transposition of non-square matrices is algorithmically harder and
// buys nothing for the expected sizes. No failure mode — the empty
// matrix transposes to itself.
// Complexity: O(rows·cols) time and O(rows·cols) additional space.
func (m *Matrix[T]) Transpose() {
	// Build the transposed buffer.
	data := make([][]T, m.cols)
	var i, j int
	for i = 0; i < m.cols; i++ {
		row := make([]T, m.rows)
		for j = 0; j < m.rows; j++ {
			row[j] = m.data[j][i] // column i of the source becomes row i
		}
		data[i] = row
	}

	// Swap buffer and dimensions.
	m.data = data
	m.rows, m.cols = m.cols, m.rows
}
