package board

// Cell returns the grid coordinate of square for a renderer.
// Row 0 is the top row. Square 1 sits bottom-left and numbering snakes
// back and forth one row at a time. Off-board squares return (-1, -1).
func Cell(square int) (row, col int) {
	if !OnBoard(square) {
		return -1, -1
	}

	idx := square - 1
	rowFromBottom := idx / Size
	col = idx % Size
	if rowFromBottom%2 == 1 {
		col = Size - 1 - col
	}
	return Size - 1 - rowFromBottom, col
}

// SquareAt is the inverse of Cell. Out-of-range coordinates return 0.
func SquareAt(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0
	}

	rowFromBottom := Size - 1 - row
	if rowFromBottom%2 == 1 {
		col = Size - 1 - col
	}
	return rowFromBottom*Size + col + 1
}
