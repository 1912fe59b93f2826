package engine

// Rotate returns the matrix turned 90 degrees clockwise: an h x w input
// becomes a w x h output and cell (x, y) moves to (h-1-y, x). The input
// is never modified. Applying Rotate four times reproduces the original
// matrix for any rectangular input.
func Rotate(cells [][]bool) [][]bool {
	height := len(cells)
	if height == 0 {
		return nil
	}
	width := len(cells[0])

	rotated := make([][]bool, width)
	for x := 0; x < width; x++ {
		rotated[x] = make([]bool, height)
		for y := 0; y < height; y++ {
			rotated[x][height-1-y] = cells[y][x]
		}
	}

	return rotated
}
