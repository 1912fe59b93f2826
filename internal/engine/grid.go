package engine

import "errors"

const (
	// GridSize is the board dimension; the board is always GridSize x GridSize.
	GridSize = 8

	EmptyCell = ""
)

var ErrInvalidPlacement = errors.New("shape does not fit at the requested origin")

// Grid is the board: each cell holds a color token or EmptyCell.
// It is a value type, so assignment copies and every transform below
// returns a fresh grid without touching its input.
type Grid [GridSize][GridSize]string

func NewGrid() Grid {
	return Grid{}
}

// CanPlace reports whether every filled cell of the shape, anchored at
// (originX, originY), lands inside the board on an empty cell.
func CanPlace(grid Grid, shape Shape, originX, originY int) bool {
	for dy, row := range shape.Cells {
		for dx, filled := range row {
			if !filled {
				continue
			}

			x, y := originX+dx, originY+dy
			if x < 0 || x >= GridSize || y < 0 || y >= GridSize {
				return false
			}

			if grid[y][x] != EmptyCell {
				return false
			}
		}
	}

	return true
}

// Place returns a new grid with the shape's color written into every
// mapped cell. Callers are expected to check CanPlace first; the
// placement is re-validated and ErrInvalidPlacement returned if they
// did not.
func Place(grid Grid, shape Shape, originX, originY int) (Grid, error) {
	if !CanPlace(grid, shape, originX, originY) {
		return grid, ErrInvalidPlacement
	}

	next := grid
	for dy, row := range shape.Cells {
		for dx, filled := range row {
			if filled {
				next[originY+dy][originX+dx] = shape.Color
			}
		}
	}

	return next, nil
}

// ClearCompletedLines clears every fully occupied row and column in a
// single pass and returns the new grid with the line count. Rows and
// columns are judged against the grid as it was before any clearing, so
// lines sharing a cell never affect each other; a cell on the
// intersection of a cleared row and column is cleared once but counts
// for both lines.
func ClearCompletedLines(grid Grid) (Grid, int) {
	var fullRows, fullCols []int

	for y := 0; y < GridSize; y++ {
		full := true
		for x := 0; x < GridSize; x++ {
			if grid[y][x] == EmptyCell {
				full = false
				break
			}
		}
		if full {
			fullRows = append(fullRows, y)
		}
	}

	for x := 0; x < GridSize; x++ {
		full := true
		for y := 0; y < GridSize; y++ {
			if grid[y][x] == EmptyCell {
				full = false
				break
			}
		}
		if full {
			fullCols = append(fullCols, x)
		}
	}

	next := grid
	for _, y := range fullRows {
		for x := 0; x < GridSize; x++ {
			next[y][x] = EmptyCell
		}
	}
	for _, x := range fullCols {
		for y := 0; y < GridSize; y++ {
			next[y][x] = EmptyCell
		}
	}

	return next, len(fullRows) + len(fullCols)
}

// FilledCells counts the occupied cells of the grid.
func FilledCells(grid Grid) int {
	count := 0
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if grid[y][x] != EmptyCell {
				count++
			}
		}
	}

	return count
}
