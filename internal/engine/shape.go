package engine

import "errors"

var ErrMalformedShape = errors.New("shape matrix is empty, ragged or has no filled cells")

// Shape is a piece the player can drop on the board: a rectangular
// occupancy matrix plus a color token. ID is opaque and only used by
// hosts to track shapes across pool updates and rotations; none of the
// board logic reads it.
type Shape struct {
	ID    string   `json:"id"`
	Color string   `json:"color"`
	Cells [][]bool `json:"cells"`
}

// NewShape validates the occupancy matrix before it can ever reach the
// board: it must be non-empty, rectangular and contain at least one
// filled cell.
func NewShape(id, color string, cells [][]bool) (Shape, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Shape{}, ErrMalformedShape
	}

	width := len(cells[0])
	hasFilled := false
	for _, row := range cells {
		if len(row) != width {
			return Shape{}, ErrMalformedShape
		}
		for _, filled := range row {
			if filled {
				hasFilled = true
			}
		}
	}

	if !hasFilled {
		return Shape{}, ErrMalformedShape
	}

	return Shape{ID: id, Color: color, Cells: cells}, nil
}

// CellCount returns the number of filled cells.
func (that Shape) CellCount() int {
	count := 0
	for _, row := range that.Cells {
		for _, filled := range row {
			if filled {
				count++
			}
		}
	}

	return count
}

// Rotated returns a copy of the shape turned 90 degrees clockwise. The
// receiver keeps its matrix.
func (that Shape) Rotated() Shape {
	return Shape{
		ID:    that.ID,
		Color: that.Color,
		Cells: Rotate(that.Cells),
	}
}

// cellsKey flattens the matrix into a comparable string, used to
// deduplicate rotations that produce an identical matrix.
func (that Shape) cellsKey() string {
	key := make([]byte, 0, len(that.Cells)*(len(that.Cells[0])+1))
	for _, row := range that.Cells {
		for _, filled := range row {
			if filled {
				key = append(key, '1')
			} else {
				key = append(key, '0')
			}
		}
		key = append(key, '/')
	}

	return string(key)
}
