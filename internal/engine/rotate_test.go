package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	t.Run("Turns a non-square matrix clockwise with transposed dimensions", func(t *testing.T) {
		// Given: a 1x3 line
		line := [][]bool{{true, true, true}}

		// When: rotating once
		rotated := Rotate(line)

		// Then: the result is a 3x1 column
		require.Len(t, rotated, 3)
		for _, row := range rotated {
			require.Len(t, row, 1)
			assert.True(t, row[0])
		}
	})

	t.Run("Moves cells to the expected positions", func(t *testing.T) {
		// Given: a 2x3 matrix with a single filled cell at (0,0)
		cells := [][]bool{
			{true, false, false},
			{false, false, false},
		}

		// When: rotating once
		rotated := Rotate(cells)

		// Then: the cell lands in the top-right corner of a 3x2 matrix
		expected := [][]bool{
			{false, true},
			{false, false},
			{false, false},
		}
		assert.Equal(t, expected, rotated)
	})

	t.Run("Does not mutate its input", func(t *testing.T) {
		// Given: an L corner
		cells := [][]bool{
			{true, false},
			{true, true},
		}

		// When: rotating
		_ = Rotate(cells)

		// Then: the input matrix is unchanged
		assert.Equal(t, [][]bool{{true, false}, {true, true}}, cells)
	})

	t.Run("Four rotations reproduce the original matrix", func(t *testing.T) {
		shapes := map[string][][]bool{
			"single": {{true}},
			"line":   {{true, true, true}},
			"column": {{true}, {true}},
			"square": {{true, true}, {true, true}},
			"L": {
				{true, false},
				{true, false},
				{true, true},
			},
			"T": {
				{true, true, true},
				{false, true, false},
			},
			"S": {
				{false, true, true},
				{true, true, false},
			},
			"Z": {
				{true, true, false},
				{false, true, true},
			},
		}

		for name, cells := range shapes {
			t.Run(name, func(t *testing.T) {
				// When: rotating four times
				rotated := cells
				for i := 0; i < 4; i++ {
					rotated = Rotate(rotated)
				}

				// Then: the matrix is cell-equal to the original
				assert.Equal(t, cells, rotated)
			})
		}
	})
}

func TestShape_Rotated(t *testing.T) {
	// Given: an S shape
	shape := mustShape(t, "purple", [][]bool{
		{false, true, true},
		{true, true, false},
	})

	// When: rotating the shape
	rotated := shape.Rotated()

	// Then: identity and color carry over, only the matrix turns
	assert.Equal(t, shape.ID, rotated.ID)
	assert.Equal(t, shape.Color, rotated.Color)
	assert.Equal(t, [][]bool{
		{true, false},
		{true, true},
		{false, true},
	}, rotated.Cells)

	// Then: the cell count is preserved
	assert.Equal(t, shape.CellCount(), rotated.CellCount())
}
