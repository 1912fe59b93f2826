package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dodiwadhwa-maker/q-block-master/internal/engine"
)

func TestHintService_Suggest(t *testing.T) {
	hints := NewHintService()

	t.Run("Names a legal placement when one exists", func(t *testing.T) {
		// Given: an empty grid and a pool with one shape
		shape, err := engine.NewShape("s1", "green", [][]bool{{true, true}})
		require.NoError(t, err)

		// When: asking for a hint
		hint := hints.Suggest(engine.NewGrid(), []engine.Shape{shape})

		// Then: the hint mentions the piece and a position
		assert.Contains(t, hint, "green")
		assert.Contains(t, hint, "slot 0")
	})

	t.Run("Falls back to advice when nothing fits", func(t *testing.T) {
		// Given: a board with a single free cell and a two-cell shape
		var grid engine.Grid
		for y := 0; y < engine.GridSize; y++ {
			for x := 0; x < engine.GridSize; x++ {
				grid[y][x] = "blue"
			}
		}
		grid[4][4] = engine.EmptyCell

		shape, err := engine.NewShape("s1", "green", [][]bool{{true, true}})
		require.NoError(t, err)

		// When: asking for a hint
		hint := hints.Suggest(grid, []engine.Shape{shape})

		// Then: the advice points at rotation or the hold slot
		assert.Contains(t, hint, "rotation")
	})
}
