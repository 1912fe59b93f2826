package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dodiwadhwa-maker/q-block-master/internal/apperror"
	"github.com/dodiwadhwa-maker/q-block-master/internal/engine"
)

func testShape(t *testing.T, color string, cells [][]bool) engine.Shape {
	t.Helper()

	shape, err := engine.NewShape("shape-"+color, color, cells)
	require.NoError(t, err)

	return shape
}

func singleCell(t *testing.T) engine.Shape {
	t.Helper()
	return testShape(t, "blue", [][]bool{{true}})
}

func TestNewGame(t *testing.T) {
	// When: creating a game with a pool of one shape
	pool := []engine.Shape{singleCell(t)}
	game := NewGame("g1", pool)

	// Then: the session starts empty with combo 1 and no keys
	require.NotNil(t, game)
	assert.Equal(t, "g1", game.ID)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Equal(t, engine.NewGrid(), game.Grid)
	assert.Equal(t, pool, game.Pool)
	assert.Nil(t, game.Hold)
	assert.Equal(t, 0, game.Score)
	assert.Equal(t, 0, game.Keys)
	assert.Equal(t, 1, game.Combo)
}

func TestGame_Place(t *testing.T) {
	t.Run("Places a single cell on an empty grid", func(t *testing.T) {
		// Given: a fresh game with one 1x1 shape
		game := NewGame("g1", []engine.Shape{singleCell(t)})

		// When: placing it at (0,0)
		lines, err := game.Place(0, 0, 0)

		// Then: only cell (0,0) is filled, nothing cleared, pool emptied
		require.NoError(t, err)
		assert.Equal(t, 0, lines)
		assert.Equal(t, "blue", game.Grid[0][0])
		assert.Equal(t, 1, engine.FilledCells(game.Grid))
		assert.Empty(t, game.Pool)
		assert.Equal(t, 10, game.Score)
		assert.Equal(t, 1, game.Combo)
	})

	t.Run("Completing a row clears it and rewards the turn", func(t *testing.T) {
		// Given: row 0 filled except (7,0)
		game := NewGame("g1", []engine.Shape{singleCell(t)})
		for x := 0; x < engine.GridSize-1; x++ {
			game.Grid[0][x] = "red"
		}

		// When: dropping the 1x1 shape into the gap
		lines, err := game.Place(0, 7, 0)

		// Then: the row is entirely empty again
		require.NoError(t, err)
		assert.Equal(t, 1, lines)
		for x := 0; x < engine.GridSize; x++ {
			assert.Equal(t, engine.EmptyCell, game.Grid[0][x])
		}

		// Then: placement plus a combo-1 single-line clear, one key, combo up
		assert.Equal(t, 10+engine.LineClearPoints(1, 1), game.Score)
		assert.Equal(t, 1, game.Keys)
		assert.Equal(t, 2, game.Combo)
	})

	t.Run("Combo resets after a turn without clears", func(t *testing.T) {
		// Given: a game mid-streak
		game := NewGame("g1", []engine.Shape{singleCell(t)})
		game.Combo = 4

		// When: placing without completing a line
		_, err := game.Place(0, 3, 3)

		// Then: the streak is over
		require.NoError(t, err)
		assert.Equal(t, 1, game.Combo)
	})

	t.Run("Rejects an invalid placement without side effects", func(t *testing.T) {
		// Given: a game whose target cell is occupied
		game := NewGame("g1", []engine.Shape{singleCell(t)})
		game.Grid[2][2] = "red"

		before := *game

		// When: placing onto the occupied cell
		_, err := game.Place(0, 2, 2)

		// Then: the rejection leaves the game untouched
		require.ErrorIs(t, err, apperror.ErrInvalidPlacement)
		assert.Equal(t, before.Grid, game.Grid)
		assert.Equal(t, before.Score, game.Score)
		assert.Len(t, game.Pool, 1)
	})

	t.Run("Places the held shape and empties the hold slot", func(t *testing.T) {
		// Given: a game with a held shape
		game := NewGame("g1", []engine.Shape{singleCell(t)})
		require.NoError(t, game.SwapHold(0))
		require.NotNil(t, game.Hold)

		// When: placing from the hold slot
		lines, err := game.Place(HoldSlot, 5, 5)

		// Then: the board gains the cell and the hold slot is free
		require.NoError(t, err)
		assert.Equal(t, 0, lines)
		assert.Equal(t, "blue", game.Grid[5][5])
		assert.Nil(t, game.Hold)
	})

	t.Run("Rejects an out-of-range slot", func(t *testing.T) {
		game := NewGame("g1", []engine.Shape{singleCell(t)})

		_, err := game.Place(3, 0, 0)
		require.ErrorIs(t, err, apperror.ErrInvalidSlot)
	})
}

func TestGame_Rotate(t *testing.T) {
	t.Run("Rotates a pool shape for one key", func(t *testing.T) {
		// Given: a game holding a 1x2 line and one key
		line := testShape(t, "green", [][]bool{{true, true}})
		game := NewGame("g1", []engine.Shape{line})
		game.Keys = 1

		// When: rotating the pool shape
		err := game.Rotate(0)

		// Then: the shape is now vertical and the key is spent
		require.NoError(t, err)
		assert.Equal(t, [][]bool{{true}, {true}}, game.Pool[0].Cells)
		assert.Equal(t, 0, game.Keys)
	})

	t.Run("Rejects rotation without enough keys", func(t *testing.T) {
		// Given: a game with no keys
		line := testShape(t, "green", [][]bool{{true, true}})
		game := NewGame("g1", []engine.Shape{line})

		// When: rotating
		err := game.Rotate(0)

		// Then: the request fails and the shape is untouched
		require.ErrorIs(t, err, apperror.ErrInsufficientKeys)
		assert.Equal(t, [][]bool{{true, true}}, game.Pool[0].Cells)
		assert.Equal(t, 0, game.Keys)
	})

	t.Run("Rotates the held shape", func(t *testing.T) {
		// Given: a held 1x2 line and one key
		line := testShape(t, "green", [][]bool{{true, true}})
		game := NewGame("g1", []engine.Shape{line})
		game.Keys = 1
		require.NoError(t, game.SwapHold(0))

		// When: rotating the hold slot
		err := game.Rotate(HoldSlot)

		// Then: the held matrix turned
		require.NoError(t, err)
		assert.Equal(t, [][]bool{{true}, {true}}, game.Hold.Cells)
	})
}

func TestGame_SwapHold(t *testing.T) {
	t.Run("Moves a pool shape into an empty hold slot", func(t *testing.T) {
		// Given: a pool of two shapes and an empty hold
		first := testShape(t, "blue", [][]bool{{true}})
		second := testShape(t, "green", [][]bool{{true, true}})
		game := NewGame("g1", []engine.Shape{first, second})

		// When: holding the first shape
		err := game.SwapHold(0)

		// Then: the pool shrinks and the hold carries the shape
		require.NoError(t, err)
		require.NotNil(t, game.Hold)
		assert.Equal(t, first.ID, game.Hold.ID)
		require.Len(t, game.Pool, 1)
		assert.Equal(t, second.ID, game.Pool[0].ID)
	})

	t.Run("Swaps with an occupied hold slot", func(t *testing.T) {
		// Given: one shape held and one in the pool
		first := testShape(t, "blue", [][]bool{{true}})
		second := testShape(t, "green", [][]bool{{true, true}})
		game := NewGame("g1", []engine.Shape{first, second})
		require.NoError(t, game.SwapHold(0))

		// When: swapping the held shape with the remaining pool shape
		err := game.SwapHold(0)

		// Then: the shapes traded places, pool size unchanged
		require.NoError(t, err)
		assert.Equal(t, second.ID, game.Hold.ID)
		require.Len(t, game.Pool, 1)
		assert.Equal(t, first.ID, game.Pool[0].ID)
	})

	t.Run("Rejects an out-of-range pool index", func(t *testing.T) {
		game := NewGame("g1", []engine.Shape{singleCell(t)})

		err := game.SwapHold(2)
		require.ErrorIs(t, err, apperror.ErrInvalidSlot)
	})
}
