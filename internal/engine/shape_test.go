package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	t.Run("Accepts a well-formed matrix", func(t *testing.T) {
		// When: constructing an L corner
		shape, err := NewShape("s1", "blue", [][]bool{
			{true, false},
			{true, true},
		})

		// Then: the shape is built as given
		require.NoError(t, err)
		assert.Equal(t, "s1", shape.ID)
		assert.Equal(t, "blue", shape.Color)
		assert.Equal(t, 3, shape.CellCount())
	})

	t.Run("Rejects an empty matrix", func(t *testing.T) {
		_, err := NewShape("s1", "blue", nil)
		require.ErrorIs(t, err, ErrMalformedShape)

		_, err = NewShape("s1", "blue", [][]bool{{}})
		require.ErrorIs(t, err, ErrMalformedShape)
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := NewShape("s1", "blue", [][]bool{
			{true, true},
			{true},
		})
		require.ErrorIs(t, err, ErrMalformedShape)
	})

	t.Run("Rejects a matrix with no filled cell", func(t *testing.T) {
		_, err := NewShape("s1", "blue", [][]bool{
			{false, false},
			{false, false},
		})
		require.ErrorIs(t, err, ErrMalformedShape)
	})
}
