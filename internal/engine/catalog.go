package engine

import (
	"math/rand"

	"github.com/google/uuid"
)

// BatchSize is how many shapes a fresh pool batch contains. The pool is
// only refilled once it is completely empty, never topped up mid-batch.
const BatchSize = 3

var shapeTemplates = [][][]bool{
	// single
	{
		{true},
	},
	// lines
	{
		{true, true},
	},
	{
		{true, true, true},
	},
	// square
	{
		{true, true},
		{true, true},
	},
	// corner
	{
		{true, false},
		{true, true},
	},
	// L
	{
		{true, false},
		{true, false},
		{true, true},
	},
	// T
	{
		{true, true, true},
		{false, true, false},
	},
	// S
	{
		{false, true, true},
		{true, true, false},
	},
	// Z
	{
		{true, true, false},
		{false, true, true},
	},
	// plus
	{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	},
	// diagonal pair
	{
		{true, false},
		{false, true},
	},
	// full square
	{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	},
}

var shapeColors = []string{"blue", "green", "red", "yellow", "purple", "orange", "cyan", "pink"}

// Catalog draws random shapes from the fixed template set. All
// randomness comes from the injected source, so draws are reproducible
// under a fixed seed.
type Catalog struct {
	rng *rand.Rand
}

func NewCatalog(rng *rand.Rand) *Catalog {
	return &Catalog{rng: rng}
}

// Draw returns one freshly drawn shape with its own ID. The template
// matrix is copied so later rotations never write into the template.
func (that *Catalog) Draw() Shape {
	template := shapeTemplates[that.rng.Intn(len(shapeTemplates))]

	cells := make([][]bool, len(template))
	for y, row := range template {
		cells[y] = make([]bool, len(row))
		copy(cells[y], row)
	}

	return Shape{
		ID:    uuid.NewString(),
		Color: shapeColors[that.rng.Intn(len(shapeColors))],
		Cells: cells,
	}
}

// DrawBatch returns a fresh batch of BatchSize shapes.
func (that *Catalog) DrawBatch() []Shape {
	batch := make([]Shape, 0, BatchSize)
	for i := 0; i < BatchSize; i++ {
		batch = append(batch, that.Draw())
	}

	return batch
}
