package service

import (
	"fmt"

	"github.com/dodiwadhwa-maker/q-block-master/internal/engine"
)

// HintService produces advisory text for a stuck player. The text is
// free-form and purely informational; nothing in the engine validates
// or acts on it.
type HintService interface {
	Suggest(grid engine.Grid, pool []engine.Shape) string
}

type hintService struct{}

func NewHintService() HintService {
	return &hintService{}
}

// Suggest scans the pool in order and names the first legal placement
// it finds. When nothing in the pool fits, it suggests falling back to
// rotation or the hold slot.
func (that *hintService) Suggest(grid engine.Grid, pool []engine.Shape) string {
	for i, shape := range pool {
		for y := 0; y < engine.GridSize; y++ {
			for x := 0; x < engine.GridSize; x++ {
				if engine.CanPlace(grid, shape, x, y) {
					return fmt.Sprintf("try the %s piece (slot %d) at column %d, row %d", shape.Color, i, x, y)
				}
			}
		}
	}

	return "no piece in the pool fits as-is; a rotation or the hold slot might still save the run"
}
