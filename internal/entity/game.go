package entity

import (
	"fmt"

	"github.com/dodiwadhwa-maker/q-block-master/internal/apperror"
	"github.com/dodiwadhwa-maker/q-block-master/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// HoldSlot addresses the hold slot instead of a pool index.
const HoldSlot = -1

// Game is one puzzle session. The grid, pool and hold are replaced
// wholesale on every accepted move; the board logic itself never
// mutates them in place.
type Game struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Grid   engine.Grid    `json:"grid"`
	Pool   []engine.Shape `json:"pool"`
	Hold   *engine.Shape  `json:"hold,omitempty"`
	Score  int            `json:"score"`
	Keys   int            `json:"keys"`
	Combo  int            `json:"combo"`
}

func NewGame(id string, pool []engine.Shape) *Game {
	return &Game{
		ID:     id,
		Status: StatusOngoing,
		Grid:   engine.NewGrid(),
		Pool:   pool,
		Combo:  1,
	}
}

// shapeAt resolves a slot reference: HoldSlot for the held shape,
// otherwise an index into the pool.
func (that *Game) shapeAt(slot int) (engine.Shape, error) {
	if slot == HoldSlot {
		if that.Hold == nil {
			return engine.Shape{}, apperror.ErrHoldEmpty
		}
		return *that.Hold, nil
	}

	if slot < 0 || slot >= len(that.Pool) {
		return engine.Shape{}, fmt.Errorf("%w: %d", apperror.ErrInvalidSlot, slot)
	}

	return that.Pool[slot], nil
}

// Place drops the shape in the given slot at origin (x, y), clears
// completed lines and applies scoring, combo and key rewards. On
// success the shape leaves its slot and the number of cleared lines is
// returned; on failure the game is untouched.
func (that *Game) Place(slot, x, y int) (int, error) {
	if that.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	shape, err := that.shapeAt(slot)
	if err != nil {
		return 0, err
	}

	if !engine.CanPlace(that.Grid, shape, x, y) {
		return 0, apperror.ErrInvalidPlacement
	}

	placed, err := engine.Place(that.Grid, shape, x, y)
	if err != nil {
		return 0, fmt.Errorf("failed to apply placement: %w", err)
	}

	cleared, lines := engine.ClearCompletedLines(placed)

	that.Grid = cleared
	that.Score += engine.PlacementPoints(shape) + engine.LineClearPoints(lines, that.Combo)
	that.Keys += engine.KeysEarned(lines)
	that.Combo = engine.NextCombo(lines, that.Combo)

	if slot == HoldSlot {
		that.Hold = nil
	} else {
		that.Pool = append(that.Pool[:slot], that.Pool[slot+1:]...)
	}

	return lines, nil
}

// Rotate turns the shape in the given slot 90 degrees clockwise for
// RotationKeyCost keys. Without enough keys nothing changes.
func (that *Game) Rotate(slot int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	shape, err := that.shapeAt(slot)
	if err != nil {
		return err
	}

	if that.Keys < engine.RotationKeyCost {
		return apperror.ErrInsufficientKeys
	}

	rotated := shape.Rotated()
	if slot == HoldSlot {
		that.Hold = &rotated
	} else {
		that.Pool[slot] = rotated
	}
	that.Keys -= engine.RotationKeyCost

	return nil
}

// SwapHold moves the pool shape at the given index into the hold slot.
// If a shape is already held, the two trade places; otherwise the pool
// shrinks by one.
func (that *Game) SwapHold(poolIndex int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if poolIndex < 0 || poolIndex >= len(that.Pool) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSlot, poolIndex)
	}

	if that.Hold == nil {
		held := that.Pool[poolIndex]
		that.Hold = &held
		that.Pool = append(that.Pool[:poolIndex], that.Pool[poolIndex+1:]...)
		return nil
	}

	that.Pool[poolIndex], *that.Hold = *that.Hold, that.Pool[poolIndex]

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
