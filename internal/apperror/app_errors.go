package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoActiveGames    = errors.New("no active games")
	ErrInvalidPlacement = errors.New("shape cannot be placed there")
	ErrInvalidSlot      = errors.New("invalid shape slot")
	ErrHoldEmpty        = errors.New("hold slot is empty")
	ErrInsufficientKeys = errors.New("not enough keys to rotate")
	ErrNotFound         = errors.New("not found")
)
