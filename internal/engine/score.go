package engine

const (
	pointsPerCell = 10

	// RotationKeyCost is deducted from the player's keys for every
	// successful rotation.
	RotationKeyCost = 1
)

// lineClearBase is the reward for clearing n lines in one turn, before
// the combo multiplier. Clears beyond the table are paid at the top
// rate.
var lineClearBase = []int{0, 100, 250, 450, 700, 1000}

// PlacementPoints is the flat reward for dropping a shape, proportional
// to its filled cells.
func PlacementPoints(shape Shape) int {
	return shape.CellCount() * pointsPerCell
}

// LineClearPoints rewards the lines cleared this turn, scaled linearly
// by the current combo. Zero lines pay nothing regardless of combo.
func LineClearPoints(linesCleared, combo int) int {
	if linesCleared <= 0 {
		return 0
	}

	base := lineClearBase[len(lineClearBase)-1]
	if linesCleared < len(lineClearBase) {
		base = lineClearBase[linesCleared]
	}

	return base * combo
}

// NextCombo returns the combo for the following turn: one more after
// any clearing turn, back to 1 after a turn that cleared nothing.
func NextCombo(linesCleared, combo int) int {
	if linesCleared >= 1 {
		return combo + 1
	}

	return 1
}

// KeysEarned grants one key per line cleared.
func KeysEarned(linesCleared int) int {
	if linesCleared <= 0 {
		return 0
	}

	return linesCleared
}
