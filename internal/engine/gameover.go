package engine

// IsGameOver reports whether no remaining shape can be placed anywhere
// on the board. The candidate set is the pool plus the held shape, if
// any; each candidate is tried in all four rotations (cell-identical
// rotations are skipped) at every origin. Callers must not ask with an
// empty candidate set.
//
// Worst case is candidates x 4 rotations x GridSize^2 origins x shape
// cells, which is trivial on an 8x8 board with at most four candidates.
func IsGameOver(grid Grid, pool []Shape, hold *Shape) bool {
	candidates := make([]Shape, 0, len(pool)+1)
	candidates = append(candidates, pool...)
	if hold != nil {
		candidates = append(candidates, *hold)
	}

	for _, candidate := range candidates {
		if hasAnyPlacement(grid, candidate) {
			return false
		}
	}

	return true
}

func hasAnyPlacement(grid Grid, shape Shape) bool {
	seen := make(map[string]struct{}, 4)

	variant := shape
	for i := 0; i < 4; i++ {
		key := variant.cellsKey()
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}

			for y := 0; y < GridSize; y++ {
				for x := 0; x < GridSize; x++ {
					if CanPlace(grid, variant, x, y) {
						return true
					}
				}
			}
		}

		variant = variant.Rotated()
	}

	return false
}
