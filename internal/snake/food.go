package snake

import "math/rand"

// DefaultPlacementAttempts bounds random sampling before falling back to a
// scan of the free interior cells.
const DefaultPlacementAttempts = 1000

// Food is the single item the snake eats. The zero value is unplaced.
type Food struct {
	pos    Cell
	placed bool

	// Attempts caps random sampling; zero means DefaultPlacementAttempts.
	Attempts int
}

// Position returns the food cell and whether the food is on the board.
func (f *Food) Position() (Cell, bool) {
	return f.pos, f.placed
}

// Placed reports whether the food is on the board.
func (f *Food) Placed() bool {
	return f.placed
}

// Relocate moves the food to a random interior cell that is free of the
// snake and the obstacles. When the interior is full the food is taken off
// the board and Relocate returns false; call it again on a later tick.
func (f *Food) Relocate(rng *rand.Rand, grid Grid, s *Snake, obstacles Obstacles) bool {
	attempts := f.Attempts
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts
	}
	c, ok := grid.pickFree(rng, attempts, func(c Cell) bool {
		return s.Occupies(c) || obstacles.Contains(c)
	})
	f.pos, f.placed = c, ok
	return ok
}
