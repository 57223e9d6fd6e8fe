package snake

// Snake is the player's body. body[0] is the head.
type Snake struct {
	body []Cell
	dir  Direction
	grid Grid
}

// New creates a one-cell snake at start heading in dir.
func New(grid Grid, start Cell, dir Direction) *Snake {
	return &Snake{
		body: []Cell{start},
		dir:  dir,
		grid: grid,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the number of body cells, counting cells stacked by Grow.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// SetDirection turns the snake. Reversing straight into the neck and
// invalid values are ignored; the return value says whether d was taken.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.Valid() || d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Advance moves the head one cell, clamped to the grid, and drops the
// tail. If the new head lands on the body (head excluded, measured before
// the move) Advance reports a collision and leaves the body untouched.
func (s *Snake) Advance() (collided bool) {
	next := s.grid.Clamp(s.Head().Step(s.dir))
	for _, c := range s.body[1:] {
		if c == next {
			return true
		}
	}

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
	return false
}

// Grow stacks a copy of the tail cell so the next Advance leaves the
// snake one cell longer.
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// CollidesWithWall reports whether the head sits on the wall ring.
func (s *Snake) CollidesWithWall() bool {
	return s.grid.IsBoundary(s.Head())
}

// Occupies reports whether any body cell is c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}
