package snake

import (
	"errors"
	"math/rand"
)

// ErrGridTooSmall is returned for grids without at least one interior cell.
var ErrGridTooSmall = errors.New("snake: grid must be at least 3x3")

// Grid is the playable area in cells. The outer ring of cells is the wall.
type Grid struct {
	Width  int
	Height int
}

// NewGrid validates the dimensions and returns the grid.
func NewGrid(width, height int) (Grid, error) {
	if width < 3 || height < 3 {
		return Grid{}, ErrGridTooSmall
	}
	return Grid{Width: width, Height: height}, nil
}

// Clamp pulls c back inside the grid.
func (g Grid) Clamp(c Cell) Cell {
	return Cell{
		X: max(0, min(c.X, g.Width-1)),
		Y: max(0, min(c.Y, g.Height-1)),
	}
}

// Contains reports whether c lies inside the grid, wall ring included.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsBoundary reports whether c is on the wall ring.
func (g Grid) IsBoundary(c Cell) bool {
	return c.X == 0 || c.X == g.Width-1 || c.Y == 0 || c.Y == g.Height-1
}

// Center is where a new snake spawns.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// InteriorSize is the number of cells off the wall ring.
func (g Grid) InteriorSize() int {
	return (g.Width - 2) * (g.Height - 2)
}

// RandomInterior samples a uniformly random cell off the wall ring.
func (g Grid) RandomInterior(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.Width-2) + 1,
		Y: rng.Intn(g.Height-2) + 1,
	}
}

// freeInterior lists every interior cell for which blocked returns false,
// in row-major order.
func (g Grid) freeInterior(blocked func(Cell) bool) []Cell {
	var free []Cell
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			c := Cell{X: x, Y: y}
			if !blocked(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// pickFree samples up to attempts random interior cells looking for one
// that is not blocked, then falls back to a uniform pick among all free
// interior cells. ok is false only when no interior cell is free.
func (g Grid) pickFree(rng *rand.Rand, attempts int, blocked func(Cell) bool) (c Cell, ok bool) {
	for range attempts {
		c = g.RandomInterior(rng)
		if !blocked(c) {
			return c, true
		}
	}
	free := g.freeInterior(blocked)
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}
