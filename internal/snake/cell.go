// Package snake holds the game rules: the grid, the snake body, food,
// obstacles and the session that advances them one tick at a time.
// Nothing in here draws or reads input.
package snake

import "math/rand"

// Cell is one grid square.
type Cell struct {
	X, Y int
}

// Step returns the cell one square away in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction the snake is heading
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists every valid direction.
var Directions = [...]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Delta returns the (dx, dy) offset of one step. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// RandomDirection picks one of the four directions.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}
