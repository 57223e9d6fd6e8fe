package snake

import "math/rand"

// Obstacles is the fixed set of blocking cells for one session.
type Obstacles struct {
	cells []Cell
	set   map[Cell]struct{}
}

// NewObstacles places count distinct interior obstacles, none of them on
// an avoid cell. If the interior runs out of room fewer are placed.
func NewObstacles(rng *rand.Rand, grid Grid, count int, avoid ...Cell) Obstacles {
	o := Obstacles{set: make(map[Cell]struct{}, max(count, 0))}
	blocked := func(c Cell) bool {
		if o.Contains(c) {
			return true
		}
		for _, a := range avoid {
			if a == c {
				return true
			}
		}
		return false
	}
	for range count {
		c, ok := grid.pickFree(rng, DefaultPlacementAttempts, blocked)
		if !ok {
			break
		}
		o.cells = append(o.cells, c)
		o.set[c] = struct{}{}
	}
	return o
}

// Contains reports whether c is an obstacle.
func (o Obstacles) Contains(c Cell) bool {
	_, ok := o.set[c]
	return ok
}

// Cells returns a copy of the obstacle cells in placement order.
func (o Obstacles) Cells() []Cell {
	out := make([]Cell, len(o.cells))
	copy(out, o.cells)
	return out
}

// Len is the number of obstacles.
func (o Obstacles) Len() int {
	return len(o.cells)
}
