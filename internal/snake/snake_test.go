package snake

import (
	"math/rand"
	"slices"
	"testing"
)

func testGrid(t *testing.T) Grid {
	t.Helper()
	g, err := NewGrid(28, 18)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestNewGridTooSmall(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{2, 10}, {10, 2}, {0, 0}, {-1, 5}} {
		if _, err := NewGrid(tc.w, tc.h); err != ErrGridTooSmall {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrGridTooSmall", tc.w, tc.h, err)
		}
	}
	if _, err := NewGrid(3, 3); err != nil {
		t.Errorf("NewGrid(3, 3) error = %v", err)
	}
}

func TestGridClampAndBoundary(t *testing.T) {
	g := Grid{Width: 10, Height: 8}
	tests := []struct {
		in, clamped Cell
		boundary    bool
	}{
		{Cell{5, 4}, Cell{5, 4}, false},
		{Cell{-1, 4}, Cell{0, 4}, true},
		{Cell{10, 4}, Cell{9, 4}, true},
		{Cell{5, -3}, Cell{5, 0}, true},
		{Cell{5, 8}, Cell{5, 7}, true},
		{Cell{1, 1}, Cell{1, 1}, false},
		{Cell{8, 6}, Cell{8, 6}, false},
	}
	for _, tc := range tests {
		got := g.Clamp(tc.in)
		if got != tc.clamped {
			t.Errorf("Clamp(%v) = %v, want %v", tc.in, got, tc.clamped)
		}
		if b := g.IsBoundary(got); b != tc.boundary {
			t.Errorf("IsBoundary(%v) = %v, want %v", got, b, tc.boundary)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite of opposite is %v", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and %v do not cancel out", d, d.Opposite())
		}
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	s := New(testGrid(t), Cell{5, 5}, Right)
	if s.SetDirection(Left) {
		t.Error("SetDirection(Left) accepted while heading right")
	}
	if s.Direction() != Right {
		t.Fatalf("direction = %v, want right", s.Direction())
	}
	if !s.SetDirection(Up) {
		t.Error("SetDirection(Up) rejected while heading right")
	}
	if s.SetDirection(Direction(0)) {
		t.Error("SetDirection accepted an invalid direction")
	}
	if s.Direction() != Up {
		t.Errorf("direction = %v, want up", s.Direction())
	}
}

func TestAdvanceSelfCollision(t *testing.T) {
	s := &Snake{
		body: []Cell{{5, 5}, {5, 4}, {5, 3}},
		dir:  Up,
		grid: testGrid(t),
	}
	before := s.Body()
	if !s.Advance() {
		t.Fatal("Advance did not report a collision")
	}
	if !slices.Equal(s.body, before) {
		t.Errorf("body changed on collision: %v, want %v", s.body, before)
	}
}

func TestGrowThenAdvance(t *testing.T) {
	s := &Snake{
		body: []Cell{{5, 5}, {5, 4}},
		dir:  Right,
		grid: testGrid(t),
	}
	s.Grow()
	if want := []Cell{{5, 5}, {5, 4}, {5, 4}}; !slices.Equal(s.body, want) {
		t.Fatalf("after Grow body = %v, want %v", s.body, want)
	}
	if s.Advance() {
		t.Fatal("unexpected collision")
	}
	if want := []Cell{{6, 5}, {5, 5}, {5, 4}}; !slices.Equal(s.body, want) {
		t.Errorf("after Advance body = %v, want %v", s.body, want)
	}
}

func TestAdvanceKeepsLength(t *testing.T) {
	g := testGrid(t)
	rng := rand.New(rand.NewSource(7))
	s := New(g, g.Center(), Right)
	for range 4 {
		s.Grow()
		s.Advance()
	}
	want := s.Len()
	for i := range 500 {
		s.SetDirection(RandomDirection(rng))
		before := s.Len()
		s.Advance()
		if s.Len() != before || s.Len() != want {
			t.Fatalf("tick %d: length %d, want %d", i, s.Len(), want)
		}
		if !g.Contains(s.Head()) {
			t.Fatalf("tick %d: head %v outside grid", i, s.Head())
		}
	}
}

func TestAdvanceClampsAtWall(t *testing.T) {
	g := Grid{Width: 5, Height: 5}
	s := New(g, Cell{0, 2}, Left)
	s.Advance()
	if s.Head() != (Cell{0, 2}) {
		t.Errorf("head = %v, want clamped to (0,2)", s.Head())
	}
	if !s.CollidesWithWall() {
		t.Error("head on the wall ring not reported")
	}
}

func TestOccupies(t *testing.T) {
	s := &Snake{body: []Cell{{1, 1}, {1, 2}}, dir: Up, grid: testGrid(t)}
	if !s.Occupies(Cell{1, 2}) {
		t.Error("tail not reported as occupied")
	}
	if s.Occupies(Cell{2, 2}) {
		t.Error("empty cell reported as occupied")
	}
}
