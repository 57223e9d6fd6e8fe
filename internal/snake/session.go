package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// State of a session
type State uint8

const (
	// StatePlaying means the snake is alive and ticking
	StatePlaying State = iota + 1

	// StateGameOver means the snake hit something; only Reset leaves it
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Cause records what ended a session.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseSelf
	CauseWall
	CauseObstacle
)

func (c Cause) String() string {
	switch c {
	case CauseSelf:
		return "self-collision"
	case CauseWall:
		return "wall-collision"
	case CauseObstacle:
		return "obstacle-collision"
	}
	return "none"
}

// Config holds the tunables of a session. Speeds are in ticks per second.
type Config struct {
	Width, Height        int
	ObstacleCount        int
	BaseSpeed            int
	SpeedIncrement       int
	MaxPlacementAttempts int
}

// DefaultConfig matches the classic 560x360 play area at 20px cells.
func DefaultConfig() Config {
	return Config{
		Width:                28,
		Height:               18,
		ObstacleCount:        5,
		BaseSpeed:            10,
		SpeedIncrement:       8,
		MaxPlacementAttempts: DefaultPlacementAttempts,
	}
}

// Validate checks that a session can be built from c.
func (c Config) Validate() error {
	if _, err := NewGrid(c.Width, c.Height); err != nil {
		return err
	}
	switch {
	case c.ObstacleCount < 0:
		return errors.New("snake: obstacle count must not be negative")
	case c.BaseSpeed <= 0:
		return errors.New("snake: base speed must be positive")
	case c.SpeedIncrement < 0:
		return errors.New("snake: speed increment must not be negative")
	}
	return nil
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Ate   bool
	Over  bool
	Cause Cause
	Score int
}

// Snapshot is a read-only view of a session for renderers.
type Snapshot struct {
	ID         uuid.UUID
	State      State
	Cause      Cause
	Body       []Cell
	Direction  Direction
	Food       Cell
	FoodPlaced bool
	Obstacles  []Cell
	Score      int
	HighScore  int
	Speed      int
	Ticks      uint64
	Grid       Grid
}

// Session is one playthrough. It owns the snake, food, obstacles, speed
// and the running high score.
type Session struct {
	id        uuid.UUID
	cfg       Config
	grid      Grid
	rng       *rand.Rand
	snake     *Snake
	food      Food
	obstacles Obstacles

	state State
	cause Cause

	pending    Direction
	hasPending bool

	speed     int
	highScore int
	ticks     uint64
}

// NewSession validates cfg and starts a fresh playthrough. highScore is
// the best score loaded from storage.
func NewSession(cfg Config, rng *rand.Rand, highScore int) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s := &Session{
		cfg:       cfg,
		grid:      Grid{Width: cfg.Width, Height: cfg.Height},
		rng:       rng,
		highScore: max(highScore, 0),
	}
	s.Reset()
	return s, nil
}

// Reset starts a new playthrough. The high score is kept.
func (s *Session) Reset() {
	start := s.grid.Center()

	s.id = uuid.New()
	s.snake = New(s.grid, start, RandomDirection(s.rng))
	s.obstacles = NewObstacles(s.rng, s.grid, s.cfg.ObstacleCount, start)
	s.food = Food{Attempts: s.cfg.MaxPlacementAttempts}
	s.food.Relocate(s.rng, s.grid, s.snake, s.obstacles)

	s.state = StatePlaying
	s.cause = CauseNone
	s.pending, s.hasPending = 0, false
	s.speed = s.cfg.BaseSpeed
	s.ticks = 0
}

// Steer queues a direction change for the next tick. Later calls before
// the tick replace earlier ones. A reversal of the current heading is
// dropped and leaves any queued turn in place.
func (s *Session) Steer(d Direction) {
	if s.state != StatePlaying || !d.Valid() || d == s.snake.Direction().Opposite() {
		return
	}
	s.pending, s.hasPending = d, true
}

// Tick advances the simulation by one step.
func (s *Session) Tick() TickResult {
	if s.state != StatePlaying {
		return TickResult{Over: true, Cause: s.cause, Score: s.Score()}
	}
	s.ticks++

	// the board was full last time; try again
	if !s.food.Placed() {
		s.food.Relocate(s.rng, s.grid, s.snake, s.obstacles)
	}

	if s.hasPending {
		s.snake.SetDirection(s.pending)
		s.hasPending = false
	}

	var res TickResult
	switch {
	case s.snake.Advance():
		s.end(CauseSelf)
	case s.snake.CollidesWithWall():
		s.end(CauseWall)
	case s.obstacles.Contains(s.snake.Head()):
		s.end(CauseObstacle)
	default:
		if food, ok := s.food.Position(); ok && s.snake.Head() == food {
			s.snake.Grow()
			s.food.Relocate(s.rng, s.grid, s.snake, s.obstacles)
			s.speed += s.cfg.SpeedIncrement
			res.Ate = true
		}
	}

	score := s.Score()
	if score > s.highScore {
		s.highScore = score
	}

	res.Over = s.state == StateGameOver
	res.Cause = s.cause
	res.Score = score
	return res
}

func (s *Session) end(c Cause) {
	s.state = StateGameOver
	s.cause = c
}

// ID identifies the current playthrough.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns playing or game over.
func (s *Session) State() State { return s.state }

// Cause returns what ended the session, or CauseNone while playing.
func (s *Session) Cause() Cause { return s.cause }

// Score is the number of food items eaten.
func (s *Session) Score() int { return s.snake.Len() - 1 }

// HighScore is the best score seen, including the current one.
func (s *Session) HighScore() int { return s.highScore }

// Speed is the current tick rate in ticks per second.
func (s *Session) Speed() int { return s.speed }

// Grid returns the play grid.
func (s *Session) Grid() Grid { return s.grid }

// Snapshot copies the state a renderer needs.
func (s *Session) Snapshot() Snapshot {
	food, placed := s.food.Position()
	return Snapshot{
		ID:         s.id,
		State:      s.state,
		Cause:      s.cause,
		Body:       s.snake.Body(),
		Direction:  s.snake.Direction(),
		Food:       food,
		FoodPlaced: placed,
		Obstacles:  s.obstacles.Cells(),
		Score:      s.Score(),
		HighScore:  s.highScore,
		Speed:      s.speed,
		Ticks:      s.ticks,
		Grid:       s.grid,
	}
}
