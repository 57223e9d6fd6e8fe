// Package arcade drives the screens around a snake session: the
// instructions screen, play, and the game-over prompt. Frontends feed it
// actions and elapsed time and draw the Frame it returns.
package arcade

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"snakegrid/internal/snake"
)

// ErrQuit is returned by Handle once the player has asked to leave and the
// high score has been saved.
var ErrQuit = errors.New("arcade: quit")

// MaxFrameTime caps how much time one Advance call may simulate, so a
// stalled window does not replay seconds of ticks at once.
const MaxFrameTime = 250 * time.Millisecond

// Screen is the view currently shown.
type Screen uint8

const (
	ScreenInstructions Screen = iota + 1
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenInstructions:
		return "instructions"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game over"
	}
	return "unknown"
}

// Instructions is the text of the start screen. The last line is the
// warning that frontends highlight.
var Instructions = []string{
	"Welcome to Snake Game!",
	"",
	"Use arrow keys to control the snake.",
	"Eat the red squares to grow.",
	"Avoid running into the walls, the obstacles or yourself.",
	"",
	"Press ENTER to start the game.",
	"",
	"*** Warning: This game may not make you happy! ***",
}

// Credit is shown on the instructions screen.
const Credit = "Created by Bryan Lomerio"

// Store loads and saves the high score.
type Store interface {
	Load() (int, error)
	Save(n int) error
}

// Outcome summarises the ticks run by one Advance call.
type Outcome struct {
	Ticks int
	Ate   int
	Over  bool
	Cause snake.Cause
}

// Frame is everything a renderer needs for one frame.
type Frame struct {
	Screen   Screen
	Paused   bool
	Session  snake.Snapshot
	Options  []Option
	Selected Option
}

// Controller owns the session and the screen flow. It is not safe for
// concurrent use; frontends call it from their game loop only.
type Controller struct {
	store  Store
	logger *log.Logger

	session *snake.Session
	screen  Screen
	paused  bool

	selected Option
	elapsed  time.Duration

	// saved is the high score last written to the store
	saved int
}

// New loads the high score from store and opens on the instructions
// screen. A nil logger discards log output.
func New(cfg snake.Config, rng *rand.Rand, store Store, logger *log.Logger) (*Controller, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	high, err := store.Load()
	if err != nil {
		logger.Printf("high score unavailable, starting from 0: %v", err)
		high = 0
	}

	session, err := snake.NewSession(cfg, rng, high)
	if err != nil {
		return nil, fmt.Errorf("arcade: %w", err)
	}
	return &Controller{
		store:   store,
		logger:  logger,
		session: session,
		screen:  ScreenInstructions,
		saved:   high,
	}, nil
}

// Screen returns the current view.
func (c *Controller) Screen() Screen { return c.screen }

// HighScore returns the best score seen so far.
func (c *Controller) HighScore() int { return c.session.HighScore() }

// Handle applies one input action. It returns ErrQuit when the player
// leaves the game.
func (c *Controller) Handle(a Action) error {
	if a == ActionQuit {
		return c.quit()
	}

	switch c.screen {
	case ScreenInstructions:
		if a == ActionConfirm {
			c.start()
		}

	case ScreenPlaying:
		if a == ActionPause {
			c.paused = !c.paused
			return nil
		}
		if d, ok := a.direction(); ok && !c.paused {
			c.session.Steer(d)
		}

	case ScreenGameOver:
		switch a {
		case ActionLeft, ActionUp:
			c.selected = OptionYes
		case ActionRight, ActionDown:
			c.selected = OptionNo
		case ActionConfirm:
			return c.Handle(c.selected.Action())
		case ActionYes:
			c.start()
		case ActionNo:
			return c.quit()
		}
	}
	return nil
}

// Advance runs as many session ticks as dt covers at the current speed.
// Leftover time carries over to the next call.
func (c *Controller) Advance(dt time.Duration) Outcome {
	var out Outcome
	if c.screen != ScreenPlaying || c.paused {
		return out
	}

	c.elapsed += min(dt, MaxFrameTime)
	for {
		step := c.interval()
		if c.elapsed < step {
			break
		}
		c.elapsed -= step

		res := c.session.Tick()
		out.Ticks++
		if res.Ate {
			out.Ate++
		}
		if res.Over {
			out.Over = true
			out.Cause = res.Cause
			c.gameOver(res)
			break
		}
	}
	return out
}

// Frame returns the current view state.
func (c *Controller) Frame() Frame {
	f := Frame{
		Screen:   c.screen,
		Paused:   c.paused,
		Session:  c.session.Snapshot(),
		Selected: c.selected,
	}
	if c.screen == ScreenGameOver {
		f.Options = Options[:]
	}
	return f
}

// Save writes the high score if it beat the last saved value. Failures
// are logged and returned but leave the controller usable.
func (c *Controller) Save() error {
	return c.save(false)
}

func (c *Controller) save(force bool) error {
	high := c.session.HighScore()
	if !force && high <= c.saved {
		return nil
	}
	if err := c.store.Save(high); err != nil {
		c.logger.Printf("saving high score %d: %v", high, err)
		return err
	}
	c.saved = high
	return nil
}

func (c *Controller) interval() time.Duration {
	return time.Second / time.Duration(c.session.Speed())
}

func (c *Controller) start() {
	c.session.Reset()
	c.screen = ScreenPlaying
	c.paused = false
	c.elapsed = 0
	c.selected = OptionYes
	c.logger.Printf("session %s started", c.session.ID())
}

func (c *Controller) gameOver(res snake.TickResult) {
	c.screen = ScreenGameOver
	c.selected = OptionYes
	c.elapsed = 0
	c.logger.Printf("session %s over: %s, score %d, high score %d",
		c.session.ID(), res.Cause, res.Score, c.session.HighScore())
	_ = c.Save()
}

func (c *Controller) quit() error {
	_ = c.save(true)
	c.logger.Printf("quit with high score %d", c.session.HighScore())
	return ErrQuit
}
