// snaketerm plays the snake game in a terminal.
//
// arrows or hjkl/wasd to steer, enter to start, p to pause, y/n or a mouse
// click on the prompt after a game over, q or esc to quit
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"snakegrid/internal/arcade"
	"snakegrid/internal/score"
	"snakegrid/internal/snake"
)

const frameRate = 60

func main() {
	scorePath := flag.String("scores", score.DefaultPath, "file holding the high score")
	seed := flag.Int64("seed", 0, "random seed (0 = current time)")
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	// the terminal is the display, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	var logFile io.Closer
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		logFile, logOut = f, f
	}
	logger := log.New(logOut, "snaketerm: ", log.LstdFlags)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	ctrl, err := arcade.New(snake.DefaultConfig(), rand.New(rand.NewSource(*seed)),
		score.NewStore(*scorePath), logger)
	if err == nil {
		if err = run(ctrl); err != nil {
			_ = ctrl.Save()
		}
	}
	if code := shutdown(logger, logOut, os.Stderr, logFile, err); code != 0 {
		os.Exit(code)
	}
}

// shutdown reports err once through logger, copied to stderr since the
// screen has been released, then closes the log file. It returns the exit
// status.
func shutdown(logger *log.Logger, logOut, stderr io.Writer, logFile io.Closer, err error) int {
	if err != nil {
		logger.SetOutput(io.MultiWriter(logOut, stderr))
		logger.Print(err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		return 1
	}
	return 0
}

func run(ctrl *arcade.Controller) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	s.SetStyle(defStyle)
	s.EnableMouse()
	s.HideCursor()

	t := newTerminal(s, ctrl)

	evChan := make(chan tcell.Event, 100)
	quitChan := make(chan struct{})
	go s.ChannelEvents(evChan, quitChan)
	defer close(quitChan)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		t.draw()
		select {
		case now := <-ticker.C:
			out := ctrl.Advance(now.Sub(last))
			last = now
			if out.Over {
				_ = s.Beep()
			}
		case ev := <-evChan:
			a := t.action(ev)
			if a == arcade.ActionNone {
				continue
			}
			if err := ctrl.Handle(a); err != nil {
				if errors.Is(err, arcade.ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}
