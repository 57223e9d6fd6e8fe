package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"snakegrid/internal/arcade"
	"snakegrid/internal/score"
	"snakegrid/internal/snake"
)

func main() {
	scorePath := flag.String("scores", score.DefaultPath, "file holding the high score")
	seed := flag.Int64("seed", 0, "random seed (0 = current time)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ctrl, err := arcade.New(snake.DefaultConfig(), rng, score.NewStore(*scorePath), logger)
	if err != nil {
		logger.Fatal(err)
	}

	var sfx *sounds
	if !*mute {
		if sfx, err = newSounds(); err != nil {
			logger.Printf("sound disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Snake Game")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(ctrl, sfx)); err != nil {
		_ = ctrl.Save()
		logger.Fatal(err)
	}
}
