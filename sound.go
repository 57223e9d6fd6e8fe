package main

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"snakegrid/internal/arcade"
)

const sampleRate = 44100

// sounds plays the beeps and the background loop.
type sounds struct {
	eat      *audio.Player
	gameOver *audio.Player
	bgLoop   *audio.InfiniteLoop
	bg       *audio.Player
}

func newSounds() (*sounds, error) {
	ctx := audio.NewContext(sampleRate)
	s := &sounds{
		eat:      ctx.NewPlayerFromBytes(eatTone.pcm()),
		gameOver: ctx.NewPlayerFromBytes(gameOverTone.pcm()),
	}

	music := backgroundTone.pcm()
	s.bgLoop = audio.NewInfiniteLoop(bytes.NewReader(music), int64(len(music)))
	bg, err := ctx.NewPlayer(s.bgLoop)
	if err != nil {
		return nil, fmt.Errorf("background loop: %w", err)
	}
	s.bg = bg
	return s, nil
}

// tone is a run of decaying sine notes played one after another.
type tone struct {
	notes []float64 // Hz
	note  float64   // seconds per note
	amp   float64
	decay float64 // exponential decay rate per second
}

var (
	eatTone        = tone{notes: []float64{880}, note: 0.1, amp: 4000, decay: 3}
	gameOverTone   = tone{notes: []float64{220}, note: 0.4, amp: 4000, decay: 3}
	backgroundTone = tone{notes: []float64{261.63, 329.63, 392.00, 523.25}, note: 0.25, amp: 2000, decay: 2}
)

// pcm renders t as 16-bit little-endian stereo at sampleRate.
func (t tone) pcm() []byte {
	perNote := int(sampleRate * t.note)
	buf := make([]byte, 0, perNote*len(t.notes)*4)
	for _, freq := range t.notes {
		for i := range perNote {
			sec := float64(i) / sampleRate
			v := int16(math.Sin(2*math.Pi*freq*sec) * t.amp * math.Exp(-t.decay*sec))
			// same sample on both channels
			buf = append(buf, byte(v), byte(v>>8), byte(v), byte(v>>8))
		}
	}
	return buf
}

func replay(p *audio.Player) {
	_ = p.Rewind()
	p.Play()
}

// screenChanged starts the music when play begins and stops it when the
// game ends.
func (s *sounds) screenChanged(to arcade.Screen) {
	if s == nil {
		return
	}
	switch to {
	case arcade.ScreenPlaying:
		replay(s.bg)
	default:
		s.bg.Pause()
	}
}

func (s *sounds) pauseChanged(paused bool) {
	if s == nil {
		return
	}
	if paused {
		s.bg.Pause()
	} else {
		s.bg.Play()
	}
}

func (s *sounds) played(out arcade.Outcome) {
	if s == nil {
		return
	}
	if out.Over {
		replay(s.gameOver)
		return
	}
	if out.Ate > 0 {
		replay(s.eat)
	}
}
