package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"snakegrid/internal/arcade"
	"snakegrid/internal/score"
	"snakegrid/internal/snake"
)

func newTestTerminal(t *testing.T) (*terminal, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 25)

	store := score.NewStore(filepath.Join(t.TempDir(), "score.txt"))
	ctrl, err := arcade.New(snake.DefaultConfig(), rand.New(rand.NewSource(3)), store, nil)
	if err != nil {
		t.Fatalf("arcade.New: %v", err)
	}
	return newTerminal(s, ctrl), s
}

func TestRuneAction(t *testing.T) {
	tests := []struct {
		r    rune
		want arcade.Action
	}{
		{'k', arcade.ActionUp},
		{'W', arcade.ActionUp},
		{'j', arcade.ActionDown},
		{'h', arcade.ActionLeft},
		{'d', arcade.ActionRight},
		{' ', arcade.ActionConfirm},
		{'p', arcade.ActionPause},
		{'y', arcade.ActionYes},
		{'N', arcade.ActionNo},
		{'q', arcade.ActionQuit},
		{'z', arcade.ActionNone},
	}
	for _, tt := range tests {
		if got := runeAction(tt.r); got != tt.want {
			t.Errorf("runeAction(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestKeyAction(t *testing.T) {
	term, _ := newTestTerminal(t)
	tests := []struct {
		ev   tcell.Event
		want arcade.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), arcade.ActionUp},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), arcade.ActionConfirm},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), arcade.ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), arcade.ActionRight},
		// clicks only count on the game-over prompt
		{tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone), arcade.ActionNone},
	}
	for _, tt := range tests {
		if got := term.action(tt.ev); got != tt.want {
			t.Errorf("action(%T) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestDrawInstructions(t *testing.T) {
	term, s := newTestTerminal(t)
	term.draw()

	_, h := s.Size()
	for i, want := range arcade.Credit {
		got, _, _, _ := s.GetContent(1+i, h-1)
		if got != want {
			t.Fatalf("credit column %d = %q, want %q", i, got, want)
		}
	}
}

func TestDrawBoard(t *testing.T) {
	term, s := newTestTerminal(t)
	if err := term.ctrl.Handle(arcade.ActionConfirm); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	term.draw()

	f := term.ctrl.Frame()
	w, _ := s.Size()
	ox := (w - f.Session.Grid.Width*cellWidth) / 2
	head := f.Session.Body[0]
	if r, _, _, _ := s.GetContent(ox+head.X*cellWidth, 2+head.Y); r != '@' {
		t.Errorf("head drawn as %q, want '@'", r)
	}
	if r, _, _, _ := s.GetContent(ox, 2); r != '█' {
		t.Errorf("corner drawn as %q, want wall", r)
	}
}

func TestClickGameOverOption(t *testing.T) {
	term, _ := newTestTerminal(t)
	ctrl := term.ctrl
	if err := ctrl.Handle(arcade.ActionConfirm); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	// without steering the snake runs into a wall or an obstacle
	for range 200 {
		if ctrl.Screen() == arcade.ScreenGameOver {
			break
		}
		ctrl.Advance(arcade.MaxFrameTime)
	}
	if ctrl.Screen() != arcade.ScreenGameOver {
		t.Fatal("game never ended")
	}
	term.draw()

	sp, ok := term.options[arcade.OptionNo]
	if !ok {
		t.Fatal("No option was not drawn")
	}
	ev := tcell.NewEventMouse(sp.x0, sp.y, tcell.Button1, tcell.ModNone)
	if got := term.action(ev); got != arcade.ActionNo {
		t.Errorf("click on No = %v, want %v", got, arcade.ActionNo)
	}
	miss := tcell.NewEventMouse(sp.x1, sp.y+1, tcell.Button1, tcell.ModNone)
	if got := term.action(miss); got != arcade.ActionNone {
		t.Errorf("click off the prompt = %v, want none", got)
	}
}
