package main

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snakegrid/internal/arcade"
	"snakegrid/internal/snake"
)

// each grid cell is two columns wide so the board looks square
const cellWidth = 2

var (
	defStyle      = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	wallStyle     = defStyle.Foreground(tcell.ColorGray)
	headStyle     = defStyle.Foreground(tcell.ColorRed).Background(tcell.ColorGreen)
	bodyStyle     = defStyle.Foreground(tcell.ColorGreen)
	foodStyle     = defStyle.Foreground(tcell.ColorRed)
	obstacleStyle = defStyle.Foreground(tcell.ColorDarkGreen)
	warnStyle     = defStyle.Foreground(tcell.ColorRed)
	selectedStyle = defStyle.Reverse(true)
)

// span is a clickable run of columns on one row.
type span struct {
	x0, x1, y int
}

func (sp span) contains(x, y int) bool {
	return y == sp.y && x >= sp.x0 && x < sp.x1
}

type terminal struct {
	screen  tcell.Screen
	ctrl    *arcade.Controller
	options map[arcade.Option]span
}

func newTerminal(s tcell.Screen, ctrl *arcade.Controller) *terminal {
	return &terminal{
		screen:  s,
		ctrl:    ctrl,
		options: make(map[arcade.Option]span, len(arcade.Options)),
	}
}

// action translates a terminal event into an arcade action.
func (t *terminal) action(ev tcell.Event) arcade.Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return arcade.ActionUp
		case tcell.KeyDown:
			return arcade.ActionDown
		case tcell.KeyLeft:
			return arcade.ActionLeft
		case tcell.KeyRight:
			return arcade.ActionRight
		case tcell.KeyEnter:
			return arcade.ActionConfirm
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return arcade.ActionQuit
		case tcell.KeyRune:
			return runeAction(ev.Rune())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 || t.ctrl.Screen() != arcade.ScreenGameOver {
			return arcade.ActionNone
		}
		x, y := ev.Position()
		for o, sp := range t.options {
			if sp.contains(x, y) {
				return o.Action()
			}
		}
	}
	return arcade.ActionNone
}

func runeAction(r rune) arcade.Action {
	switch unicode.ToLower(r) {
	case 'k', 'w':
		return arcade.ActionUp
	case 'j', 's':
		return arcade.ActionDown
	case 'h', 'a':
		return arcade.ActionLeft
	case 'l', 'd':
		return arcade.ActionRight
	case ' ':
		return arcade.ActionConfirm
	case 'p':
		return arcade.ActionPause
	case 'y':
		return arcade.ActionYes
	case 'n':
		return arcade.ActionNo
	case 'q':
		return arcade.ActionQuit
	}
	return arcade.ActionNone
}

func (t *terminal) draw() {
	t.screen.Clear()
	f := t.ctrl.Frame()
	switch f.Screen {
	case arcade.ScreenInstructions:
		t.drawInstructions()
	case arcade.ScreenPlaying:
		t.drawBoard(f)
	case arcade.ScreenGameOver:
		t.drawGameOver(f)
	}
	t.screen.Show()
}

func (t *terminal) drawInstructions() {
	w, h := t.screen.Size()
	y := (h - len(arcade.Instructions)) / 2
	for i, line := range arcade.Instructions {
		style := defStyle
		if i == len(arcade.Instructions)-1 {
			style = warnStyle
		}
		t.centered(w/2, y+i, line, style)
	}
	t.text(1, h-1, arcade.Credit, defStyle)
}

func (t *terminal) drawBoard(f arcade.Frame) {
	s := f.Session
	w, _ := t.screen.Size()
	ox := max(0, (w-s.Grid.Width*cellWidth)/2)
	oy := 2

	put := func(c snake.Cell, r rune, style tcell.Style) {
		x := ox + c.X*cellWidth
		t.screen.SetContent(x, oy+c.Y, r, nil, style)
		t.screen.SetContent(x+1, oy+c.Y, ' ', nil, defStyle)
	}

	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			if c := (snake.Cell{X: x, Y: y}); s.Grid.IsBoundary(c) {
				t.screen.SetContent(ox+x*cellWidth, oy+y, '█', nil, wallStyle)
				t.screen.SetContent(ox+x*cellWidth+1, oy+y, '█', nil, wallStyle)
			}
		}
	}
	for _, c := range s.Obstacles {
		put(c, 'X', obstacleStyle)
	}
	if s.FoodPlaced {
		put(s.Food, '*', foodStyle)
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Body[i], '@', headStyle)
		} else {
			put(s.Body[i], 'o', bodyStyle)
		}
	}

	status := fmt.Sprintf("Score: %d | High Score: %d | Speed: %d", s.Score, s.HighScore, s.Speed)
	if f.Paused {
		status += " | Paused - press p to resume"
	}
	t.text(ox, 0, status, defStyle)
}

func (t *terminal) drawGameOver(f arcade.Frame) {
	w, h := t.screen.Size()
	cx, cy := w/2, h/2
	t.centered(cx, cy-4, "Game Over!", defStyle)
	t.centered(cx, cy-2, fmt.Sprintf("Score: %d", f.Session.Score), defStyle)
	t.centered(cx, cy-1, fmt.Sprintf("Highest Score: %d", f.Session.HighScore), defStyle)
	t.centered(cx, cy+1, "Try Again?", defStyle)

	x := cx - 8
	for _, o := range f.Options {
		label := "[ " + o.String() + " ]"
		style := defStyle
		if o == f.Selected {
			style = selectedStyle
		}
		t.text(x, cy+3, label, style)
		t.options[o] = span{x0: x, x1: x + len(label), y: cy + 3}
		x += len(label) + 4
	}
}

func (t *terminal) centered(cx, y int, s string, style tcell.Style) {
	t.text(cx-len([]rune(s))/2, y, s, style)
}

func (t *terminal) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
