package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"snakegrid/internal/arcade"
	"snakegrid/internal/snake"
)

const (
	screenWidth  = 600
	screenHeight = 400
	cellSize     = 20
	playOffset   = 20
)

var (
	bgColor       = color.RGBA{0, 0, 0, 255}
	wallColor     = color.RGBA{24, 24, 28, 255}
	outlineColor  = color.RGBA{255, 255, 255, 255}
	segmentColor  = color.RGBA{150, 150, 150, 255}
	bodyColor     = color.RGBA{0, 255, 0, 255}
	eyeColor      = color.RGBA{255, 0, 0, 255}
	foodColor     = color.RGBA{255, 0, 0, 255}
	obstacleColor = color.RGBA{0, 160, 60, 255}
	textColor     = color.RGBA{255, 255, 255, 255}
	warnColor     = color.RGBA{255, 0, 0, 255}
)

// keyActions maps keys to arcade actions. Several keys may share an action.
var keyActions = []struct {
	key    ebiten.Key
	action arcade.Action
}{
	{ebiten.KeyArrowUp, arcade.ActionUp},
	{ebiten.KeyW, arcade.ActionUp},
	{ebiten.KeyArrowDown, arcade.ActionDown},
	{ebiten.KeyS, arcade.ActionDown},
	{ebiten.KeyArrowLeft, arcade.ActionLeft},
	{ebiten.KeyA, arcade.ActionLeft},
	{ebiten.KeyArrowRight, arcade.ActionRight},
	{ebiten.KeyD, arcade.ActionRight},
	{ebiten.KeyEnter, arcade.ActionConfirm},
	{ebiten.KeySpace, arcade.ActionConfirm},
	{ebiten.KeyP, arcade.ActionPause},
	{ebiten.KeyY, arcade.ActionYes},
	{ebiten.KeyN, arcade.ActionNo},
	{ebiten.KeyEscape, arcade.ActionQuit},
}

// Game adapts the arcade controller to ebiten.
type Game struct {
	arcade *arcade.Controller
	sounds *sounds
	face   font.Face

	screen      arcade.Screen
	paused      bool
	isMaximised bool
}

// NewGame wraps ctrl. sfx may be nil to run silently.
func NewGame(ctrl *arcade.Controller, sfx *sounds) *Game {
	return &Game{
		arcade: ctrl,
		sounds: sfx,
		face:   basicfont.Face7x13,
		screen: ctrl.Screen(),
	}
}

// Update handles input and advances the simulation. ebiten calls it TPS
// times per second.
func (g *Game) Update() error {
	// Toggle maximised window with F key
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.isMaximised = !g.isMaximised
		if g.isMaximised {
			ebiten.MaximizeWindow()
		} else {
			ebiten.RestoreWindow()
		}
	}

	for _, a := range g.actions() {
		if err := g.arcade.Handle(a); err != nil {
			if errors.Is(err, arcade.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}

	out := g.arcade.Advance(time.Second / time.Duration(ebiten.TPS()))
	g.sounds.played(out)

	f := g.arcade.Frame()
	if f.Screen != g.screen {
		g.screen = f.Screen
		g.sounds.screenChanged(f.Screen)
	}
	if f.Paused != g.paused {
		g.paused = f.Paused
		g.sounds.pauseChanged(f.Paused)
	}
	return nil
}

// actions collects this frame's input.
func (g *Game) actions() []arcade.Action {
	if ebiten.IsWindowBeingClosed() {
		return []arcade.Action{arcade.ActionQuit}
	}
	acts := keyboardActions(inpututil.IsKeyJustPressed)
	if g.screen == arcade.ScreenGameOver && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if o, ok := optionAt(g.face, image.Pt(ebiten.CursorPosition())); ok {
			acts = append(acts, o.Action())
		}
	}
	return acts
}

// keyboardActions returns the actions of every key for which pressed
// reports true, in keyActions order.
func keyboardActions(pressed func(ebiten.Key) bool) []arcade.Action {
	var acts []arcade.Action
	for _, ka := range keyActions {
		if pressed(ka.key) {
			acts = append(acts, ka.action)
		}
	}
	return acts
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	f := g.arcade.Frame()
	switch f.Screen {
	case arcade.ScreenInstructions:
		g.drawInstructions(screen)
	case arcade.ScreenPlaying:
		g.drawBoard(screen, f.Session)
		g.drawHUD(screen, f)
	case arcade.ScreenGameOver:
		g.drawGameOver(screen, f)
	}
}

// Layout keeps a fixed logical screen; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) drawInstructions(screen *ebiten.Image) {
	lineHeight := 20
	startY := (screenHeight - len(arcade.Instructions)*lineHeight) / 2
	for i, line := range arcade.Instructions {
		if line == "" {
			continue
		}
		clr := textColor
		if i == len(arcade.Instructions)-1 {
			clr = warnColor
		}
		g.drawCentered(screen, line, screenWidth/2, startY+i*lineHeight, clr)
	}
	text.Draw(screen, arcade.Credit, g.face, 10, screenHeight-10, textColor)
}

func (g *Game) drawBoard(screen *ebiten.Image, s snake.Snapshot) {
	// wall ring
	for x := 0; x < s.Grid.Width; x++ {
		for y := 0; y < s.Grid.Height; y++ {
			if c := (snake.Cell{X: x, Y: y}); s.Grid.IsBoundary(c) {
				fillCell(screen, c, wallColor)
			}
		}
	}
	vector.StrokeRect(screen, playOffset, playOffset,
		float32(s.Grid.Width*cellSize), float32(s.Grid.Height*cellSize), 2, outlineColor, false)

	for _, c := range s.Obstacles {
		fillCell(screen, c, obstacleColor)
	}
	if s.FoodPlaced {
		fillCell(screen, s.Food, foodColor)
	}

	for i := len(s.Body) - 1; i >= 0; i-- {
		c := s.Body[i]
		fillCell(screen, c, segmentColor)
		x, y := cellOrigin(c)
		vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, bodyColor, false)
		if i == 0 {
			vector.DrawFilledCircle(screen, x+cellSize/2, y+cellSize/2, 8, eyeColor, true)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, f arcade.Frame) {
	s := f.Session
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d | High Score: %d | Speed: %d", s.Score, s.HighScore, s.Speed), playOffset, 2)
	if f.Paused {
		ebitenutil.DebugPrintAt(screen, "Paused - Press P to Resume", playOffset, screenHeight-18)
	} else {
		ebitenutil.DebugPrintAt(screen, "Arrows/WASD: Move  P: Pause  F: Maximize  Esc: Quit", playOffset, screenHeight-18)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, f arcade.Frame) {
	cx, cy := screenWidth/2, screenHeight/2
	g.drawCentered(screen, "Game Over!", cx, cy-60, textColor)
	g.drawCentered(screen, fmt.Sprintf("Score: %d", f.Session.Score), cx, cy-30, textColor)
	g.drawCentered(screen, fmt.Sprintf("Highest Score: %d", f.Session.HighScore), cx, cy, textColor)
	g.drawCentered(screen, "Try Again?", cx, cy+40, textColor)

	for _, o := range f.Options {
		r := optionRect(g.face, o)
		if o == f.Selected {
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y),
				float32(r.Dx()), float32(r.Dy()), 1, outlineColor, false)
		}
		mid := r.Min.Add(r.Max).Div(2)
		g.drawCentered(screen, o.String(), mid.X, mid.Y, textColor)
	}
}

// optionRect is the clickable area of a game-over option, in screen
// coordinates.
func optionRect(face font.Face, o arcade.Option) image.Rectangle {
	cx := screenWidth/2 - 50
	if o == arcade.OptionNo {
		cx = screenWidth/2 + 50
	}
	cy := screenHeight/2 + 80
	b := text.BoundString(face, o.String())
	w, h := b.Dx()/2+12, b.Dy()/2+8
	return image.Rect(cx-w, cy-h, cx+w, cy+h)
}

// optionAt returns the game-over option under pt, if any.
func optionAt(face font.Face, pt image.Point) (arcade.Option, bool) {
	for _, o := range arcade.Options {
		if pt.In(optionRect(face, o)) {
			return o, true
		}
	}
	return 0, false
}

// drawCentered draws s with its bounding box centred on (cx, cy).
func (g *Game) drawCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	b := text.BoundString(g.face, s)
	x := cx - b.Min.X - b.Dx()/2
	y := cy - b.Min.Y - b.Dy()/2
	text.Draw(screen, s, g.face, x, y, clr)
}

func cellOrigin(c snake.Cell) (x, y float32) {
	return float32(c.X*cellSize + playOffset), float32(c.Y*cellSize + playOffset)
}

func fillCell(screen *ebiten.Image, c snake.Cell, clr color.Color) {
	x, y := cellOrigin(c)
	vector.DrawFilledRect(screen, x, y, cellSize, cellSize, clr, false)
}
