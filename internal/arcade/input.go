package arcade

import "snakegrid/internal/snake"

// Action is one input event, independent of keyboard, mouse or terminal.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionQuit
	ActionPause

	// ActionYes and ActionNo come from clicking an option on the
	// game-over prompt.
	ActionYes
	ActionNo
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionConfirm:
		return "confirm"
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	case ActionYes:
		return "yes"
	case ActionNo:
		return "no"
	}
	return "none"
}

// direction maps the four arrow actions to snake directions.
func (a Action) direction() (snake.Direction, bool) {
	switch a {
	case ActionUp:
		return snake.Up, true
	case ActionDown:
		return snake.Down, true
	case ActionLeft:
		return snake.Left, true
	case ActionRight:
		return snake.Right, true
	}
	return 0, false
}

// Option is a choice on the game-over prompt.
type Option uint8

const (
	OptionYes Option = iota
	OptionNo
)

// Options in display order, left to right.
var Options = [...]Option{OptionYes, OptionNo}

func (o Option) String() string {
	if o == OptionNo {
		return "No"
	}
	return "Yes"
}

// Action returns the input event for picking o.
func (o Option) Action() Action {
	if o == OptionNo {
		return ActionNo
	}
	return ActionYes
}
