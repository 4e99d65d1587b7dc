package input

import "github.com/lixenwraith/term-snake/core"

// Action is the game meaning of one key press
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionQuit
	ActionEnter
	ActionInterrupt
	ActionOther // Any unbound key, still counts as "any key"
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
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	case ActionEnter:
		return "enter"
	case ActionInterrupt:
		return "interrupt"
	case ActionOther:
		return "other"
	default:
		return "none"
	}
}

// Frame is the input sampled for one loop tick
// All queries read the same sample, so fan-out within a tick is idempotent
type Frame struct {
	Action Action
}

// Direction maps a movement action to a heading
func (f Frame) Direction() core.Direction {
	switch f.Action {
	case ActionUp:
		return core.DirUp
	case ActionDown:
		return core.DirDown
	case ActionLeft:
		return core.DirLeft
	case ActionRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}

func (f Frame) Up() bool     { return f.Action == ActionUp }
func (f Frame) Down() bool   { return f.Action == ActionDown }
func (f Frame) Left() bool   { return f.Action == ActionLeft }
func (f Frame) Right() bool  { return f.Action == ActionRight }
func (f Frame) Pause() bool  { return f.Action == ActionPause }
func (f Frame) Quit() bool   { return f.Action == ActionQuit }
func (f Frame) Enter() bool  { return f.Action == ActionEnter }
func (f Frame) AnyKey() bool { return f.Action != ActionNone }
