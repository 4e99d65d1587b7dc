package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, enter)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns WASD + arrows, p pause, q quit, enter and Ctrl-C
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:    ActionUp,
			tcell.KeyDown:  ActionDown,
			tcell.KeyLeft:  ActionLeft,
			tcell.KeyRight: ActionRight,
			tcell.KeyEnter: ActionEnter,
			tcell.KeyLF:    ActionEnter,
			tcell.KeyCtrlC: ActionInterrupt,
		},
		Runes: map[rune]Action{
			'w': ActionUp, 'W': ActionUp,
			's': ActionDown, 'S': ActionDown,
			'a': ActionLeft, 'A': ActionLeft,
			'd': ActionRight, 'D': ActionRight,
			'p': ActionPause, 'P': ActionPause,
			'q': ActionQuit, 'Q': ActionQuit,
			'\n': ActionEnter, '\r': ActionEnter,
		},
	}
}

// Lookup classifies a key event, unbound keys are ActionOther
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		if a, ok := t.Runes[ev.Rune()]; ok {
			return a
		}
		return ActionOther
	}
	if a, ok := t.SpecialKeys[ev.Key()]; ok {
		return a
	}
	return ActionOther
}
