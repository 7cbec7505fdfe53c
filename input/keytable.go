package input

import "github.com/gdamore/tcell/v2"

// Action classifies what a key does
type Action uint8

const (
	ActionNone Action = iota
	ActionButton
	ActionQuit
	ActionRestart
	ActionPause
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Action Action
	Button Buttons
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable binds arrows, wasd and the four numbered switches
func DefaultKeyTable() *KeyTable {
	left := KeyEntry{Action: ActionButton, Button: ButtonLeft}
	down := KeyEntry{Action: ActionButton, Button: ButtonDown}
	up := KeyEntry{Action: ActionButton, Button: ButtonUp}
	right := KeyEntry{Action: ActionButton, Button: ButtonRight}
	quit := KeyEntry{Action: ActionQuit}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   left,
			tcell.KeyDown:   down,
			tcell.KeyUp:     up,
			tcell.KeyRight:  right,
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
		},
		Runes: map[rune]KeyEntry{
			'a': left, '1': left, 'h': left,
			's': down, '2': down, 'j': down,
			'w': up, '3': up, 'k': up,
			'd': right, '4': right, 'l': right,
			'q': quit,
			'r': {Action: ActionRestart},
			'p': {Action: ActionPause},
		},
	}
}

// Lookup resolves a key event, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
