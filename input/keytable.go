package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Escape, Enter)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentToggle,
			tcell.KeyCtrlR:  IntentRestart,
		},
		Runes: map[rune]IntentType{
			' ': IntentToggle,
			'p': IntentToggle,
			'r': IntentRestart,
			'd': IntentToggleMode,
			'm': IntentToggleSound,
			'q': IntentQuit,
		},
	}
}

// Translate resolves a key event; unbound keys yield IntentNone
func (t *KeyTable) Translate(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
