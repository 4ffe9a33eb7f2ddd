package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
// Digits are handled by the parser and are not rebindable
type KeyTable struct {
	// Special keys (Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyEscape:     IntentQuit,
			tcell.KeyEnter:      IntentStart,
			tcell.KeyBackspace:  IntentBackspace,
			tcell.KeyBackspace2: IntentBackspace,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'r': IntentReset,
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}
