package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable key bindings
	Runes map[rune]Action

	// Special keys (Esc, Ctrl+*, function keys)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'1': ActionSpeed1,
			'2': ActionSpeed2,
			'3': ActionSpeed3,
			'4': ActionSpeed4,
			'5': ActionSpeed5,
			'c': ActionNextColor,
			'f': ActionNextFont,
			' ': ActionPause,
			'p': ActionPause,
			'e': ActionToggleEmoji,
			's': ActionToggleShadow,
			'h': ActionToggleStatus,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Lookup resolves a key press, r is only consulted for tcell.KeyRune
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.Keys[key]
}
