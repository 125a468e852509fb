package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName resolves lowercase tcell key names ("esc", "ctrl-c", "f1")
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		if k == tcell.KeyRune {
			continue
		}
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses a [keys] table into a sparse override KeyTable
// Keys are single characters, rune aliases, or tcell key names; values are action names
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}

	for keyStr, actionName := range bindings {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if k, ok := keyByName[strings.ToLower(keyStr)]; ok && len([]rune(keyStr)) > 1 {
			kt.Keys[k] = action
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = action
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias, or key name)", s)
}

func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
