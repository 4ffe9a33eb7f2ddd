package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// keymapFile is the YAML layout of a keymap override
//
//	keys:
//	  ctrl-q: quit
//	runes:
//	  x: reset
type keymapFile struct {
	Keys  map[string]string `yaml:"keys"`
	Runes map[string]string `yaml:"runes"`
}

// keyNames resolves lower-cased tcell key names such as "enter" or "ctrl-c"
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]IntentType, len(raw.Keys)),
		Runes: make(map[rune]IntentType, len(raw.Runes)),
	}

	for name, action := range raw.Keys {
		key, ok := keyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("section [keys]: unknown key %q", name)
		}
		it, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("section [keys] %q: %w", name, err)
		}
		kt.Keys[key] = it
	}

	for name, action := range raw.Runes {
		r, err := resolveRune(name)
		if err != nil {
			return nil, fmt.Errorf("section [runes]: %w", err)
		}
		it, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("section [runes] %q: %w", name, err)
		}
		kt.Runes[r] = it
	}

	return kt, nil
}

func resolveRune(s string) (rune, error) {
	if s == "space" {
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("key %q: expected a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r >= '0' && r <= '9' {
		return 0, fmt.Errorf("key %q: digits are reserved for the winner count", s)
	}
	return r, nil
}

func resolveAction(name string) (IntentType, error) {
	it, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q", name)
	}
	return it, nil
}

// MergeKeyTable applies a sparse override on top of a copy of base
// A "none" binding removes the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	out := base.Clone()
	if override == nil {
		return out
	}
	for k, it := range override.Keys {
		if it == IntentNone {
			delete(out.Keys, k)
			continue
		}
		out.Keys[k] = it
	}
	for r, it := range override.Runes {
		if it == IntentNone {
			delete(out.Runes, r)
			continue
		}
		out.Runes[r] = it
	}
	return out
}
