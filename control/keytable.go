package control

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyTable binds keys to actions
type KeyTable struct {
	// Printable keys
	Runes map[rune]Action
	// Arrows, Esc and control keys
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionNorth,
			'a': ActionWest,
			's': ActionSouth,
			'd': ActionEast,
			'p': ActionPickUp,
			'x': ActionDrop,
			'i': ActionInventory,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionNorth,
			tcell.KeyDown:   ActionSouth,
			tcell.KeyLeft:   ActionWest,
			tcell.KeyRight:  ActionEast,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{Runes: maps.Clone(kt.Runes), Keys: maps.Clone(kt.Keys)}
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
}

// LoadKeyConfig builds a sparse override table from key name → action name
// bindings. Binding a key to "none" unbinds it when merged.
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{Runes: map[rune]Action{}, Keys: map[tcell.Key]Action{}}

	for keyStr, actionName := range bindings {
		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}

		if k, ok := keyNames[strings.ToLower(keyStr)]; ok {
			kt.Keys[k] = action
			continue
		}
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, err
		}
		kt.Runes[r] = action
	}
	return kt, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// MergeKeyTable returns base overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
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
