package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/multisel/internal/config"
	"github.com/dshills/multisel/internal/dispatcher/handlers/selection"
)

// KeyBinding identifies a key chord for keymap lookup.
type KeyBinding struct {
	Key  tcell.Key
	Rune rune
}

// Keymap maps key chords to action names.
type Keymap map[KeyBinding]string

// NewKeymap builds the keymap from configured bindings. Unparseable
// bindings fall back to the defaults and are reported in the error,
// which is safe to treat as a warning.
func NewKeymap(keys config.KeysConfig) (Keymap, error) {
	km := make(Keymap)
	defaults := config.Default().Keys

	var errs []string
	bind := func(spec, fallback, action string) {
		kb, err := ParseKey(spec)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%q: %v", spec, err))
			kb, _ = ParseKey(fallback)
		}
		km[kb] = action
	}

	bind(keys.SelectOccurrences, defaults.SelectOccurrences, selection.ActionSelectOccurrences)
	bind(keys.SelectNextOccurrence, defaults.SelectNextOccurrence, selection.ActionSelectNextOccurrence)
	bind(keys.ClearSelections, defaults.ClearSelections, selection.ActionClear)

	if len(errs) > 0 {
		return km, fmt.Errorf("invalid key bindings: %s", strings.Join(errs, "; "))
	}
	return km, nil
}

// Lookup resolves a tcell key event to an action name.
func (km Keymap) Lookup(ev *tcell.EventKey) (string, bool) {
	kb := KeyBinding{Key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		kb.Rune = ev.Rune()
	}
	action, ok := km[kb]
	return action, ok
}

// ParseKey parses a key chord name: "Ctrl-A".."Ctrl-Z", "Esc", "Tab",
// "Enter", or "F1".."F12".
func ParseKey(spec string) (KeyBinding, error) {
	switch strings.ToLower(spec) {
	case "esc", "escape":
		return KeyBinding{Key: tcell.KeyEscape}, nil
	case "tab":
		return KeyBinding{Key: tcell.KeyTab}, nil
	case "enter":
		return KeyBinding{Key: tcell.KeyEnter}, nil
	}

	lower := strings.ToLower(spec)
	if after, found := strings.CutPrefix(lower, "ctrl-"); found {
		if len(after) == 1 && after[0] >= 'a' && after[0] <= 'z' {
			key := tcell.KeyCtrlA + tcell.Key(after[0]-'a')
			return KeyBinding{Key: key}, nil
		}
		return KeyBinding{}, fmt.Errorf("unsupported ctrl chord %q", spec)
	}

	if after, found := strings.CutPrefix(lower, "f"); found {
		switch after {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
			n := tcell.Key(after[0] - '0')
			if len(after) == 2 {
				n = 10 + tcell.Key(after[1]-'0')
			}
			return KeyBinding{Key: tcell.KeyF1 + n - 1}, nil
		}
	}

	return KeyBinding{}, fmt.Errorf("unrecognized key %q", spec)
}
