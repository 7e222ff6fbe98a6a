package input

import "strings"

// An Event is a key press together with the modifiers held for it.
// Mods keeps the order in which the modifiers were written in the
// configuration source; whether that order matters is the consumer's
// concern, membership is what counts here.
type Event struct {
	Key  Key
	Mods []Modifier
}

// HasMod reports whether the event carries the given modifier.
func (e Event) HasMod(mod Modifier) bool {
	for _, m := range e.Mods {
		if m == mod {
			return true
		}
	}
	return false
}

// String returns a representation like "Ctrl+Shift+Left" or "Char('x')".
func (e Event) String() string {
	if len(e.Mods) == 0 {
		return e.Key.String()
	}
	parts := make([]string, 0, len(e.Mods)+1)
	for _, m := range e.Mods {
		parts = append(parts, m.String())
	}
	parts = append(parts, e.Key.String())
	return strings.Join(parts, "+")
}
