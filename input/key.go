// Package input defines the input event catalog: keys, modifiers,
// events, and the ordered byte-sequence mapping table that the
// configuration layer builds from `map` directives.
package input

import "fmt"

// A KeyCode identifies one key variant.
type KeyCode int

const (
	// KeyChar is a plain character key; the character is in Key.Ch.
	KeyChar KeyCode = iota
	// KeyFun is a function key; its number is in Key.Fn.
	KeyFun

	KeyEsc
	KeyBS
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyUpLeft
	KeyUpRight
	KeyDownLeft
	KeyDownRight
	KeyCenter
	KeyBackTab
	KeyPrtScr
	KeyPause
	KeyIns
	KeyHome
	KeyPageUp
	KeyDel
	KeyEnd
	KeyPageDown
	KeyBegin
	KeyMenu
)

// A Key is one key on the keyboard. Most keys are identified by their
// code alone; KeyChar carries the character in Ch and KeyFun carries
// the function-key number in Fn.
type Key struct {
	Code KeyCode
	Ch   rune
	Fn   int
}

// Char returns the key for a plain character.
func Char(ch rune) Key { return Key{Code: KeyChar, Ch: ch} }

// Fun returns the numbered function key.
func Fun(n int) Key { return Key{Code: KeyFun, Fn: n} }

var keyCodeNames = map[KeyCode]string{
	KeyEsc:       "Esc",
	KeyBS:        "BS",
	KeyEnter:     "Enter",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyUpLeft:    "UpLeft",
	KeyUpRight:   "UpRight",
	KeyDownLeft:  "DownLeft",
	KeyDownRight: "DownRight",
	KeyCenter:    "Center",
	KeyBackTab:   "BackTab",
	KeyPrtScr:    "PrtScr",
	KeyPause:     "Pause",
	KeyIns:       "Ins",
	KeyHome:      "Home",
	KeyPageUp:    "PageUp",
	KeyDel:       "Del",
	KeyEnd:       "End",
	KeyPageDown:  "PageDown",
	KeyBegin:     "Begin",
	KeyMenu:      "Menu",
}

// String returns a human-readable name for the key, e.g. "Up",
// "Char('x')", or "F5".
func (k Key) String() string {
	switch k.Code {
	case KeyChar:
		return fmt.Sprintf("Char(%q)", k.Ch)
	case KeyFun:
		return fmt.Sprintf("F%d", k.Fn)
	default:
		if name, ok := keyCodeNames[k.Code]; ok {
			return name
		}
		return fmt.Sprintf("Key(%d)", k.Code)
	}
}
