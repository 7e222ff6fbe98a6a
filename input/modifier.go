package input

// A Modifier is one modifier key held during an input event.
type Modifier int

const (
	ModShift Modifier = iota
	ModCtrl
	ModMeta
	ModAlt
)

// String returns a human-readable name for the modifier.
func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "Shift"
	case ModCtrl:
		return "Ctrl"
	case ModMeta:
		return "Meta"
	case ModAlt:
		return "Alt"
	default:
		return "Unknown"
	}
}
