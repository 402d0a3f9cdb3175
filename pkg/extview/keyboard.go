package extview

// KeyEventType mirrors the platform keyboard event kinds a view reports.
type KeyEventType int

const (
	// KeyEventRawKeyDown is the initial, untranslated key press.
	KeyEventRawKeyDown KeyEventType = iota
	// KeyEventKeyDown is a translated (possibly repeating) key press.
	KeyEventKeyDown
	// KeyEventKeyUp is a key release.
	KeyEventKeyUp
	// KeyEventChar is a character input event.
	KeyEventChar
)

func (t KeyEventType) String() string {
	switch t {
	case KeyEventRawKeyDown:
		return "raw_key_down"
	case KeyEventKeyDown:
		return "key_down"
	case KeyEventKeyUp:
		return "key_up"
	case KeyEventChar:
		return "char"
	default:
		return "unknown"
	}
}

// Modifier represents keyboard modifier flags. Values match the GDK
// modifier masks so cgo builds can pass state through unchanged.
type Modifier uint

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0 // GDK_SHIFT_MASK
	ModCtrl  Modifier = 1 << 2 // GDK_CONTROL_MASK
	ModAlt   Modifier = 1 << 3 // GDK_ALT_MASK
)

// GDK keyvals for keys the hosting layer cares about.
const (
	KeyvalEscape uint = 0xff1b
	KeyvalReturn uint = 0xff0d
)

// KeyEvent is a native keyboard event as delivered to a hosted view.
type KeyEvent struct {
	Type      KeyEventType
	Keyval    uint // GDK keyval (layout-translated)
	Keycode   uint // hardware keycode (layout-independent)
	Modifiers Modifier
}
