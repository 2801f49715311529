package input

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys. Chords treat these as ordinary keys: a
	// Ctrl+Enter binding is the two-atom chord {KeyCtrl, KeyEnter}.
	KeyCtrl
	KeyAlt
	KeyShift
	KeyMeta

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit keys (top row)
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// keyNames holds the canonical name for each key.
var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeySpace:     "space",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeyCtrl:      "ctrl",
	KeyAlt:       "alt",
	KeyShift:     "shift",
	KeyMeta:      "meta",
	KeyA:         "a",
	KeyB:         "b",
	KeyC:         "c",
	KeyD:         "d",
	KeyE:         "e",
	KeyF:         "f",
	KeyG:         "g",
	KeyH:         "h",
	KeyI:         "i",
	KeyJ:         "j",
	KeyK:         "k",
	KeyL:         "l",
	KeyM:         "m",
	KeyN:         "n",
	KeyO:         "o",
	KeyP:         "p",
	KeyQ:         "q",
	KeyR:         "r",
	KeyS:         "s",
	KeyT:         "t",
	KeyU:         "u",
	KeyV:         "v",
	KeyW:         "w",
	KeyX:         "x",
	KeyY:         "y",
	KeyZ:         "z",
	Key0:         "0",
	Key1:         "1",
	Key2:         "2",
	Key3:         "3",
	Key4:         "4",
	Key5:         "5",
	Key6:         "6",
	Key7:         "7",
	Key8:         "8",
	Key9:         "9",
}

// keyNameMap maps names and aliases (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"esc":     KeyEscape,
	"return":  KeyEnter,
	"cr":      KeyEnter,
	"bs":      KeyBackspace,
	"del":     KeyDelete,
	"ins":     KeyInsert,
	"pgup":    KeyPageUp,
	"pgdn":    KeyPageDown,
	"control": KeyCtrl,
	"option":  KeyAlt,
	"cmd":     KeyMeta,
	"command": KeyMeta,
	"super":   KeyMeta,
}

func init() {
	for k, name := range keyNames {
		keyNameMap[name] = k
	}
}

// String returns the canonical lowercase name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

// IsModifier returns true for Ctrl, Alt, Shift and Meta.
func (k Key) IsModifier() bool {
	return k >= KeyCtrl && k <= KeyMeta
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsLetter returns true if this is a letter key (A-Z).
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true if this is a digit key (0-9).
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}
