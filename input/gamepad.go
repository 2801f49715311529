package input

import (
	"fmt"
	"strings"
)

// GamepadID identifies a connected gamepad. IDs are assigned by the
// host; the resolver only uses them to keep pads distinct.
type GamepadID uint8

// GamepadButton represents a gamepad button.
type GamepadButton uint8

const (
	// PadButtonNone indicates no button.
	PadButtonNone GamepadButton = iota
	// PadSouth is the bottom face button (A on Xbox, Cross on PlayStation).
	PadSouth
	// PadEast is the right face button (B on Xbox, Circle on PlayStation).
	PadEast
	// PadWest is the left face button (X on Xbox, Square on PlayStation).
	PadWest
	// PadNorth is the top face button (Y on Xbox, Triangle on PlayStation).
	PadNorth
	// PadLeftBumper is the left shoulder button.
	PadLeftBumper
	// PadRightBumper is the right shoulder button.
	PadRightBumper
	// PadLeftTrigger is the left trigger treated as a button.
	PadLeftTrigger
	// PadRightTrigger is the right trigger treated as a button.
	PadRightTrigger
	// PadSelect is the select/back button.
	PadSelect
	// PadStart is the start/menu button.
	PadStart
	// PadMode is the guide/home button.
	PadMode
	// PadLeftThumb is the left stick click.
	PadLeftThumb
	// PadRightThumb is the right stick click.
	PadRightThumb
	// PadDPadUp is the directional pad up.
	PadDPadUp
	// PadDPadDown is the directional pad down.
	PadDPadDown
	// PadDPadLeft is the directional pad left.
	PadDPadLeft
	// PadDPadRight is the directional pad right.
	PadDPadRight
)

// padButtonNames holds the canonical name for each gamepad button.
var padButtonNames = map[GamepadButton]string{
	PadSouth:        "south",
	PadEast:         "east",
	PadWest:         "west",
	PadNorth:        "north",
	PadLeftBumper:   "lb",
	PadRightBumper:  "rb",
	PadLeftTrigger:  "lt",
	PadRightTrigger: "rt",
	PadSelect:       "select",
	PadStart:        "start",
	PadMode:         "mode",
	PadLeftThumb:    "lthumb",
	PadRightThumb:   "rthumb",
	PadDPadUp:       "dpadup",
	PadDPadDown:     "dpaddown",
	PadDPadLeft:     "dpadleft",
	PadDPadRight:    "dpadright",
}

var padButtonNameMap = map[string]GamepadButton{}

func init() {
	for b, name := range padButtonNames {
		padButtonNameMap[name] = b
	}
}

// String returns the canonical lowercase name for the button.
func (b GamepadButton) String() string {
	if name, ok := padButtonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("padbutton(%d)", uint8(b))
}

// PadButtonFromName returns the GamepadButton for a name (case-insensitive).
// Returns PadButtonNone if the name is not recognized.
func PadButtonFromName(name string) GamepadButton {
	name = strings.ToLower(strings.TrimSpace(name))
	if b, ok := padButtonNameMap[name]; ok {
		return b
	}
	return PadButtonNone
}

// GamepadAxis represents a gamepad analog axis.
type GamepadAxis uint8

const (
	// AxisNone indicates no axis.
	AxisNone GamepadAxis = iota
	// AxisLeftX is the left stick horizontal axis.
	AxisLeftX
	// AxisLeftY is the left stick vertical axis.
	AxisLeftY
	// AxisRightX is the right stick horizontal axis.
	AxisRightX
	// AxisRightY is the right stick vertical axis.
	AxisRightY
	// AxisLeftZ is the left trigger analog axis.
	AxisLeftZ
	// AxisRightZ is the right trigger analog axis.
	AxisRightZ
	// AxisDPadX is the directional pad horizontal axis.
	AxisDPadX
	// AxisDPadY is the directional pad vertical axis.
	AxisDPadY
)

// axisNames holds the canonical name for each axis.
var axisNames = map[GamepadAxis]string{
	AxisLeftX:  "leftx",
	AxisLeftY:  "lefty",
	AxisRightX: "rightx",
	AxisRightY: "righty",
	AxisLeftZ:  "leftz",
	AxisRightZ: "rightz",
	AxisDPadX:  "dpadx",
	AxisDPadY:  "dpady",
}

var axisNameMap = map[string]GamepadAxis{}

func init() {
	for a, name := range axisNames {
		axisNameMap[name] = a
	}
}

// String returns the canonical lowercase name for the axis.
func (a GamepadAxis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("axis(%d)", uint8(a))
}

// AxisFromName returns the GamepadAxis for a name (case-insensitive).
// Returns AxisNone if the name is not recognized.
func AxisFromName(name string) GamepadAxis {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := axisNameMap[name]; ok {
		return a
	}
	return AxisNone
}

// AxisSign selects one direction of an analog axis.
type AxisSign int8

const (
	// Positive matches axis values above the threshold.
	Positive AxisSign = 1
	// Negative matches axis values below the negated threshold.
	Negative AxisSign = -1
)

// String returns "+" or "-".
func (s AxisSign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}
