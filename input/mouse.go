package input

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton uint8

const (
	// MouseNone indicates no button.
	MouseNone MouseButton = iota
	// MouseLeft is the primary (left) mouse button.
	MouseLeft
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseRight is the secondary (right) mouse button.
	MouseRight
	// MouseBack is the back navigation button (mouse button 4).
	MouseBack
	// MouseForward is the forward navigation button (mouse button 5).
	MouseForward
)

// String returns the canonical lowercase name for the button.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	case MouseBack:
		return "back"
	case MouseForward:
		return "forward"
	default:
		return fmt.Sprintf("mousebutton(%d)", uint8(b))
	}
}

// MouseButtonFromName returns the MouseButton for a name (case-insensitive).
// Returns MouseNone if the name is not recognized.
func MouseButtonFromName(name string) MouseButton {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return MouseLeft
	case "middle":
		return MouseMiddle
	case "right":
		return MouseRight
	case "back":
		return MouseBack
	case "forward":
		return MouseForward
	default:
		return MouseNone
	}
}
