package input

import "fmt"

// DefaultAxisThreshold is the activation threshold used when an
// axis-direction atom does not specify one.
const DefaultAxisThreshold = 0.5

// AtomKind discriminates the input modalities an Atom can hold.
type AtomKind uint8

const (
	// AtomNone is the zero Atom's kind.
	AtomNone AtomKind = iota
	// AtomKey is a keyboard key.
	AtomKey
	// AtomMouseButton is a mouse button.
	AtomMouseButton
	// AtomPadButton is a gamepad button on a specific pad.
	AtomPadButton
	// AtomPadAxis is a gamepad axis direction with a threshold.
	AtomPadAxis
)

// String returns a human-readable name for the kind.
func (k AtomKind) String() string {
	switch k {
	case AtomKey:
		return "key"
	case AtomMouseButton:
		return "mouse"
	case AtomPadButton:
		return "padbutton"
	case AtomPadAxis:
		return "padaxis"
	default:
		return "none"
	}
}

// Atom is the smallest indivisible input condition: a single key,
// mouse button, gamepad button, or gamepad axis direction. Atoms are
// immutable values with structural equality; == and map keys work.
//
// The zero Atom has kind AtomNone and is never satisfied.
type Atom struct {
	kind      AtomKind
	key       Key
	mouse     MouseButton
	pad       GamepadID
	button    GamepadButton
	axis      GamepadAxis
	sign      AxisSign
	threshold int16 // snorm16-packed, axis atoms only
}

// NewKeyAtom returns an atom satisfied while the key is held.
func NewKeyAtom(k Key) Atom {
	return Atom{kind: AtomKey, key: k}
}

// NewMouseAtom returns an atom satisfied while the mouse button is held.
func NewMouseAtom(b MouseButton) Atom {
	return Atom{kind: AtomMouseButton, mouse: b}
}

// NewPadButtonAtom returns an atom satisfied while the button on the
// given pad is held.
func NewPadButtonAtom(pad GamepadID, b GamepadButton) Atom {
	return Atom{kind: AtomPadButton, pad: pad, button: b}
}

// NewPadAxisAtom returns an atom satisfied while the axis on the given
// pad exceeds DefaultAxisThreshold in the sign's direction.
func NewPadAxisAtom(pad GamepadID, axis GamepadAxis, sign AxisSign) Atom {
	return NewPadAxisAtomThreshold(pad, axis, sign, DefaultAxisThreshold)
}

// NewPadAxisAtomThreshold is NewPadAxisAtom with an explicit threshold.
// The threshold is clamped to [0, 1].
func NewPadAxisAtomThreshold(pad GamepadID, axis GamepadAxis, sign AxisSign, threshold float64) Atom {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	if sign != Negative {
		sign = Positive
	}
	return Atom{
		kind:      AtomPadAxis,
		pad:       pad,
		axis:      axis,
		sign:      sign,
		threshold: packSnorm16(threshold),
	}
}

// Kind returns the atom's modality.
func (a Atom) Kind() AtomKind { return a.kind }

// Key returns the key for AtomKey atoms, KeyNone otherwise.
func (a Atom) Key() Key {
	if a.kind != AtomKey {
		return KeyNone
	}
	return a.key
}

// MouseButton returns the button for AtomMouseButton atoms.
func (a Atom) MouseButton() MouseButton {
	if a.kind != AtomMouseButton {
		return MouseNone
	}
	return a.mouse
}

// Pad returns the gamepad ID for pad button and axis atoms.
func (a Atom) Pad() GamepadID { return a.pad }

// PadButton returns the button for AtomPadButton atoms.
func (a Atom) PadButton() GamepadButton {
	if a.kind != AtomPadButton {
		return PadButtonNone
	}
	return a.button
}

// Axis returns the axis for AtomPadAxis atoms.
func (a Atom) Axis() GamepadAxis {
	if a.kind != AtomPadAxis {
		return AxisNone
	}
	return a.axis
}

// Sign returns the axis direction for AtomPadAxis atoms.
func (a Atom) Sign() AxisSign { return a.sign }

// Threshold returns the activation threshold for AtomPadAxis atoms,
// 0 otherwise. The value reflects snorm16 packing, so it may differ
// from the constructed value by a tiny amount.
func (a Atom) Threshold() float64 {
	if a.kind != AtomPadAxis {
		return 0
	}
	return unpackSnorm16(a.threshold)
}

// IsZero returns true for the zero Atom.
func (a Atom) IsZero() bool { return a.kind == AtomNone }

// String returns the canonical spec form, parseable by ParseAtom.
func (a Atom) String() string {
	switch a.kind {
	case AtomKey:
		return a.key.String()
	case AtomMouseButton:
		return "mouse:" + a.mouse.String()
	case AtomPadButton:
		return fmt.Sprintf("pad%d:%s", a.pad, a.button)
	case AtomPadAxis:
		if a.threshold == packSnorm16(DefaultAxisThreshold) {
			return fmt.Sprintf("pad%d:%s%s", a.pad, a.axis, a.sign)
		}
		return fmt.Sprintf("pad%d:%s%s@%.3g", a.pad, a.axis, a.sign, a.Threshold())
	default:
		return "none"
	}
}
