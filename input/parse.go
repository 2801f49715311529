package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty atom specification")
	ErrInvalidSpec = errors.New("invalid atom specification")
)

// ParseAtom parses an atom specification string.
//
// Supported formats:
//   - Keys: "enter", "ctrl", "a", "f5", "space"
//   - Mouse buttons: "mouse:left", "mouse:middle"
//   - Gamepad buttons: "pad0:south", "pad1:start"
//   - Axis directions: "pad0:leftx+", "pad0:lefty-", "pad0:leftx+@0.25"
//
// Specs are case-insensitive. Axis thresholds follow "@" and must lie
// in [0, 1]; omitted thresholds default to DefaultAxisThreshold.
func ParseAtom(spec string) (Atom, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return Atom{}, ErrEmptySpec
	}

	if rest, ok := strings.CutPrefix(spec, "mouse:"); ok {
		return parseMouse(rest)
	}
	if rest, ok := strings.CutPrefix(spec, "pad"); ok {
		return parsePad(rest)
	}

	if k := KeyFromName(spec); k != KeyNone {
		return NewKeyAtom(k), nil
	}
	return Atom{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, spec)
}

// MustParseAtom parses an atom specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseAtom(spec string) Atom {
	a, err := ParseAtom(spec)
	if err != nil {
		panic("invalid atom specification: " + spec + ": " + err.Error())
	}
	return a
}

// parseMouse parses the part after "mouse:".
func parseMouse(rest string) (Atom, error) {
	b := MouseButtonFromName(rest)
	if b == MouseNone {
		return Atom{}, fmt.Errorf("%w: unknown mouse button %q", ErrInvalidSpec, rest)
	}
	return NewMouseAtom(b), nil
}

// parsePad parses the part after "pad": a pad number, a colon, then a
// button name or an axis direction.
func parsePad(rest string) (Atom, error) {
	idx := strings.IndexByte(rest, ':')
	if idx <= 0 {
		return Atom{}, fmt.Errorf("%w: expected pad number and colon", ErrInvalidSpec)
	}

	n, err := strconv.ParseUint(rest[:idx], 10, 8)
	if err != nil {
		return Atom{}, fmt.Errorf("%w: bad pad number %q", ErrInvalidSpec, rest[:idx])
	}
	pad := GamepadID(n)

	part := rest[idx+1:]
	if part == "" {
		return Atom{}, fmt.Errorf("%w: missing pad input name", ErrInvalidSpec)
	}

	if b := PadButtonFromName(part); b != PadButtonNone {
		return NewPadButtonAtom(pad, b), nil
	}

	return parseAxisDirection(pad, part)
}

// parseAxisDirection parses "<axis><sign>" with an optional "@threshold".
func parseAxisDirection(pad GamepadID, part string) (Atom, error) {
	threshold := DefaultAxisThreshold
	if at := strings.IndexByte(part, '@'); at >= 0 {
		t, err := strconv.ParseFloat(part[at+1:], 64)
		if err != nil {
			return Atom{}, fmt.Errorf("%w: bad threshold %q", ErrInvalidSpec, part[at+1:])
		}
		if t < 0 || t > 1 {
			return Atom{}, fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidSpec, t)
		}
		threshold = t
		part = part[:at]
	}

	if len(part) < 2 {
		return Atom{}, fmt.Errorf("%w: unknown pad input %q", ErrInvalidSpec, part)
	}

	var sign AxisSign
	switch part[len(part)-1] {
	case '+':
		sign = Positive
	case '-':
		sign = Negative
	default:
		return Atom{}, fmt.Errorf("%w: axis direction %q needs + or - suffix", ErrInvalidSpec, part)
	}

	axis := AxisFromName(part[:len(part)-1])
	if axis == AxisNone {
		return Atom{}, fmt.Errorf("%w: unknown axis %q", ErrInvalidSpec, part[:len(part)-1])
	}

	return NewPadAxisAtomThreshold(pad, axis, sign, threshold), nil
}

// NormalizeSpec parses and re-formats an atom specification to its
// canonical form.
func NormalizeSpec(spec string) (string, error) {
	a, err := ParseAtom(spec)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}
