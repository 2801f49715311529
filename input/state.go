package input

import "slices"

// State is a snapshot of current device state: which keys, mouse
// buttons, and gamepad buttons are down, and where each gamepad axis
// sits. The host feeds a State once per tick; the resolver only reads
// it through Satisfied and Strength.
//
// State is not safe for concurrent mutation. The expected model is a
// single goroutine that updates the state and then resolves against
// it (see bind.Resolver).
type State struct {
	keys  map[Key]struct{}
	mouse map[MouseButton]struct{}
	pads  map[GamepadID]*padState
}

type padState struct {
	buttons map[GamepadButton]struct{}
	axes    map[GamepadAxis]float64
}

func newPadState() *padState {
	return &padState{
		buttons: make(map[GamepadButton]struct{}),
		axes:    make(map[GamepadAxis]float64),
	}
}

// NewState creates an empty device state with nothing pressed.
func NewState() *State {
	return &State{
		keys:  make(map[Key]struct{}),
		mouse: make(map[MouseButton]struct{}),
		pads:  make(map[GamepadID]*padState),
	}
}

// PressKey marks a key as down. Pressing an already-down key is a no-op.
func (s *State) PressKey(k Key) {
	if k == KeyNone {
		return
	}
	s.keys[k] = struct{}{}
}

// ReleaseKey marks a key as up.
func (s *State) ReleaseKey(k Key) {
	delete(s.keys, k)
}

// KeyDown reports whether a key is currently down.
func (s *State) KeyDown(k Key) bool {
	_, ok := s.keys[k]
	return ok
}

// Keys returns all currently-down keys in ascending key order.
func (s *State) Keys() []Key {
	keys := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// PressMouse marks a mouse button as down.
func (s *State) PressMouse(b MouseButton) {
	if b == MouseNone {
		return
	}
	s.mouse[b] = struct{}{}
}

// ReleaseMouse marks a mouse button as up.
func (s *State) ReleaseMouse(b MouseButton) {
	delete(s.mouse, b)
}

// MouseDown reports whether a mouse button is currently down.
func (s *State) MouseDown(b MouseButton) bool {
	_, ok := s.mouse[b]
	return ok
}

// ConnectPad registers a gamepad. Pressing a button or setting an axis
// connects the pad implicitly, so calling this is optional.
func (s *State) ConnectPad(pad GamepadID) {
	s.padFor(pad)
}

// DisconnectPad removes a gamepad and clears all its buttons and axes.
func (s *State) DisconnectPad(pad GamepadID) {
	delete(s.pads, pad)
}

// PadConnected reports whether a gamepad is known to the state.
func (s *State) PadConnected(pad GamepadID) bool {
	_, ok := s.pads[pad]
	return ok
}

// PressPadButton marks a gamepad button as down.
func (s *State) PressPadButton(pad GamepadID, b GamepadButton) {
	if b == PadButtonNone {
		return
	}
	s.padFor(pad).buttons[b] = struct{}{}
}

// ReleasePadButton marks a gamepad button as up.
func (s *State) ReleasePadButton(pad GamepadID, b GamepadButton) {
	if ps, ok := s.pads[pad]; ok {
		delete(ps.buttons, b)
	}
}

// PadButtonDown reports whether a gamepad button is currently down.
func (s *State) PadButtonDown(pad GamepadID, b GamepadButton) bool {
	ps, ok := s.pads[pad]
	if !ok {
		return false
	}
	_, ok = ps.buttons[b]
	return ok
}

// SetAxis records a signed axis value, clamped to [-1, 1]. A value of
// exactly 0 clears the axis.
func (s *State) SetAxis(pad GamepadID, axis GamepadAxis, v float64) {
	if axis == AxisNone {
		return
	}
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	ps := s.padFor(pad)
	if v == 0 {
		delete(ps.axes, axis)
		return
	}
	ps.axes[axis] = v
}

// Axis returns the current signed axis value, 0 if unset.
func (s *State) Axis(pad GamepadID, axis GamepadAxis) float64 {
	ps, ok := s.pads[pad]
	if !ok {
		return 0
	}
	return ps.axes[axis]
}

// Reset releases every key, button and axis, and forgets all pads.
func (s *State) Reset() {
	s.keys = make(map[Key]struct{})
	s.mouse = make(map[MouseButton]struct{})
	s.pads = make(map[GamepadID]*padState)
}

// Satisfied reports whether a single atom's condition holds against
// this snapshot. Key, mouse and pad button atoms are satisfied by
// membership in the corresponding pressed set; an axis atom is
// satisfied when the signed axis value exceeds the atom's threshold in
// the atom's direction.
func (s *State) Satisfied(a Atom) bool {
	switch a.kind {
	case AtomKey:
		return s.KeyDown(a.key)
	case AtomMouseButton:
		return s.MouseDown(a.mouse)
	case AtomPadButton:
		return s.PadButtonDown(a.pad, a.button)
	case AtomPadAxis:
		v := s.Axis(a.pad, a.axis)
		return float64(a.sign)*v > a.Threshold()
	default:
		return false
	}
}

// Strength returns the analog magnitude behind a satisfied atom:
// 1 for digital atoms, the absolute axis value for axis atoms, and 0
// when the atom is not satisfied.
func (s *State) Strength(a Atom) float64 {
	if !s.Satisfied(a) {
		return 0
	}
	if a.kind == AtomPadAxis {
		v := s.Axis(a.pad, a.axis)
		if v < 0 {
			return -v
		}
		return v
	}
	return 1
}

func (s *State) padFor(pad GamepadID) *padState {
	ps, ok := s.pads[pad]
	if !ok {
		ps = newPadState()
		s.pads[pad] = ps
	}
	return ps
}
