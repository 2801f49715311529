// Package input models physical input conditions and per-tick device state.
//
// The package provides two building blocks for the binding resolver:
//
//   - Atom: the smallest indivisible input condition — a keyboard key,
//     a mouse button, a gamepad button, or a gamepad axis pushed past a
//     threshold in one direction. Atoms are immutable values with
//     structural equality, so they can be deduplicated and used as map
//     keys.
//   - State: a snapshot of everything currently pressed, fed by the
//     host once per tick. State answers the one question the resolver
//     asks: is this atom satisfied right now?
//
// # Atom Specs
//
// Atoms have a canonical string form used by binding files and scripts:
//
//	enter  ctrl  a  f5            keyboard keys
//	mouse:left  mouse:middle      mouse buttons
//	pad0:south  pad1:start        gamepad buttons
//	pad0:leftx+  pad0:lefty-@0.25 axis directions, optional threshold
//
// ParseAtom and Atom.String round-trip through this form.
//
// # Axis Thresholds
//
// An axis-direction atom is satisfied when the signed axis value
// exceeds its threshold in the atom's direction. Thresholds live in
// [0, 1] and default to DefaultAxisThreshold. Internally the threshold
// is packed into an int16 so that Atom stays comparable; the packing
// loses a little precision (well under 0.001).
package input
