// Package driver feeds terminal input into an input.State.
//
// Terminals report key presses but never key releases, so held keys
// cannot be observed directly. The Terminal driver approximates a
// held-key model: each key event marks the key down with a deadline,
// and the key is released when no repeat arrives before the deadline
// expires. Terminal key repeat makes this work well for game-style
// held input, at the cost of a short release lag bounded by the hold
// window.
//
// Mouse buttons are exact: tcell reports the full button mask on every
// mouse event, so presses and releases are tracked precisely.
//
// Gamepads are outside the terminal's reach; hosts with pad hardware
// feed the same input.State through its pad methods from their own
// device layer.
package driver
