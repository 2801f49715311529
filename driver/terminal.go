package driver

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/input"
)

// DefaultKeyHold is how long a key stays down after its last event.
// Terminal key repeat refreshes the deadline while the key is held.
const DefaultKeyHold = 300 * time.Millisecond

// Terminal translates tcell events into device state for the resolver.
type Terminal struct {
	mu sync.Mutex

	state *input.State
	hold  time.Duration

	// deadlines tracks when each synthetically-held key expires.
	deadlines map[input.Key]time.Time
}

// Option configures a Terminal driver.
type Option func(*Terminal)

// WithKeyHold overrides the key hold window.
func WithKeyHold(d time.Duration) Option {
	return func(t *Terminal) {
		if d > 0 {
			t.hold = d
		}
	}
}

// NewTerminal creates a terminal input driver.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		state:     input.NewState(),
		hold:      DefaultKeyHold,
		deadlines: make(map[input.Key]time.Time),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// HandleEvent applies a tcell event to the device state. Unrecognized
// events are ignored.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	}
}

// Tick expires stale held keys and returns the state snapshot for
// this tick. Call once per tick, before resolving.
func (t *Terminal) Tick(now time.Time) *input.State {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k, deadline := range t.deadlines {
		if now.After(deadline) {
			t.state.ReleaseKey(k)
			delete(t.deadlines, k)
		}
	}
	return t.state
}

// State returns the underlying device state without expiring keys.
func (t *Terminal) State() *input.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	now := ev.When()

	t.mu.Lock()
	defer t.mu.Unlock()

	k, shifted, ok := keyFor(ev)
	if ok {
		t.pressLocked(k, now)
	}

	// Modifiers are synced on every key event: the mask is
	// authoritative for the keys it covers.
	mods := ev.Modifiers()
	t.syncModLocked(input.KeyCtrl, mods&tcell.ModCtrl != 0, now)
	t.syncModLocked(input.KeyAlt, mods&tcell.ModAlt != 0, now)
	t.syncModLocked(input.KeyShift, shifted || mods&tcell.ModShift != 0, now)
	t.syncModLocked(input.KeyMeta, mods&tcell.ModMeta != 0, now)
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	t.mu.Lock()
	defer t.mu.Unlock()

	mask := ev.Buttons()
	buttons := []struct {
		tcell tcell.ButtonMask
		ours  input.MouseButton
	}{
		{tcell.ButtonPrimary, input.MouseLeft},
		{tcell.ButtonMiddle, input.MouseMiddle},
		{tcell.ButtonSecondary, input.MouseRight},
		{tcell.Button4, input.MouseBack},
		{tcell.Button5, input.MouseForward},
	}
	for _, b := range buttons {
		if mask&b.tcell != 0 {
			t.state.PressMouse(b.ours)
		} else {
			t.state.ReleaseMouse(b.ours)
		}
	}
}

func (t *Terminal) pressLocked(k input.Key, now time.Time) {
	t.state.PressKey(k)
	t.deadlines[k] = now.Add(t.hold)
}

func (t *Terminal) syncModLocked(k input.Key, down bool, now time.Time) {
	if down {
		t.pressLocked(k, now)
		return
	}
	t.state.ReleaseKey(k)
	delete(t.deadlines, k)
}

// keyFor maps a tcell key event to an input key. The second result is
// true when the rune implies a held shift (an uppercase letter).
func keyFor(ev *tcell.EventKey) (input.Key, bool, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return input.KeyEnter, false, true
	case tcell.KeyEsc:
		return input.KeyEscape, false, true
	case tcell.KeyTab:
		return input.KeyTab, false, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyBackspace, false, true
	case tcell.KeyDelete:
		return input.KeyDelete, false, true
	case tcell.KeyInsert:
		return input.KeyInsert, false, true
	case tcell.KeyHome:
		return input.KeyHome, false, true
	case tcell.KeyEnd:
		return input.KeyEnd, false, true
	case tcell.KeyPgUp:
		return input.KeyPageUp, false, true
	case tcell.KeyPgDn:
		return input.KeyPageDown, false, true
	case tcell.KeyUp:
		return input.KeyUp, false, true
	case tcell.KeyDown:
		return input.KeyDown, false, true
	case tcell.KeyLeft:
		return input.KeyLeft, false, true
	case tcell.KeyRight:
		return input.KeyRight, false, true
	case tcell.KeyRune:
		return runeKey(ev.Rune())
	}

	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return input.KeyF1 + input.Key(k-tcell.KeyF1), false, true
	}
	// Ctrl+letter arrives as a control code; the named cases above
	// already claimed the overlapping codes (Tab, Enter, Backspace).
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return input.KeyA + input.Key(k-tcell.KeyCtrlA), false, true
	}

	return input.KeyNone, false, false
}

// runeKey maps a printable rune to an input key.
func runeKey(r rune) (input.Key, bool, bool) {
	switch {
	case r == ' ':
		return input.KeySpace, false, true
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return input.KeyA + input.Key(r-'A'), true, true
	case r >= '0' && r <= '9':
		return input.Key0 + input.Key(r-'0'), false, true
	default:
		return input.KeyNone, false, false
	}
}
