package driver

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/input"
)

func TestTerminalKeyPressAndExpiry(t *testing.T) {
	d := NewTerminal(WithKeyHold(100 * time.Millisecond))
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))

	now := time.Now()
	s := d.Tick(now)
	if !s.KeyDown(input.KeyA) {
		t.Error("a should be down after the key event")
	}

	// Still within the hold window.
	s = d.Tick(now.Add(50 * time.Millisecond))
	if !s.KeyDown(input.KeyA) {
		t.Error("a should still be down inside the hold window")
	}

	// Past the window, no repeat arrived.
	s = d.Tick(now.Add(500 * time.Millisecond))
	if s.KeyDown(input.KeyA) {
		t.Error("a should expire after the hold window")
	}
}

func TestTerminalRepeatRefreshesHold(t *testing.T) {
	d := NewTerminal(WithKeyHold(100 * time.Millisecond))

	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	first := time.Now()

	// A repeat event, as the terminal delivers while the key is held,
	// pushes the deadline forward.
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))

	s := d.Tick(first.Add(50 * time.Millisecond))
	if !s.KeyDown(input.KeyA) {
		t.Error("a should remain down while repeats arrive")
	}
}

func TestTerminalNamedKeys(t *testing.T) {
	tests := []struct {
		name  string
		tcell tcell.Key
		want  input.Key
	}{
		{"enter", tcell.KeyEnter, input.KeyEnter},
		{"escape", tcell.KeyEsc, input.KeyEscape},
		{"tab", tcell.KeyTab, input.KeyTab},
		{"backspace", tcell.KeyBackspace, input.KeyBackspace},
		{"backspace2", tcell.KeyBackspace2, input.KeyBackspace},
		{"delete", tcell.KeyDelete, input.KeyDelete},
		{"home", tcell.KeyHome, input.KeyHome},
		{"pgdn", tcell.KeyPgDn, input.KeyPageDown},
		{"up", tcell.KeyUp, input.KeyUp},
		{"f1", tcell.KeyF1, input.KeyF1},
		{"f12", tcell.KeyF12, input.KeyF12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTerminal()
			d.HandleEvent(tcell.NewEventKey(tt.tcell, 0, tcell.ModNone))
			if !d.Tick(time.Now()).KeyDown(tt.want) {
				t.Errorf("%s should press %v", tt.name, tt.want)
			}
		})
	}
}

func TestTerminalCtrlLetter(t *testing.T) {
	// Ctrl+Q arrives as the control code with the ctrl modifier set.
	d := NewTerminal()
	d.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))

	s := d.Tick(time.Now())
	if !s.KeyDown(input.KeyQ) {
		t.Error("ctrl+q should press q")
	}
	if !s.KeyDown(input.KeyCtrl) {
		t.Error("ctrl+q should press ctrl")
	}
}

func TestTerminalModifierReleaseOnNextEvent(t *testing.T) {
	d := NewTerminal()
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt))

	s := d.Tick(time.Now())
	if !s.KeyDown(input.KeyAlt) {
		t.Error("alt should be down while the modifier is reported")
	}

	// The next key event without the modifier releases it immediately.
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	s = d.Tick(time.Now())
	if s.KeyDown(input.KeyAlt) {
		t.Error("alt should release when the mask drops it")
	}
	if !s.KeyDown(input.KeyA) {
		t.Error("a should still be down")
	}
}

func TestTerminalUppercaseRuneImpliesShift(t *testing.T) {
	d := NewTerminal()
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone))

	s := d.Tick(time.Now())
	if !s.KeyDown(input.KeyG) {
		t.Error("G should press g")
	}
	if !s.KeyDown(input.KeyShift) {
		t.Error("an uppercase rune should press shift")
	}
}

func TestTerminalDigitsAndSpace(t *testing.T) {
	d := NewTerminal()
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone))
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	s := d.Tick(time.Now())
	if !s.KeyDown(input.Key7) {
		t.Error("7 should press the digit key")
	}
	if !s.KeyDown(input.KeySpace) {
		t.Error("space should press the space key")
	}
}

func TestTerminalUnmappedRuneIgnored(t *testing.T) {
	d := NewTerminal()
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone))
	if len(d.Tick(time.Now()).Keys()) != 0 {
		t.Error("unmapped runes should leave the state untouched")
	}
}

func TestTerminalMousePressAndRelease(t *testing.T) {
	d := NewTerminal()

	d.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone))
	s := d.Tick(time.Now())
	if !s.MouseDown(input.MouseLeft) {
		t.Error("primary button should press mouse left")
	}

	// Adding middle keeps left held.
	d.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonPrimary|tcell.ButtonMiddle, tcell.ModNone))
	s = d.Tick(time.Now())
	if !s.MouseDown(input.MouseLeft) || !s.MouseDown(input.MouseMiddle) {
		t.Error("both buttons should be down")
	}

	// An empty mask releases everything.
	d.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	s = d.Tick(time.Now())
	if s.MouseDown(input.MouseLeft) || s.MouseDown(input.MouseMiddle) {
		t.Error("empty button mask should release all buttons")
	}
}

func TestTerminalMouseSecondaryIsRight(t *testing.T) {
	d := NewTerminal()
	d.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonSecondary, tcell.ModNone))
	if !d.Tick(time.Now()).MouseDown(input.MouseRight) {
		t.Error("secondary button should press mouse right")
	}
}
