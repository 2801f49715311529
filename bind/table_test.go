package bind

import (
	"testing"

	"github.com/dshills/actionmap/input"
)

func TestTableBindChaining(t *testing.T) {
	table := NewTable[string]().
		BindKeys("select", input.KeyEnter).
		BindKeys("open", input.KeyCtrl, input.KeyEnter).
		BindInput("fire", input.NewMouseAtom(input.MouseLeft))

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}

	actions := table.Actions()
	want := []string{"select", "open", "fire"}
	if len(actions) != len(want) {
		t.Fatalf("Actions() = %v, want %v", actions, want)
	}
	for i, a := range want {
		if actions[i] != a {
			t.Errorf("Actions()[%d] = %q, want %q", i, actions[i], a)
		}
	}
}

func TestTableAlternativeBindings(t *testing.T) {
	table := NewTable[string]().
		BindKeys("jump", input.KeySpace).
		BindInput("jump", input.NewPadButtonAtom(0, input.PadSouth))

	bindings := table.Bindings("jump")
	if len(bindings) != 2 {
		t.Fatalf("Bindings() = %d entries, want 2", len(bindings))
	}
	if !bindings[0].Contains(input.NewKeyAtom(input.KeySpace)) {
		t.Error("first binding should be the space chord (registration order)")
	}

	if got := table.Bindings("unknown"); len(got) != 0 {
		t.Errorf("unknown action Bindings() = %d entries, want 0", len(got))
	}
}

func TestTableBindFreezesChord(t *testing.T) {
	chord := KeyChord(input.KeyCtrl, input.KeyS)
	table := NewTable[string]().Bind("save", chord)

	// Mutating the builder after Bind must not affect the table.
	chord.WithKey(input.KeyShift)

	bindings := table.Bindings("save")
	if len(bindings) != 1 || bindings[0].Len() != 2 {
		t.Errorf("stored chord Len() = %d, want 2 (frozen at Bind)", bindings[0].Len())
	}
}

func TestTableIgnoresEmptyBindings(t *testing.T) {
	table := NewTable[string]().
		Bind("noop", &Binding{}).
		Bind("noop", nil).
		BindKeys("noop")

	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (empty chords rejected)", table.Len())
	}
	if len(table.Actions()) != 0 {
		t.Error("no actions should be registered for empty chords")
	}
}

func TestTableUnbind(t *testing.T) {
	table := NewTable[string]().
		BindKeys("a", input.KeyA).
		BindKeys("b", input.KeyB).
		BindKeys("a", input.KeyCtrl, input.KeyA)

	table.Unbind("a")

	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after Unbind", table.Len())
	}
	if len(table.Bindings("a")) != 0 {
		t.Error("unbound action should have no bindings")
	}
	actions := table.Actions()
	if len(actions) != 1 || actions[0] != "b" {
		t.Errorf("Actions() = %v, want [b]", actions)
	}

	// Unbinding an unknown action is a no-op.
	table.Unbind("never-bound")
	if table.Len() != 1 {
		t.Error("unbinding an unknown action should change nothing")
	}
}

func TestTableClear(t *testing.T) {
	table := NewTable[string]().
		BindKeys("a", input.KeyA).
		BindKeys("b", input.KeyB)

	table.Clear()

	if table.Len() != 0 || len(table.Actions()) != 0 {
		t.Error("Clear should remove all registrations")
	}
}

func TestTableTypedActions(t *testing.T) {
	type action int
	const (
		jump action = iota
		shoot
	)

	table := NewTable[action]().
		BindKeys(jump, input.KeySpace).
		BindInput(shoot, input.NewMouseAtom(input.MouseLeft))

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if len(table.Bindings(jump)) != 1 {
		t.Error("typed action lookup should work")
	}
}
