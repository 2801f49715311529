package bind

import (
	"sync"

	"github.com/dshills/actionmap/input"
)

// Table maps action identifiers to their registered bindings. One
// action may carry several alternative bindings; any one matching
// activates the action. Registration order is preserved, globally and
// per action, and serves as the deterministic tie-break during
// resolution.
//
// A is the caller's action identifier type; any comparable type works
// (string, int, a custom enum type).
//
// Bind calls are expected outside the per-tick resolution window. The
// internal lock keeps concurrent registration safe, but swapping
// bindings mid-tick is the host's responsibility to avoid.
type Table[A comparable] struct {
	mu sync.RWMutex

	// entries holds every registered binding in global call order.
	entries []entry[A]

	// order lists actions by first registration, for stable enumeration.
	order []A
	seen  map[A]struct{}
}

type entry[A comparable] struct {
	action  A
	binding *Binding
}

// NewTable creates an empty binding table.
func NewTable[A comparable]() *Table[A] {
	return &Table[A]{seen: make(map[A]struct{})}
}

// Bind registers a binding for an action and returns the table for
// chaining. The table stores a frozen copy of the chord; later builder
// calls on the argument do not affect the registration. Binding the
// same chord twice is harmless: the duplicate entry is redundant but
// never changes resolution outcomes.
func (t *Table[A]) Bind(action A, b *Binding) *Table[A] {
	if b == nil || b.Len() == 0 {
		return t
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, entry[A]{action: action, binding: b.Clone()})
	if _, ok := t.seen[action]; !ok {
		t.seen[action] = struct{}{}
		t.order = append(t.order, action)
	}
	return t
}

// BindInput registers a single-atom binding for an action.
func (t *Table[A]) BindInput(action A, a input.Atom) *Table[A] {
	return t.Bind(action, Chord(a))
}

// BindAll registers one chord requiring all the given atoms at once.
func (t *Table[A]) BindAll(action A, atoms ...input.Atom) *Table[A] {
	return t.Bind(action, ChordOf(atoms...))
}

// BindKeys registers one chord requiring all the given keys at once.
func (t *Table[A]) BindKeys(action A, keys ...input.Key) *Table[A] {
	return t.Bind(action, KeyChord(keys...))
}

// Unbind removes every binding registered for an action.
func (t *Table[A]) Unbind(action A) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.action != action {
			kept = append(kept, e)
		}
	}
	t.entries = kept

	if _, ok := t.seen[action]; ok {
		delete(t.seen, action)
		for i, a := range t.order {
			if a == action {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
}

// Clear removes all registrations.
func (t *Table[A]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = nil
	t.order = nil
	t.seen = make(map[A]struct{})
}

// Bindings returns copies of the bindings registered for an action, in
// registration order. Unknown actions yield an empty slice.
func (t *Table[A]) Bindings(action A) []*Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []*Binding
	for _, e := range t.entries {
		if e.action == action {
			out = append(out, e.binding.Clone())
		}
	}
	return out
}

// Actions returns all bound actions in first-registration order.
func (t *Table[A]) Actions() []A {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]A, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the total number of registered bindings.
func (t *Table[A]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// match pairs a matching entry with its registration index.
type match[A comparable] struct {
	action  A
	binding *Binding
	seq     int
}

// matches returns every binding matched by the snapshot, in global
// registration order. Called by the resolver each tick.
func (t *Table[A]) matches(s *input.State) []match[A] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []match[A]
	for i, e := range t.entries {
		if e.binding.Matches(s) {
			out = append(out, match[A]{action: e.action, binding: e.binding, seq: i})
		}
	}
	return out
}
