package bind

import (
	"github.com/dshills/actionmap/input"
)

// Resolver is the per-tick resolution engine. Each Tick it matches the
// device snapshot against the table, removes dominated chords, and
// diffs the surviving action set against the previous tick for edge
// detection.
//
// Resolver carries only two pieces of state across ticks: the current
// and previous activation sets. It is meant to be owned by the host's
// tick loop; it performs no locking of its own.
type Resolver[A comparable] struct {
	table *Table[A]

	// current and previous map active actions to their strength.
	current  map[A]float64
	previous map[A]float64
}

// NewResolver creates a resolver over a binding table. Both activation
// sets start empty, so nothing is active and no edges fire before the
// first Tick.
func NewResolver[A comparable](table *Table[A]) *Resolver[A] {
	return &Resolver[A]{
		table:    table,
		current:  make(map[A]float64),
		previous: make(map[A]float64),
	}
}

// Table returns the resolver's binding table.
func (r *Resolver[A]) Table() *Table[A] {
	return r.table
}

// Tick resolves one input-sampling tick against the snapshot.
//
// A binding matches when every one of its atoms is satisfied. A
// matching binding is dominated when any other matching binding —
// for the same action or a different one — requires a strict superset
// of its atoms; dominated bindings contribute nothing. An action is
// active this tick when it has at least one matching, undominated
// binding. The previous tick's activation set is retained so the
// Just* predicates report edges until the next Tick.
func (r *Resolver[A]) Tick(s *input.State) {
	matches := r.table.matches(s)

	survivors := make([]match[A], 0, len(matches))
	for i, m := range matches {
		dominated := false
		for j, other := range matches {
			if i == j {
				continue
			}
			if m.binding.StrictSubsetOf(other.binding) {
				dominated = true
				break
			}
		}
		if !dominated {
			survivors = append(survivors, m)
		}
	}

	active := make(map[A]float64, len(survivors))
	// best tracks the winning chord per action: most atoms first,
	// then earliest registration.
	best := make(map[A]match[A], len(survivors))
	for _, m := range survivors {
		b, ok := best[m.action]
		if !ok || m.binding.Len() > b.binding.Len() {
			best[m.action] = m
		}
	}
	for action, m := range best {
		active[action] = m.binding.Strength(s)
	}

	r.previous = r.current
	r.current = active
}

// Active reports whether the action is active as of the last Tick.
// Unknown actions are simply inactive.
func (r *Resolver[A]) Active(action A) bool {
	_, ok := r.current[action]
	return ok
}

// JustActive reports whether the action became active on the last
// Tick: active now, inactive the tick before.
func (r *Resolver[A]) JustActive(action A) bool {
	if _, ok := r.current[action]; !ok {
		return false
	}
	_, was := r.previous[action]
	return !was
}

// JustInactive reports whether the action became inactive on the last
// Tick: inactive now, active the tick before.
func (r *Resolver[A]) JustInactive(action A) bool {
	if _, ok := r.current[action]; ok {
		return false
	}
	_, was := r.previous[action]
	return was
}

// Strength returns the analog magnitude behind an active action: the
// average atom strength of its winning chord. Inactive and unknown
// actions return 0. Digital chords report 1 while active.
func (r *Resolver[A]) Strength(action A) float64 {
	return r.current[action]
}

// ActiveActions returns the currently active actions in the table's
// registration order.
func (r *Resolver[A]) ActiveActions() []A {
	var out []A
	for _, a := range r.table.Actions() {
		if _, ok := r.current[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Reset drops both activation sets. No action is active afterwards and
// no just-inactive edges fire for previously active actions; use it
// when the host changes contexts and stale edges would mislead.
func (r *Resolver[A]) Reset() {
	r.current = make(map[A]float64)
	r.previous = make(map[A]float64)
}
