package bind

import (
	"strings"

	"github.com/dshills/actionmap/input"
)

// Binding is a chord: a set of input atoms that are all required
// simultaneously. Bindings are built by accumulation, starting from a
// seed atom, and deduplicate atoms by structural equality. Once passed
// to Table.Bind the table stores a frozen copy, so a builder can be
// reused or discarded freely.
type Binding struct {
	atoms []input.Atom // insertion order, no duplicates
}

// Chord starts a binding from a seed atom.
func Chord(seed input.Atom) *Binding {
	b := &Binding{}
	return b.With(seed)
}

// ChordOf builds a binding requiring all the given atoms at once.
func ChordOf(atoms ...input.Atom) *Binding {
	b := &Binding{}
	for _, a := range atoms {
		b.With(a)
	}
	return b
}

// KeyChord builds a binding requiring all the given keys at once.
func KeyChord(keys ...input.Key) *Binding {
	b := &Binding{}
	for _, k := range keys {
		b.With(input.NewKeyAtom(k))
	}
	return b
}

// With adds an atom to the chord. Adding an atom already present is a
// no-op. Returns the binding for chaining.
func (b *Binding) With(a input.Atom) *Binding {
	if a.IsZero() || b.Contains(a) {
		return b
	}
	b.atoms = append(b.atoms, a)
	return b
}

// WithKey adds a key atom to the chord.
func (b *Binding) WithKey(k input.Key) *Binding {
	return b.With(input.NewKeyAtom(k))
}

// WithMouse adds a mouse button atom to the chord.
func (b *Binding) WithMouse(btn input.MouseButton) *Binding {
	return b.With(input.NewMouseAtom(btn))
}

// WithPadButton adds a gamepad button atom to the chord.
func (b *Binding) WithPadButton(pad input.GamepadID, btn input.GamepadButton) *Binding {
	return b.With(input.NewPadButtonAtom(pad, btn))
}

// WithAxis adds an axis-direction atom with the default threshold.
func (b *Binding) WithAxis(pad input.GamepadID, axis input.GamepadAxis, sign input.AxisSign) *Binding {
	return b.With(input.NewPadAxisAtom(pad, axis, sign))
}

// WithAxisThreshold adds an axis-direction atom with an explicit
// threshold in [0, 1].
func (b *Binding) WithAxisThreshold(pad input.GamepadID, axis input.GamepadAxis, sign input.AxisSign, threshold float64) *Binding {
	return b.With(input.NewPadAxisAtomThreshold(pad, axis, sign, threshold))
}

// Atoms returns a copy of the chord's atoms in insertion order.
func (b *Binding) Atoms() []input.Atom {
	out := make([]input.Atom, len(b.atoms))
	copy(out, b.atoms)
	return out
}

// Len returns the chord's cardinality, its specificity.
func (b *Binding) Len() int {
	return len(b.atoms)
}

// Contains reports whether the chord requires the given atom.
func (b *Binding) Contains(a input.Atom) bool {
	for _, have := range b.atoms {
		if have == a {
			return true
		}
	}
	return false
}

// Matches reports whether every atom in the chord is satisfied by the
// snapshot. An empty chord never matches.
func (b *Binding) Matches(s *input.State) bool {
	if len(b.atoms) == 0 {
		return false
	}
	for _, a := range b.atoms {
		if !s.Satisfied(a) {
			return false
		}
	}
	return true
}

// Strength returns the average analog magnitude of the chord's atoms
// against the snapshot: 1 for an all-digital matching chord, the mean
// absolute axis value when axis atoms are involved, 0 when the chord
// does not match.
func (b *Binding) Strength(s *input.State) float64 {
	if !b.Matches(s) {
		return 0
	}
	var sum float64
	for _, a := range b.atoms {
		sum += s.Strength(a)
	}
	return sum / float64(len(b.atoms))
}

// Equal reports whether two chords require the same atom set,
// regardless of insertion order.
func (b *Binding) Equal(other *Binding) bool {
	if other == nil || len(b.atoms) != len(other.atoms) {
		return false
	}
	return b.SubsetOf(other)
}

// SubsetOf reports whether every atom in this chord is also required
// by the other chord.
func (b *Binding) SubsetOf(other *Binding) bool {
	if other == nil {
		return false
	}
	for _, a := range b.atoms {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

// StrictSubsetOf reports whether this chord is a proper subset of the
// other: fewer atoms, all of them shared. This is the domination test.
func (b *Binding) StrictSubsetOf(other *Binding) bool {
	return other != nil && len(b.atoms) < len(other.atoms) && b.SubsetOf(other)
}

// Clone returns an independent copy of the binding.
func (b *Binding) Clone() *Binding {
	return &Binding{atoms: b.Atoms()}
}

// String returns the chord's atoms in spec form joined with "+".
func (b *Binding) String() string {
	if len(b.atoms) == 0 {
		return "<empty>"
	}
	parts := make([]string, len(b.atoms))
	for i, a := range b.atoms {
		parts[i] = a.String()
	}
	return strings.Join(parts, "+")
}
