// Package bind maps chords of physical inputs to application-defined
// actions and resolves, once per tick, which actions are active.
//
// # Architecture
//
// The package consists of three cooperating pieces:
//
//   - Binding: an unordered set of input atoms that must all be held
//     at once (a chord), built with a fluent accumulator.
//   - Table: the action registry. Each action maps to an ordered list
//     of alternative bindings; any one matching activates the action.
//   - Resolver: the per-tick engine. Given a device snapshot it finds
//     matching bindings, suppresses those dominated by a strict
//     superset chord, and tracks activation edges across ticks.
//
// # Conflict Resolution
//
// Registering "enter", "ctrl enter" and "ctrl alt enter" as separate
// actions must not triple-fire when the longest chord is pressed.
// When a binding matches, any other matching binding whose atom set is
// a strict superset dominates it: only the most specific chord fires.
// Domination is global across actions, so a more specific chord for
// one action suppresses a less specific chord for another. Matching
// chords of equal size that are not subsets of each other all fire.
//
// # Usage
//
//	table := bind.NewTable[string]()
//	table.BindKeys("select", input.KeyEnter).
//		BindKeys("open", input.KeyCtrl, input.KeyEnter).
//		Bind("fire", bind.Chord(input.NewMouseAtom(input.MouseLeft)))
//
//	r := bind.NewResolver(table)
//	for each tick {
//	    r.Tick(state) // *input.State from the host
//	    if r.JustActive("open") { ... }
//	}
//
// Actions are generic: any comparable Go type works as an action
// identifier. Binding tables for string actions can also be loaded
// from JSON or TOML files; see Loader.
package bind
