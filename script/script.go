// Package script loads binding tables from Lua scripts.
//
// A binding script is plain Lua with two globals provided by the host:
//
//	bind("quit", "ctrl", "q")        -- one chord of all the atoms
//	bind("jump", "space")
//	bind("jump", "pad0:south")       -- repeated calls add alternatives
//	unbind("jump")                   -- drops every chord for an action
//
// Atom strings use the spec form understood by input.ParseAtom. Lua
// gives configuration authors conditionals and loops that static JSON
// and TOML files cannot express, e.g. binding per-pad chords:
//
//	for pad = 0, 3 do
//	    bind("jump" .. pad, "pad" .. pad .. ":south")
//	end
//
// Scripts run in a restricted state: the io, os and debug libraries
// are removed before execution.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/actionmap/bind"
	"github.com/dshills/actionmap/input"
)

// LoadFile executes a Lua binding script, registering into the table.
func LoadFile(path string, table *bind.Table[string]) error {
	return run(table, func(L *lua.LState) error {
		if err := L.DoFile(path); err != nil {
			return fmt.Errorf("running binding script %s: %w", path, err)
		}
		return nil
	})
}

// LoadString executes Lua source, registering into the table.
func LoadString(src string, table *bind.Table[string]) error {
	return run(table, func(L *lua.LState) error {
		if err := L.DoString(src); err != nil {
			return fmt.Errorf("running binding script: %w", err)
		}
		return nil
	})
}

// run sets up a restricted Lua state with the binding globals and
// executes the script.
func run(table *bind.Table[string], do func(*lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	// The scripts configure bindings; they get no ambient authority.
	for _, name := range []string{"io", "os", "debug", "loadfile", "dofile"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		if top < 2 {
			L.RaiseError("bind needs an action and at least one atom")
		}
		action := L.CheckString(1)

		atoms := make([]input.Atom, 0, top-1)
		for i := 2; i <= top; i++ {
			spec := L.CheckString(i)
			atom, err := input.ParseAtom(spec)
			if err != nil {
				L.RaiseError("bind %q: %s", action, err.Error())
			}
			atoms = append(atoms, atom)
		}

		table.BindAll(action, atoms...)
		return 0
	}))

	L.SetGlobal("unbind", L.NewFunction(func(L *lua.LState) int {
		table.Unbind(L.CheckString(1))
		return 0
	}))

	return do(L)
}
