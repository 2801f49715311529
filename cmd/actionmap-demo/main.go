// Package main is an interactive terminal demo of the binding resolver.
//
// It binds a handful of actions to keys and mouse buttons, then runs a
// tick loop that renders which actions are active, just active, and
// just inactive. Overlapping chords (enter, ctrl+enter, ctrl+alt+enter)
// demonstrate superset domination live.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/bind"
	"github.com/dshills/actionmap/driver"
	"github.com/dshills/actionmap/input"
	"github.com/dshills/actionmap/script"
	"github.com/dshills/actionmap/watch"
)

const tickInterval = 33 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	var bindingsPath string
	var watchFiles bool

	flag.StringVar(&bindingsPath, "bindings", "", "Binding file to load (.json, .toml, or .lua)")
	flag.StringVar(&bindingsPath, "b", "", "Binding file to load (shorthand)")
	flag.BoolVar(&watchFiles, "watch", false, "Reload the binding file when it changes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "actionmap-demo - interactive binding resolver demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: actionmap-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPress ctrl+q to quit.\n")
	}
	flag.Parse()

	table, err := loadTable(bindingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var watcher *watch.Watcher
	if watchFiles {
		if bindingsPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -watch requires -bindings")
			return 1
		}
		watcher, err = watch.New([]string{bindingsPath})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", bindingsPath, err)
			return 1
		}
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	loop(screen, table, watcher)
	return 0
}

// loadTable builds the demo's binding table, from a file when one is
// given and from built-in defaults otherwise.
func loadTable(path string) (*bind.Table[string], error) {
	if path == "" {
		return defaultTable(), nil
	}
	if filepath.Ext(path) == ".lua" {
		table := bind.NewTable[string]()
		if err := script.LoadFile(path, table); err != nil {
			return nil, err
		}
		return table, nil
	}
	return bind.NewLoader().LoadFile(path)
}

func defaultTable() *bind.Table[string] {
	return bind.NewTable[string]().
		BindKeys("quit", input.KeyCtrl, input.KeyQ).
		BindKeys("confirm", input.KeyEnter).
		BindKeys("send", input.KeyCtrl, input.KeyEnter).
		BindKeys("send-all", input.KeyCtrl, input.KeyAlt, input.KeyEnter).
		BindKeys("jump", input.KeySpace).
		BindKeys("sprint", input.KeyShift, input.KeySpace).
		Bind("fire", bind.Chord(input.NewMouseAtom(input.MouseLeft))).
		Bind("alt-fire", bind.Chord(input.NewMouseAtom(input.MouseRight))).
		Bind("zoom-fire", bind.KeyChord(input.KeyCtrl).WithMouse(input.MouseLeft))
}

func loop(screen tcell.Screen, table *bind.Table[string], watcher *watch.Watcher) {
	term := driver.NewTerminal()
	resolver := bind.NewResolver(table)

	var tables <-chan *bind.Table[string]
	if watcher != nil {
		var id string
		id, tables = watcher.Subscribe()
		defer watcher.Unsubscribe(id)
	}

	events := make(chan tcell.Event, 64)
	quitPoll := make(chan struct{})
	go screen.ChannelEvents(events, quitPoll)
	defer close(quitPoll)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			term.HandleEvent(ev)

		case table := <-tables:
			// Table swaps land between ticks.
			resolver = bind.NewResolver(table)

		case now := <-ticker.C:
			state := term.Tick(now)
			resolver.Tick(state)
			if resolver.Active("quit") {
				return
			}
			render(screen, resolver)
		}
	}
}

func render(screen tcell.Screen, r *bind.Resolver[string]) {
	screen.Clear()

	drawText(screen, 0, 0, tcell.StyleDefault.Bold(true), "actionmap demo  (ctrl+q to quit)")
	drawText(screen, 0, 1, tcell.StyleDefault.Dim(true),
		"try: enter / ctrl+enter / ctrl+alt+enter, space, shift+space, mouse buttons")

	row := 3
	for _, action := range r.Table().Actions() {
		var marks []string
		style := tcell.StyleDefault.Dim(true)
		if r.Active(action) {
			marks = append(marks, "active")
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		}
		if r.JustActive(action) {
			marks = append(marks, "just-active")
			style = style.Bold(true)
		}
		if r.JustInactive(action) {
			marks = append(marks, "just-inactive")
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		line := fmt.Sprintf("%-12s %s", action, strings.Join(marks, ", "))
		if r.Active(action) {
			line = fmt.Sprintf("%s  strength=%.2f", line, r.Strength(action))
		}
		drawText(screen, 2, row, style, line)
		row++
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
