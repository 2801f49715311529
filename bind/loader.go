package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/actionmap/input"
)

// Loader errors
var (
	// ErrUnknownFormat is returned for files that are neither JSON nor TOML.
	ErrUnknownFormat = errors.New("unknown binding file format")
)

// tableConfig is the on-disk structure for binding files.
type tableConfig struct {
	Name     string          `json:"name,omitempty" toml:"name,omitempty"`
	Bindings []bindingConfig `json:"bindings" toml:"bindings"`
}

// bindingConfig is one chord registration. Multiple entries for the
// same action register alternative chords.
type bindingConfig struct {
	Action      string   `json:"action" toml:"action"`
	Chord       []string `json:"chord" toml:"chord"`
	Description string   `json:"description,omitempty" toml:"description,omitempty"`
}

// Loader reads binding tables from JSON and TOML files. Actions in
// binding files are strings; hosts with typed actions translate after
// loading or keep a string-actioned table for user-configurable
// bindings.
type Loader struct {
	// searchPaths are directories scanned by LoadAll.
	searchPaths []string
}

// NewLoader creates a new binding file loader.
func NewLoader() *Loader {
	return &Loader{searchPaths: make([]string, 0)}
}

// AddSearchPath adds a directory to scan for binding files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads bindings from a file into a new table. The format is
// chosen by extension: .json, or .toml.
func (l *Loader) LoadFile(path string) (*Table[string], error) {
	table := NewTable[string]()
	if err := l.LoadFileInto(path, table); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadFileInto loads bindings from a file into an existing table.
func (l *Loader) LoadFileInto(path string, table *Table[string]) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening binding file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return l.LoadReader(f, table)
	case ".toml":
		return l.LoadTOMLReader(f, table)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadReader loads JSON bindings from a reader into a table.
func (l *Loader) LoadReader(r io.Reader, table *Table[string]) error {
	var config tableConfig
	if err := json.NewDecoder(r).Decode(&config); err != nil {
		return fmt.Errorf("decoding bindings: %w", err)
	}
	return bindConfig(&config, table)
}

// LoadTOMLReader loads TOML bindings from a reader into a table.
func (l *Loader) LoadTOMLReader(r io.Reader, table *Table[string]) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading bindings: %w", err)
	}
	var config tableConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("decoding bindings: %w", err)
	}
	return bindConfig(&config, table)
}

// LoadAll loads every binding file found in the search paths into one
// table, in glob order per directory. Unreadable files are skipped.
func (l *Loader) LoadAll() (*Table[string], error) {
	table := NewTable[string]()

	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.json", "*.toml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			for _, path := range matches {
				if err := l.LoadFileInto(path, table); err != nil {
					continue
				}
			}
		}
	}

	return table, nil
}

// bindConfig registers every configured chord into the table.
func bindConfig(config *tableConfig, table *Table[string]) error {
	for i, bc := range config.Bindings {
		if bc.Action == "" {
			return fmt.Errorf("binding %d: empty action", i)
		}
		if len(bc.Chord) == 0 {
			return fmt.Errorf("binding %d (%s): empty chord", i, bc.Action)
		}

		chord := &Binding{}
		for _, spec := range bc.Chord {
			atom, err := input.ParseAtom(spec)
			if err != nil {
				return fmt.Errorf("binding %d (%s): %w", i, bc.Action, err)
			}
			chord.With(atom)
		}
		table.Bind(bc.Action, chord)
	}
	return nil
}

// MarshalTable renders a string-actioned table as indented JSON in the
// binding file format. Atom specs round-trip through input.ParseAtom.
func MarshalTable(table *Table[string], name string) ([]byte, error) {
	config := tableConfig{
		Name:     name,
		Bindings: make([]bindingConfig, 0, table.Len()),
	}

	for _, action := range table.Actions() {
		for _, b := range table.Bindings(action) {
			atoms := b.Atoms()
			chord := make([]string, len(atoms))
			for i, a := range atoms {
				chord[i] = a.String()
			}
			config.Bindings = append(config.Bindings, bindingConfig{
				Action: action,
				Chord:  chord,
			})
		}
	}

	return json.MarshalIndent(config, "", "  ")
}

// SaveFile writes a string-actioned table to a JSON binding file.
func SaveFile(table *Table[string], name, path string) error {
	data, err := MarshalTable(table, name)
	if err != nil {
		return fmt.Errorf("marshaling bindings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing binding file: %w", err)
	}
	return nil
}
