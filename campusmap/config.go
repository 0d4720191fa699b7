// SPDX-License-Identifier: MIT
package campusmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/core"
)

// Map is the decoded form of a map document.
type Map struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Locations   []string   `yaml:"locations"`
	Edges       []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one row of the edge table. Direction is the heading when
// walking From → To, e.g. "North-West" or "nw".
type EdgeSpec struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Weight    int64  `yaml:"weight"`
	Direction string `yaml:"direction"`
}

// Parse decodes a single YAML map document. Unknown fields are rejected.
func Parse(data []byte) (*Map, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a map document from r.
func Load(r io.Reader) (*Map, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Map
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidMap)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}

	return &m, nil
}

// LoadFile reads and decodes the map document at path.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("campusmap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Validate reports whether m describes a valid graph without keeping it.
func (m *Map) Validate() error {
	_, err := m.Build()
	return err
}

// Build assembles a fresh core.Graph from m. Every call returns a new,
// independent graph with identical contents.
func (m *Map) Build() (*core.Graph, error) {
	if len(m.Locations) == 0 {
		return nil, fmt.Errorf("%w: map %q has no locations", ErrInvalidMap, m.Name)
	}

	b := core.NewBuilder()
	for i, name := range m.Locations {
		if _, err := b.AddLocation(name); err != nil {
			return nil, fmt.Errorf("%w: location %d %q: %w", ErrInvalidMap, i, name, err)
		}
	}

	// names are unique at this point, so positions match builder indices
	index := make(map[string]int, len(m.Locations))
	for i, name := range m.Locations {
		index[name] = i
	}

	for i, e := range m.Edges {
		from, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d: from %q: %w", ErrInvalidMap, i, e.From, core.ErrLocationNotFound)
		}
		to, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d: to %q: %w", ErrInvalidMap, i, e.To, core.ErrLocationNotFound)
		}
		dir, err := compass.Parse(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrInvalidMap, i, e.From, e.To, err)
		}
		if err = b.AddSymmetricEdge(from, to, e.Weight, dir); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrInvalidMap, i, e.From, e.To, err)
		}
	}

	return b.Build()
}
