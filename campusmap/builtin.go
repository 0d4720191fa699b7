// SPDX-License-Identifier: MIT
package campusmap

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

// DefaultMap is the built-in map used when none is selected.
const DefaultMap = "campus"

//go:embed maps/*.yaml
var builtinFS embed.FS

// BuiltinNames lists the embedded maps in lexical order.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "maps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, n)
		}
	}

	return names
}

// Builtin decodes the embedded map called name.
func Builtin(name string) (*Map, error) {
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	data, err := builtinFS.ReadFile(path.Join("maps", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownMap, name, strings.Join(BuiltinNames(), ", "))
	}

	return Parse(data)
}

// BuildGraph builds the embedded map called name. Every call returns a new,
// independent graph with the same locations and edges.
func BuildGraph(name string) (*core.Graph, error) {
	m, err := Builtin(name)
	if err != nil {
		return nil, err
	}

	return m.Build()
}

// MustDefault builds DefaultMap and panics on failure. The embedded maps are
// covered by tests, so a failure here is a build defect.
func MustDefault() *core.Graph {
	g, err := BuildGraph(DefaultMap)
	if err != nil {
		panic(err)
	}

	return g
}
