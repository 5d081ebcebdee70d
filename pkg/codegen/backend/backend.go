// Package backend maps configured backend names to code generation strategies.
package backend

import (
	"sort"

	"tmplgen/pkg/codegen"
	"tmplgen/pkg/codegen/backend/js"
	"tmplgen/pkg/codegen/backend/python"

	"github.com/cockroachdb/errors"
)

// ErrUnknownBackend is returned by Lookup for names with no backend.
var ErrUnknownBackend = errors.New("unknown backend")

// Backends are immutable, so one instance of each serves every assembler.
var registry = map[string]codegen.Backend{
	"python": python.New(),
}

func init() {
	for _, name := range []string{"stringbuilder", "concat", "arrayjoin"} {
		style, err := js.ParseCodeStyle(name)
		if err != nil {
			panic(err)
		}
		registry["js-"+name] = js.MustNew(style)
	}
}

// Lookup returns the backend registered under name.
func Lookup(name string) (codegen.Backend, error) {
	b, ok := registry[name]
	if !ok {
		return nil, errors.WithHintf(errors.Wrapf(ErrUnknownBackend, "%q", name),
			"available backends: %v", Names())
	}
	return b, nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
