// Package registry maps substance names to equation-of-state oracles.
package registry

import (
	"fmt"
	"sort"

	"github.com/san-kum/purefluid/internal/eos"
	"github.com/san-kum/purefluid/internal/fluid"
	"github.com/san-kum/purefluid/internal/phase"
)

type Registry struct {
	oracles map[string]func() fluid.Oracle
}

func New() *Registry {
	r := &Registry{oracles: make(map[string]func() fluid.Oracle)}
	for name, sub := range eos.Substances {
		sub := sub
		r.oracles[name] = func() fluid.Oracle { return eos.NewVanDerWaals(sub) }
	}
	return r
}

// Oracle builds a fresh oracle for the named substance.
func (r *Registry) Oracle(name string) (fluid.Oracle, error) {
	fn, ok := r.oracles[name]
	if !ok {
		return nil, fmt.Errorf("unknown substance: %s", name)
	}
	return fn(), nil
}

// Phase builds a phase object bound to a fresh oracle for the named
// substance.
func (r *Registry) Phase(name string) (*phase.Phase, error) {
	o, err := r.Oracle(name)
	if err != nil {
		return nil, err
	}
	return phase.New(name, o), nil
}

// List returns the registered substance names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.oracles))
	for name := range r.oracles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
