// schema/registry.go
package schema

import (
	"fmt"
	"sort"
)

// Registry holds every supported (category, edition) pair. It is built
// once, is immutable afterwards, and may be read concurrently by any
// number of decoders without synchronisation.
type Registry struct {
	editions map[Category][]*Edition
}

// NewRegistry builds a registry from validated editions. Registering the
// same (category, tag) pair twice is a schema error.
func NewRegistry(editions ...*Edition) (*Registry, error) {
	r := &Registry{editions: make(map[Category][]*Edition)}
	for _, e := range editions {
		if e == nil {
			return nil, fmt.Errorf("%w: nil edition", ErrSchema)
		}
		for _, have := range r.editions[e.Category] {
			if have.Tag == e.Tag {
				return nil, fmt.Errorf("%w: duplicate edition %s", ErrSchema, e)
			}
		}
		r.editions[e.Category] = append(r.editions[e.Category], e)
	}
	return r, nil
}

// Supports reports whether any edition of the category is registered
func (r *Registry) Supports(cat Category) bool {
	return len(r.editions[cat]) > 0
}

// Editions returns all registered editions of a category, in registration
// order. The returned slice must not be modified.
func (r *Registry) Editions(cat Category) []*Edition {
	return r.editions[cat]
}

// Edition resolves a specific (category, tag) pair
func (r *Registry) Edition(cat Category, tag string) (*Edition, bool) {
	for _, e := range r.editions[cat] {
		if e.Tag == tag {
			return e, true
		}
	}
	return nil, false
}

// Latest returns the most recently registered edition of a category
func (r *Registry) Latest(cat Category) (*Edition, bool) {
	eds := r.editions[cat]
	if len(eds) == 0 {
		return nil, false
	}
	return eds[len(eds)-1], true
}

// Categories lists all registered categories in ascending order
func (r *Registry) Categories() []Category {
	cats := make([]Category, 0, len(r.editions))
	for c := range r.editions {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
