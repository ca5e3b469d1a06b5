package tuples

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
)

var byName = func() map[string]TupleDefinitionType {
	m := make(map[string]TupleDefinitionType, len(definitions))
	for i, def := range definitions {
		m[def.Name()] = TupleDefinitionType(i)
	}
	return m
}()

// All returns every built-in definition once, in TupleDefinitionType order
func All() []*schema.TupleDefinition {
	defs := make([]*schema.TupleDefinition, len(definitions))
	copy(defs, definitions)
	return defs
}

// Types returns every built-in type, without the extension placeholder
func Types() []TupleDefinitionType {
	types := make([]TupleDefinitionType, len(definitions))
	for i := range definitions {
		types[i] = TupleDefinitionType(i)
	}
	return types
}

// TryGetTupleType looks up a built-in table by name. Names are case sensitive.
func TryGetTupleType(name string) (TupleDefinitionType, bool) {
	t, ok := byName[name]
	return t, ok
}

// ByName returns the definition of a built-in table
func ByName(name string) (*schema.TupleDefinition, error) {
	t, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTupleType, name)
	}
	return definitions[t], nil
}

func checkDefinition(t *intermediate.Tuple, def *schema.TupleDefinition) error {
	if t == nil {
		return fmt.Errorf("%w: nil tuple, want %s", ErrDefinitionMismatch, def.Name())
	}
	if t.Definition() != def && !t.Definition().Equal(def) {
		return fmt.Errorf("%w: got %s, want %s", ErrDefinitionMismatch, t.Definition().Name(), def.Name())
	}
	return nil
}

// Resolver resolves built-in and extension definitions by name
type Resolver struct {
	extensions schema.DefinitionSet
}

// NewResolver creates a resolver over the built-in definitions and the given
// extension definitions. An extension may not reuse a table name.
func NewResolver(extensions ...*schema.TupleDefinition) (*Resolver, error) {
	r := &Resolver{extensions: make(schema.DefinitionSet, len(extensions))}
	for _, def := range extensions {
		if _, ok := byName[def.Name()]; ok {
			return nil, fmt.Errorf("%w: %s is a built-in table", ErrDuplicateDefinition, def.Name())
		}
		if _, ok := r.extensions[def.Name()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDefinition, def.Name())
		}
		r.extensions[def.Name()] = def
	}
	return r, nil
}

// ResolveDefinition returns the built-in or extension definition registered under name
func (r *Resolver) ResolveDefinition(name string) (*schema.TupleDefinition, error) {
	if def, err := ByName(name); err == nil {
		return def, nil
	}
	return r.extensions.ResolveDefinition(name)
}

// Extensions returns the extension definitions sorted by name
func (r *Resolver) Extensions() []*schema.TupleDefinition {
	names := maps.Keys(r.extensions)
	slices.Sort(names)
	defs := make([]*schema.TupleDefinition, len(names))
	for i, name := range names {
		defs[i] = r.extensions[name]
	}
	return defs
}
