package behaviours

import (
	"log"
	"sort"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
)

// Binding names the behaviour to attach to a component type
type Binding struct {
	ComponentType components.Type `json:"component_type"`
	Name          string          `json:"name"`
}

// Registry holds at most one behaviour per component type.
// It is not safe for concurrent use.
type Registry struct {
	behaviours map[components.Type]Behaviour
	factories  *Factories
	deps       Deps
}

// NewRegistry creates an empty registry that resolves behaviour names
// through factories and builds them with deps
func NewRegistry(factories *Factories, deps Deps) *Registry {
	if factories == nil {
		factories = NewFactories()
	}
	return &Registry{
		behaviours: make(map[components.Type]Behaviour),
		factories:  factories,
		deps:       deps,
	}
}

// Bind attaches behaviour to t, replacing any previous binding
func (r *Registry) Bind(t components.Type, behaviour Behaviour) {
	r.behaviours[t] = behaviour
	log.Printf("Behaviours: Bound %T to %s", behaviour, t)
}

// BehaviourFor returns the behaviour bound to t
func (r *Registry) BehaviourFor(t components.Type) (Behaviour, bool) {
	b, ok := r.behaviours[t]
	return b, ok
}

// BindFromName builds the behaviour registered under name and binds it to t
func (r *Registry) BindFromName(t components.Type, name string) error {
	factory, ok := r.factories.Lookup(name)
	if !ok {
		return errors.Configurationf("unknown behaviour %q for component type %s", name, t).
			WithMeta("behaviour", name).
			WithMeta("component_type", string(t))
	}
	r.Bind(t, factory(r.deps))
	return nil
}

// Configure binds every entry in order and stops at the first unknown name.
// Bindings made before the failure are kept.
func (r *Registry) Configure(bindings []Binding) error {
	for _, b := range bindings {
		if err := r.BindFromName(b.ComponentType, b.Name); err != nil {
			return err
		}
	}
	return nil
}

// Bindings lists the bound component types, sorted
func (r *Registry) Bindings() []components.Type {
	types := make([]components.Type, 0, len(r.behaviours))
	for t := range r.behaviours {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
