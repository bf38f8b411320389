package behaviours

import (
	"sort"

	"github.com/KirkDiggler/nightcaste/internal/dice"
	"github.com/KirkDiggler/nightcaste/internal/events"
	"github.com/KirkDiggler/nightcaste/internal/input"
)

// Deps are the collaborators a factory may hand to the behaviour it builds
type Deps struct {
	Publisher events.Publisher
	Input     input.Source
	Roller    dice.Roller
}

// Factory builds a behaviour from its dependencies
type Factory func(deps Deps) Behaviour

// Factories maps behaviour names to their constructors
type Factories struct {
	factories map[string]Factory
}

// NewFactories creates an empty factory table
func NewFactories() *Factories {
	return &Factories{factories: make(map[string]Factory)}
}

// DefaultFactories returns a table holding every built-in behaviour
func DefaultFactories() *Factories {
	f := NewFactories()
	f.Register(InputBehaviourName, func(deps Deps) Behaviour {
		return NewInputBehaviour(deps.Publisher, deps.Input)
	})
	f.Register(WanderBehaviourName, func(deps Deps) Behaviour {
		return NewWanderBehaviour(deps.Publisher, deps.Roller)
	})
	return f
}

// Register adds or replaces the factory for name
func (f *Factories) Register(name string, factory Factory) {
	f.factories[name] = factory
}

// Lookup returns the factory registered for name
func (f *Factories) Lookup(name string) (Factory, bool) {
	factory, ok := f.factories[name]
	return factory, ok
}

// Names lists registered behaviour names, sorted
func (f *Factories) Names() []string {
	names := make([]string, 0, len(f.factories))
	for name := range f.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
