package components

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/nightcaste/internal/errors"
)

var constructors = map[Type]func() Component{
	TypePosition: func() Component { return &Position{} },
	TypeInput:    func() Component { return &Input{} },
	TypeSprite:   func() Component { return &Sprite{} },
	TypeCollider: func() Component { return &Collider{} },
	TypeWander:   func() Component { return &Wander{} },
}

// New returns a zero-value component for t
func New(t Type) (Component, error) {
	ctor, ok := constructors[t]
	if !ok {
		return nil, errors.NotFoundf("unknown component type %q", t)
	}
	return ctor(), nil
}

// Known returns every component type the codec understands, sorted
func Known() []Type {
	types := make([]Type, 0, len(constructors))
	for t := range constructors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Encode serializes a component to JSON
func Encode(c Component) ([]byte, error) {
	if c == nil {
		return nil, errors.InvalidArgument("component cannot be nil")
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s component: %w", c.ComponentType(), err)
	}
	return data, nil
}

// Decode deserializes JSON into a component of type t
func Decode(t Type, data []byte) (Component, error) {
	c, err := New(t)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s component: %w", t, err)
	}
	return c, nil
}
