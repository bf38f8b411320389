// Package components holds the component data attached to entities and the
// codec used to persist it
package components

// Type names a component kind in the entity store
type Type string

const (
	TypePosition Type = "Position"
	TypeInput    Type = "Input"
	TypeSprite   Type = "Sprite"
	TypeCollider Type = "Collider"
	TypeWander   Type = "Wander"
)

// EntityID identifies an entity
type EntityID int64

// Component is data attached to an entity
type Component interface {
	// ComponentType returns the kind of this component
	ComponentType() Type
}

// Position places an entity on the map grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (*Position) ComponentType() Type { return TypePosition }

// Input marks an entity as driven by the player's input
type Input struct{}

func (*Input) ComponentType() Type { return TypeInput }

// Sprite is the glyph drawn for an entity
type Sprite struct {
	Glyph  string `json:"glyph"`
	Colour string `json:"colour,omitempty"`
}

func (*Sprite) ComponentType() Type { return TypeSprite }

// Collider makes an entity occupy its cell; blocking colliders stop movement into it
type Collider struct {
	Blocking bool `json:"blocking"`
}

func (*Collider) ComponentType() Type { return TypeCollider }

// Wander moves an entity in a random direction.
// Chance is the percentage of rounds in which it moves at all.
type Wander struct {
	Chance int `json:"chance"`
}

func (*Wander) ComponentType() Type { return TypeWander }

// Clone returns a copy of c so stored components cannot be changed through
// values handed to callers
func Clone(c Component) Component {
	switch v := c.(type) {
	case *Position:
		cp := *v
		return &cp
	case *Input:
		return &Input{}
	case *Sprite:
		cp := *v
		return &cp
	case *Collider:
		cp := *v
		return &cp
	case *Wander:
		cp := *v
		return &cp
	default:
		return c
	}
}
