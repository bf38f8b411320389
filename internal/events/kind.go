package events

// Kind identifies an event variant. Dispatch is keyed on it.
type Kind string

const (
	// MoveAction asks for an entity to be moved by (dx, dy)
	// Fields: entity int64, dx int, dy int
	MoveAction Kind = "MoveAction"

	// EntityMoved reports an entity now occupying a new position
	// Fields: entity int64, new_x int, new_y int
	EntityMoved Kind = "EntityMoved"

	// KeyPressed reports a logical key going down
	// Fields: code string
	KeyPressed Kind = "KeyPressed"

	// KeyReleased reports a logical key going up
	// Fields: code string
	KeyReleased Kind = "KeyReleased"

	// MapChange asks for the active map to change
	// Fields: map_name string, level int
	MapChange Kind = "MapChange"

	// EntitiesCollided reports a blocked move
	// Fields: entities []int64 (mover first)
	EntitiesCollided Kind = "EntitiesCollided"

	// MenuOpen asks for the menu to open. No fields.
	MenuOpen Kind = "MenuOpen"

	// UseEntityAction asks the user entity to use whatever lies in a direction
	// Fields: user int64, dx int, dy int
	UseEntityAction Kind = "UseEntityAction"

	// ViewChanged reports a new active view
	// Fields: active_view string
	ViewChanged Kind = "ViewChanged"

	// WorldEnter signals the player has entered the world. No fields.
	WorldEnter Kind = "WorldEnter"
)

// Kinds lists every kind produced or consumed by the game
var Kinds = []Kind{
	MoveAction,
	EntityMoved,
	KeyPressed,
	KeyReleased,
	MapChange,
	EntitiesCollided,
	MenuOpen,
	UseEntityAction,
	ViewChanged,
	WorldEnter,
}

// Field names shared by producers and consumers
const (
	FieldEntity     = "entity"
	FieldEntities   = "entities"
	FieldDX         = "dx"
	FieldDY         = "dy"
	FieldNewX       = "new_x"
	FieldNewY       = "new_y"
	FieldCode       = "code"
	FieldMapName    = "map_name"
	FieldLevel      = "level"
	FieldUser       = "user"
	FieldActiveView = "active_view"
)

// NewMoveAction builds a MoveAction event
func NewMoveAction(entity int64, dx, dy int) Event {
	return NewEvent(MoveAction, map[string]any{
		FieldEntity: entity,
		FieldDX:     dx,
		FieldDY:     dy,
	})
}

// NewEntityMoved builds an EntityMoved event
func NewEntityMoved(entity int64, x, y int) Event {
	return NewEvent(EntityMoved, map[string]any{
		FieldEntity: entity,
		FieldNewX:   x,
		FieldNewY:   y,
	})
}

// NewEntitiesCollided builds an EntitiesCollided event. The slice is copied.
func NewEntitiesCollided(entities ...int64) Event {
	ids := make([]int64, len(entities))
	copy(ids, entities)
	return NewEvent(EntitiesCollided, map[string]any{
		FieldEntities: ids,
	})
}
