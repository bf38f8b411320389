package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/nightcaste/internal/events"
)

func TestEvent_KindIsFixed(t *testing.T) {
	move := events.NewMoveAction(42, 1, -1)
	plain := events.NewEvent("Event", nil)

	assert.Equal(t, events.MoveAction, move.Kind())
	assert.Equal(t, events.Kind("Event"), plain.Kind())
}

func TestEvent_FieldsAreCopied(t *testing.T) {
	fields := map[string]any{"map_name": "cave", "level": 2}
	ev := events.NewEvent(events.MapChange, fields)

	// Mutating the source map does not reach the event
	fields["level"] = 9
	level, ok := ev.GetInt(events.FieldLevel)
	assert.True(t, ok)
	assert.Equal(t, 2, level)

	// Mutating the returned copy does not reach the event either
	out := ev.Fields()
	out["map_name"] = "tower"
	name, _ := ev.GetString(events.FieldMapName)
	assert.Equal(t, "cave", name)
}

func TestEvent_TypedGetters(t *testing.T) {
	ev := events.NewEvent("Sample", map[string]any{
		"i":   3,
		"i64": int64(7),
		"f":   0.5,
		"b":   true,
		"s":   "text",
	})

	i64, ok := ev.GetInt64("i")
	assert.True(t, ok)
	assert.Equal(t, int64(3), i64)

	i64, ok = ev.GetInt64("i64")
	assert.True(t, ok)
	assert.Equal(t, int64(7), i64)

	_, ok = ev.GetInt("i64")
	assert.False(t, ok, "int64 is not narrowed to int")

	f, ok := ev.GetFloat("f")
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	b, ok := ev.GetBool("b")
	assert.True(t, ok)
	assert.True(t, b)

	s, ok := ev.GetString("s")
	assert.True(t, ok)
	assert.Equal(t, "text", s)

	_, ok = ev.GetString("missing")
	assert.False(t, ok)
	_, ok = ev.Get("missing")
	assert.False(t, ok)
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "MoveAction(dx: 1, dy: 0, entity: 1)", events.NewMoveAction(1, 1, 0).String())
	assert.Equal(t, "WorldEnter", events.NewEvent(events.WorldEnter, nil).String())
}

func TestNewEntitiesCollided_CopiesIDs(t *testing.T) {
	ids := []int64{1, 2}
	ev := events.NewEntitiesCollided(ids...)
	ids[0] = 99

	val, ok := ev.Get(events.FieldEntities)
	assert.True(t, ok)
	assert.Equal(t, []int64{1, 2}, val)
}

func TestEvent_SliceFieldsCannotBeChangedByReaders(t *testing.T) {
	ev := events.NewEntitiesCollided(1, 2)

	val, ok := ev.Get(events.FieldEntities)
	require.True(t, ok)
	val.([]int64)[0] = 99

	ids, ok := ev.GetInt64s(events.FieldEntities)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, ids)
	ids[1] = 99

	fields := ev.Fields()
	fields[events.FieldEntities].([]int64)[0] = 99

	again, _ := ev.GetInt64s(events.FieldEntities)
	assert.Equal(t, []int64{1, 2}, again)
	assert.Equal(t, "EntitiesCollided(entities: [1 2])", ev.String())
}

func TestEvent_GetInt64sWrongType(t *testing.T) {
	ev := events.NewMoveAction(1, 1, 0)

	_, ok := ev.GetInt64s(events.FieldEntity)
	assert.False(t, ok)
	_, ok = ev.GetInt64s("missing")
	assert.False(t, ok)
}
