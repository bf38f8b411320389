package events

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Event is an immutable record of something that happened in the simulation.
// The kind and fields are fixed at construction; Event values may be copied and
// shared freely since nothing mutates the field map after NewEvent returns.
type Event struct {
	kind   Kind
	fields map[string]any
}

// NewEvent creates an event of the given kind. The field map is copied.
func NewEvent(kind Kind, fields map[string]any) Event {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Event{
		kind:   kind,
		fields: copied,
	}
}

// Kind returns the event kind
func (e Event) Kind() Kind {
	return e.kind
}

// Fields returns a copy of the event's fields. Slice values are copied too.
func (e Event) Fields() map[string]any {
	copied := make(map[string]any, len(e.fields))
	for k, v := range e.fields {
		copied[k] = copyValue(v)
	}
	return copied
}

// Get retrieves a field value. Slice values are returned as copies.
func (e Event) Get(name string) (any, bool) {
	val, exists := e.fields[name]
	if !exists {
		return nil, false
	}
	return copyValue(val), true
}

// GetInt64s retrieves a copy of an []int64 field
func (e Event) GetInt64s(name string) ([]int64, bool) {
	val, exists := e.fields[name]
	if !exists {
		return nil, false
	}
	ids, ok := val.([]int64)
	if !ok {
		return nil, false
	}
	copied := make([]int64, len(ids))
	copy(copied, ids)
	return copied, true
}

// GetInt retrieves an int field
func (e Event) GetInt(name string) (int, bool) {
	val, exists := e.fields[name]
	if !exists {
		return 0, false
	}
	intVal, ok := val.(int)
	return intVal, ok
}

// GetInt64 retrieves an int64 field. Plain int values are widened.
func (e Event) GetInt64(name string) (int64, bool) {
	val, exists := e.fields[name]
	if !exists {
		return 0, false
	}
	switch v := val.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// GetFloat retrieves a float64 field
func (e Event) GetFloat(name string) (float64, bool) {
	val, exists := e.fields[name]
	if !exists {
		return 0, false
	}
	floatVal, ok := val.(float64)
	return floatVal, ok
}

// GetBool retrieves a bool field
func (e Event) GetBool(name string) (value, exists bool) {
	val, exists := e.fields[name]
	if !exists {
		return false, false
	}
	boolVal, ok := val.(bool)
	return boolVal, ok
}

// GetString retrieves a string field
func (e Event) GetString(name string) (string, bool) {
	val, exists := e.fields[name]
	if !exists {
		return "", false
	}
	strVal, ok := val.(string)
	return strVal, ok
}

func copyValue(val any) any {
	v := reflect.ValueOf(val)
	if v.Kind() != reflect.Slice || v.IsNil() {
		return val
	}
	copied := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	reflect.Copy(copied, v)
	return copied.Interface()
}

// String renders the event as Kind(name: value, ...) with fields sorted by name
func (e Event) String() string {
	if len(e.fields) == 0 {
		return string(e.kind)
	}

	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.fields[name]))
	}
	return fmt.Sprintf("%s(%s)", e.kind, strings.Join(parts, ", "))
}
