package input

// State is a settable Source. It is not safe for concurrent use.
type State struct {
	pressed map[Key]bool
}

// NewState creates a state with no keys pressed
func NewState() *State {
	return &State{pressed: make(map[Key]bool)}
}

// Press marks key as held
func (s *State) Press(key Key) {
	s.pressed[key] = true
}

// Release marks key as no longer held
func (s *State) Release(key Key) {
	delete(s.pressed, key)
}

// IsPressed implements Source
func (s *State) IsPressed(key Key) bool {
	return s.pressed[key]
}

// Pressed returns the held keys in AllKeys order
func (s *State) Pressed() []Key {
	var keys []Key
	for _, k := range AllKeys {
		if s.pressed[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// Reset releases every key
func (s *State) Reset() {
	clear(s.pressed)
}
