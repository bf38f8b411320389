package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/nightcaste/internal/events"
)

// Terminal turns tcell key events into held keys.
// A terminal only reports key presses, so a key stays held until EndRound.
type Terminal struct {
	state     *State
	publisher events.Publisher
}

// NewTerminal creates a terminal source. When publisher is non-nil a
// KeyPressed event is queued for each mapped key and a KeyReleased event
// for each key released by EndRound.
func NewTerminal(publisher events.Publisher) *Terminal {
	return &Terminal{
		state:     NewState(),
		publisher: publisher,
	}
}

// KeyFromEvent maps arrow keys and vi-style hjkl onto logical keys
func KeyFromEvent(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return KeyLeft, true
		case 'l':
			return KeyRight, true
		case 'k':
			return KeyUp, true
		case 'j':
			return KeyDown, true
		}
	}
	return 0, false
}

// HandleEvent records a key press and reports whether the event was consumed
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	key, ok := KeyFromEvent(keyEv)
	if !ok {
		return false
	}

	t.state.Press(key)
	if t.publisher != nil {
		t.publisher.Publish(events.KeyPressed, map[string]any{events.FieldCode: key.String()})
	}
	return true
}

// IsPressed implements Source
func (t *Terminal) IsPressed(key Key) bool {
	return t.state.IsPressed(key)
}

// EndRound releases every key pressed since the previous round
func (t *Terminal) EndRound() {
	if t.publisher != nil {
		for _, key := range t.state.Pressed() {
			t.publisher.Publish(events.KeyReleased, map[string]any{events.FieldCode: key.String()})
		}
	}
	t.state.Reset()
}
