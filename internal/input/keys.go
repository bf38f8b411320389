// Package input tracks which logical keys are held during a round
package input

//go:generate mockgen -destination=mock/mock_source.go -package=mockinput -source=keys.go

// Key is a logical game key, independent of the terminal key that produced it
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyUp
	KeyDown
)

// AllKeys lists every logical key
var AllKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown}

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "unknown"
	}
}

// Source reports whether a key is currently pressed
type Source interface {
	IsPressed(key Key) bool
}
