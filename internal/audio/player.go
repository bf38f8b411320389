// Package audio plays short synthesized tones for game feedback
package audio

//go:generate mockgen -destination=mock/mock_player.go -package=mockaudio -source=player.go

import (
	"time"
)

// Tone is a single sine blip
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// ToneBump is played when a move is blocked
var ToneBump = Tone{Frequency: 140, Duration: 90 * time.Millisecond}

// Player plays tones without blocking the caller
type Player interface {
	Play(tone Tone) error
	Close()
}

// Silent is a Player that discards every tone
type Silent struct{}

// Play implements Player
func (Silent) Play(Tone) error { return nil }

// Close implements Player
func (Silent) Close() {}
