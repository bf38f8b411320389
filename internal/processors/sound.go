package processors

import (
	"log"

	"github.com/KirkDiggler/nightcaste/internal/audio"
	"github.com/KirkDiggler/nightcaste/internal/events"
)

// SoundProcessor plays feedback tones for game events
type SoundProcessor struct {
	player audio.Player
}

// NewSoundProcessor creates a sound processor
func NewSoundProcessor(player audio.Player) *SoundProcessor {
	return &SoundProcessor{player: player}
}

// Register subscribes the processor to EntitiesCollided
func (p *SoundProcessor) Register(bus events.Bus) {
	bus.Register(events.EntitiesCollided, p)
}

// HandleEvent implements events.Handler. Playback failures are logged, not returned.
func (p *SoundProcessor) HandleEvent(event events.Event, round int64) error {
	if event.Kind() != events.EntitiesCollided {
		return nil
	}
	if err := p.player.Play(audio.ToneBump); err != nil {
		colliders, _ := event.GetInt64s(events.FieldEntities)
		log.Printf("Sound: Failed to play bump for %v in round %d: %v", colliders, round, err)
	}
	return nil
}
