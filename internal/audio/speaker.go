package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/KirkDiggler/nightcaste/internal/errors"
)

const sampleRate = beep.SampleRate(44100)

// SpeakerPlayer plays tones on the default audio device through a shared mixer
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerPlayer opens the audio device
func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	p := &SpeakerPlayer{mixer: &beep.Mixer{}}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, errors.Wrap(err, "initializing speaker")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Play implements Player
func (p *SpeakerPlayer) Play(tone Tone) error {
	if tone.Frequency <= 0 || tone.Duration <= 0 {
		return errors.InvalidArgument("tone needs a positive frequency and duration")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return errors.New(errors.CodeInternal, "speaker is closed")
	}

	streamer := beep.Take(sampleRate.N(tone.Duration), NewToneGenerator(sampleRate, tone.Frequency))
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Close stops playback and releases the device
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
