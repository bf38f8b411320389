package audio_test

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/nightcaste/internal/audio"
)

func TestToneGenerator_StreamsBoundedSamples(t *testing.T) {
	sr := beep.SampleRate(44100)
	gen := audio.NewToneGenerator(sr, 440)

	samples := make([][2]float64, 2048)
	n, ok := gen.Stream(samples)

	assert.True(t, ok)
	assert.Equal(t, len(samples), n)
	assert.NoError(t, gen.Err())
	assert.Equal(t, 0.0, samples[0][0])
	for _, s := range samples {
		assert.LessOrEqual(t, s[0], 0.25)
		assert.GreaterOrEqual(t, s[0], -0.25)
		assert.Equal(t, s[0], s[1])
	}
}

func TestToneGenerator_TakeLimitsLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	streamer := beep.Take(sr.N(audio.ToneBump.Duration), audio.NewToneGenerator(sr, audio.ToneBump.Frequency))

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sr.N(90*time.Millisecond), total)
}

func TestSilent_Play(t *testing.T) {
	var p audio.Player = audio.Silent{}
	assert.NoError(t, p.Play(audio.ToneBump))
	p.Close()
}
