package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator streams a soft sine wave with a short attack
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates an endless sine generator at freq Hz
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
	}
}

// Stream fills samples with the tone. It never runs dry.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 10ms attack avoids a click on start
		envelope := math.Min(t/0.01, 1.0)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil
func (g *ToneGenerator) Err() error {
	return nil
}
