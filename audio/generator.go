package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a square-ish tone gliding from one frequency to another
// with a linear fade out. It ends after its duration.
type ToneGenerator struct {
	sr        beep.SampleRate
	freqStart float64
	freqEnd   float64
	volume    float64
	pos       int
	samples   int
	phase     float64
}

func NewToneGenerator(sr beep.SampleRate, freqStart, freqEnd float64, d time.Duration, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		freqStart: freqStart,
		freqEnd:   freqEnd,
		volume:    volume,
		samples:   sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.freqStart + (g.freqEnd-g.freqStart)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Soft square: a clipped sine
		v := math.Max(-0.6, math.Min(0.6, math.Sin(g.phase))) / 0.6
		v *= g.volume * (1 - progress)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
