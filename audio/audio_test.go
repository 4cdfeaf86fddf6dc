package audio

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/signals"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneGeneratorLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	g := NewToneGenerator(sr, 440, 880, 100*time.Millisecond, 0.5)

	total, peak := drain(g)
	assert.Equal(t, sr.N(100*time.Millisecond), total)
	assert.LessOrEqual(t, peak, 0.5+1e-9)
	assert.Greater(t, peak, 0.0)
	assert.NoError(t, g.Err())

	n, ok := g.Stream(make([][2]float64, 16))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestStreamerForEverySoundedKind(t *testing.T) {
	sr := beep.SampleRate(config.Audio.SampleRate)
	kinds := []signals.Kind{
		signals.CoinCollected,
		signals.EnemyStomped,
		signals.PlayerDamaged,
		signals.PlayerJumped,
		signals.PlayerDied,
		signals.GameOver,
		signals.LevelCompleted,
	}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			s := streamerFor(sr, k)
			require.NotNil(t, s)
			total, _ := drain(s)
			assert.Positive(t, total)
		})
	}
	assert.Nil(t, streamerFor(sr, signals.Kind(99)))
}

func TestPlayBeforeInitializeIsSilent(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.Play(signals.Signal{Kind: signals.CoinCollected})
		sm.Cleanup()
	})
}
