// Package audio plays short procedural sound effects in response to gameplay
// signals. No audio files are involved.
package audio

import (
	"sync"
	"time"

	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/signals"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager turns signals into sounds
type SoundManager struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		sampleRate: beep.SampleRate(config.Audio.SampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sm.sampleRate, sm.sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts the effect for sig, if it has one. Safe to use as a
// game.Game subscriber.
func (sm *SoundManager) Play(sig signals.Signal) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || config.Audio.Muted {
		return
	}
	s := streamerFor(sm.sampleRate, sig.Kind)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// streamerFor builds a fresh streamer for a signal kind. Kinds without a
// sound return nil.
func streamerFor(sr beep.SampleRate, kind signals.Kind) beep.Streamer {
	vol := config.Audio.Volume
	switch kind {
	case signals.CoinCollected:
		return beep.Seq(
			NewToneGenerator(sr, 988, 988, 60*time.Millisecond, vol),
			NewToneGenerator(sr, 1319, 1319, 180*time.Millisecond, vol),
		)
	case signals.PlayerJumped:
		return NewToneGenerator(sr, 300, 700, 120*time.Millisecond, vol*0.6)
	case signals.EnemyStomped:
		return NewToneGenerator(sr, 500, 120, 120*time.Millisecond, vol)
	case signals.PlayerDamaged:
		return NewToneGenerator(sr, 180, 90, 200*time.Millisecond, vol)
	case signals.PlayerDied:
		return NewToneGenerator(sr, 600, 80, 600*time.Millisecond, vol)
	case signals.GameOver:
		return beep.Seq(
			NewToneGenerator(sr, 392, 392, 250*time.Millisecond, vol),
			NewToneGenerator(sr, 330, 330, 250*time.Millisecond, vol),
			NewToneGenerator(sr, 262, 200, 500*time.Millisecond, vol),
		)
	case signals.LevelCompleted:
		return beep.Seq(
			NewToneGenerator(sr, 523, 523, 120*time.Millisecond, vol),
			NewToneGenerator(sr, 659, 659, 120*time.Millisecond, vol),
			NewToneGenerator(sr, 784, 784, 120*time.Millisecond, vol),
			NewToneGenerator(sr, 1047, 1047, 300*time.Millisecond, vol),
		)
	}
	return nil
}
