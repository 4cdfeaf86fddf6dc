package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverrides(t *testing.T) {
	t.Cleanup(Reset)

	err := ApplyOverrides([]byte(`
player:
  moveSpeed: 200
  startingLives: 5
combat:
  stompScore: 250
`))
	require.NoError(t, err)

	assert.Equal(t, 200.0, Player.MoveSpeed)
	assert.Equal(t, 5, Player.StartingLives)
	assert.Equal(t, 400.0, Player.JumpVelocity, "absent keys keep defaults")
	assert.Equal(t, 250, Combat.StompScore)
	assert.Equal(t, 50.0, Goomba.Speed)
}

func TestApplyOverridesRejectsUnknownKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := ApplyOverrides([]byte(`
player:
  moveSpeed: 999
  wallJump: true
`))
	require.Error(t, err)
	assert.Equal(t, 150.0, Player.MoveSpeed, "a bad document must not be partially applied")
}

func TestApplyOverridesEmpty(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, ApplyOverrides(nil))
	assert.Equal(t, 3, Player.StartingLives)
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goomba:\n  damage: 25\n"), 0o644))

	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 25, Goomba.Damage)

	err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	Player.MoveSpeed = 1
	Level.CompleteAtRightEdge = false
	Reset()
	assert.Equal(t, 150.0, Player.MoveSpeed)
	assert.True(t, Level.CompleteAtRightEdge)
}

func TestApplyOverridesRejectsBadRates(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"zero tick rate", "game:\n  tickRate: 0\n"},
		{"negative tick rate", "game:\n  tickRate: -30\n"},
		{"negative max delta", "game:\n  maxDelta: -1\n"},
		{"zero sample rate", "audio:\n  sampleRate: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, ApplyOverrides([]byte("player:\n  moveSpeed: 999\n"+tt.doc)))
			assert.Equal(t, 60, Game.TickRate)
			assert.Equal(t, 150.0, Player.MoveSpeed, "nothing is applied from a rejected document")
		})
	}
}
