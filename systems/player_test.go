package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/signals"
	"github.com/automoto/platformer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newPlayer(t *testing.T) (*donburi.Entry, *signals.Recorder) {
	t.Helper()
	w := donburi.NewWorld()
	return factory.CreatePlayer(w, 100, 400), signals.NewRecorder(w)
}

func kinds(sigs []signals.Signal) []signals.Kind {
	out := make([]signals.Kind, 0, len(sigs))
	for _, s := range sigs {
		out = append(out, s.Kind)
	}
	return out
}

func TestPlayerFallsUnderGravity(t *testing.T) {
	p, _ := newPlayer(t)

	UpdateEntity(p, 0.1)

	body := components.Body.Get(p)
	assert.InDelta(t, -80.0, body.Velocity.Y, 1e-9)
	assert.InDelta(t, 392.0, body.Position.Y, 1e-9)
}

func TestPlayerFallSpeedIsClamped(t *testing.T) {
	p, _ := newPlayer(t)
	components.Body.Get(p).Velocity.Y = -490

	UpdateEntity(p, 0.1)
	assert.Equal(t, cfg.Player.MaxFallSpeed, components.Body.Get(p).Velocity.Y)
}

func TestGroundedPlayerKeepsZeroVerticalVelocity(t *testing.T) {
	p, _ := newPlayer(t)
	SetOnGround(p, true)
	components.Body.Get(p).Velocity.Y = -30

	UpdateEntity(p, 0.016)
	assert.Equal(t, 0.0, components.Body.Get(p).Velocity.Y)
	assert.Equal(t, 400.0, components.Body.Get(p).Position.Y)
}

func TestJumpOnlyFromGround(t *testing.T) {
	p, rec := newPlayer(t)

	assert.False(t, Jump(p), "airborne player cannot jump")

	SetOnGround(p, true)
	require.True(t, Jump(p))

	player := components.Player.Get(p)
	assert.Equal(t, cfg.Player.JumpVelocity, components.Body.Get(p).Velocity.Y)
	assert.False(t, player.OnGround)
	assert.False(t, player.CanJump)
	assert.True(t, IsJumping(p))
	assert.Equal(t, []signals.Kind{signals.PlayerJumped}, kinds(rec.Flush()))
}

func TestBufferedJumpFiresOnLanding(t *testing.T) {
	p, _ := newPlayer(t)

	BufferJump(p)
	player := components.Player.Get(p)
	require.Equal(t, cfg.Player.JumpBufferTime, player.JumpBufferTimer)

	SetOnGround(p, true)
	ConsumeJumpBuffer(p)

	assert.Equal(t, cfg.Player.JumpVelocity, components.Body.Get(p).Velocity.Y)
	assert.Zero(t, player.JumpBufferTimer)
}

func TestBufferedJumpExpires(t *testing.T) {
	p, _ := newPlayer(t)

	BufferJump(p)
	UpdateEntity(p, cfg.Player.JumpBufferTime+0.01)
	SetOnGround(p, true)
	ConsumeJumpBuffer(p)

	assert.Equal(t, 0.0, components.Body.Get(p).Velocity.Y, "stale jump intent is dropped")
	assert.True(t, components.Player.Get(p).OnGround)
}

func TestMovementAndFacing(t *testing.T) {
	p, _ := newPlayer(t)
	SetOnGround(p, true)

	MoveLeft(p)
	assert.Equal(t, -cfg.Player.MoveSpeed, components.Body.Get(p).Velocity.X)
	assert.False(t, components.Player.Get(p).FacingRight)
	assert.True(t, IsRunning(p))

	MoveRight(p)
	assert.True(t, components.Player.Get(p).FacingRight)

	StopMoving(p)
	assert.False(t, IsRunning(p))
}

func TestTakeDamageStartsInvincibility(t *testing.T) {
	p, rec := newPlayer(t)

	TakeDamage(p, 10)
	player := components.Player.Get(p)
	assert.Equal(t, 90, player.Health)
	assert.True(t, IsInvincible(p))

	TakeDamage(p, 10)
	assert.Equal(t, 90, player.Health, "no damage while invincible")

	UpdateEntity(p, cfg.Player.InvincibilityDuration)
	assert.False(t, IsInvincible(p))
	TakeDamage(p, 10)
	assert.Equal(t, 80, player.Health)

	assert.Equal(t, []signals.Kind{signals.PlayerDamaged, signals.PlayerDamaged}, kinds(rec.Flush()))
}

func TestDeathWithLivesRemaining(t *testing.T) {
	p, rec := newPlayer(t)
	player := components.Player.Get(p)
	player.Health = 5

	TakeDamage(p, 10)

	assert.Equal(t, 2, player.Lives)
	assert.Equal(t, cfg.Player.MaxHealth, player.Health)
	assert.False(t, IsInvincible(p))
	assert.True(t, IsActive(p))
	assert.Equal(t, []signals.Kind{signals.PlayerDamaged, signals.PlayerDied}, kinds(rec.Flush()))
}

func TestLastLifeIsGameOver(t *testing.T) {
	p, rec := newPlayer(t)
	player := components.Player.Get(p)
	player.Lives = 1
	player.Health = 10

	TakeDamage(p, 10)

	assert.Equal(t, 0, player.Health)
	assert.Equal(t, 0, player.Lives)
	assert.False(t, IsActive(p))
	assert.True(t, IsGameOver(p))
	assert.Equal(t,
		[]signals.Kind{signals.PlayerDamaged, signals.PlayerDied, signals.GameOver},
		kinds(rec.Flush()))

	// Nothing revives or re-kills a finished player.
	TakeDamage(p, 10)
	die(p)
	assert.Equal(t, 0, player.Lives)
	assert.False(t, IsActive(p))
	assert.Empty(t, rec.Flush())
}

func TestFallingOutOfTheWorldKills(t *testing.T) {
	p, rec := newPlayer(t)
	SetOnGround(p, true)
	SetOnGround(p, false)

	body := components.Body.Get(p)
	player := components.Player.Get(p)
	player.InvincibilityTimer = 0.5
	body.SetPosition(100, -150)

	UpdateEntity(p, 0.016)

	assert.Equal(t, 2, player.Lives, "invincibility does not protect against the pit")
	assert.Equal(t, cfg.Player.MaxHealth, player.Health)
	assert.Equal(t, 100.0, body.Position.X)
	assert.Equal(t, 400.0, body.Position.Y, "respawned at last safe ground")
	assert.Equal(t, []signals.Kind{signals.PlayerDied}, kinds(rec.Flush()))

	// Next frame the player is back in the world and no further life is lost.
	UpdateEntity(p, 0.016)
	assert.Equal(t, 2, player.Lives)
}

func TestHealClamps(t *testing.T) {
	p, _ := newPlayer(t)
	player := components.Player.Get(p)
	player.Health = 95

	Heal(p, 50)
	assert.Equal(t, cfg.Player.MaxHealth, player.Health)
}

func TestResetPlayer(t *testing.T) {
	p, _ := newPlayer(t)
	player := components.Player.Get(p)
	player.Lives = 0
	player.Score = 300
	components.Body.Get(p).Active = false

	ResetPlayer(p)

	assert.True(t, IsActive(p))
	assert.Equal(t, cfg.Player.StartingLives, player.Lives)
	assert.Zero(t, player.Score)
	assert.Equal(t, 400.0, components.Body.Get(p).Position.Y)
}

func TestSecondHitInsideInvincibilityWindowIsIgnored(t *testing.T) {
	p, _ := newPlayer(t)
	player := components.Player.Get(p)

	TakeDamage(p, 30)
	assert.Equal(t, 70, player.Health)
	assert.Equal(t, 3, player.Lives)
	assert.Greater(t, player.InvincibilityTimer, 0.0)

	UpdateEntity(p, 0.1)
	TakeDamage(p, 30)
	assert.Equal(t, 70, player.Health)
}

func TestNonPositiveDamageIsIgnored(t *testing.T) {
	p, rec := newPlayer(t)
	player := components.Player.Get(p)

	TakeDamage(p, -50)
	TakeDamage(p, 0)

	assert.Equal(t, cfg.Player.MaxHealth, player.Health)
	assert.False(t, IsInvincible(p))
	assert.Empty(t, rec.Flush())
}
