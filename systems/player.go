package systems

import (
	"log"
	"math"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/signals"
	"github.com/yohamta/donburi"
)

func updatePlayer(e *donburi.Entry, dt float64) {
	body := components.Body.Get(e)
	player := components.Player.Get(e)

	player.StateTime += dt
	if player.InvincibilityTimer > 0 {
		player.InvincibilityTimer = math.Max(0, player.InvincibilityTimer-dt)
	}
	if player.JumpBufferTimer > 0 {
		player.JumpBufferTimer = math.Max(0, player.JumpBufferTimer-dt)
	}

	if body.Velocity.X > 0 {
		player.FacingRight = true
	} else if body.Velocity.X < 0 {
		player.FacingRight = false
	}

	// Fell out of the world: forced death regardless of invincibility
	if body.Position.Y < cfg.Physics.FallDeathY {
		player.Health = 0
		player.InvincibilityTimer = 0
		die(e)
		if body.Active {
			respawnPlayer(e)
		}
		return
	}

	if !player.OnGround {
		body.Velocity.Y = gamemath.ClampFall(body.Velocity.Y+cfg.Player.Gravity*dt, cfg.Player.MaxFallSpeed)
	} else {
		body.Velocity.Y = 0
	}

	body.Integrate(dt)
}

func MoveLeft(e *donburi.Entry) {
	components.Body.Get(e).Velocity.X = -cfg.Player.MoveSpeed
	components.Player.Get(e).FacingRight = false
}

func MoveRight(e *donburi.Entry) {
	components.Body.Get(e).Velocity.X = cfg.Player.MoveSpeed
	components.Player.Get(e).FacingRight = true
}

func StopMoving(e *donburi.Entry) {
	components.Body.Get(e).Velocity.X = 0
}

// Jump launches the player when grounded and allowed to jump. It reports
// whether the jump happened.
func Jump(e *donburi.Entry) bool {
	if !IsActive(e) {
		return false
	}
	player := components.Player.Get(e)
	if !player.OnGround || !player.CanJump {
		return false
	}

	body := components.Body.Get(e)
	body.Velocity.Y = cfg.Player.JumpVelocity
	player.OnGround = false
	player.CanJump = false
	player.JumpBufferTimer = 0

	signals.Emit(e.World, signals.Signal{Kind: signals.PlayerJumped, Entity: e.Entity()})
	return true
}

// BufferJump jumps now if possible, otherwise remembers the intent for
// JumpBufferTime seconds.
func BufferJump(e *donburi.Entry) {
	if Jump(e) {
		return
	}
	components.Player.Get(e).JumpBufferTimer = cfg.Player.JumpBufferTime
}

// ConsumeJumpBuffer performs a remembered jump once the player can jump.
func ConsumeJumpBuffer(e *donburi.Entry) {
	if components.Player.Get(e).JumpBufferTimer > 0 {
		Jump(e)
	}
}

// SetOnGround records ground contact. Landing zeroes vertical velocity and
// re-enables jumping.
func SetOnGround(e *donburi.Entry, grounded bool) {
	player := components.Player.Get(e)
	player.OnGround = grounded
	if !grounded {
		return
	}
	body := components.Body.Get(e)
	body.Velocity.Y = 0
	player.CanJump = true
	player.LastSafeX = body.Position.X
	player.LastSafeY = body.Position.Y
}

func IsInvincible(e *donburi.Entry) bool {
	return components.Player.Get(e).InvincibilityTimer > 0
}

func IsRunning(e *donburi.Entry) bool {
	return math.Abs(components.Body.Get(e).Velocity.X) > 0 && components.Player.Get(e).OnGround
}

func IsJumping(e *donburi.Entry) bool {
	return !components.Player.Get(e).OnGround && components.Body.Get(e).Velocity.Y > 0
}

// IsGameOver is true once the last life is gone.
func IsGameOver(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	return components.Player.Get(e).Lives <= 0 && !components.Body.Get(e).Active
}

// TakeDamage lowers health and opens the invincibility window. Damage taken
// while invincible or already at zero health is ignored, as is a
// non-positive amount.
func TakeDamage(e *donburi.Entry, amount int) {
	player := components.Player.Get(e)
	if amount <= 0 || player.InvincibilityTimer > 0 || player.Health <= 0 {
		return
	}

	player.Health -= amount
	player.InvincibilityTimer = cfg.Player.InvincibilityDuration
	signals.Emit(e.World, signals.Signal{Kind: signals.PlayerDamaged, Entity: e.Entity(), Value: amount})

	if player.Health <= 0 {
		player.Health = 0
		die(e)
	}
}

func Heal(e *donburi.Entry, amount int) {
	player := components.Player.Get(e)
	player.Health = gamemath.Clamp(player.Health+amount, 0, cfg.Player.MaxHealth)
}

func AddScore(e *donburi.Entry, points int) {
	components.Player.Get(e).Score += points
}

// die consumes one life. Runs at most once per life because health is
// restored, or the player deactivated, before it can run again.
func die(e *donburi.Entry) {
	body := components.Body.Get(e)
	player := components.Player.Get(e)
	if player.Lives <= 0 || player.Health > 0 || !body.Active {
		return
	}

	player.Lives--
	signals.Emit(e.World, signals.Signal{Kind: signals.PlayerDied, Entity: e.Entity(), Value: player.Lives})

	if player.Lives <= 0 {
		body.Active = false
		log.Printf("Game over: final score %d", player.Score)
		signals.Emit(e.World, signals.Signal{Kind: signals.GameOver, Entity: e.Entity(), Value: player.Score})
		return
	}

	player.Health = cfg.Player.MaxHealth
	player.InvincibilityTimer = 0
}

// respawnPlayer puts the player back on the last ground it stood on, or on
// its spawn point if it never landed.
func respawnPlayer(e *donburi.Entry) {
	body := components.Body.Get(e)
	player := components.Player.Get(e)

	x, y := player.SpawnX, player.SpawnY
	if player.LastSafeX != 0 || player.LastSafeY != 0 {
		x, y = player.LastSafeX, player.LastSafeY
	}
	body.SetPosition(x, y)
	body.SetVelocity(0, 0)
	player.OnGround = false
	player.JumpBufferTimer = 0
}

// ResetPlayer restores a fresh run: full health, all lives, no score, back at
// spawn.
func ResetPlayer(e *donburi.Entry) {
	body := components.Body.Get(e)
	player := components.Player.Get(e)

	body.Active = true
	body.SetPosition(player.SpawnX, player.SpawnY)
	body.SetVelocity(0, 0)

	player.Health = cfg.Player.MaxHealth
	player.Lives = cfg.Player.StartingLives
	player.Score = 0
	player.InvincibilityTimer = 0
	player.JumpBufferTimer = 0
	player.OnGround = false
	player.CanJump = false
	player.LastSafeX, player.LastSafeY = 0, 0
}
