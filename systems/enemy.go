package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/yohamta/donburi"
)

// updateEnemy walks the enemy in its current direction under gravity.
// Ground contact is settled afterwards by terrain resolution.
func updateEnemy(e *donburi.Entry, dt float64) {
	body := components.Body.Get(e)
	enemy := components.Enemy.Get(e)

	enemy.StateTime += dt
	body.Velocity.Y += enemy.Gravity * dt
	body.Velocity.X = enemy.Speed * enemy.Direction

	body.Integrate(dt)
}

func ReverseDirection(e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	enemy.Direction = -enemy.Direction
}

// ApplyContactDamage is the enemy's reaction to touching the player from
// anywhere but above.
func ApplyContactDamage(enemy, player *donburi.Entry) {
	TakeDamage(player, components.Enemy.Get(enemy).Damage)
}

// DestroyEnemy deactivates the enemy. Safe to call more than once.
func DestroyEnemy(e *donburi.Entry) {
	components.Body.Get(e).Active = false
}
