package physics

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/signals"
	"github.com/automoto/platformer/systems"
	"github.com/yohamta/donburi"
)

// Entities is the read side of a level the contact passes need.
type Entities interface {
	Entities() []*donburi.Entry
}

// ResolvePlayerEnemies handles every enemy the player touches. Landing on
// the upper half of an enemy while falling stomps it; any other touch hurts
// the player and knocks it away from the enemy unless it is invincible.
func ResolvePlayerEnemies(player *donburi.Entry, lvl Entities) {
	if !systems.IsActive(player) || !systems.IsPlayer(player) {
		return
	}
	if components.Player.Get(player).Health <= 0 {
		return
	}
	body := components.Body.Get(player)

	for _, e := range lvl.Entities() {
		if e == player || !systems.IsEnemy(e) || !systems.IsActive(e) {
			continue
		}
		if !systems.CollidesWith(player, e) {
			continue
		}
		enemy := components.Body.Get(e)

		if body.Velocity.Y < 0 && body.Position.Y > enemy.Position.Y+enemy.Height/2 {
			stomp(player, e)
			continue
		}
		if systems.IsInvincible(player) {
			continue
		}
		systems.ApplyContactDamage(e, player)
		if body.Position.X < enemy.Position.X {
			body.Velocity.X = -cfg.Combat.KnockbackForce
		} else {
			body.Velocity.X = cfg.Combat.KnockbackForce
		}
	}
}

func stomp(player, enemy *donburi.Entry) {
	systems.DestroyEnemy(enemy)
	components.Body.Get(player).Velocity.Y = cfg.Combat.StompBounce
	systems.AddScore(player, cfg.Combat.StompScore)
	signals.Emit(player.World, signals.Signal{
		Kind:   signals.EnemyStomped,
		Entity: enemy.Entity(),
		Value:  cfg.Combat.StompScore,
	})
}

// ResolvePlayerCollectibles collects everything the player overlaps.
func ResolvePlayerCollectibles(player *donburi.Entry, lvl Entities) {
	if !systems.IsActive(player) || !systems.IsPlayer(player) {
		return
	}
	for _, e := range lvl.Entities() {
		if !systems.IsCollectible(e) || !systems.IsCollectable(e) {
			continue
		}
		if systems.CollidesWith(player, e) {
			systems.Collect(e, player)
		}
	}
}

// PlayerReachedEnd reports whether an active player overlaps the trigger.
func PlayerReachedEnd(player *donburi.Entry, trigger *components.EndTriggerData) bool {
	if trigger == nil || !systems.IsActive(player) {
		return false
	}
	return systems.CollidesWithRect(player, trigger.Bounds)
}
