package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// CreateGoomba spawns the walking enemy. speed <= 0 uses the configured
// default.
func CreateGoomba(w donburi.World, x, y, speed float64) *donburi.Entry {
	enemy := archetypes.Goomba.Spawn(w)

	if speed <= 0 {
		speed = cfg.Goomba.Speed
	}

	components.Body.SetValue(enemy, components.BodyData{
		Width:  cfg.Goomba.Width,
		Height: cfg.Goomba.Height,
		Active: true,
		Kind:   components.KindGoomba,
	})
	components.Body.Get(enemy).SetPosition(x, y)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: cfg.Goomba.Direction,
		Speed:     speed,
		Gravity:   cfg.Goomba.Gravity,
		Damage:    cfg.Goomba.Damage,
	})

	return enemy
}
