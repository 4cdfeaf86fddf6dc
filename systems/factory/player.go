package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Active: true,
		Kind:   components.KindPlayer,
	})
	components.Body.Get(player).SetPosition(x, y)
	components.Player.SetValue(player, components.PlayerData{
		Health:      cfg.Player.MaxHealth,
		Lives:       cfg.Player.StartingLives,
		FacingRight: true,
		SpawnX:      x,
		SpawnY:      y,
	})

	return player
}
