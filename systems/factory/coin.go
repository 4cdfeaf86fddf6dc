package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateCoin spawns a collectible. value <= 0 uses the configured default.
func CreateCoin(w donburi.World, x, y float64, value int) *donburi.Entry {
	coin := archetypes.Coin.Spawn(w)

	if value <= 0 {
		value = cfg.Coin.ScoreValue
	}

	components.Body.SetValue(coin, components.BodyData{
		Width:  cfg.Coin.Width,
		Height: cfg.Coin.Height,
		Active: true,
		Kind:   components.KindCoin,
	})
	components.Body.Get(coin).SetPosition(x, y)
	components.Collectible.SetValue(coin, components.CollectibleData{
		ScoreValue: value,
	})

	// The coin bobs up and back down forever.
	amp := float32(cfg.Coin.HoverAmplitude)
	dur := float32(cfg.Coin.HoverDuration)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, amp, dur, ease.InOutSine),
		gween.New(amp, 0, dur, ease.InOutSine),
	)
	seq.SetLoop(-1)
	components.Hover.SetValue(coin, components.HoverData{Sequence: seq})

	return coin
}
