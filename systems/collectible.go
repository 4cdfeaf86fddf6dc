package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/signals"
	"github.com/yohamta/donburi"
)

func updateCollectible(e *donburi.Entry, dt float64) {
	if !e.HasComponent(components.Hover) {
		return
	}
	hover := components.Hover.Get(e)
	if hover.Sequence == nil {
		return
	}
	v, _, _ := hover.Sequence.Update(float32(dt))
	hover.Offset = float64(v)
}

func IsCollectable(e *donburi.Entry) bool {
	return IsActive(e) && !components.Collectible.Get(e).Collected
}

// Collect awards the collectible to player. A second call is a no-op.
func Collect(e, player *donburi.Entry) {
	if !IsCollectable(e) {
		return
	}
	c := components.Collectible.Get(e)
	c.Collected = true
	components.Body.Get(e).Active = false
	AddScore(player, c.ScoreValue)

	signals.Emit(e.World, signals.Signal{Kind: signals.CoinCollected, Entity: e.Entity(), Value: c.ScoreValue})
}
