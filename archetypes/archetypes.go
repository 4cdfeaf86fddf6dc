package archetypes

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Player,
	)
	Goomba = newArchetype(
		tags.Enemy,
		tags.Goomba,
		components.Body,
		components.Enemy,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Body,
		components.Collectible,
		components.Hover,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
