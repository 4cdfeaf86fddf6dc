package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	ScoreValue int
	Collected  bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
