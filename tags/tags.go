package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Goomba = donburi.NewTag().SetName("Goomba")
	Coin   = donburi.NewTag().SetName("Coin")
)

// Resolv tags for the solid broad phase
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)
