package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Direction float64 // -1 walks left, 1 walks right
	Speed     float64
	Gravity   float64
	Damage    int
	StateTime float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
