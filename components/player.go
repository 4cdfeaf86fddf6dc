package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Health int
	Lives  int
	Score  int

	OnGround bool
	CanJump  bool

	InvincibilityTimer float64 // seconds left, 0 when vulnerable
	JumpBufferTimer    float64 // seconds a buffered jump stays valid

	FacingRight bool
	StateTime   float64

	SpawnX    float64
	SpawnY    float64
	LastSafeX float64 // Last position where player was safely grounded
	LastSafeY float64
}

var Player = donburi.NewComponentType[PlayerData]()
