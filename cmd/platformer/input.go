package main

import (
	"github.com/automoto/platformer/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	leftKeys   = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys  = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKey = ebiten.KeyR
	quitKey    = ebiten.KeyEscape
)

// pollCommands reads the keyboard. Movement follows held keys; jump only
// fires on the frame the key goes down.
func pollCommands() game.Commands {
	return game.Commands{
		Left:  anyPressed(leftKeys),
		Right: anyPressed(rightKeys),
		Jump:  anyJustPressed(jumpKeys),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
