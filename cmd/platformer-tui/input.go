package main

import (
	"time"

	"github.com/automoto/platformer/game"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and auto-repeat but never releases, so a key
// counts as held for keyTimeout after its last event.
const keyTimeout = 150 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionJump
	actionRestart
	actionQuit
)

type keyState struct {
	held map[action]time.Time
	jump bool
}

func newKeyState() *keyState {
	return &keyState{held: make(map[action]time.Time)}
}

func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyUp:
		return actionJump
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return actionLeft
		case 'd', 'D':
			return actionRight
		case ' ', 'w', 'W':
			return actionJump
		case 'r', 'R':
			return actionRestart
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

func (k *keyState) press(a action, now time.Time) {
	switch a {
	case actionLeft, actionRight:
		k.held[a] = now
	case actionJump:
		k.jump = true
	}
}

// commands returns the intents for one tick. A jump press is reported once.
func (k *keyState) commands(now time.Time) game.Commands {
	cmd := game.Commands{
		Left:  k.isHeld(actionLeft, now),
		Right: k.isHeld(actionRight, now),
		Jump:  k.jump,
	}
	k.jump = false
	return cmd
}

func (k *keyState) isHeld(a action, now time.Time) bool {
	last, ok := k.held[a]
	return ok && now.Sub(last) < keyTimeout
}
