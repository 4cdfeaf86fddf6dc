package components

import "github.com/automoto/platformer/shared/gamemath"

// EndTriggerData is a passive region that completes the level when the
// player overlaps it. It is queried, never updated.
type EndTriggerData struct {
	Bounds    gamemath.Rect
	NextLevel string
}

func (t *EndTriggerData) HasNextLevel() bool {
	return t.NextLevel != ""
}
