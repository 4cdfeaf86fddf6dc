package factory

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
)

// CreateEndTrigger builds the level exit. A zero size falls back to the
// default trigger size.
func CreateEndTrigger(x, y, w, h float64, nextLevel string) *components.EndTriggerData {
	if w <= 0 {
		w = cfg.Level.DefaultTriggerSize
	}
	if h <= 0 {
		h = cfg.Level.DefaultTriggerSize
	}
	return &components.EndTriggerData{
		Bounds:    gamemath.NewRect(x, y, w, h),
		NextLevel: nextLevel,
	}
}
