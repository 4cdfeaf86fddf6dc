package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HoverData bobs an entity up and down on screen. Offset is a render-only
// displacement and never feeds back into bounds.
type HoverData struct {
	Sequence *gween.Sequence
	Offset   float64
}

var Hover = donburi.NewComponentType[HoverData]()
