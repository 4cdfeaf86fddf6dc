package factory

import (
	"log"
	"strings"

	"github.com/yohamta/donburi"
)

// Properties are the optional per-object values a level file can attach to
// an entity.
type Properties struct {
	ScoreValue int
	Speed      float64
}

// Create spawns an entity by kind name. Turtles and koopas have no behaviour
// of their own yet and spawn as goombas. Unknown kinds return nil.
func Create(w donburi.World, kind string, x, y float64, props Properties) *donburi.Entry {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "player", "spawn", "mario":
		return CreatePlayer(w, x, y)
	case "coin":
		return CreateCoin(w, x, y, props.ScoreValue)
	case "goomba", "enemy":
		return CreateGoomba(w, x, y, props.Speed)
	case "turtle", "koopa":
		return CreateGoomba(w, x, y, props.Speed)
	}
	log.Printf("Warning: Unknown entity type %q at (%.0f, %.0f)", kind, x, y)
	return nil
}
