package components

import (
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Entity kinds. Only used for display and logging; behaviour is chosen by
// the capability components an entry carries.
const (
	KindPlayer = "player"
	KindGoomba = "goomba"
	KindCoin   = "coin"
)

// BodyData is the shared simulation state of every entity.
type BodyData struct {
	Position math.Vec2 // bottom-left corner
	Velocity math.Vec2
	Width    float64
	Height   float64
	Active   bool
	Kind     string
}

// Bounds is always derived from the current position and size.
func (b *BodyData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: b.Position.X, Y: b.Position.Y, W: b.Width, H: b.Height}
}

func (b *BodyData) SetPosition(x, y float64) {
	b.Position.X = x
	b.Position.Y = y
}

func (b *BodyData) SetVelocity(x, y float64) {
	b.Velocity.X = x
	b.Velocity.Y = y
}

// Integrate moves the body by its velocity over dt seconds.
func (b *BodyData) Integrate(dt float64) {
	b.Position.X += b.Velocity.X * dt
	b.Position.Y += b.Velocity.Y * dt
}

var Body = donburi.NewComponentType[BodyData]()
