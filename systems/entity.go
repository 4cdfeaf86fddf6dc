package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// IsActive reports whether e still takes part in the simulation.
func IsActive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && components.Body.Get(e).Active
}

func IsPlayer(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Player)
}

func IsEnemy(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Enemy)
}

func IsCollectible(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Collectible)
}

// Bounds returns the collision rectangle of e.
func Bounds(e *donburi.Entry) gamemath.Rect {
	return components.Body.Get(e).Bounds()
}

// CollidesWith reports whether the bounds of a and b overlap.
func CollidesWith(a, b *donburi.Entry) bool {
	return Bounds(a).Overlaps(Bounds(b))
}

func CollidesWithRect(e *donburi.Entry, r gamemath.Rect) bool {
	return Bounds(e).Overlaps(r)
}

// UpdateEntity advances e by dt seconds, running the behaviour of every
// capability it carries. Inactive entries are left alone.
func UpdateEntity(e *donburi.Entry, dt float64) {
	if !IsActive(e) {
		return
	}
	if IsPlayer(e) {
		updatePlayer(e, dt)
	}
	if IsEnemy(e) {
		updateEnemy(e, dt)
	}
	if IsCollectible(e) {
		updateCollectible(e, dt)
	}
}
