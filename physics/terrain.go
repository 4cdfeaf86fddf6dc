// Package physics resolves contacts between moving entities and level
// geometry, and between the player and other entities. Every function is
// stateless; all state lives on the entities.
package physics

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/systems"
	"github.com/yohamta/donburi"
)

// ResolvePlayerTerrain pushes the player out of every solid it overlaps,
// in the order the solids are given. For each contact the face with the
// smallest penetration wins, subject to the vertical velocity guards:
// the floor only catches a player that is not rising, the ceiling only
// stops a rising one. Without any floor contact the player is airborne.
func ResolvePlayerTerrain(player *donburi.Entry, solids []gamemath.Rect) {
	if !systems.IsActive(player) || !systems.IsPlayer(player) {
		return
	}
	body := components.Body.Get(player)
	tol := cfg.Physics.CollisionTolerance
	grounded := false

	for _, tile := range solids {
		bounds := body.Bounds()
		if !bounds.Overlaps(tile) {
			continue
		}
		o := gamemath.Penetration(bounds, tile)
		min := o.Min()

		switch {
		case min == o.Bottom && body.Velocity.Y <= tol:
			body.SetPosition(body.Position.X, tile.Top())
			systems.SetOnGround(player, true)
			grounded = true
		case min == o.Top && body.Velocity.Y > tol:
			body.SetPosition(body.Position.X, tile.Bottom()-body.Height)
			body.Velocity.Y = 0
		case min == o.Left:
			body.SetPosition(tile.Left()-body.Width, body.Position.Y)
			body.Velocity.X = 0
		case min == o.Right:
			body.SetPosition(tile.Right(), body.Position.Y)
			body.Velocity.X = 0
		}
	}

	if !grounded {
		systems.SetOnGround(player, false)
	}
}

// ResolveEnemyTerrain keeps a walking enemy on the ground and turns it
// around when it walks into a wall.
func ResolveEnemyTerrain(enemy *donburi.Entry, solids []gamemath.Rect) {
	if !systems.IsActive(enemy) || !systems.IsEnemy(enemy) {
		return
	}
	body := components.Body.Get(enemy)

	for _, tile := range solids {
		bounds := body.Bounds()
		if !bounds.Overlaps(tile) {
			continue
		}
		o := gamemath.Penetration(bounds, tile)
		min := o.Min()

		switch {
		case min == o.Bottom && body.Velocity.Y < 0:
			body.SetPosition(body.Position.X, tile.Top())
			body.Velocity.Y = 0
		case min == o.Left:
			body.SetPosition(tile.Left()-body.Width, body.Position.Y)
			systems.ReverseDirection(enemy)
		case min == o.Right:
			body.SetPosition(tile.Right(), body.Position.Y)
			systems.ReverseDirection(enemy)
		case min == o.Top && body.Velocity.Y > 0:
			body.SetPosition(body.Position.X, tile.Bottom()-body.Height)
			body.Velocity.Y = 0
		}
	}
}
