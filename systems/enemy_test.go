package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/signals"
	"github.com/automoto/platformer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestGoombaWalksAndFalls(t *testing.T) {
	w := donburi.NewWorld()
	g := factory.CreateGoomba(w, 300, 200, 0)

	UpdateEntity(g, 0.1)

	body := components.Body.Get(g)
	assert.Equal(t, -50.0, body.Velocity.X)
	assert.InDelta(t, -80.0, body.Velocity.Y, 1e-9)
	assert.InDelta(t, 295.0, body.Position.X, 1e-9)
	assert.InDelta(t, 192.0, body.Position.Y, 1e-9)
}

func TestReverseDirection(t *testing.T) {
	w := donburi.NewWorld()
	g := factory.CreateGoomba(w, 0, 0, 0)

	ReverseDirection(g)
	UpdateEntity(g, 0.1)
	assert.Equal(t, 50.0, components.Body.Get(g).Velocity.X)
}

func TestDestroyEnemyIsIdempotent(t *testing.T) {
	w := donburi.NewWorld()
	g := factory.CreateGoomba(w, 0, 0, 0)

	DestroyEnemy(g)
	DestroyEnemy(g)
	assert.False(t, IsActive(g))

	before := components.Body.Get(g).Position
	UpdateEntity(g, 0.5)
	assert.Equal(t, before, components.Body.Get(g).Position, "inactive entities are not updated")
}

func TestApplyContactDamage(t *testing.T) {
	w := donburi.NewWorld()
	g := factory.CreateGoomba(w, 0, 0, 0)
	p := factory.CreatePlayer(w, 0, 0)
	rec := signals.NewRecorder(w)

	ApplyContactDamage(g, p)
	assert.Equal(t, 90, components.Player.Get(p).Health)
	assert.Len(t, rec.Flush(), 1)
}

func TestCapabilities(t *testing.T) {
	w := donburi.NewWorld()
	p := factory.CreatePlayer(w, 0, 0)
	g := factory.CreateGoomba(w, 0, 0, 0)
	c := factory.CreateCoin(w, 0, 0, 0)

	assert.True(t, IsPlayer(p))
	assert.False(t, IsEnemy(p))
	assert.True(t, IsEnemy(g))
	assert.False(t, IsCollectible(g))
	assert.True(t, IsCollectible(c))
	assert.False(t, IsPlayer(nil))
	assert.True(t, CollidesWith(p, g))
	assert.True(t, CollidesWith(g, p))
}
