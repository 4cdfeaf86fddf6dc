package factory

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCreateByKind(t *testing.T) {
	tests := []struct {
		kind       string
		capability donburi.IComponentType
		wantKind   string
	}{
		{"player", components.Player, components.KindPlayer},
		{"Coin", components.Collectible, components.KindCoin},
		{"goomba", components.Enemy, components.KindGoomba},
		{"turtle", components.Enemy, components.KindGoomba},
		{"koopa", components.Enemy, components.KindGoomba},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			w := donburi.NewWorld()
			e := Create(w, tt.kind, 10, 20, Properties{})
			require.NotNil(t, e)
			assert.True(t, e.HasComponent(tt.capability))

			body := components.Body.Get(e)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.True(t, body.Active)
			assert.Equal(t, 10.0, body.Position.X)
			assert.Equal(t, 20.0, body.Position.Y)
		})
	}
}

func TestCreateUnknownKind(t *testing.T) {
	w := donburi.NewWorld()
	assert.Nil(t, Create(w, "dragon", 0, 0, Properties{}))
}

func TestCreatePlayerDefaults(t *testing.T) {
	w := donburi.NewWorld()
	p := CreatePlayer(w, 100, 400)

	assert.True(t, p.HasComponent(tags.Player))
	player := components.Player.Get(p)
	assert.Equal(t, cfg.Player.MaxHealth, player.Health)
	assert.Equal(t, cfg.Player.StartingLives, player.Lives)
	assert.Equal(t, 100.0, player.SpawnX)

	b := components.Body.Get(p).Bounds()
	assert.Equal(t, 32.0, b.W)
	assert.Equal(t, 32.0, b.H)
}

func TestCreateCoinValue(t *testing.T) {
	w := donburi.NewWorld()

	c := CreateCoin(w, 0, 0, 0)
	assert.Equal(t, cfg.Coin.ScoreValue, components.Collectible.Get(c).ScoreValue)
	assert.Equal(t, 16.0, components.Body.Get(c).Width)

	c = Create(w, "coin", 0, 0, Properties{ScoreValue: 50})
	assert.Equal(t, 50, components.Collectible.Get(c).ScoreValue)
}

func TestCreateGoombaDefaults(t *testing.T) {
	w := donburi.NewWorld()
	g := CreateGoomba(w, 300, 200, 0)

	enemy := components.Enemy.Get(g)
	assert.Equal(t, -1.0, enemy.Direction)
	assert.Equal(t, 50.0, enemy.Speed)
	assert.Equal(t, 10, enemy.Damage)
	assert.True(t, g.HasComponent(tags.Goomba))
}

func TestCreateEndTriggerDefaultSize(t *testing.T) {
	tr := CreateEndTrigger(700, 64, 0, 0, "")
	assert.Equal(t, 32.0, tr.Bounds.W)
	assert.Equal(t, 32.0, tr.Bounds.H)
	assert.False(t, tr.HasNextLevel())

	tr = CreateEndTrigger(700, 64, 16, 96, "level2")
	assert.Equal(t, 16.0, tr.Bounds.W)
	assert.True(t, tr.HasNextLevel())
}
