package game

import (
	"testing"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLevelIdle(t *testing.T) {
	lvl := leveldata.TestLevel()
	g := New(lvl, Options{})

	run(g, 90, Commands{})

	p := g.Player()
	require.True(t, systems.IsActive(p))
	body := components.Body.Get(p)
	assert.Equal(t, 64.0, body.Position.Y, "resting on the two row floor")
	assert.Equal(t, 100.0, body.Position.X)
	assert.Equal(t, Status{Score: 0, Lives: 3, Health: 100}, g.Status())

	enemies := 0
	for _, e := range lvl.Entities() {
		if systems.IsEnemy(e) {
			enemies++
			assert.GreaterOrEqual(t, components.Body.Get(e).Position.Y, 64.0, "goombas never sink into the floor")
		}
	}
	assert.Equal(t, 2, enemies)
	assert.False(t, g.Completed())
}
