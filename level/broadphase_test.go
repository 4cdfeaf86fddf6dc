package level

import (
	"testing"

	"github.com/automoto/platformer/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterOverlapping(all []gamemath.Rect, r gamemath.Rect) []gamemath.Rect {
	var out []gamemath.Rect
	for _, s := range all {
		if s.Overlaps(r) {
			out = append(out, s)
		}
	}
	return out
}

func TestSolidsNearKeepsListOrder(t *testing.T) {
	l := New(25, 15, 32, 32)
	grid := make([]int, 25*15)
	for x := 0; x < 25; x++ {
		grid[13*25+x] = 1
		grid[14*25+x] = 1
	}
	for x := 5; x <= 9; x++ {
		grid[10*25+x] = 1
	}
	l.AddTileLayer("collision", grid)

	mover := gamemath.NewRect(150.5, 62.9, 32, 32)
	near := l.SolidsNear(mover)

	require.NotEmpty(t, near)
	assert.Less(t, len(near), len(l.SolidTiles()))

	// Every real overlap is a candidate, and candidates follow list order.
	assert.Equal(t, filterOverlapping(l.SolidTiles(), mover), filterOverlapping(near, mover))
	index := func(r gamemath.Rect) int {
		for i, s := range l.SolidTiles() {
			if s == r {
				return i
			}
		}
		return -1
	}
	for i := 1; i < len(near); i++ {
		assert.Less(t, index(near[i-1]), index(near[i]))
	}
}

func TestSolidsNearIncludesOutOfBoundsSolids(t *testing.T) {
	l := New(4, 4, 32, 32)
	l.AddObjectSolids([]gamemath.Rect{{X: -64, Y: 0, W: 64, H: 32}})
	l.AddObjectSolids([]gamemath.Rect{{X: 0, Y: 96, W: 32, H: 32}})

	near := l.SolidsNear(gamemath.NewRect(100, 100, 8, 8))
	assert.Contains(t, near, l.SolidTiles()[0])
}

func TestSolidsNearWithoutSpace(t *testing.T) {
	l := New(0, 0, 32, 32)
	l.AddObjectSolids([]gamemath.Rect{{X: 0, Y: -32, W: 32, H: 32}})
	assert.Equal(t, l.SolidTiles(), l.SolidsNear(gamemath.NewRect(0, 0, 1, 1)))
}
