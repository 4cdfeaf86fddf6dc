package leveldata

import (
	"github.com/automoto/platformer/level"
	"github.com/automoto/platformer/systems/factory"
)

// TestLevel builds a small level in code: a two row floor, two platforms,
// two goombas and four coins. Useful when no level file is at hand.
func TestLevel() *level.Level {
	const (
		width  = 25
		height = 15
		tile   = 32
	)
	lvl := level.New(width, height, tile, tile)

	grid := make([]int, width*height)
	set := func(x, y int) { grid[y*width+x] = 1 }
	for x := 0; x < width; x++ {
		set(x, 13)
		set(x, 14)
	}
	for x := 5; x <= 9; x++ {
		set(x, 10)
	}
	for x := 15; x <= 19; x++ {
		set(x, 8)
	}
	lvl.AddTileLayer("collision", grid)

	w := lvl.World()
	lvl.AddEntity(factory.CreatePlayer(w, 100, 400))
	lvl.AddEntity(factory.CreateGoomba(w, 300, 200, 0))
	lvl.AddEntity(factory.CreateGoomba(w, 500, 200, 0))
	lvl.AddEntity(factory.CreateCoin(w, 250, 250, 0))
	lvl.AddEntity(factory.CreateCoin(w, 280, 250, 0))
	lvl.AddEntity(factory.CreateCoin(w, 310, 250, 0))
	lvl.AddEntity(factory.CreateCoin(w, 450, 300, 0))

	return lvl
}
