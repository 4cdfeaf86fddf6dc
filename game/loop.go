package game

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/platformer/signals"
)

// InputSource supplies the commands for each tick.
type InputSource interface {
	Poll() Commands
}

// GameLoop drives a Game at a fixed tick rate. Each tick runs Update
// synchronously on the loop's goroutine.
type GameLoop struct {
	game     *Game
	input    InputSource
	tickRate int
	maxTicks int
	ticks    int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick, if set, sees every tick's signals after the frame ran.
	OnTick func(g *Game, sigs []signals.Signal)
}

func NewGameLoop(game *Game, input InputSource, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		game:     game,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// SetMaxTicks stops the loop on its own after n ticks. Zero runs until Stop.
func (g *GameLoop) SetMaxTicks(n int) {
	g.maxTicks = n
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

func (g *GameLoop) Ticks() int {
	return g.ticks
}

// Run blocks until Stop is called or the tick budget is spent.
func (g *GameLoop) Run() {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			if g.maxTicks > 0 && g.ticks >= g.maxTicks {
				g.Stop()
			}
		}
	}
}

// Stop may be called more than once and from any goroutine.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	var cmd Commands
	if g.input != nil {
		cmd = g.input.Poll()
	}
	sigs := g.game.Update(1/float64(g.tickRate), cmd)
	g.ticks++
	if g.OnTick != nil {
		g.OnTick(g.game, sigs)
	}
}
