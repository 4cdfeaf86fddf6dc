package game

import (
	"testing"
	"time"

	"github.com/automoto/platformer/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLoopStopsAfterMaxTicks(t *testing.T) {
	lvl, _ := flatLevel(t, 10, 64)
	g := New(lvl, Options{})
	loop := NewGameLoop(g, NewScriptedInput(), 240)
	loop.SetMaxTicks(5)

	ticks := 0
	loop.OnTick = func(*Game, []signals.Signal) { ticks++ }

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		loop.Stop()
		t.Fatal("loop did not stop")
	}

	require.Equal(t, 5, loop.Ticks())
	assert.Equal(t, 5, ticks)
	assert.Equal(t, uint64(5), g.Frame())
	assert.False(t, loop.Running())
}

func TestGameLoopStopIsIdempotent(t *testing.T) {
	lvl, _ := flatLevel(t, 10, 64)
	loop := NewGameLoop(New(lvl, Options{}), nil, 60)

	loop.Stop()
	assert.NotPanics(t, loop.Stop)
	loop.Run()
	assert.False(t, loop.Running())
}
