// Command headless runs a level without a window, driven by a scripted
// input, and logs every signal. Useful for replaying runs and for checking
// levels in CI.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/game"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/signals"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding tuning values")
	levelPath := flag.String("level", "", "TMX file to run (default: first bundled level)")
	tickRate := flag.Int("tickrate", config.Game.TickRate, "Simulation ticks per second")
	maxTicks := flag.Int("ticks", 0, "Stop after this many ticks (0 = until the run ends)")
	script := flag.String("script", "right:600", "Input script, e.g. right:120,right+jump:5,idle:30")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	steps, err := game.ParseScript(*script)
	if err != nil {
		log.Fatalf("Bad script: %v", err)
	}
	input := game.NewScriptedInput(steps...)

	var catalog *leveldata.Catalog
	var start string
	if *levelPath != "" {
		catalog, start, err = leveldata.CatalogFor(*levelPath)
	} else {
		catalog, err = leveldata.NewCatalog(assets.FS(), assets.LevelsDir)
		if err == nil {
			start = catalog.First()
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	lvl, err := catalog.Load(start)
	if err != nil {
		log.Fatal(err)
	}

	current := start
	var pending *string
	g := game.New(lvl, game.Options{OnComplete: func(next string) { pending = &next }})
	loop := game.NewGameLoop(g, input, *tickRate)
	loop.SetMaxTicks(*maxTicks)

	loop.OnTick = func(g *game.Game, sigs []signals.Signal) {
		for _, sig := range sigs {
			logSignal(loop.Ticks(), sig)
		}

		switch {
		case g.Status().GameOver:
			loop.Stop()
		case pending != nil:
			next := *pending
			pending = nil
			if next == "" || !catalog.Has(next) {
				loop.Stop()
				return
			}
			lvl, err := catalog.Load(next)
			if err != nil {
				log.Printf("Warning: Could not load level %q: %v", next, err)
				loop.Stop()
				return
			}
			log.Printf("Entering level %s", next)
			current = next
			g.Advance(lvl)
		case *maxTicks == 0 && input.Done():
			loop.Stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Running level %s (tick rate: %d/s)", start, *tickRate)
	loop.Run()

	st := g.Status()
	log.Printf("Finished on %s after %d ticks: score %d, lives %d, health %d, completed %t, game over %t",
		current, loop.Ticks(), st.Score, st.Lives, st.Health, st.Completed, st.GameOver)
}

func logSignal(tick int, sig signals.Signal) {
	switch sig.Kind {
	case signals.LevelCompleted:
		log.Printf("[%d] %s score=%d next=%q", tick, sig.Kind, sig.Value, sig.NextLevel)
	default:
		log.Printf("[%d] %s value=%d", tick, sig.Kind, sig.Value)
	}
}
