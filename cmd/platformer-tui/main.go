// Command platformer-tui plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/audio"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/game"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/gdamore/tcell/v2"
)

type session struct {
	game      *game.Game
	catalog   *leveldata.Catalog
	levelName string
	next      *string
	finished  bool
}

func (s *session) enter(name string, carry bool) error {
	lvl, err := s.catalog.Load(name)
	if err != nil {
		return err
	}
	if carry {
		s.game.Advance(lvl)
	} else {
		s.game.SetLevel(lvl)
	}
	s.levelName = name
	s.next = nil
	s.finished = false
	return nil
}

func (s *session) restart() error {
	name := s.levelName
	if s.finished {
		name = s.catalog.First()
	}
	return s.enter(name, false)
}

// advance follows a completed level to its successor, or the next level in
// the catalog when it names none.
func (s *session) advance() {
	next := *s.next
	s.next = nil
	if next == "" {
		next = s.catalog.Next(s.levelName)
	}
	if next == "" || !s.catalog.Has(next) {
		s.finished = true
		return
	}
	if err := s.enter(next, true); err != nil {
		log.Printf("Warning: Could not load level %q: %v", next, err)
		s.finished = true
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding tuning values")
	levelPath := flag.String("level", "", "TMX file to start from (default: bundled levels)")
	logPath := flag.String("log", "", "write log output to this file")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	// The terminal belongs to the game, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(*configPath, *levelPath, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelPath string, mute bool) error {
	if configPath != "" {
		if err := config.LoadOverrides(configPath); err != nil {
			return err
		}
	}

	var (
		catalog *leveldata.Catalog
		start   string
		err     error
	)
	if levelPath != "" {
		catalog, start, err = leveldata.CatalogFor(levelPath)
	} else {
		catalog, err = leveldata.NewCatalog(assets.FS(), assets.LevelsDir)
		if err == nil {
			start = catalog.First()
		}
	}
	if err != nil {
		return err
	}
	lvl, err := catalog.Load(start)
	if err != nil {
		return err
	}

	s := &session{catalog: catalog, levelName: start}
	s.game = game.New(lvl, game.Options{OnComplete: func(next string) { s.next = &next }})

	if !mute && !config.Audio.Muted {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Warning: Audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
			s.game.Subscribe(sound.Play)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	v := &view{screen: screen}
	keys := newKeyState()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(config.Game.TickRate))
	defer ticker.Stop()
	dt := 1 / float64(config.Game.TickRate)

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := actionFor(ev)
				switch a {
				case actionQuit:
					return nil
				case actionRestart:
					if s.finished || s.game.Status().GameOver {
						if err := s.restart(); err != nil {
							return err
						}
					}
				default:
					keys.press(a, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if !s.finished && !s.game.Status().GameOver {
				s.game.Update(dt, keys.commands(now))
				if s.next != nil {
					s.advance()
				}
			}
			v.follow(s.game)
			v.draw(s.game, s.levelName, s.finished)
		}
	}
}
