package main

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/automoto/platformer/audio"
	"github.com/automoto/platformer/game"
	"github.com/automoto/platformer/persistence"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/signals"
	"github.com/automoto/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var errQuit = errors.New("quit")

// PlatformerScene owns the running game and everything around it: level
// switching, restarts, hot reload, sound and saved progress.
type PlatformerScene struct {
	game      *game.Game
	catalog   *leveldata.Catalog
	levelName string

	sound    *audio.SoundManager
	store    *persistence.Store
	progress *persistence.Progress
	watcher  *leveldata.Watcher

	nextLevel *string
	finished  bool
	cameraX   float64
}

func NewPlatformerScene(catalog *leveldata.Catalog, start string, sound *audio.SoundManager,
	store *persistence.Store, watcher *leveldata.Watcher) (*PlatformerScene, error) {
	progress, err := store.LoadProgress()
	if err != nil {
		log.Printf("Warning: Starting without saved progress: %v", err)
	}

	s := &PlatformerScene{
		catalog:  catalog,
		sound:    sound,
		store:    store,
		progress: progress,
		watcher:  watcher,
	}
	if err := s.enterLevel(start, false); err != nil {
		return nil, err
	}
	return s, nil
}

// enterLevel loads name and makes it the running level. With carry set the
// player keeps score, lives and health from the previous level.
func (s *PlatformerScene) enterLevel(name string, carry bool) error {
	lvl, err := s.catalog.Load(name)
	if err != nil {
		return err
	}

	switch {
	case s.game == nil:
		s.game = game.New(lvl, game.Options{OnComplete: s.onComplete})
		s.game.Subscribe(s.onSignal)
	case carry:
		s.game.Advance(lvl)
	default:
		s.game.SetLevel(lvl)
	}
	s.levelName = name
	s.nextLevel = nil
	s.finished = false
	s.cameraX = 0

	if s.progress != nil && s.progress.Record(0, name) {
		s.save()
	}
	return nil
}

func (s *PlatformerScene) onComplete(next string) {
	s.nextLevel = &next
}

func (s *PlatformerScene) onSignal(sig signals.Signal) {
	if s.sound != nil {
		s.sound.Play(sig)
	}
	switch sig.Kind {
	case signals.GameOver, signals.LevelCompleted:
		if s.progress != nil && s.progress.Record(sig.Value, s.levelName) {
			s.save()
		}
	}
}

func (s *PlatformerScene) save() {
	if err := s.store.SaveProgress(s.progress); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (s *PlatformerScene) Update() error {
	if inpututil.IsKeyJustPressed(quitKey) {
		return errQuit
	}
	s.pollReload()

	status := s.game.Status()
	if status.GameOver || s.finished {
		if inpututil.IsKeyJustPressed(restartKey) {
			start := s.levelName
			if s.finished {
				start = s.catalog.First()
			}
			if err := s.enterLevel(start, false); err != nil {
				log.Printf("Warning: Could not restart: %v", err)
			}
		}
		return nil
	}

	s.game.Update(1/float64(ebiten.TPS()), pollCommands())

	if s.nextLevel != nil {
		s.advance(*s.nextLevel)
	}
	s.followPlayer()
	return nil
}

// advance moves on after a completed level. Without a named successor the
// next level in the catalog is used; after the last one the run is over.
func (s *PlatformerScene) advance(next string) {
	s.nextLevel = nil
	if next == "" {
		next = s.catalog.Next(s.levelName)
	}
	if next == "" || !s.catalog.Has(next) {
		log.Printf("All levels complete, final score %d", s.game.Status().Score)
		s.finished = true
		return
	}
	if err := s.enterLevel(next, true); err != nil {
		log.Printf("Warning: Could not load level %q: %v", next, err)
		s.finished = true
	}
}

// pollReload reloads the current level when its file changed on disk.
func (s *PlatformerScene) pollReload() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if name != s.levelName {
				continue
			}
			log.Printf("Reloading level %s", name)
			if err := s.enterLevel(name, false); err != nil {
				log.Printf("Warning: Reload failed: %v", err)
			}
		case err, ok := <-s.watcher.Errors:
			if ok {
				log.Printf("Warning: Level watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (s *PlatformerScene) followPlayer() {
	p := s.game.Player()
	if !systems.IsActive(p) {
		return
	}
	s.cameraX = cameraFor(systems.Bounds(p).CenterX(), viewWidth(), s.game.Level().PixelWidth())
}

func (s *PlatformerScene) Draw(screen *ebiten.Image) {
	drawLevel(screen, s.game, s.cameraX)
	drawHUD(screen, s.game.Status(), s.levelName, s.bestScore(), s.finished)
}

func (s *PlatformerScene) bestScore() int {
	if s.progress == nil {
		return 0
	}
	return s.progress.BestScore
}
