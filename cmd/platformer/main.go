// Command platformer runs the game in a window.
package main

import (
	"errors"
	"flag"
	"log"
	"path/filepath"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/audio"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/persistence"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "platformer"

type Game struct {
	scene *PlatformerScene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding tuning values")
	levelPath := flag.String("level", "", "TMX file to start from (default: bundled levels)")
	watch := flag.Bool("watch", false, "reload the level when its file changes (needs -level)")
	mute := flag.Bool("mute", false, "disable sound")
	noSave := flag.Bool("nosave", false, "do not load or store progress")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var store *persistence.Store
	if !*noSave {
		s, err := persistence.Open(appName)
		if err != nil {
			log.Printf("Warning: Failed to initialize persistence: %v", err)
		} else {
			store = s
		}
	}

	catalog, start, err := openLevels(*levelPath, store)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *leveldata.Watcher
	if *watch {
		if *levelPath == "" {
			log.Fatal("-watch needs -level")
		}
		watcher, err = leveldata.NewWatcher(filepath.Dir(*levelPath))
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	var sound *audio.SoundManager
	if !*mute && !config.Audio.Muted {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Warning: Audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	scene, err := NewPlatformerScene(catalog, start, sound, store, watcher)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Game.TickRate)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

// openLevels picks the level catalog and the level to start on. Without a
// path the bundled levels are used, resuming at the last level reached.
func openLevels(levelPath string, store *persistence.Store) (*leveldata.Catalog, string, error) {
	if levelPath != "" {
		return leveldata.CatalogFor(levelPath)
	}

	catalog, err := leveldata.NewCatalog(assets.FS(), assets.LevelsDir)
	if err != nil {
		return nil, "", err
	}
	start := catalog.First()
	if progress, err := store.LoadProgress(); err == nil && catalog.Has(progress.LastLevel) {
		start = progress.LastLevel
	}
	return catalog, start, nil
}
