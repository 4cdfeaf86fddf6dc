// Package leveldata builds playable levels from Tiled TMX files. Tiled uses a
// top-left origin; everything here is converted to the bottom-left, Y-up
// space the simulation runs in.
package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/level"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/systems/factory"
	"github.com/lafriks/go-tiled"
)

// ErrNoPlayer is returned for a level without a player spawn.
var ErrNoPlayer = errors.New("level has no player spawn")

// LoadLevel parses a TMX file and builds the level it describes. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*level.Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	lvl, err := FromMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", tmxPath, err)
	}
	log.Printf("Loaded level %s: %d solid tiles, %d entities, %dx%d map",
		tmxPath, len(lvl.SolidTiles()), len(lvl.Entities()), levelMap.Width, levelMap.Height)
	return lvl, nil
}

// FromMap builds a level from an already parsed map.
func FromMap(levelMap *tiled.Map) (*level.Level, error) {
	lvl := level.New(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight)
	lvl.SetTiledMap(levelMap)

	for _, layer := range levelMap.Layers {
		lvl.AddTileLayer(layer.Name, tileIDs(layer))
	}
	lvl.AddBlockedTiles()

	for _, og := range levelMap.ObjectGroups {
		addObjectGroup(lvl, og)
	}

	if lvl.Player() == nil {
		return nil, ErrNoPlayer
	}
	return lvl, nil
}

// tileIDs flattens a layer to global tile ids, 0 for empty cells.
func tileIDs(layer *tiled.Layer) []int {
	ids := make([]int, len(layer.Tiles))
	for i, tile := range layer.Tiles {
		if tile == nil || tile.IsNil() {
			continue
		}
		gid := int(tile.ID) + 1
		if tile.Tileset != nil {
			gid = int(tile.Tileset.FirstGID + tile.ID)
		}
		ids[i] = gid
	}
	return ids
}

func addObjectGroup(lvl *level.Level, og *tiled.ObjectGroup) {
	name := strings.ToLower(og.Name)
	levelH := lvl.PixelHeight()
	w := lvl.World()

	switch {
	case matches(name, cfg.Level.PlayerObjectKeywords):
		if len(og.Objects) == 0 {
			return
		}
		o := og.Objects[0]
		lvl.AddEntity(factory.CreatePlayer(w, o.X, gamemath.FlipY(levelH, o.Y, o.Height)))

	case matches(name, cfg.Level.EnemyObjectKeywords):
		for _, o := range og.Objects {
			e := factory.CreateGoomba(w, o.X, gamemath.FlipY(levelH, o.Y, o.Height), o.Properties.GetFloat("speed"))
			lvl.AddEntity(e)
		}

	case matches(name, cfg.Level.CoinObjectKeywords):
		for _, o := range og.Objects {
			value := o.Properties.GetInt(cfg.Level.ScoreProperty)
			lvl.AddEntity(factory.CreateCoin(w, o.X, gamemath.FlipY(levelH, o.Y, o.Height), value))
		}

	case matches(name, cfg.Level.SolidObjectKeywords):
		rects := make([]gamemath.Rect, 0, len(og.Objects))
		for _, o := range og.Objects {
			rects = append(rects, gamemath.NewRect(o.X, o.Y, o.Width, o.Height))
		}
		lvl.AddObjectSolids(rects)

	case name == cfg.Level.EndObjectLayer:
		if len(og.Objects) == 0 {
			return
		}
		o := og.Objects[0]
		trigger := factory.CreateEndTrigger(0, 0, o.Width, o.Height, o.Properties.GetString(cfg.Level.NextLevelProperty))
		trigger.Bounds.X = o.X
		trigger.Bounds.Y = gamemath.FlipY(levelH, o.Y, trigger.Bounds.H)
		lvl.SetEndTrigger(trigger)

	case name == cfg.Level.EntityObjectLayer:
		for _, o := range og.Objects {
			kind := o.Properties.GetString(cfg.Level.TypeProperty)
			if kind == "" {
				kind = o.Name
			}
			props := factory.Properties{
				ScoreValue: o.Properties.GetInt(cfg.Level.ScoreProperty),
				Speed:      o.Properties.GetFloat("speed"),
			}
			if e := factory.Create(w, kind, o.X, gamemath.FlipY(levelH, o.Y, o.Height), props); e != nil {
				lvl.AddEntity(e)
			}
		}

	default:
		log.Printf("Warning: Ignoring object layer %q", og.Name)
	}
}

func matches(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
