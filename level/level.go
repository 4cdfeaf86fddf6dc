// Package level holds everything that makes up one playable level: its
// entities, static solids, tile layers, the optional end trigger and the
// tiled map it was loaded from.
package level

import (
	"strings"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/systems"
	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Level is the container the physics engine and orchestrator work on.
// Width and Height are in tiles.
type Level struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int

	world    donburi.World
	entities []*donburi.Entry
	player   *donburi.Entry

	solids    []gamemath.Rect
	space     *resolv.Space
	unindexed []int // solids outside the space, always broad phase candidates

	layers     map[string][]int
	layerOrder []string
	converted  map[string]bool // layers already turned into solids by name

	endTrigger *components.EndTriggerData
	tiledMap   *tiled.Map
}

// New creates an empty level of width x height tiles with its own world.
func New(width, height, tileWidth, tileHeight int) *Level {
	l := &Level{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		world:      donburi.NewWorld(),
		layers:     make(map[string][]int),
		converted:  make(map[string]bool),
	}
	if pw, ph := l.PixelWidth(), l.PixelHeight(); pw > 0 && ph > 0 {
		cell := cfg.Physics.BroadphaseCell
		if cell <= 0 {
			cell = 32
		}
		l.space = resolv.NewSpace(int(pw), int(ph), cell, cell)
	}
	return l
}

// World is the donburi world every entity of this level lives in.
func (l *Level) World() donburi.World {
	return l.world
}

func (l *Level) PixelWidth() float64 {
	return float64(l.Width * l.TileWidth)
}

func (l *Level) PixelHeight() float64 {
	return float64(l.Height * l.TileHeight)
}

// AddEntity appends e to the update order. An entity with the player
// capability becomes the level's player; the last one added wins.
func (l *Level) AddEntity(e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	l.entities = append(l.entities, e)
	if systems.IsPlayer(e) {
		l.player = e
	}
}

// Entities returns the entities in insertion order. The slice is replaced on
// every Update and must not be modified.
func (l *Level) Entities() []*donburi.Entry {
	return l.entities
}

// Player returns the designated player, which may be nil or inactive.
func (l *Level) Player() *donburi.Entry {
	return l.player
}

// Update advances every active entity in order, then sweeps out the ones that
// went inactive. Removal is deferred so the iteration itself never changes
// the collection.
func (l *Level) Update(dt float64) {
	for _, e := range l.entities {
		if systems.IsActive(e) {
			systems.UpdateEntity(e, dt)
		}
	}
	l.prune()
}

// prune drops inactive entities. They are removed from the world too, except
// the player, whose final score and lives stay readable after game over.
func (l *Level) prune() {
	kept := make([]*donburi.Entry, 0, len(l.entities))
	for _, e := range l.entities {
		if systems.IsActive(e) {
			kept = append(kept, e)
			continue
		}
		if e == l.player || !e.Valid() {
			continue
		}
		l.world.Remove(e.Entity())
	}
	l.entities = kept
}

// AddTileLayer stores a row-major tile grid. Layers whose name marks them as
// collision layers also produce one solid per non-empty cell. Row 0 is the
// top of the map, so rows are flipped into the Y-up space.
func (l *Level) AddTileLayer(name string, data []int) {
	if _, ok := l.layers[name]; !ok {
		l.layerOrder = append(l.layerOrder, name)
	}
	l.layers[name] = data

	if !IsCollisionLayer(name) {
		return
	}
	l.converted[name] = true

	tw, th := float64(l.TileWidth), float64(l.TileHeight)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			i := y*l.Width + x
			if i >= len(data) || data[i] == 0 {
				continue
			}
			l.addSolid(gamemath.NewRect(float64(x)*tw, float64(l.Height-y-1)*th, tw, th))
		}
	}
}

// IsCollisionLayer reports whether a layer name designates solid terrain.
func IsCollisionLayer(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range cfg.Level.CollisionLayerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// AddObjectSolids adds rectangles given in top-left origin pixel space.
// Rectangles without area are ignored.
func (l *Level) AddObjectSolids(rects []gamemath.Rect) {
	levelH := l.PixelHeight()
	for _, r := range rects {
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		l.addSolid(gamemath.NewRect(r.X, gamemath.FlipY(levelH, r.Y, r.H), r.W, r.H))
	}
}

// AddBlockedTiles turns every cell of the backing tiled map whose tile is
// flagged blocked into a solid. Layers already converted by name are skipped.
func (l *Level) AddBlockedTiles() {
	m := l.tiledMap
	if m == nil {
		return
	}
	tw, th := float64(l.TileWidth), float64(l.TileHeight)
	for _, layer := range m.Layers {
		if l.converted[layer.Name] {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				i := y*m.Width + x
				if i >= len(layer.Tiles) {
					break
				}
				tile := layer.Tiles[i]
				if tile == nil || tile.IsNil() || tile.Tileset == nil {
					continue
				}
				tsTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil || !tsTile.Properties.GetBool(cfg.Level.BlockedProperty) {
					continue
				}
				l.addSolid(gamemath.NewRect(float64(x)*tw, float64(m.Height-y-1)*th, tw, th))
			}
		}
	}
}

func (l *Level) addSolid(r gamemath.Rect) {
	idx := len(l.solids)
	l.solids = append(l.solids, r)

	if l.space == nil || r.X < 0 || r.Y < 0 || r.Right() > l.PixelWidth() || r.Top() > l.PixelHeight() {
		l.unindexed = append(l.unindexed, idx)
		return
	}
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = idx
	l.space.Add(obj)
}

// SolidTiles returns every solid in insertion order.
func (l *Level) SolidTiles() []gamemath.Rect {
	return l.solids
}

// TileLayers maps layer names to their row-major grids.
func (l *Level) TileLayers() map[string][]int {
	return l.layers
}

// TileLayerNames lists the layer names in the order they were added.
func (l *Level) TileLayerNames() []string {
	return l.layerOrder
}

func (l *Level) SetEndTrigger(t *components.EndTriggerData) {
	l.endTrigger = t
}

// EndTrigger returns nil when the level has none.
func (l *Level) EndTrigger() *components.EndTriggerData {
	return l.endTrigger
}

func (l *Level) HasEndTrigger() bool {
	return l.endTrigger != nil
}

func (l *Level) SetTiledMap(m *tiled.Map) {
	l.tiledMap = m
}

func (l *Level) TiledMap() *tiled.Map {
	return l.tiledMap
}

func (l *Level) HasTiledMap() bool {
	return l.tiledMap != nil
}
