package level

import (
	"math"
	"sort"

	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
)

const (
	tagSolid = tags.ResolvSolid
	tagProbe = tags.ResolvProbe
)

// SolidsNear returns the solids that may overlap r, in the same order as
// SolidTiles. Resolution is order dependent, so callers get a subsequence of
// the full list rather than the space's cell order.
func (l *Level) SolidsNear(r gamemath.Rect) []gamemath.Rect {
	if l.space == nil {
		return l.solids
	}

	// Inflate by a tile so bodies sitting exactly on a cell boundary still see
	// their neighbours.
	margin := math.Max(1, math.Max(float64(l.TileWidth), float64(l.TileHeight)))
	p := r.Inflate(margin)
	probe := resolv.NewObject(p.X, p.Y, p.W, p.H, tagProbe)
	l.space.Add(probe)
	defer l.space.Remove(probe)

	seen := make(map[int]bool)
	indices := append([]int(nil), l.unindexed...)
	for _, i := range indices {
		seen[i] = true
	}
	if c := probe.Check(0, 0, tagSolid); c != nil {
		for _, obj := range c.Objects {
			i, ok := obj.Data.(int)
			if !ok || seen[i] {
				continue
			}
			seen[i] = true
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)

	out := make([]gamemath.Rect, 0, len(indices))
	for _, i := range indices {
		out = append(out, l.solids[i])
	}
	return out
}
