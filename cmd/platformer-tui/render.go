package main

import (
	"fmt"
	"math"

	"github.com/automoto/platformer/game"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

// One terminal cell covers cellW x cellH world pixels, so a 32px tile is two
// columns wide and one row tall.
const (
	cellW   = 16
	cellH   = 32
	hudRows = 2
)

var (
	skyStyle    = tcell.StyleDefault.Background(tcell.ColorSkyblue)
	solidStyle  = tcell.StyleDefault.Background(tcell.ColorSaddleBrown)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorSkyblue)
	hurtStyle   = tcell.StyleDefault.Foreground(tcell.ColorPink).Background(tcell.ColorSkyblue)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorSkyblue)
	coinStyle   = tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorSkyblue)
	endStyle    = tcell.StyleDefault.Background(tcell.ColorGreen)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type view struct {
	screen tcell.Screen
	camCol int
}

// cell converts a world point (origin bottom-left) to a screen cell below
// the HUD rows.
func (v *view) cell(x, y, levelHeight float64) (int, int) {
	col := int(math.Floor(x/cellW)) - v.camCol
	row := int(math.Floor((levelHeight-y)/cellH)) + hudRows
	return col, row
}

func (v *view) fill(r gamemath.Rect, levelHeight float64, ch rune, style tcell.Style) {
	c0, r1 := v.cell(r.Left(), r.Bottom()+0.5, levelHeight)
	c1, r0 := v.cell(r.Right()-0.5, r.Top()-0.5, levelHeight)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			v.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (v *view) follow(g *game.Game) {
	p := g.Player()
	if !systems.IsActive(p) {
		return
	}
	width, _ := v.screen.Size()
	levelCols := int(g.Level().PixelWidth() / cellW)
	col := int(systems.Bounds(p).CenterX()/cellW) - width/2
	v.camCol = gamemath.Clamp(col, 0, max(levelCols-width, 0))
}

func (v *view) draw(g *game.Game, levelName string, finished bool) {
	v.screen.Clear()
	lvl := g.Level()
	h := lvl.PixelHeight()

	v.fill(gamemath.NewRect(0, 0, lvl.PixelWidth(), h), h, ' ', skyStyle)
	for _, r := range lvl.SolidTiles() {
		v.fill(r, h, ' ', solidStyle)
	}
	if lvl.HasEndTrigger() {
		v.fill(lvl.EndTrigger().Bounds, h, '|', endStyle)
	}
	for _, e := range lvl.Entities() {
		if systems.IsActive(e) && !systems.IsPlayer(e) {
			v.drawEntity(e, h)
		}
	}
	if p := lvl.Player(); systems.IsActive(p) {
		style := playerStyle
		if systems.IsInvincible(p) && (g.Frame()/8)%2 == 0 {
			style = hurtStyle
		}
		v.fill(systems.Bounds(p), h, '@', style)
	}

	st := g.Status()
	v.text(0, 0, fmt.Sprintf("SCORE %d  LIVES %d  HEALTH %d  LEVEL %s", st.Score, st.Lives, st.Health, levelName))
	switch {
	case finished:
		v.text(0, 1, "ALL LEVELS CLEAR - r to play again, q to quit")
	case st.GameOver:
		v.text(0, 1, "GAME OVER - r to retry, q to quit")
	default:
		v.text(0, 1, "arrows/wasd move, space jumps, q quits")
	}
	v.screen.Show()
}

func (v *view) drawEntity(e *donburi.Entry, levelHeight float64) {
	r := systems.Bounds(e)
	switch {
	case systems.IsEnemy(e):
		v.fill(r, levelHeight, 'M', enemyStyle)
	case systems.IsCollectible(e):
		v.fill(r, levelHeight, 'o', coinStyle)
	}
}

func (v *view) text(x, y int, s string) {
	for i, ch := range s {
		v.screen.SetContent(x+i, y, ch, nil, hudStyle)
	}
}
