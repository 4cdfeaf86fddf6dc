package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/game"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	// invincibility flashes the player every flashFrames frames
	flashFrames = 4
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

func viewWidth() float64  { return float64(cfg.C.Width) }
func viewHeight() float64 { return float64(cfg.C.Height) }

// cameraFor centers focusX in a view of width view, clamped to the level.
func cameraFor(focusX, view, levelWidth float64) float64 {
	x := focusX - view/2
	if x > levelWidth-view {
		x = levelWidth - view
	}
	if x < 0 {
		x = 0
	}
	return x
}

// drawWorldRect draws a world rect (origin bottom-left, Y up) onto the
// screen (origin top-left, Y down).
func drawWorldRect(screen *ebiten.Image, r gamemath.Rect, camX float64, c color.Color) {
	x := r.X - camX
	y := viewHeight() - r.Top()
	if x+r.W < 0 || x > viewWidth() {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), c, false)
}

func drawLevel(screen *ebiten.Image, g *game.Game, camX float64) {
	screen.Fill(cfg.Colors.Sky)

	lvl := g.Level()
	for _, r := range lvl.SolidTiles() {
		drawWorldRect(screen, r, camX, cfg.Colors.Solid)
	}
	if lvl.HasEndTrigger() {
		drawWorldRect(screen, lvl.EndTrigger().Bounds, camX, cfg.Colors.EndTrigger)
	}

	for _, e := range lvl.Entities() {
		if !systems.IsActive(e) || systems.IsPlayer(e) {
			continue
		}
		drawEntity(screen, e, camX)
	}
	if p := lvl.Player(); systems.IsActive(p) {
		drawPlayer(screen, p, camX, g.Frame())
	}
}

func drawEntity(screen *ebiten.Image, e *donburi.Entry, camX float64) {
	r := systems.Bounds(e)
	switch {
	case systems.IsEnemy(e):
		drawWorldRect(screen, r, camX, cfg.Colors.Goomba)
	case systems.IsCollectible(e):
		if e.HasComponent(components.Hover) {
			r.Y += components.Hover.Get(e).Offset
		}
		drawWorldRect(screen, r, camX, cfg.Colors.Coin)
	}
}

func drawPlayer(screen *ebiten.Image, p *donburi.Entry, camX float64, frame uint64) {
	c := cfg.Colors.Player
	if systems.IsInvincible(p) && (frame/flashFrames)%2 == 0 {
		c = cfg.Colors.PlayerHurt
	}
	drawWorldRect(screen, systems.Bounds(p), camX, c)
}

func drawHUD(screen *ebiten.Image, st game.Status, levelName string, best int, finished bool) {
	lines := []string{
		fmt.Sprintf("SCORE %d   BEST %d", st.Score, best),
		fmt.Sprintf("LIVES %d   HEALTH %d", st.Lives, st.Health),
		"LEVEL " + levelName,
	}
	for i, l := range lines {
		drawText(screen, l, hudMargin, hudMargin+float64(i*hudLineHeight))
	}

	var banner string
	switch {
	case finished:
		banner = fmt.Sprintf("ALL LEVELS CLEAR! SCORE %d - PRESS R", st.Score)
	case st.GameOver:
		banner = "GAME OVER - PRESS R"
	}
	if banner != "" {
		w, _ := text.Measure(banner, hudFace, 0)
		drawText(screen, banner, (viewWidth()-w)/2, viewHeight()/2)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(cfg.Colors.Text)
	text.Draw(screen, s, hudFace, op)
}
