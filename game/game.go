// Package game runs one frame of simulation in a fixed order: player input,
// entity updates, terrain and entity contacts, then the level completion
// check. Signals raised along the way are handed out at the end of the frame.
package game

import (
	"log"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/level"
	"github.com/automoto/platformer/physics"
	"github.com/automoto/platformer/signals"
	"github.com/automoto/platformer/systems"
	"github.com/yohamta/donburi"
)

// Commands are the player intents for one frame.
type Commands struct {
	Left  bool
	Right bool
	Jump  bool
}

type Options struct {
	// OnComplete runs once per level when the player reaches the end.
	// nextLevel is empty when the level names no successor.
	OnComplete func(nextLevel string)
}

// Game is not safe for concurrent use; drive it from one goroutine.
type Game struct {
	level       *level.Level
	recorder    *signals.Recorder
	subscribers []func(signals.Signal)
	onComplete  func(string)
	completed   bool
	frame       uint64
}

func New(lvl *level.Level, opts Options) *Game {
	g := &Game{onComplete: opts.OnComplete}
	g.SetLevel(lvl)
	return g
}

// SetLevel swaps the level being simulated, for restarts and progression.
func (g *Game) SetLevel(lvl *level.Level) {
	if g.recorder != nil {
		g.recorder.Close()
	}
	g.level = lvl
	g.recorder = signals.NewRecorder(lvl.World())
	g.completed = false
}

// Advance moves on to lvl keeping the player's score, lives and health from
// the level just finished.
func (g *Game) Advance(lvl *level.Level) {
	from, to := g.level.Player(), lvl.Player()
	if from != nil && from.Valid() && to != nil && to.Valid() {
		prev := components.Player.Get(from)
		next := components.Player.Get(to)
		next.Score = prev.Score
		next.Lives = prev.Lives
		if prev.Health > 0 {
			next.Health = prev.Health
		}
	}
	g.SetLevel(lvl)
}

func (g *Game) Level() *level.Level {
	return g.level
}

func (g *Game) Player() *donburi.Entry {
	return g.level.Player()
}

// Subscribe registers fn to receive every signal at the end of each frame.
func (g *Game) Subscribe(fn func(signals.Signal)) {
	g.subscribers = append(g.subscribers, fn)
}

func (g *Game) Completed() bool {
	return g.completed
}

func (g *Game) Frame() uint64 {
	return g.frame
}

// Update advances the simulation by dt seconds and returns the signals the
// frame produced, in the order they were raised.
func (g *Game) Update(dt float64, cmd Commands) []signals.Signal {
	if dt < 0 {
		dt = 0
	}
	if cfg.Game.MaxDelta > 0 && dt > cfg.Game.MaxDelta {
		dt = cfg.Game.MaxDelta
	}
	g.frame++

	lvl := g.level
	player := lvl.Player()

	g.applyCommands(player, cmd)

	lvl.Update(dt)

	if systems.IsActive(player) {
		physics.ResolvePlayerTerrain(player, lvl.SolidsNear(systems.Bounds(player)))
	}
	physics.ResolvePlayerEnemies(player, lvl)
	physics.ResolvePlayerCollectibles(player, lvl)

	for _, e := range lvl.Entities() {
		if systems.IsEnemy(e) && systems.IsActive(e) {
			physics.ResolveEnemyTerrain(e, lvl.SolidsNear(systems.Bounds(e)))
		}
	}

	next, done := g.checkCompletion(player)

	sigs := g.recorder.Flush()
	for _, sig := range sigs {
		for _, fn := range g.subscribers {
			fn(sig)
		}
	}
	if done && g.onComplete != nil {
		g.onComplete(next)
	}
	return sigs
}

// applyCommands turns the frame's intents into player state. Movement is
// reset every frame; when both directions are held, right wins.
func (g *Game) applyCommands(player *donburi.Entry, cmd Commands) {
	if !systems.IsActive(player) {
		return
	}
	systems.StopMoving(player)
	if cmd.Left {
		systems.MoveLeft(player)
	}
	if cmd.Right {
		systems.MoveRight(player)
	}
	if cmd.Jump {
		systems.BufferJump(player)
	} else {
		systems.ConsumeJumpBuffer(player)
	}
}

func (g *Game) checkCompletion(player *donburi.Entry) (string, bool) {
	if g.completed || !systems.IsActive(player) {
		return "", false
	}

	lvl := g.level
	var next string
	switch {
	case lvl.HasEndTrigger():
		if !physics.PlayerReachedEnd(player, lvl.EndTrigger()) {
			return "", false
		}
		next = lvl.EndTrigger().NextLevel
	case cfg.Level.CompleteAtRightEdge && lvl.PixelWidth() > 0:
		if systems.Bounds(player).Right() < lvl.PixelWidth() {
			return "", false
		}
	default:
		return "", false
	}

	g.completed = true
	score := components.Player.Get(player).Score
	log.Printf("Level complete: score %d, next level %q", score, next)
	signals.Emit(lvl.World(), signals.Signal{
		Kind:      signals.LevelCompleted,
		Entity:    player.Entity(),
		Value:     score,
		NextLevel: next,
	})
	return next, true
}

// Status is a read-only summary of the player for HUDs and logs.
type Status struct {
	Score      int
	Lives      int
	Health     int
	Invincible bool
	GameOver   bool
	Completed  bool
}

func (g *Game) Status() Status {
	p := g.level.Player()
	if p == nil || !p.Valid() {
		return Status{Completed: g.completed}
	}
	player := components.Player.Get(p)
	return Status{
		Score:      player.Score,
		Lives:      player.Lives,
		Health:     player.Health,
		Invincible: systems.IsInvincible(p),
		GameOver:   systems.IsGameOver(p),
		Completed:  g.completed,
	}
}
