package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64 `yaml:"moveSpeed"`
	JumpVelocity float64 `yaml:"jumpVelocity"`

	// Physics
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // negative, Y is up

	// Health and lives
	MaxHealth             int     `yaml:"maxHealth"`
	StartingLives         int     `yaml:"startingLives"`
	InvincibilityDuration float64 `yaml:"invincibilityDuration"` // seconds

	// A jump pressed while airborne is remembered this long
	JumpBufferTime float64 `yaml:"jumpBufferTime"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GoombaConfig contains configuration for the walking enemy
type GoombaConfig struct {
	Speed     float64 `yaml:"speed"`
	Gravity   float64 `yaml:"gravity"`
	Damage    int     `yaml:"damage"`
	Direction float64 `yaml:"direction"` // initial walk direction, -1 or 1
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// CoinConfig contains configuration for collectible coins
type CoinConfig struct {
	ScoreValue int     `yaml:"scoreValue"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`

	// Hover is purely visual: amplitude in pixels, one leg duration in seconds
	HoverAmplitude float64 `yaml:"hoverAmplitude"`
	HoverDuration  float64 `yaml:"hoverDuration"`
}

// CombatConfig holds player vs enemy contact values
type CombatConfig struct {
	StompBounce    float64 `yaml:"stompBounce"`
	StompScore     int     `yaml:"stompScore"`
	KnockbackForce float64 `yaml:"knockbackForce"`
}

// PhysicsConfig holds collision resolution values
type PhysicsConfig struct {
	// Velocity guard for player floor/ceiling resolution
	CollisionTolerance float64 `yaml:"collisionTolerance"`
	// Players below this Y are killed
	FallDeathY float64 `yaml:"fallDeathY"`
	// Cell size of the solid broad phase grid, in pixels
	BroadphaseCell int `yaml:"broadphaseCell"`
}

// LevelConfig describes how layers and objects of a level file are read
type LevelConfig struct {
	CollisionLayerKeywords []string
	SolidObjectKeywords    []string
	PlayerObjectKeywords   []string
	EnemyObjectKeywords    []string
	CoinObjectKeywords     []string
	EntityObjectLayer      string
	EndObjectLayer         string
	BlockedProperty        string
	ScoreProperty          string
	NextLevelProperty      string
	TypeProperty           string
	DefaultTriggerSize     float64

	// With no end trigger, the level completes when the player's right edge
	// reaches the level's pixel width.
	CompleteAtRightEdge bool
}

// GameConfig holds orchestrator values
type GameConfig struct {
	TickRate int `yaml:"tickRate"`
	// Largest frame delta fed to the simulation, in seconds
	MaxDelta float64 `yaml:"maxDelta"`
}

// AudioConfig holds the procedural sound settings
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"`
	Muted      bool    `yaml:"muted"`
}

// ColorConfig is the palette shared by the demo renderers
type ColorConfig struct {
	Sky        color.RGBA
	Solid      color.RGBA
	Player     color.RGBA
	PlayerHurt color.RGBA
	Goomba     color.RGBA
	Coin       color.RGBA
	EndTrigger color.RGBA
	Text       color.RGBA
}

type Config struct {
	Width  int
	Height int
	Title  string
}

var C *Config
var Player PlayerConfig
var Goomba GoombaConfig
var Coin CoinConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Level LevelConfig
var Game GameConfig
var Audio AudioConfig
var Colors ColorConfig

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 480,
		Title:  "Platformer",
	}

	Player = PlayerConfig{
		MoveSpeed:    150,
		JumpVelocity: 400,

		Gravity:      -800,
		MaxFallSpeed: -500,

		MaxHealth:             100,
		StartingLives:         3,
		InvincibilityDuration: 1.0,

		JumpBufferTime: 0.12,

		Width:  32,
		Height: 32,
	}

	Goomba = GoombaConfig{
		Speed:     50,
		Gravity:   -800,
		Damage:    10,
		Direction: -1,
		Width:     32,
		Height:    32,
	}

	Coin = CoinConfig{
		ScoreValue:     10,
		Width:          16,
		Height:         16,
		HoverAmplitude: 3,
		HoverDuration:  0.6,
	}

	Combat = CombatConfig{
		StompBounce:    200,
		StompScore:     100,
		KnockbackForce: 100,
	}

	Physics = PhysicsConfig{
		CollisionTolerance: 0.1,
		FallDeathY:         -100,
		BroadphaseCell:     32,
	}

	Level = LevelConfig{
		CollisionLayerKeywords: []string{"collision", "solid"},
		SolidObjectKeywords:    []string{"ground", "collision", "pipes", "bricks"},
		PlayerObjectKeywords:   []string{"player", "spawn", "mario"},
		EnemyObjectKeywords:    []string{"enemies", "goomba", "turtle"},
		CoinObjectKeywords:     []string{"coin"},
		EntityObjectLayer:      "entities",
		EndObjectLayer:         "end",
		BlockedProperty:        "blocked",
		ScoreProperty:          "scoreValue",
		NextLevelProperty:      "nextLevel",
		TypeProperty:           "type",
		DefaultTriggerSize:     32,
		CompleteAtRightEdge:    true,
	}

	Game = GameConfig{
		TickRate: 60,
		MaxDelta: 1.0 / 20,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     0.4,
	}

	Colors = ColorConfig{
		Sky:        color.RGBA{R: 92, G: 148, B: 252, A: 255},
		Solid:      color.RGBA{R: 136, G: 84, B: 40, A: 255},
		Player:     color.RGBA{R: 216, G: 40, B: 0, A: 255},
		PlayerHurt: color.RGBA{R: 252, G: 188, B: 176, A: 255},
		Goomba:     color.RGBA{R: 120, G: 60, B: 20, A: 255},
		Coin:       color.RGBA{R: 252, G: 216, B: 0, A: 255},
		EndTrigger: color.RGBA{R: 0, G: 168, B: 0, A: 160},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
