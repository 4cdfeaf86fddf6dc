package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type overrideFile struct {
	Player  *PlayerConfig  `yaml:"player"`
	Goomba  *GoombaConfig  `yaml:"goomba"`
	Coin    *CoinConfig    `yaml:"coin"`
	Combat  *CombatConfig  `yaml:"combat"`
	Physics *PhysicsConfig `yaml:"physics"`
	Game    *GameConfig    `yaml:"game"`
	Audio   *AudioConfig   `yaml:"audio"`
}

// LoadOverrides reads a YAML file and applies it on top of the current
// configuration.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes YAML onto copies of the current values and commits
// them only when the whole document is valid. Keys absent from the document
// keep their value; unknown keys are an error.
func ApplyOverrides(data []byte) error {
	player, goomba, coin := Player, Goomba, Coin
	combat, physics, game, audio := Combat, Physics, Game, Audio

	f := overrideFile{
		Player:  &player,
		Goomba:  &goomba,
		Coin:    &coin,
		Combat:  &combat,
		Physics: &physics,
		Game:    &game,
		Audio:   &audio,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode overrides: %w", err)
	}
	if err := validate(game, audio); err != nil {
		return err
	}

	Player, Goomba, Coin = player, goomba, coin
	Combat, Physics, Game, Audio = combat, physics, game, audio
	return nil
}

func validate(game GameConfig, audio AudioConfig) error {
	if game.TickRate <= 0 {
		return fmt.Errorf("game.tickRate must be positive, got %d", game.TickRate)
	}
	if game.MaxDelta < 0 {
		return fmt.Errorf("game.maxDelta must not be negative, got %g", game.MaxDelta)
	}
	if audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate must be positive, got %d", audio.SampleRate)
	}
	return nil
}
