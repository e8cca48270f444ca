package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where main looks for the config when -config is not given.
const DefaultPath = "config/game.toml"

type Config struct {
	Logging LoggingConfig    `toml:"logging"`
	Window  WindowConfig     `toml:"window"`
	Session SessionConfig    `toml:"session"`
	Keys    GlobalKeys       `toml:"keys"`
	Players []PlayerBindings `toml:"players"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
}

type SessionConfig struct {
	StartingAcorns int    `toml:"starting_acorns"`
	AllGadgets     bool   `toml:"all_gadgets"` // own every gadget from the start
	FirstLevel     string `toml:"first_level"`
}

// GlobalKeys are shared by both players. Values are ebiten key names.
type GlobalKeys struct {
	Shop      string `toml:"shop"`
	NextLevel string `toml:"next_level"`
	Restart   string `toml:"restart"`
}

// PlayerBindings maps one player's controls to ebiten key names such as
// "A", "ArrowUp" or "Digit1".
type PlayerBindings struct {
	Left     string   `toml:"left"`
	Right    string   `toml:"right"`
	Up       string   `toml:"up"`
	Down     string   `toml:"down"`
	Jump     string   `toml:"jump"`
	Slots    []string `toml:"slots"`
	Previous string   `toml:"previous"`
	Next     string   `toml:"next"`
	Use      string   `toml:"use"`
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg and fills any binding left blank from the
// defaults.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.normalize()
}

func (c *Config) normalize() error {
	def := defaultBindings()
	if len(c.Players) > len(def) {
		return fmt.Errorf("%d player bindings, at most %d players", len(c.Players), len(def))
	}
	for len(c.Players) < len(def) {
		c.Players = append(c.Players, PlayerBindings{})
	}
	for i := range c.Players {
		c.Players[i].fill(def[i])
		if n := len(c.Players[i].Slots); n > maxSlots {
			return fmt.Errorf("player %d has %d slot keys, at most %d", i+1, n, maxSlots)
		}
	}
	if c.Session.StartingAcorns < 0 {
		return fmt.Errorf("session.starting_acorns must not be negative")
	}
	return nil
}

func (b *PlayerBindings) fill(def PlayerBindings) {
	pick := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	pick(&b.Left, def.Left)
	pick(&b.Right, def.Right)
	pick(&b.Up, def.Up)
	pick(&b.Down, def.Down)
	pick(&b.Jump, def.Jump)
	pick(&b.Previous, def.Previous)
	pick(&b.Next, def.Next)
	pick(&b.Use, def.Use)
	if len(b.Slots) == 0 {
		b.Slots = append([]string(nil), def.Slots...)
	}
}

const maxSlots = 3

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Title: "Acorn Run",
		},
		Session: SessionConfig{
			FirstLevel: "01_meadow",
		},
		Keys: GlobalKeys{
			Shop:      "Tab",
			NextLevel: "F2",
			Restart:   "F5",
		},
		Players: defaultBindings(),
	}
}

func defaultBindings() []PlayerBindings {
	return []PlayerBindings{
		{
			Left: "A", Right: "D", Up: "W", Down: "S", Jump: "W",
			Slots:    []string{"Digit1", "Digit2", "Digit3"},
			Previous: "Q", Next: "E", Use: "R",
		},
		{
			Left: "ArrowLeft", Right: "ArrowRight", Up: "ArrowUp", Down: "ArrowDown", Jump: "ArrowUp",
			Slots:    []string{"Digit8", "Digit9", "Digit0"},
			Previous: "Comma", Next: "Period", Use: "P",
		},
	}
}
