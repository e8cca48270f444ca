package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, defaults()) {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load("game.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, defaults()) {
		t.Fatalf("game.toml drifted from the defaults:\n got %+v\nwant %+v", cfg, defaults())
	}
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
[logging]
level = "debug"

[session]
starting_acorns = 12

[[players]]
use = "F"
`)
	cfg := defaults()
	if err := Parse(data, cfg); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.Session.StartingAcorns != 12 || cfg.Session.FirstLevel != "01_meadow" {
		t.Fatalf("session = %+v", cfg.Session)
	}
	if len(cfg.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(cfg.Players))
	}
	p1 := cfg.Players[0]
	if p1.Use != "F" || p1.Left != "A" || len(p1.Slots) != 3 {
		t.Fatalf("player one bindings = %+v", p1)
	}
	if !reflect.DeepEqual(cfg.Players[1], defaultBindings()[1]) {
		t.Fatalf("player two should keep default bindings, got %+v", cfg.Players[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad_toml", "[logging\nlevel = 1"},
		{"too_many_players", "[[players]]\n[[players]]\n[[players]]\n"},
		{"too_many_slots", "[[players]]\nslots = [\"1\", \"2\", \"3\", \"4\"]\n"},
		{"negative_acorns", "[session]\nstarting_acorns = -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Parse([]byte(tc.data), defaults()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadReadError(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "cfg.toml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := Load(filepath.Join(dir, "cfg.toml")); err == nil {
		t.Fatalf("reading a directory should fail")
	}
}
