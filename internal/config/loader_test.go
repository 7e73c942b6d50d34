package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseGame(DefaultGameYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded defaults differ from DefaultGameConfig():\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestLoadGameCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("player:\n  speed: 550\nscore:\n  survival_rate: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() error: %v", err)
	}
	if cfg.Player.Speed != 550 {
		t.Errorf("Player.Speed = %v, expected 550", cfg.Player.Speed)
	}
	if cfg.Score.SurvivalRate != 0 {
		t.Errorf("Score.SurvivalRate = %v, expected 0", cfg.Score.SurvivalRate)
	}
	if cfg.Player.Size != 40 {
		t.Errorf("unset keys should keep defaults, Player.Size = %v", cfg.Player.Size)
	}
}

func TestLoadGameErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGame(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("scaling:\n  max_speed_multiplier: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGame(bad)
	if err == nil {
		t.Error("invalid tuning should be rejected")
	}
	if cfg != DefaultGameConfig() {
		t.Error("rejected tuning should fall back to defaults")
	}
}

func TestValidateScalingBounds(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"defaults", "", false},
		{"speed at upper bound", "scaling:\n  max_speed_multiplier: 3\n", false},
		{"speed above 3", "scaling:\n  max_speed_multiplier: 10\n", true},
		{"speed below 1", "scaling:\n  max_speed_multiplier: 0.9\n", true},
		{"spawn at lower bound", "scaling:\n  min_spawn_multiplier: 0.3\n", false},
		{"spawn below 0.3", "scaling:\n  min_spawn_multiplier: 0.01\n", true},
		{"spawn above 1", "scaling:\n  min_spawn_multiplier: 1.5\n", true},
		{"negative speed step", "scaling:\n  speed_step: -0.1\n", true},
		{"negative spawn step", "scaling:\n  spawn_step: -0.5\n", true},
		{"zero steps", "scaling:\n  speed_step: 0\n  spawn_step: 0\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadGame(path)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadGame() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
