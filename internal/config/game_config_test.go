package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if got := cfg.BalloonSize(); got != 144 {
		t.Errorf("BalloonSize = %v, want 144", got)
	}
	if got := cfg.ColliderRadius(); got != 72 {
		t.Errorf("ColliderRadius = %v, want 72", got)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "partial file keeps defaults",
			yamlContent: `
economy:
  towerCost: 20
balloon:
  speed: 300
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Economy.TowerCost != 20 {
					t.Errorf("expected towerCost = 20, got %d", cfg.Economy.TowerCost)
				}
				if cfg.Balloon.Speed != 300 {
					t.Errorf("expected balloon speed = 300, got %v", cfg.Balloon.Speed)
				}
				if cfg.Economy.StartingCoins != 30 {
					t.Errorf("expected default startingCoins = 30, got %d", cfg.Economy.StartingCoins)
				}
				if cfg.Projectile.Speed != 500 {
					t.Errorf("expected default projectile speed = 500, got %v", cfg.Projectile.Speed)
				}
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "economy: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name: "zero pops per level",
			yamlContent: `
tower:
  popsPerLevel: 0
`,
			wantErr:     true,
			errContains: "popsPerLevel",
		},
		{
			name: "non-positive spawn interval",
			yamlContent: `
balloon:
  spawnInterval: 0
`,
			wantErr:     true,
			errContains: "spawnInterval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "game.yaml"))
	if err != nil {
		t.Fatalf("failed to load shipped config: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("configs/game.yaml diverges from Default():\n got  %+v\n want %+v", *cfg, *def)
	}
}

func TestTowerColor(t *testing.T) {
	tests := []struct {
		level    uint
		disabled bool
		want     int // индекс в палитре, -1 — серый
	}{
		{1, false, 0},
		{2, false, 1},
		{5, false, 4},
		{9, false, 4},
		{3, true, -1},
	}
	for _, tt := range tests {
		got := TowerColor(tt.level, tt.disabled)
		want := DisabledColor
		if tt.want >= 0 {
			want = TowerLevelColors[tt.want]
		}
		if got != want {
			t.Errorf("TowerColor(%d, %v) = %v, want %v", tt.level, tt.disabled, got, want)
		}
	}
}
