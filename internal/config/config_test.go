package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/bounce-arcade/internal/defense"
	"github.com/vovakirdan/bounce-arcade/internal/kinematics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	bounce, err := LoadBounce("")
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}
	if !reflect.DeepEqual(bounce, DefaultBounceConfig()) {
		t.Errorf("embedded bounce.yaml = %+v, expected %+v", bounce, DefaultBounceConfig())
	}

	def, err := LoadDefense("")
	if err != nil {
		t.Fatalf("LoadDefense() failed: %v", err)
	}
	if !reflect.DeepEqual(def, DefaultDefenseConfig()) {
		t.Errorf("embedded defense.yaml = %+v, expected %+v", def, DefaultDefenseConfig())
	}
}

func TestUserConfigOverridesEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bounce.yaml"), []byte("population:\n  count: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBounce("")
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}
	if cfg.Population.Count != 3 {
		t.Errorf("Count = %d, expected 3 from user config", cfg.Population.Count)
	}
}

func TestLoadBounceCustomPath(t *testing.T) {
	path := writeConfig(t, `
physics:
  gravity: 0.2
population:
  shape: heart
`)

	cfg, err := LoadBounce(path)
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("Gravity = %f, expected 0.2", cfg.Physics.Gravity)
	}
	// Unset fields keep their defaults
	if cfg.Physics.Restitution != 0.8 || cfg.Population.Count != 12 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params() failed: %v", err)
	}
	if p.Shape != kinematics.KindHeart {
		t.Errorf("Shape = %v, expected heart", p.Shape)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing bool
		wantErr error
	}{
		{name: "missing file", missing: true},
		{name: "bad yaml", body: "physics: [unterminated"},
		{name: "negative count", body: "population:\n  count: -1\n", wantErr: kinematics.ErrInvalidParameter},
		{name: "inverted sizes", body: "population:\n  min_size: 5\n  max_size: 1\n", wantErr: kinematics.ErrInvalidParameter},
		{name: "unknown shape", body: "population:\n  shape: blob\n", wantErr: kinematics.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nope.yaml")
			if !tt.missing {
				path = writeConfig(t, tt.body)
			}
			_, err := LoadBounce(path)
			if err == nil {
				t.Fatal("LoadBounce() succeeded, expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, expected %v", err, tt.wantErr)
			}
		})
	}

	path := writeConfig(t, "enemies:\n  types: []\n")
	if _, err := LoadDefense(path); !errors.Is(err, defense.ErrInvalidConfig) {
		t.Errorf("LoadDefense(no enemy types) = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyBouncePreset(t *testing.T) {
	tests := []struct {
		preset      BouncePreset
		gravity     float64
		restitution float64
		shape       string
	}{
		{PresetEarth, 0.05, 0.8, "mixed"},
		{PresetMoon, 0.008, 0.8, "mixed"},
		{PresetZeroG, 0, 1, "mixed"},
		{PresetSuperball, 0.05, 0.97, "circle"},
		{"", 0.05, 0.8, "mixed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBounceConfig()
			if err := ApplyBouncePreset(&cfg, tt.preset); err != nil {
				t.Fatalf("ApplyBouncePreset() failed: %v", err)
			}
			if cfg.Physics.Gravity != tt.gravity || cfg.Physics.Restitution != tt.restitution || cfg.Population.Shape != tt.shape {
				t.Errorf("preset %q gave %+v", tt.preset, cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q produced invalid config: %v", tt.preset, err)
			}
		})
	}

	cfg := DefaultBounceConfig()
	if err := ApplyBouncePreset(&cfg, "jupiter"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ApplyBouncePreset(jupiter) = %v, expected ErrUnknownPreset", err)
	}

	if err := ApplyBouncePreset(&cfg, PresetMixed); err != nil || cfg.Population.Count < 24 {
		t.Errorf("mixed preset count = %d err = %v", cfg.Population.Count, err)
	}
}

func TestApplyDefensePreset(t *testing.T) {
	cfg := DefaultDefenseConfig()
	ApplyDefensePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.Enemies.MaxLeaks != 5 {
		t.Errorf("hard preset = %+v", cfg)
	}

	cfg = DefaultDefenseConfig()
	ApplyDefensePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if _, err := ParseDifficulty("brutal"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParseDifficulty(brutal) = %v, expected ErrUnknownPreset", err)
	}
	if p, err := ParseDifficulty("easy"); err != nil || p != DifficultyEasy {
		t.Errorf("ParseDifficulty(easy) = %q, %v", p, err)
	}
}

func TestDefenseWorldConversion(t *testing.T) {
	w := DefaultDefenseConfig().World(100, 30)
	if w.Width != 100 || w.Height != 30 {
		t.Errorf("arena = %fx%f, expected 100x30", w.Width, w.Height)
	}
	if len(w.EnemyTypes) != 3 || w.EnemyTypes[2].HP != 200 {
		t.Errorf("enemy types = %+v", w.EnemyTypes)
	}
	if w.TowerCost != 50 || w.Bounty != 10 || w.AttackRadius != 8 {
		t.Errorf("converted config = %+v", w)
	}
}
