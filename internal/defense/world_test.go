package defense

import (
	"errors"
	"testing"

	"github.com/golang/geo/r2"
)

// stillConfig has no automatic spawns and a single stationary enemy type.
func stillConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnInterval = 0
	cfg.StartGold = 1000
	cfg.EnemyTypes = []EnemyType{{Name: "dummy", Speed: 0, HP: 100}}
	return cfg
}

func newWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := NewWorld(cfg, 1)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w
}

func TestKillRemovedOnLethalTickBountyOnce(t *testing.T) {
	cfg := stillConfig()
	w := newWorld(t, cfg)

	target := r2.Point{X: 10, Y: 10}
	if err := w.PlaceTower(r2.Point{X: 12, Y: 10}); err != nil {
		t.Fatalf("PlaceTower() failed: %v", err)
	}
	if err := w.PlaceTower(r2.Point{X: 8, Y: 10}); err != nil {
		t.Fatalf("PlaceTower() failed: %v", err)
	}
	w.Spawn(0, target.Y)
	w.enemies[0].Pos = target

	goldBefore := w.Gold()
	for tick := 1; tick <= 6; tick++ {
		ev := w.Step()
		switch {
		case tick < 5:
			if len(w.Enemies()) != 1 {
				t.Fatalf("tick %d: enemy removed early", tick)
			}
			if want := 100 - 20*tick; w.Enemies()[0].HP != want {
				t.Errorf("tick %d: HP = %d, expected %d", tick, w.Enemies()[0].HP, want)
			}
		case tick == 5:
			if len(w.Enemies()) != 0 {
				t.Fatalf("tick 5: enemy still present with HP %d", w.Enemies()[0].HP)
			}
			if len(ev.Killed) != 1 || ev.Bounty != cfg.Bounty {
				t.Errorf("tick 5: events = %+v, expected one kill worth %d", ev, cfg.Bounty)
			}
		default:
			if len(ev.Killed) != 0 || ev.Bounty != 0 {
				t.Errorf("tick %d: unexpected kill events %+v", tick, ev)
			}
		}
	}

	if got := w.Gold() - goldBefore; got != cfg.Bounty {
		t.Errorf("gold gained = %d, expected exactly %d", got, cfg.Bounty)
	}
	if w.Kills() != 1 || w.Earned() != cfg.Bounty {
		t.Errorf("Kills() = %d Earned() = %d, expected 1 and %d", w.Kills(), w.Earned(), cfg.Bounty)
	}
}

func TestAttackRadiusIsStrict(t *testing.T) {
	cfg := stillConfig()
	w := newWorld(t, cfg)

	if err := w.PlaceTower(r2.Point{X: 0, Y: 10}); err != nil {
		t.Fatalf("PlaceTower() failed: %v", err)
	}
	w.Spawn(0, 10)
	w.enemies[0].Pos.X = cfg.AttackRadius

	w.Step()
	if hp := w.Enemies()[0].HP; hp != 100 {
		t.Errorf("enemy at exactly the radius took damage, HP = %d", hp)
	}

	w.enemies[0].Pos.X = cfg.AttackRadius - 0.5
	w.Step()
	if hp := w.Enemies()[0].HP; hp != 100-cfg.TowerDamage {
		t.Errorf("enemy inside radius HP = %d, expected %d", hp, 100-cfg.TowerDamage)
	}
}

func TestEnemiesLeakAtRightEdge(t *testing.T) {
	cfg := stillConfig()
	cfg.EnemyTypes = []EnemyType{{Name: "runner", Speed: 10, HP: 50}}
	cfg.SpeedScale = 1
	cfg.MaxLeaks = 2
	w := newWorld(t, cfg)

	w.Spawn(0, 5)
	w.Spawn(0, 6)

	ticks := 0
	for len(w.Enemies()) > 0 && ticks < 100 {
		w.Step()
		ticks++
	}
	if ticks != 8 {
		t.Errorf("enemies left after %d ticks, expected 8", ticks)
	}
	if w.Leaks() != 2 {
		t.Errorf("Leaks() = %d, expected 2", w.Leaks())
	}
	if !w.Over() {
		t.Error("Over() = false after reaching MaxLeaks")
	}
	if w.Earned() != 0 {
		t.Errorf("Earned() = %d, leaked enemies must not pay a bounty", w.Earned())
	}
}

func TestAutomaticSpawnInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnInterval = 3
	w := newWorld(t, cfg)

	spawned := 0
	for range 9 {
		if ev := w.Step(); ev.Spawned != nil {
			spawned++
			if y := ev.Spawned.Pos.Y; y < cfg.LaneMargin || y > cfg.Height-cfg.LaneMargin {
				t.Errorf("spawn lane y = %f outside [%f, %f]", y, cfg.LaneMargin, cfg.Height-cfg.LaneMargin)
			}
		}
	}
	if spawned != 3 {
		t.Errorf("spawned %d enemies in 9 ticks, expected 3", spawned)
	}

	w.SetSpawnInterval(0)
	for range 9 {
		if ev := w.Step(); ev.Spawned != nil {
			t.Fatal("spawned with interval 0")
		}
	}
}

func TestHPScaleAffectsNewSpawns(t *testing.T) {
	w := newWorld(t, stillConfig())
	w.SetHPScale(1.5)
	e := w.Spawn(0, 5)
	if e.HP != 150 || e.MaxHP != 150 {
		t.Errorf("scaled enemy HP = %d/%d, expected 150/150", e.HP, e.MaxHP)
	}
}

func TestEconomy(t *testing.T) {
	tests := []struct {
		name    string
		gold    int
		setup   func(w *World)
		act     func(w *World) error
		wantErr error
		check   func(t *testing.T, w *World)
	}{
		{
			name: "tower spends gold",
			gold: 100,
			act:  func(w *World) error { return w.PlaceTower(r2.Point{X: 5, Y: 5}) },
			check: func(t *testing.T, w *World) {
				if w.Gold() != 50 || len(w.Towers()) != 1 {
					t.Errorf("gold = %d towers = %d, expected 50 and 1", w.Gold(), len(w.Towers()))
				}
			},
		},
		{
			name:    "tower without gold",
			gold:    40,
			act:     func(w *World) error { return w.PlaceTower(r2.Point{X: 5, Y: 5}) },
			wantErr: ErrInsufficientGold,
			check: func(t *testing.T, w *World) {
				if w.Gold() != 40 || len(w.Towers()) != 0 {
					t.Errorf("failed purchase changed state: gold = %d towers = %d", w.Gold(), len(w.Towers()))
				}
			},
		},
		{
			name: "troop spends gold",
			gold: 30,
			act:  func(w *World) error { return w.PlaceTroop(r2.Point{X: 1, Y: 1}) },
			check: func(t *testing.T, w *World) {
				if w.Gold() != 0 || len(w.Troops()) != 1 || w.Troops()[0].Damage != 5 {
					t.Errorf("gold = %d troops = %+v", w.Gold(), w.Troops())
				}
			},
		},
		{
			name:    "placement outside arena",
			gold:    100,
			act:     func(w *World) error { return w.PlaceTower(r2.Point{X: -1, Y: 5}) },
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "upgrade without towers",
			gold:    500,
			act:     func(w *World) error { return w.UpgradeTower() },
			wantErr: ErrNothingToUpgrade,
		},
		{
			name:  "upgrade first tower",
			gold:  150,
			setup: func(w *World) { _ = w.PlaceTower(r2.Point{X: 5, Y: 5}) },
			act:   func(w *World) error { return w.UpgradeTower() },
			check: func(t *testing.T, w *World) {
				tw := w.Towers()[0]
				if tw.Damage != 20 || tw.Level != 2 || w.Gold() != 0 {
					t.Errorf("tower = %+v gold = %d, expected damage 20 level 2 gold 0", tw, w.Gold())
				}
			},
		},
		{
			name:    "upgrade without gold",
			gold:    120,
			setup:   func(w *World) { _ = w.PlaceTower(r2.Point{X: 5, Y: 5}) },
			act:     func(w *World) error { return w.UpgradeTower() },
			wantErr: ErrInsufficientGold,
		},
		{
			name: "merge same level",
			gold: 100,
			setup: func(w *World) {
				_ = w.PlaceTower(r2.Point{X: 5, Y: 5})
				_ = w.PlaceTower(r2.Point{X: 9, Y: 9})
			},
			act: func(w *World) error { return w.MergeTowers() },
			check: func(t *testing.T, w *World) {
				if len(w.Towers()) != 1 {
					t.Fatalf("towers = %d after merge, expected 1", len(w.Towers()))
				}
				tw := w.Towers()[0]
				if tw.Damage != 20 || tw.Level != 2 || tw.Pos != (r2.Point{X: 5, Y: 5}) {
					t.Errorf("merged tower = %+v", tw)
				}
				if w.Gold() != 0 {
					t.Errorf("merge cost gold, have %d", w.Gold())
				}
			},
		},
		{
			name:    "merge single tower",
			gold:    100,
			setup:   func(w *World) { _ = w.PlaceTower(r2.Point{X: 5, Y: 5}) },
			act:     func(w *World) error { return w.MergeTowers() },
			wantErr: ErrCannotMerge,
		},
		{
			name: "merge mismatched levels",
			gold: 300,
			setup: func(w *World) {
				_ = w.PlaceTower(r2.Point{X: 5, Y: 5})
				_ = w.PlaceTower(r2.Point{X: 9, Y: 9})
				_ = w.UpgradeTower()
			},
			act:     func(w *World) error { return w.MergeTowers() },
			wantErr: ErrCannotMerge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := stillConfig()
			cfg.StartGold = tt.gold
			w := newWorld(t, cfg)
			if tt.setup != nil {
				tt.setup(w)
			}
			err := tt.act(w)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, expected %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative cost", func(c *Config) { c.TowerCost = -1 }},
		{"negative radius", func(c *Config) { c.AttackRadius = -1 }},
		{"negative interval", func(c *Config) { c.SpawnInterval = -5 }},
		{"no enemy types", func(c *Config) { c.EnemyTypes = nil }},
		{"enemy without hp", func(c *Config) { c.EnemyTypes = []EnemyType{{Name: "ghost", Speed: 1}} }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := NewWorld(cfg, 1); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewWorld() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
