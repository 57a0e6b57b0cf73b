// Package config loads per-toy YAML configuration, applies named presets
// and manages difficulty progression.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bounce-arcade/internal/defense"
	"github.com/vovakirdan/bounce-arcade/internal/kinematics"
)

// ErrUnknownPreset is returned when a preset name is not recognised.
var ErrUnknownPreset = errors.New("config: unknown preset")

// BounceConfig contains all configuration for the bouncing bodies toy.
type BounceConfig struct {
	Physics    BouncePhysics    `yaml:"physics"`
	Population BouncePopulation `yaml:"population"`
	Controls   BounceControls   `yaml:"controls"`
}

// BouncePhysics holds the live-tunable parameters.
type BouncePhysics struct {
	Gravity     float64 `yaml:"gravity"`
	Restitution float64 `yaml:"restitution"`
}

// BouncePopulation holds the parameters that shape a spawned population.
type BouncePopulation struct {
	Count    int     `yaml:"count"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MaxSpin  float64 `yaml:"max_spin"`
	Shape    string  `yaml:"shape"`
}

// BounceControls sets how far one key press moves a parameter.
type BounceControls struct {
	GravityStep     float64 `yaml:"gravity_step"`
	RestitutionStep float64 `yaml:"restitution_step"`
	CountStep       int     `yaml:"count_step"`
	MaxCount        int     `yaml:"max_count"`
}

// Params converts the config into simulator parameters.
func (c BounceConfig) Params() (kinematics.Params, error) {
	shape, err := kinematics.ParseKind(c.Population.Shape)
	if err != nil {
		return kinematics.Params{}, err
	}
	return kinematics.Params{
		Gravity:     c.Physics.Gravity,
		Restitution: c.Physics.Restitution,
		Count:       c.Population.Count,
		MinSize:     c.Population.MinSize,
		MaxSize:     c.Population.MaxSize,
		MinSpeed:    c.Population.MinSpeed,
		MaxSpeed:    c.Population.MaxSpeed,
		MaxSpin:     c.Population.MaxSpin,
		Shape:       shape,
	}, nil
}

// Validate reports the first invalid parameter as a
// *kinematics.ParamError wrapping kinematics.ErrInvalidParameter.
func (c BounceConfig) Validate() error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	return p.Validate()
}

// DefenseConfig contains all configuration for the tower-defense toy.
type DefenseConfig struct {
	Economy    DefenseEconomy   `yaml:"economy"`
	Units      DefenseUnits     `yaml:"units"`
	Enemies    DefenseEnemies   `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DefenseEconomy holds costs and rewards.
type DefenseEconomy struct {
	StartGold   int `yaml:"start_gold"`
	TowerCost   int `yaml:"tower_cost"`
	TroopCost   int `yaml:"troop_cost"`
	UpgradeCost int `yaml:"upgrade_cost"`
	Bounty      int `yaml:"bounty"`
}

// DefenseUnits holds defender stats.
type DefenseUnits struct {
	TowerDamage   int     `yaml:"tower_damage"`
	TroopDamage   int     `yaml:"troop_damage"`
	UpgradeDamage int     `yaml:"upgrade_damage"`
	AttackRadius  float64 `yaml:"attack_radius"`
}

// DefenseEnemies holds spawning and enemy templates.
type DefenseEnemies struct {
	SpawnInterval int         `yaml:"spawn_interval"`
	SpeedScale    float64     `yaml:"speed_scale"`
	LaneMargin    float64     `yaml:"lane_margin"`
	MaxLeaks      int         `yaml:"max_leaks"`
	Types         []EnemyType `yaml:"types"`
}

// EnemyType is one enemy template.
type EnemyType struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color"`
	Speed float64 `yaml:"speed"`
	HP    int     `yaml:"hp"`
}

// World converts the config into a defense world config for an arena of
// the given size.
func (c DefenseConfig) World(width, height float64) defense.Config {
	types := make([]defense.EnemyType, len(c.Enemies.Types))
	for i, t := range c.Enemies.Types {
		types[i] = defense.EnemyType{Name: t.Name, Speed: t.Speed, HP: t.HP}
	}
	return defense.Config{
		Width:         width,
		Height:        height,
		StartGold:     c.Economy.StartGold,
		TowerCost:     c.Economy.TowerCost,
		TroopCost:     c.Economy.TroopCost,
		UpgradeCost:   c.Economy.UpgradeCost,
		TowerDamage:   c.Units.TowerDamage,
		TroopDamage:   c.Units.TroopDamage,
		UpgradeDamage: c.Units.UpgradeDamage,
		Bounty:        c.Economy.Bounty,
		AttackRadius:  c.Units.AttackRadius,
		SpawnInterval: c.Enemies.SpawnInterval,
		SpeedScale:    c.Enemies.SpeedScale,
		LaneMargin:    c.Enemies.LaneMargin,
		MaxLeaks:      c.Enemies.MaxLeaks,
		EnemyTypes:    types,
	}
}

// Validate checks the config against a nominal 80x22 arena.
func (c DefenseConfig) Validate() error {
	return c.World(80, 22).Validate()
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed scale
	HPMultiplier    float64 `yaml:"hp_multiplier"`    // Added to enemy hit points
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Ticks removed from the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value into a preset. The empty string
// is valid and means "keep the config's own settings".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: difficulty %q", ErrUnknownPreset, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// BouncePreset names a physics setup for the bounce toy.
type BouncePreset string

const (
	PresetEarth     BouncePreset = "earth"
	PresetMoon      BouncePreset = "moon"
	PresetZeroG     BouncePreset = "zero-g"
	PresetSuperball BouncePreset = "superball"
	PresetMixed     BouncePreset = "mixed"
)

// BouncePresets lists the presets in display order.
func BouncePresets() []BouncePreset {
	return []BouncePreset{PresetEarth, PresetMoon, PresetZeroG, PresetSuperball, PresetMixed}
}
