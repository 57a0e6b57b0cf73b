package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

//go:embed defaults/defense.yaml
var defaultDefenseYAML []byte

// DefaultBounceConfig returns the hardcoded bounce configuration, used
// when even the embedded YAML cannot be parsed.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Physics: BouncePhysics{
			Gravity:     0.05,
			Restitution: 0.8,
		},
		Population: BouncePopulation{
			Count:    12,
			MinSize:  0.5,
			MaxSize:  2.5,
			MinSpeed: 0.2,
			MaxSpeed: 1.2,
			MaxSpin:  0.1,
			Shape:    "mixed",
		},
		Controls: BounceControls{
			GravityStep:     0.01,
			RestitutionStep: 0.05,
			CountStep:       4,
			MaxCount:        200,
		},
	}
}

// DefaultDefenseConfig returns the hardcoded defense configuration.
func DefaultDefenseConfig() DefenseConfig {
	return DefenseConfig{
		Economy: DefenseEconomy{
			StartGold:   100,
			TowerCost:   50,
			TroopCost:   30,
			UpgradeCost: 100,
			Bounty:      10,
		},
		Units: DefenseUnits{
			TowerDamage:   10,
			TroopDamage:   5,
			UpgradeDamage: 10,
			AttackRadius:  8,
		},
		Enemies: DefenseEnemies{
			SpawnInterval: 180,
			SpeedScale:    0.1,
			LaneMargin:    2,
			MaxLeaks:      10,
			Types: []EnemyType{
				{Name: "red", Color: "red", Speed: 1, HP: 100},
				{Name: "blue", Color: "blue", Speed: 2, HP: 70},
				{Name: "green", Color: "green", Speed: 0.5, HP: 200},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				HPMultiplier:    1.0,
				SpawnReduction:  120,
			},
		},
	}
}
