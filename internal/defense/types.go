// Package defense implements the tower-defense toy: enemies walk from the
// left edge to the right edge of the arena while towers and troops placed
// by the player damage every enemy in range each tick. Kills pay a bounty
// that funds more units.
package defense

import (
	"errors"

	"github.com/golang/geo/r2"
)

// Action errors. The world is left unchanged when one is returned.
var (
	ErrInsufficientGold = errors.New("defense: not enough gold")
	ErrNothingToUpgrade = errors.New("defense: no tower to upgrade")
	ErrCannotMerge      = errors.New("defense: need two towers of the same level to merge")
	ErrOutOfBounds      = errors.New("defense: position outside the arena")
	ErrInvalidConfig    = errors.New("defense: invalid config")
)

// EnemyType is a template enemies are spawned from.
type EnemyType struct {
	Name  string
	Speed float64 // Base speed, multiplied by Config.SpeedScale
	HP    int
}

// DefaultEnemyTypes are the red, blue and green walkers.
func DefaultEnemyTypes() []EnemyType {
	return []EnemyType{
		{Name: "red", Speed: 1, HP: 100},
		{Name: "blue", Speed: 2, HP: 70},
		{Name: "green", Speed: 0.5, HP: 200},
	}
}

// Enemy is a walker crossing the arena left to right.
type Enemy struct {
	ID    int
	Type  int // Index into Config.EnemyTypes
	Pos   r2.Point
	Speed float64
	HP    int
	MaxHP int
}

// Alive reports whether the enemy still has hit points.
func (e Enemy) Alive() bool {
	return e.HP > 0
}

// HealthFraction returns HP/MaxHP clamped to [0, 1].
func (e Enemy) HealthFraction() float64 {
	if e.MaxHP <= 0 || e.HP <= 0 {
		return 0
	}
	if e.HP >= e.MaxHP {
		return 1
	}
	return float64(e.HP) / float64(e.MaxHP)
}

// UnitKind distinguishes the two placeable defenders.
type UnitKind int

const (
	UnitTower UnitKind = iota
	UnitTroop
)

// String returns the display name of the unit kind.
func (k UnitKind) String() string {
	switch k {
	case UnitTower:
		return "tower"
	case UnitTroop:
		return "troop"
	default:
		return "unknown"
	}
}

// Unit is a stationary defender.
type Unit struct {
	Kind   UnitKind
	Pos    r2.Point
	Damage int // Damage dealt to each enemy in range per tick
	Level  int
}

// Config holds all tunables of a defense world.
type Config struct {
	Width  float64
	Height float64

	StartGold     int
	TowerCost     int
	TroopCost     int
	UpgradeCost   int
	TowerDamage   int
	TroopDamage   int
	UpgradeDamage int // Damage added to the first tower per upgrade
	Bounty        int // Gold per kill

	AttackRadius  float64 // Units hit enemies strictly closer than this
	SpawnInterval int     // Ticks between spawns, 0 disables spawning
	SpeedScale    float64 // Converts EnemyType.Speed to arena units per tick
	LaneMargin    float64 // Spawn lanes keep this distance from top and bottom
	MaxLeaks      int     // Leaks before game over, 0 means endless

	EnemyTypes []EnemyType
}

// DefaultConfig returns a configuration sized for an 80x22 arena.
func DefaultConfig() Config {
	return Config{
		Width:         80,
		Height:        22,
		StartGold:     100,
		TowerCost:     50,
		TroopCost:     30,
		UpgradeCost:   100,
		TowerDamage:   10,
		TroopDamage:   5,
		UpgradeDamage: 10,
		Bounty:        10,
		AttackRadius:  8,
		SpawnInterval: 180,
		SpeedScale:    0.1,
		LaneMargin:    2,
		MaxLeaks:      10,
		EnemyTypes:    DefaultEnemyTypes(),
	}
}

// Validate checks the configuration for values that would break the loop.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Join(ErrInvalidConfig, errors.New("arena must have positive size"))
	case c.StartGold < 0 || c.TowerCost < 0 || c.TroopCost < 0 || c.UpgradeCost < 0:
		return errors.Join(ErrInvalidConfig, errors.New("gold amounts must be non-negative"))
	case c.AttackRadius < 0:
		return errors.Join(ErrInvalidConfig, errors.New("attack radius must be non-negative"))
	case c.SpawnInterval < 0:
		return errors.Join(ErrInvalidConfig, errors.New("spawn interval must be non-negative"))
	case len(c.EnemyTypes) == 0:
		return errors.Join(ErrInvalidConfig, errors.New("at least one enemy type is required"))
	}
	for _, t := range c.EnemyTypes {
		if t.HP <= 0 || t.Speed < 0 {
			return errors.Join(ErrInvalidConfig, errors.New("enemy type "+t.Name+" needs positive hp and non-negative speed"))
		}
	}
	return nil
}
