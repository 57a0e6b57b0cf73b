package defense

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// StepEvents reports what happened during a single tick.
type StepEvents struct {
	Spawned *Enemy  // Enemy spawned this tick, if any
	Killed  []Enemy // Enemies killed this tick, already removed
	Leaked  []Enemy // Enemies that reached the right edge, already removed
	Bounty  int     // Gold earned this tick
}

// World is the state of one tower-defense round.
type World struct {
	cfg     Config
	bounds  r2.Rect
	rng     *rand.Rand
	enemies []Enemy
	towers  []Unit
	troops  []Unit
	gold    int
	earned  int
	kills   int
	leaks   int
	tick    int
	nextID  int

	spawnInterval int
	hpScale       float64
	speedScale    float64
}

// NewWorld creates an empty world with the configured starting gold.
func NewWorld(cfg Config, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{
		cfg:           cfg,
		bounds:        r2.RectFromPoints(r2.Point{}, r2.Point{X: cfg.Width, Y: cfg.Height}),
		rng:           rand.New(rand.NewSource(seed)),
		gold:          cfg.StartGold,
		spawnInterval: cfg.SpawnInterval,
		hpScale:       1,
		speedScale:    cfg.SpeedScale,
	}, nil
}

// SetSpawnInterval overrides the ticks between spawns. Values below 1
// disable spawning.
func (w *World) SetSpawnInterval(ticks int) {
	w.spawnInterval = ticks
}

// SetHPScale multiplies the hit points of enemies spawned from now on.
func (w *World) SetHPScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	w.hpScale = scale
}

// SetSpeedScale changes the speed conversion for enemies spawned from now
// on. Enemies already walking keep their speed.
func (w *World) SetSpeedScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	w.speedScale = scale
}

// Step advances the world by one tick: spawn, move, attack, reap.
func (w *World) Step() StepEvents {
	var ev StepEvents
	w.tick++

	if w.spawnInterval > 0 && w.tick%w.spawnInterval == 0 {
		e := w.SpawnRandom()
		ev.Spawned = &e
	}

	// Move and drop leakers
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		e.Pos.X += e.Speed
		if e.Pos.X >= w.cfg.Width {
			ev.Leaked = append(ev.Leaked, e)
			continue
		}
		kept = append(kept, e)
	}
	w.enemies = kept
	w.leaks += len(ev.Leaked)

	// Towers strike before troops
	for _, u := range w.towers {
		ev.Bounty += w.strike(u, &ev)
	}
	for _, u := range w.troops {
		ev.Bounty += w.strike(u, &ev)
	}

	// Reap the dead on the tick they die
	kept = w.enemies[:0]
	for _, e := range w.enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	w.enemies = kept

	w.gold += ev.Bounty
	w.earned += ev.Bounty
	w.kills += len(ev.Killed)
	return ev
}

// strike applies one unit's damage to every living enemy in range and
// returns the bounty for enemies it finished.
func (w *World) strike(u Unit, ev *StepEvents) int {
	bounty := 0
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive() || e.Pos.Sub(u.Pos).Norm() >= w.cfg.AttackRadius {
			continue
		}
		e.HP -= u.Damage
		if !e.Alive() {
			bounty += w.cfg.Bounty
			ev.Killed = append(ev.Killed, *e)
		}
	}
	return bounty
}

// SpawnRandom spawns an enemy of a random type in a random lane.
func (w *World) SpawnRandom() Enemy {
	typ := w.rng.Intn(len(w.cfg.EnemyTypes))
	lanes := r1.Interval{Lo: w.cfg.LaneMargin, Hi: w.cfg.Height - w.cfg.LaneMargin}
	y := lanes.Center()
	if !lanes.IsEmpty() {
		y = lanes.Lo + w.rng.Float64()*lanes.Length()
	}
	return w.Spawn(typ, y)
}

// Spawn places an enemy of the given type at the left edge in lane y.
func (w *World) Spawn(typ int, y float64) Enemy {
	if typ < 0 || typ >= len(w.cfg.EnemyTypes) {
		typ = 0
	}
	t := w.cfg.EnemyTypes[typ]
	hp := int(float64(t.HP) * w.hpScale)
	if hp < 1 {
		hp = 1
	}
	w.nextID++
	e := Enemy{
		ID:    w.nextID,
		Type:  typ,
		Pos:   r2.Point{X: 0, Y: w.bounds.Y.ClampPoint(y)},
		Speed: t.Speed * w.speedScale,
		HP:    hp,
		MaxHP: hp,
	}
	w.enemies = append(w.enemies, e)
	return e
}

// PlaceTower buys a level 1 tower at pos.
func (w *World) PlaceTower(pos r2.Point) error {
	return w.place(UnitTower, pos, w.cfg.TowerCost, w.cfg.TowerDamage)
}

// PlaceTroop buys a troop at pos.
func (w *World) PlaceTroop(pos r2.Point) error {
	return w.place(UnitTroop, pos, w.cfg.TroopCost, w.cfg.TroopDamage)
}

func (w *World) place(kind UnitKind, pos r2.Point, cost, damage int) error {
	if !w.bounds.ContainsPoint(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if w.gold < cost {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, kind, cost, w.gold)
	}
	w.gold -= cost
	u := Unit{Kind: kind, Pos: pos, Damage: damage, Level: 1}
	if kind == UnitTower {
		w.towers = append(w.towers, u)
	} else {
		w.troops = append(w.troops, u)
	}
	return nil
}

// UpgradeTower raises the damage and level of the first tower.
func (w *World) UpgradeTower() error {
	if len(w.towers) == 0 {
		return ErrNothingToUpgrade
	}
	if w.gold < w.cfg.UpgradeCost {
		return fmt.Errorf("%w: upgrade costs %d, have %d", ErrInsufficientGold, w.cfg.UpgradeCost, w.gold)
	}
	w.gold -= w.cfg.UpgradeCost
	w.towers[0].Damage += w.cfg.UpgradeDamage
	w.towers[0].Level++
	return nil
}

// MergeTowers folds the second tower into the first when both share a
// level. The merged tower keeps the first tower's position.
func (w *World) MergeTowers() error {
	if len(w.towers) < 2 || w.towers[0].Level != w.towers[1].Level {
		return ErrCannotMerge
	}
	w.towers[0].Damage += w.towers[1].Damage
	w.towers[0].Level++
	w.towers = append(w.towers[:1], w.towers[2:]...)
	return nil
}

// Enemies returns the live enemies. Callers must not modify the slice.
func (w *World) Enemies() []Enemy { return w.enemies }

// Towers returns the placed towers. Callers must not modify the slice.
func (w *World) Towers() []Unit { return w.towers }

// Troops returns the placed troops. Callers must not modify the slice.
func (w *World) Troops() []Unit { return w.troops }

func (w *World) Gold() int { return w.gold }

// Earned is the total bounty collected, used as the score.
func (w *World) Earned() int { return w.earned }

func (w *World) Kills() int { return w.kills }

func (w *World) Leaks() int { return w.leaks }

func (w *World) Tick() int { return w.tick }

func (w *World) Config() Config { return w.cfg }

// Over reports whether the leak limit has been reached.
func (w *World) Over() bool {
	return w.cfg.MaxLeaks > 0 && w.leaks >= w.cfg.MaxLeaks
}
