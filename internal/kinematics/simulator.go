package kinematics

import (
	"math/rand"
)

// Stats is a snapshot of aggregate simulator state.
type Stats struct {
	Tick    int     // Ticks since the last respawn
	Bodies  int     // Number of live bodies
	Resting int     // Bodies at rest on the floor
	Kinetic float64 // Total kinetic energy
	Fastest float64 // Highest body speed
}

// Simulator owns one population of bodies together with its arena,
// parameters and random source. It is not safe for concurrent use; the
// host drives it from a single loop.
type Simulator struct {
	params Params
	arena  Arena
	bodies []Body
	rng    *rand.Rand
	ticks  int
}

// New validates the inputs and spawns the initial population.
func New(p Params, arena Arena, seed int64) (*Simulator, error) {
	s := &Simulator{
		params: p,
		arena:  arena,
		rng:    rand.New(rand.NewSource(seed)),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards every body and spawns a fresh population from the
// current parameters. On error the previous population is kept.
func (s *Simulator) Reset() error {
	bodies, err := Spawn(s.rng, s.params, s.arena)
	if err != nil {
		return err
	}
	s.bodies = bodies
	s.ticks = 0
	return nil
}

// Tick advances the simulation by one step.
func (s *Simulator) Tick() {
	Tick(s.bodies, s.arena, s.params, s.rng)
	s.ticks++
}

// Bodies returns the live bodies. The slice is replaced on reset, so
// callers must not hold on to it across Reset, Apply or Resize.
func (s *Simulator) Bodies() []Body {
	return s.bodies
}

// Arena returns the current arena.
func (s *Simulator) Arena() Arena {
	return s.arena
}

// Params returns the current parameters.
func (s *Simulator) Params() Params {
	return s.params
}

// SetGravity changes gravity for existing bodies, effective next tick.
func (s *Simulator) SetGravity(g float64) error {
	if !finite(g) {
		return invalid("gravity", g, "must be finite")
	}
	s.params.Gravity = g
	return nil
}

// SetRestitution changes the bounce coefficient, effective next tick.
func (s *Simulator) SetRestitution(r float64) error {
	if !finite(r) || r < 0 {
		return invalid("restitution", r, "must be finite and non-negative")
	}
	s.params.Restitution = r
	return nil
}

// Apply installs a new parameter set. Gravity and restitution apply live;
// a change to any population field respawns every body. It reports
// whether a respawn happened.
func (s *Simulator) Apply(p Params) (respawned bool, err error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if s.params.samePopulation(p) {
		s.params = p
		return false, nil
	}
	prev := s.params
	s.params = p
	if err := s.Reset(); err != nil {
		s.params = prev
		return false, err
	}
	return true, nil
}

// SetPopulation changes the body count and respawns, even when the
// count is unchanged.
func (s *Simulator) SetPopulation(count int) error {
	p := s.params
	p.Count = count
	respawned, err := s.Apply(p)
	if err != nil || respawned {
		return err
	}
	return s.Reset()
}

// SetShape switches the body kind and respawns.
func (s *Simulator) SetShape(k Kind) error {
	p := s.params
	p.Shape = k
	_, err := s.Apply(p)
	return err
}

// Resize starts a new arena epoch: bodies are respawned rather than
// moved into the new bounds.
func (s *Simulator) Resize(width, height float64) error {
	arena := NewArena(width, height)
	if err := arena.Validate(); err != nil {
		return err
	}
	prev := s.arena
	s.arena = arena
	if err := s.Reset(); err != nil {
		s.arena = prev
		return err
	}
	return nil
}

// RestingCount returns the number of bodies resting on the floor.
func (s *Simulator) RestingCount() int {
	n := 0
	for _, b := range s.bodies {
		if b.Resting(s.arena) {
			n++
		}
	}
	return n
}

// Stats returns aggregate counters for HUDs and run summaries.
func (s *Simulator) Stats() Stats {
	st := Stats{Tick: s.ticks, Bodies: len(s.bodies), Resting: s.RestingCount()}
	for _, b := range s.bodies {
		st.Kinetic += b.KineticEnergy()
		st.Fastest = max(st.Fastest, b.Speed())
	}
	return st
}
