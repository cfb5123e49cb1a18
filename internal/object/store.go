// Package object holds the pure-data entities of the simulation and the
// store that owns them. Entities carry no rendering state; a renderer keeps
// its own id-keyed mirror built from per-tick snapshots.
package object

// Store owns the authoritative state of every entity in one running game.
// There is exactly one store per game and it is only ever touched by the
// simulation loop. Collections are keyed by id; insertion order is
// irrelevant. Destroyed entities are soft-deleted and swept by Compact
// before the next tick's collision pass ever sees them.
type Store struct {
	Ship *Ship

	invaders    map[uint64]*Invader
	projectiles map[uint64]*Projectile
	particles   map[uint64]*Particle
	nextID      uint64
}

// NewStore creates a store with a freshly initialized ship and empty
// entity collections.
func NewStore() *Store {
	return &Store{
		Ship:        NewShip(),
		invaders:    make(map[uint64]*Invader),
		projectiles: make(map[uint64]*Projectile),
		particles:   make(map[uint64]*Particle),
	}
}

// NextID returns a fresh entity id, unique for the lifetime of the store.
func (s *Store) NextID() uint64 {
	s.nextID++
	return s.nextID
}

// AddInvader inserts an invader into the store.
func (s *Store) AddInvader(in *Invader) {
	s.invaders[in.ID] = in
}

// AddProjectile inserts a projectile into the store.
func (s *Store) AddProjectile(p *Projectile) {
	s.projectiles[p.ID] = p
}

// AddParticle inserts a particle into the store.
func (s *Store) AddParticle(p *Particle) {
	s.particles[p.ID] = p
}

// Invader looks up a live invader by id. Returns nil for missing or
// destroyed entities so callers can skip and continue.
func (s *Store) Invader(id uint64) *Invader {
	in, ok := s.invaders[id]
	if !ok || in.Destroyed {
		return nil
	}
	return in
}

// ForEachInvader calls fn for every live invader.
func (s *Store) ForEachInvader(fn func(*Invader)) {
	for _, in := range s.invaders {
		if in.Destroyed {
			continue
		}
		fn(in)
	}
}

// ForEachProjectile calls fn for every live projectile.
func (s *Store) ForEachProjectile(fn func(*Projectile)) {
	for _, p := range s.projectiles {
		if p.Destroyed {
			continue
		}
		fn(p)
	}
}

// ForEachParticle calls fn for every live particle.
func (s *Store) ForEachParticle(fn func(*Particle)) {
	for _, p := range s.particles {
		if p.Destroyed {
			continue
		}
		fn(p)
	}
}

// InvaderCount returns the number of live invaders.
func (s *Store) InvaderCount() int {
	n := 0
	for _, in := range s.invaders {
		if !in.Destroyed {
			n++
		}
	}
	return n
}

// ProjectileCount returns the number of live projectiles.
func (s *Store) ProjectileCount() int {
	n := 0
	for _, p := range s.projectiles {
		if !p.Destroyed {
			n++
		}
	}
	return n
}

// ParticleCount returns the number of live particles.
func (s *Store) ParticleCount() int {
	n := 0
	for _, p := range s.particles {
		if !p.Destroyed {
			n++
		}
	}
	return n
}

// Compact removes every soft-deleted entity. Runs at the end of each tick
// so stale entities never participate in the next collision pass.
func (s *Store) Compact() {
	for id, in := range s.invaders {
		if in.Destroyed {
			delete(s.invaders, id)
		}
	}
	for id, p := range s.projectiles {
		if p.Destroyed {
			delete(s.projectiles, id)
		}
	}
	for id, p := range s.particles {
		if p.Destroyed {
			delete(s.particles, id)
			p.Release()
		}
	}
}

// Clear removes every invader, projectile and particle. The ship is kept;
// it is reset, not recreated, on a new game.
func (s *Store) Clear() {
	for id := range s.invaders {
		delete(s.invaders, id)
	}
	for id := range s.projectiles {
		delete(s.projectiles, id)
	}
	for id, p := range s.particles {
		delete(s.particles, id)
		p.Release()
	}
}
