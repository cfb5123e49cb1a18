package object

import (
	"sync"

	"github.com/hnovak/starfall/internal/physics"
)

// particleFadeTime is the lifetime below which a particle starts fading out.
const particleFadeTime = 0.5

// particlePool reuses Particle objects to reduce allocations during
// explosion bursts.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. Particles never collide with
// anything and are removed once their lifetime runs out.
type Particle struct {
	ID       uint64
	Position physics.Vec3
	Velocity physics.Vec3

	Lifetime    float64 // Seconds remaining
	MaxLifetime float64
	Destroyed   bool
}

// NewParticle creates a particle from the pool.
func NewParticle(id uint64, pos, vel physics.Vec3, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.ID = id
	p.Position = pos
	p.Velocity = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Destroyed = false
	return p
}

// Release returns the particle to the pool. Called by the store when the
// particle is compacted out of the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Opacity derives the renderer-facing opacity from remaining lifetime,
// clamped to [0, 1].
func (p *Particle) Opacity() float64 {
	return physics.Clamp(p.Lifetime/particleFadeTime, 0, 1)
}
