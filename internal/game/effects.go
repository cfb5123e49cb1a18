package game

import (
	"math/rand"

	"github.com/hnovak/starfall/internal/object"
	"github.com/hnovak/starfall/internal/physics"
)

// spawnExplosion bursts particles at a destroyed invader's last position.
// Directions are uniform over the unit sphere (Gaussian sampling), speeds
// and lifetimes vary per particle. Particles are decoration: no collisions,
// removed on expiry by the integrator.
func (g *Game) spawnExplosion(at physics.Vec3) {
	for i := 0; i < explosionParticles; i++ {
		dir := randomUnitVec()
		speed := particleMinSpeed + rand.Float64()*(particleMaxSpeed-particleMinSpeed)
		life := particleMinLife + rand.Float64()*(particleMaxLife-particleMinLife)

		p := object.NewParticle(g.store.NextID(), at, dir.Scale(speed), life)
		g.store.AddParticle(p)
	}
}

// randomUnitVec samples a uniformly distributed unit vector by normalizing
// independent normal deviates.
func randomUnitVec() physics.Vec3 {
	for {
		v := physics.Vec3{
			X: rand.NormFloat64(),
			Y: rand.NormFloat64(),
			Z: rand.NormFloat64(),
		}
		if v.LengthSquared() > 1e-12 {
			return v.Normalize()
		}
	}
}
