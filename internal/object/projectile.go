package object

import "github.com/hnovak/starfall/internal/physics"

// Projectile is a shot fired by the ship. Lifetime counts down in
// simulation seconds; an expired projectile never reaches the collision pass.
type Projectile struct {
	ID       uint64
	Position physics.Vec3
	Velocity physics.Vec3

	Damage    float64
	Lifetime  float64 // Seconds remaining before removal
	Destroyed bool
}

// NewProjectile creates a projectile with the given velocity and damage.
func NewProjectile(id uint64, pos, vel physics.Vec3, damage, lifetime float64) *Projectile {
	return &Projectile{
		ID:       id,
		Position: pos,
		Velocity: vel,
		Damage:   damage,
		Lifetime: lifetime,
	}
}

// MarkDestroyed flags the projectile for removal at the end of the tick.
func (p *Projectile) MarkDestroyed() {
	p.Destroyed = true
	p.Lifetime = 0
}

// Expired reports whether the projectile's lifetime has run out.
func (p *Projectile) Expired() bool {
	return p.Lifetime <= 0
}
