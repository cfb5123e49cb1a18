package game

import (
	"math"

	"github.com/hnovak/starfall/internal/object"
	"github.com/hnovak/starfall/internal/physics"
)

// moveShip derives ship velocity from movement intent, applies drag and
// integrates position, clamped to the play-field rectangle.
//
// Rotation is edge-triggered: a rotate key turns the ship once on its
// rising edge and must be released before it turns again ("tap to rotate").
func (g *Game) moveShip(in Intent, dt float64) {
	s := g.store.Ship

	// Intent sets velocity on the axes being steered; unsteered axes keep
	// their velocity and glide to a stop under drag.
	if in.Move.X != 0 {
		s.Velocity.X = in.Move.X * g.cfg.HorizontalSpeed
	}
	if in.Move.Y != 0 {
		s.Velocity.Y = in.Move.Y * g.cfg.ShipSpeed
	}
	s.Velocity = s.Velocity.Scale(shipDrag)

	s.Position = s.Position.Add(s.Velocity.Scale(dt))
	s.Position.X = physics.Clamp(s.Position.X, -g.cfg.FieldHalfX, g.cfg.FieldHalfX)
	s.Position.Y = physics.Clamp(s.Position.Y, -g.cfg.FieldHalfY, g.cfg.FieldHalfY)

	if in.RotateLeft && !g.prevIntent.RotateLeft {
		s.Rotation.Z += g.cfg.ShipTorque
	}
	if in.RotateRight && !g.prevIntent.RotateRight {
		s.Rotation.Z -= g.cfg.ShipTorque
	}
}

// integrate advances invaders, projectiles and particles by dt and marks
// expired or out-of-field entities for removal. Runs before the collision
// pass so collisions always see this frame's positions.
func (g *Game) integrate(dt float64) {
	g.store.ForEachInvader(func(in *object.Invader) {
		in.Position = in.Position.Add(in.Velocity.Scale(dt))
		in.Rotation.Z += in.Spin * dt
	})

	g.store.ForEachProjectile(func(p *object.Projectile) {
		p.Lifetime -= dt
		if p.Expired() {
			p.MarkDestroyed()
			return
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		if math.Abs(p.Position.Y) > projectileOutOfField {
			p.MarkDestroyed()
		}
	})

	g.store.ForEachParticle(func(p *object.Particle) {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			p.Destroyed = true
			return
		}
		p.Velocity = p.Velocity.Scale(math.Pow(particleDrag, dt))
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
	})
}
