package game

import (
	"github.com/hnovak/starfall/internal/object"
	"github.com/hnovak/starfall/internal/physics"
)

// resolveCollisions runs the per-tick collision pass. All tests are
// sphere-sphere; at tens of entities a pairwise scan is the reference
// behavior, no broad phase.
//
// Order matters and is fixed: projectile↔invader first, then ship↔invader,
// then bottom-boundary breach. An invader killed by a projectile on the
// same tick it would breach is credited as a kill; the later passes skip
// already-destroyed entities.
func (g *Game) resolveCollisions() {
	g.checkProjectileHits()
	g.checkShipRams()
	g.checkBreaches()
}

// checkProjectileHits applies projectile damage to invaders. A projectile
// is spent on its first hit; an invader reduced to zero health is destroyed
// with an explosion and its points are credited exactly once.
func (g *Game) checkProjectileHits() {
	g.store.ForEachProjectile(func(p *object.Projectile) {
		g.store.ForEachInvader(func(in *object.Invader) {
			if p.Destroyed || in.Destroyed {
				return
			}
			if !physics.SpheresOverlap(p.Position, ProjectileRadius, in.Position, InvaderRadius) {
				return
			}
			p.MarkDestroyed()
			in.Health -= p.Damage
			if in.Health <= 0 {
				in.MarkDestroyed()
				g.spawnExplosion(in.Position)
				g.store.Ship.Score += in.Points
			}
		})
	})
}

// checkShipRams handles kamikaze hits. Only evaluated while the ship is
// vulnerable; the invader dies without explosion or score credit.
func (g *Game) checkShipRams() {
	if g.state != stateVulnerable || g.gameOver {
		return
	}
	s := g.store.Ship
	g.store.ForEachInvader(func(in *object.Invader) {
		if in.Destroyed || g.state != stateVulnerable {
			return
		}
		if !physics.SpheresOverlap(s.Position, ShipRadius, in.Position, InvaderRadius) {
			return
		}
		g.applyDamage(g.profile.RamDamage)
		in.MarkDestroyed()
	})
}

// checkBreaches destroys invaders that crossed the bottom boundary and
// routes breach damage through the state machine. The damage is dropped if
// the ship is invincible, but the invader is removed either way.
func (g *Game) checkBreaches() {
	g.store.ForEachInvader(func(in *object.Invader) {
		if in.Destroyed || in.Position.Y >= g.cfg.BottomY {
			return
		}
		g.applyDamage(g.profile.BreachDamage)
		in.MarkDestroyed()
	})
}
