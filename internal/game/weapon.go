package game

import "github.com/hnovak/starfall/internal/object"

// fire creates a projectile if fire intent is set and the fire-rate
// cooldown has elapsed. Firing while on cooldown is dropped, never queued.
func (g *Game) fire(in Intent) {
	if !in.Fire {
		return
	}
	s := g.store.Ship
	if g.now-s.LastFire < g.cfg.FireRate {
		return
	}
	s.LastFire = g.now

	vel := s.Forward().Scale(g.cfg.FireSpeed)
	p := object.NewProjectile(g.store.NextID(), s.Position, vel, g.cfg.FireStrength, projectileLifetime)
	g.store.AddProjectile(p)
}
