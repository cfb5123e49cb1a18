package game

import (
	"github.com/hnovak/starfall/internal/object"
	"github.com/hnovak/starfall/internal/physics"
)

// ShipView is the renderer-facing ship state.
type ShipView struct {
	Position   physics.Vec3
	Rotation   physics.Vec3
	Invincible bool
}

// InvaderView is the renderer-facing invader state.
type InvaderView struct {
	ID       uint64
	Position physics.Vec3
	Rotation physics.Vec3
	Kind     object.Kind
}

// ProjectileView is the renderer-facing projectile state.
type ProjectileView struct {
	ID       uint64
	Position physics.Vec3
}

// ParticleView is the renderer-facing particle state.
type ParticleView struct {
	ID       uint64
	Position physics.Vec3
	Opacity  float64
}

// Snapshot is the read-only per-tick view of the simulation for rendering
// and HUD. Everything is copied; mutating a snapshot has no effect on the
// game.
type Snapshot struct {
	Ship        ShipView
	Invaders    []InvaderView
	Projectiles []ProjectileView
	Particles   []ParticleView

	Score    int
	Lives    int
	Health   float64
	GameOver bool
	Paused   bool
}

// Snapshot copies the current simulation state. Call after Step returns;
// the renderer must never reach into the store itself.
func (g *Game) Snapshot() Snapshot {
	s := g.store.Ship
	snap := Snapshot{
		Ship: ShipView{
			Position:   s.Position,
			Rotation:   s.Rotation,
			Invincible: s.Invincible,
		},
		Invaders:    make([]InvaderView, 0, g.store.InvaderCount()),
		Projectiles: make([]ProjectileView, 0, g.store.ProjectileCount()),
		Particles:   make([]ParticleView, 0, g.store.ParticleCount()),
		Score:       s.Score,
		Lives:       s.Lives,
		Health:      s.Health,
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
	g.store.ForEachInvader(func(in *object.Invader) {
		snap.Invaders = append(snap.Invaders, InvaderView{
			ID:       in.ID,
			Position: in.Position,
			Rotation: in.Rotation,
			Kind:     in.Kind,
		})
	})
	g.store.ForEachProjectile(func(p *object.Projectile) {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{ID: p.ID, Position: p.Position})
	})
	g.store.ForEachParticle(func(p *object.Particle) {
		snap.Particles = append(snap.Particles, ParticleView{ID: p.ID, Position: p.Position, Opacity: p.Opacity()})
	})
	return snap
}
