package game

import (
	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/object"
	"github.com/hnovak/starfall/internal/physics"
)

// recorderSpy records persistence calls for assertions.
type recorderSpy struct {
	highScores  []int
	gamesPlayed int
}

func (r *recorderSpy) UpdateHighScore(n int) {
	r.highScores = append(r.highScores, n)
}

func (r *recorderSpy) IncrementGamesPlayed() {
	r.gamesPlayed++
}

func newTestGame(d config.Difficulty) *Game {
	cfg := config.Default()
	cfg.Difficulty = d
	return New(cfg, nil)
}

// addInvader plants a live invader at pos using the current difficulty
// profile's stats.
func addInvader(g *Game, pos physics.Vec3) *object.Invader {
	prof := g.profile
	in := object.NewInvader(g.store.NextID(), pos, physics.Vec3{Y: -prof.InvaderSpeed}, prof.InvaderHealth, prof.Points)
	g.store.AddInvader(in)
	return in
}

// addProjectile plants a live projectile at pos.
func addProjectile(g *Game, pos physics.Vec3, damage, lifetime float64) *object.Projectile {
	p := object.NewProjectile(g.store.NextID(), pos, physics.Vec3{}, damage, lifetime)
	g.store.AddProjectile(p)
	return p
}

// stepFor advances the game in fixed increments until total seconds of
// simulated time have elapsed.
func stepFor(g *Game, total, dt float64, keys Keys) {
	for t := 0.0; t < total; t += dt {
		g.Step(dt, keys)
	}
}
