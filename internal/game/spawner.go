package game

import (
	"math/rand"

	"github.com/hnovak/starfall/internal/object"
	"github.com/hnovak/starfall/internal/physics"
)

// spawn emits invaders on the difficulty-scaled cadence. The accumulator
// carries remainder time across ticks, so the long-run spawn rate matches
// the profile interval exactly regardless of frame rate.
//
// Never called while paused or game over; Step suspends the whole pipeline.
func (g *Game) spawn(dt float64) {
	g.spawnTimer += dt
	prof := g.profile
	for g.spawnTimer >= prof.SpawnInterval {
		g.spawnTimer -= prof.SpawnInterval

		x := -g.cfg.SpawnHalfX + rand.Float64()*2*g.cfg.SpawnHalfX
		pos := physics.Vec3{X: x, Y: g.cfg.SpawnY}
		vel := physics.Vec3{Y: -prof.InvaderSpeed}
		in := object.NewInvader(g.store.NextID(), pos, vel, prof.InvaderHealth, prof.Points)
		g.store.AddInvader(in)
	}
}
