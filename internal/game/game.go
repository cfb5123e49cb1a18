// Package game implements the simulation engine: a fixed-order tick over
// an entity store, with spawning, collision detection, a damage/lives state
// machine, and particle effects. The engine is presentation-agnostic; it
// consumes a pressed-keys snapshot per tick and exposes a read-only state
// snapshot for whatever renders it.
package game

import (
	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/object"
	"github.com/hnovak/starfall/internal/score"
)

// Game is one running simulation. Not safe for concurrent use: the tick
// loop owns it exclusively and renderers only ever see snapshots.
type Game struct {
	cfg     config.Config
	profile config.Profile
	store   *object.Store

	recorder score.Recorder

	now        float64 // Accumulated simulation time, seconds
	spawnTimer float64

	state      damageState
	stateTimer float64

	paused   bool
	gameOver bool

	prevIntent Intent
	prevPause  bool
}

// New creates a game from a clamped tunables bundle and a persistence
// collaborator. A nil recorder discards scores.
func New(cfg config.Config, rec score.Recorder) *Game {
	cfg.Clamp()
	if rec == nil {
		rec = score.Discard{}
	}
	return &Game{
		cfg:      cfg,
		profile:  cfg.Difficulty.Profile(),
		store:    object.NewStore(),
		recorder: rec,
	}
}

// SetTunables swaps in a new tunables bundle mid-session (config hot
// reload). Entities already in flight keep their spawn-time stats.
func (g *Game) SetTunables(cfg config.Config) {
	cfg.Clamp()
	g.cfg = cfg
	g.profile = cfg.Difficulty.Profile()
}

// Step advances the simulation by dt seconds. dt is clamped to MaxDelta so
// a stall never produces a large jump. Fixed phase order per tick:
// input → ship motion → firing → spawning → integration → collisions →
// damage windows → compaction.
//
// While paused or game over the tick is a no-op apart from watching the
// pause key; pause freezes simulation time entirely, countdown windows
// included.
func (g *Game) Step(dt float64, keys Keys) {
	if dt <= 0 {
		return
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}

	if keys.Pause && !g.prevPause && !g.gameOver {
		g.paused = !g.paused
	}
	g.prevPause = keys.Pause

	if g.paused || g.gameOver {
		return
	}

	g.now += dt
	in := MapIntent(keys)

	g.moveShip(in, dt)
	g.fire(in)
	g.spawn(dt)
	g.integrate(dt)
	g.resolveCollisions()
	g.advanceDamageState(dt)
	g.store.Compact()

	g.prevIntent = in
}

// Reset starts a fresh game: ship restored, entities cleared, pending
// windows and the spawn accumulator cancelled. The store itself survives so
// the renderer's id mirror can observe the entity set emptying.
func (g *Game) Reset() {
	g.store.Clear()
	g.store.Ship.Reset()
	g.now = 0
	g.spawnTimer = 0
	g.state = stateVulnerable
	g.stateTimer = 0
	g.paused = false
	g.gameOver = false
	g.prevIntent = Intent{}
	g.prevPause = false
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// GameOver reports whether the session has ended. Terminal until Reset.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Now returns accumulated simulation time in seconds.
func (g *Game) Now() float64 {
	return g.now
}
