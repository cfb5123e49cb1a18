package game

import (
	"testing"

	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/physics"
)

func TestStepClampsDelta(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)

	g.Step(5.0, Keys{}) // Stalled frame
	if g.Now() != MaxDelta {
		t.Fatalf("now = %f after oversized delta, want %f", g.Now(), MaxDelta)
	}

	g.Step(0, Keys{})
	g.Step(-1, Keys{})
	if g.Now() != MaxDelta {
		t.Fatalf("now = %f, non-positive deltas must be no-ops", g.Now())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	in := addInvader(g, physics.Vec3{X: 0, Y: 10})

	g.Step(0.05, Keys{Pause: true})
	if !g.Paused() {
		t.Fatal("expected paused")
	}
	before := in.Position

	stepFor(g, 2, 0.05, Keys{Pause: true})
	if in.Position != before {
		t.Fatalf("invader moved while paused: %+v -> %+v", before, in.Position)
	}
	if g.Now() != 0 {
		t.Fatalf("simulation time advanced while paused: %f", g.Now())
	}

	// Pause is a toggle on the key's rising edge.
	g.Step(0.05, Keys{})
	g.Step(0.05, Keys{Pause: true})
	if g.Paused() {
		t.Fatal("second tap should unpause")
	}
	g.Step(0.05, Keys{Pause: true})
	if g.Paused() {
		t.Fatal("held pause key must not re-toggle")
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	g := newTestGame(config.DifficultyHard)
	spy := &recorderSpy{}
	g.recorder = spy

	// Play until entities exist, then die.
	stepFor(g, 2, 0.05, Keys{Fire: true})
	g.store.Ship.Lives = 1
	g.applyDamage(500)
	if !g.GameOver() {
		t.Fatal("expected game over")
	}

	g.Reset()
	if g.GameOver() || g.Paused() {
		t.Fatal("reset should clear terminal state")
	}
	if g.Now() != 0 {
		t.Fatalf("now = %f after reset, want 0", g.Now())
	}
	if g.store.InvaderCount() != 0 || g.store.ProjectileCount() != 0 || g.store.ParticleCount() != 0 {
		t.Fatal("reset should clear all entities")
	}
	if g.store.Ship.Score != 0 {
		t.Fatalf("score = %d after reset, want 0", g.store.Ship.Score)
	}

	// A second death in the new session persists again.
	g.store.Ship.Lives = 1
	g.applyDamage(500)
	if spy.gamesPlayed != 2 {
		t.Fatalf("gamesPlayed = %d, want 2 (one per session)", spy.gamesPlayed)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	in := addInvader(g, physics.Vec3{X: 3, Y: 9})
	g.store.Ship.Score = 7

	snap := g.Snapshot()
	if len(snap.Invaders) != 1 || snap.Score != 7 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Invaders[0].ID != in.ID {
		t.Fatalf("snapshot invader id = %d, want %d", snap.Invaders[0].ID, in.ID)
	}

	// Mutating the snapshot must not reach the simulation.
	snap.Invaders[0].Position.X = 999
	snap.Score = 999
	if in.Position.X != 3 || g.store.Ship.Score != 7 {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestSnapshotExcludesDestroyedEntities(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	live := addInvader(g, physics.Vec3{X: 2, Y: 9})
	dead := addInvader(g, physics.Vec3{X: -2, Y: 9})
	dead.MarkDestroyed()

	snap := g.Snapshot()
	if len(snap.Invaders) != 1 || snap.Invaders[0].ID != live.ID {
		t.Fatalf("snapshot should only carry live entities, got %+v", snap.Invaders)
	}
}

func TestTickOrderAdvancesBeforeCollisions(t *testing.T) {
	// An invader one descent-step above the ship must be moved first and
	// then collide, within the same tick.
	g := newTestGame(config.DifficultyMedium)
	s := g.store.Ship
	gap := ShipRadius + InvaderRadius + 0.05
	in := addInvader(g, physics.Vec3{X: 0, Y: gap + g.profile.InvaderSpeed*0.1})

	g.Step(0.1, Keys{})
	if in.Destroyed || s.Health != 100 {
		t.Fatal("not close enough yet")
	}
	g.Step(0.1, Keys{})
	if !in.Destroyed {
		t.Fatal("collision should see the position advanced this frame")
	}
	if s.Health != 100-g.profile.RamDamage {
		t.Fatalf("health = %f, want %f", s.Health, 100-g.profile.RamDamage)
	}
}
