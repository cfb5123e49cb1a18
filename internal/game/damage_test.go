package game

import (
	"testing"

	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/object"
)

func TestDamageEntersInvincibilityWindow(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	s := g.store.Ship

	g.applyDamage(30)
	if s.Health != 70 {
		t.Fatalf("health = %f, want 70", s.Health)
	}
	if !s.Invincible {
		t.Fatal("ship should be invincible after damage")
	}

	// Window elapses on the simulation clock.
	stepFor(g, invincibilityWindow+0.05, 0.05, Keys{})
	if s.Invincible {
		t.Fatal("invincibility should have cleared")
	}
	if s.Health != 70 {
		t.Fatalf("health changed during window: %f", s.Health)
	}
}

func TestDamageDroppedWhileInvincible(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	s := g.store.Ship

	g.applyDamage(30)
	g.applyDamage(99)
	g.applyDamage(99)
	if s.Health != 70 {
		t.Fatalf("health = %f, want 70: damage during the window must be a no-op", s.Health)
	}
}

func TestLifeLossSchedulesRecovery(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	s := g.store.Ship
	s.Health = 20
	s.Lives = 2

	g.applyDamage(30)
	if s.Health != 0 {
		t.Fatalf("health = %f, want 0 (clamped, never negative)", s.Health)
	}
	if s.Lives != 1 {
		t.Fatalf("lives = %d, want 1", s.Lives)
	}
	if g.GameOver() {
		t.Fatal("losing a life with lives remaining must not end the game")
	}

	// Health restored only after the recovery window.
	stepFor(g, recoveryWindow/2, 0.05, Keys{})
	if s.Health != 0 {
		t.Fatalf("health restored too early: %f", s.Health)
	}
	stepFor(g, recoveryWindow, 0.05, Keys{})
	if s.Health != object.MaxHealth {
		t.Fatalf("health = %f after recovery, want %f", s.Health, object.MaxHealth)
	}
	if s.Invincible {
		t.Fatal("invincibility should clear with recovery")
	}
	if g.GameOver() {
		t.Fatal("simulation should still be running")
	}
}

func TestLastLifeGoesStraightToGameOver(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	spy := &recorderSpy{}
	g.recorder = spy
	s := g.store.Ship
	s.Health = 10
	s.Lives = 1
	s.Score = 420

	g.applyDamage(30)
	if s.Health != 0 || s.Lives != 0 {
		t.Fatalf("health = %f lives = %d, want 0/0", s.Health, s.Lives)
	}
	if !g.GameOver() {
		t.Fatal("game over should be immediate on the last life")
	}
	if len(spy.highScores) != 1 || spy.highScores[0] != 420 {
		t.Fatalf("UpdateHighScore calls = %v, want exactly [420]", spy.highScores)
	}
	if spy.gamesPlayed != 1 {
		t.Fatalf("IncrementGamesPlayed calls = %d, want 1", spy.gamesPlayed)
	}

	// No recovery window: health stays at zero however long we wait.
	stepFor(g, 5, 0.05, Keys{})
	if s.Health != 0 {
		t.Fatalf("health = %f after game over, want 0 (no recovery scheduled)", s.Health)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	spy := &recorderSpy{}
	g.recorder = spy
	s := g.store.Ship
	s.Health = 5
	s.Lives = 1

	g.applyDamage(50)
	if !g.GameOver() {
		t.Fatal("expected game over")
	}

	// Further damage and further ticks change nothing.
	g.applyDamage(100)
	stepFor(g, 3, 0.05, Keys{})
	if s.Lives != 0 {
		t.Fatalf("lives = %d, want 0 (never negative)", s.Lives)
	}
	if !g.GameOver() {
		t.Fatal("game over must be terminal for the session")
	}
	if len(spy.highScores) != 1 || spy.gamesPlayed != 1 {
		t.Fatalf("score persisted more than once: %v / %d", spy.highScores, spy.gamesPlayed)
	}
}

func TestHealthStaysInRange(t *testing.T) {
	g := newTestGame(config.DifficultyHard)
	s := g.store.Ship

	for i := 0; i < 20; i++ {
		g.applyDamage(50)
		if s.Health < 0 || s.Health > object.MaxHealth {
			t.Fatalf("health %f out of [0, %f]", s.Health, object.MaxHealth)
		}
		if s.Lives < 0 {
			t.Fatalf("lives went negative: %d", s.Lives)
		}
		stepFor(g, invincibilityWindow+recoveryWindow, 0.05, Keys{})
	}
}

func TestResetCancelsPendingWindows(t *testing.T) {
	g := newTestGame(config.DifficultyMedium)
	s := g.store.Ship
	s.Health = 20
	s.Lives = 2
	g.applyDamage(30) // Recovering, window pending

	g.Reset()
	if s.Health != object.MaxHealth || s.Lives != object.InitialLives {
		t.Fatalf("reset ship = %f hp / %d lives", s.Health, s.Lives)
	}
	if s.Invincible {
		t.Fatal("reset should clear invincibility")
	}

	// The cancelled window must not fire against the new session.
	stepFor(g, recoveryWindow*2, 0.05, Keys{})
	if g.state != stateVulnerable {
		t.Fatalf("state = %d after reset, want vulnerable", g.state)
	}
}
