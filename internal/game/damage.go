package game

import (
	"math"

	"github.com/hnovak/starfall/internal/object"
)

// damageState is the ship's damage/lives state.
//
//	vulnerable --damage--> invincible --window--> vulnerable
//	                   \-> recovering --window--> vulnerable (health restored)
//	                   \-> gameOver (terminal until Reset)
type damageState int

const (
	stateVulnerable damageState = iota
	stateInvincible
	stateRecovering
	stateGameOver
)

// applyDamage is the single authoritative health mutation path. It reads
// and writes the live ship state in one step; there is no captured health
// value anywhere that could go stale across a window.
//
// Damage arriving while not vulnerable is dropped, not queued: at most one
// damage application per invincibility window.
func (g *Game) applyDamage(amount float64) {
	if g.state != stateVulnerable || amount <= 0 {
		return
	}
	s := g.store.Ship
	s.Health = math.Max(0, s.Health-amount)

	if s.Health > 0 {
		g.state = stateInvincible
		g.stateTimer = invincibilityWindow
		s.Invincible = true
		return
	}

	if s.Lives > 1 {
		// Forced breather: health comes back only after the recovery window.
		s.Lives--
		g.state = stateRecovering
		g.stateTimer = recoveryWindow
		s.Invincible = true
		return
	}

	// Last life gone: straight to game over, no recovery window.
	if s.Lives > 0 {
		s.Lives = 0
	}
	g.state = stateGameOver
	g.stateTimer = 0
	s.Invincible = true
	g.gameOver = true
	g.recorder.UpdateHighScore(s.Score)
	g.recorder.IncrementGamesPlayed()
}

// advanceDamageState counts down the invincibility/recovery windows on the
// simulation clock. Windows are countdowns, never scheduled callbacks, so
// tests can step simulated time and Reset can cancel them trivially.
func (g *Game) advanceDamageState(dt float64) {
	switch g.state {
	case stateInvincible:
		g.stateTimer -= dt
		if g.stateTimer <= 0 {
			g.stateTimer = 0
			g.state = stateVulnerable
			g.store.Ship.Invincible = false
		}
	case stateRecovering:
		g.stateTimer -= dt
		if g.stateTimer <= 0 {
			g.stateTimer = 0
			g.store.Ship.Health = object.MaxHealth
			g.state = stateVulnerable
			g.store.Ship.Invincible = false
		}
	}
}
