package object

import (
	"math"

	"github.com/hnovak/starfall/internal/physics"
)

// Ship stat bounds. Health is always clamped to [0, MaxHealth] and lives
// never go negative; the damage state machine in the game package is the
// only writer of either.
const (
	MaxHealth    = 100.0
	InitialLives = 3
)

// Ship is the player-controlled vessel. Created once per game and reset
// in place on restart, never destroyed; it persists through game over.
type Ship struct {
	Position physics.Vec3
	Rotation physics.Vec3 // Z is the heading angle in radians (0 = facing +Y)
	Velocity physics.Vec3

	Health     float64
	Lives      int
	Score      int
	Invincible bool
	LastFire   float64 // Simulation-clock time of the last shot; -Inf before the first
}

// NewShip creates a ship at the origin with full health and default lives.
func NewShip() *Ship {
	return &Ship{
		Health:   MaxHealth,
		Lives:    InitialLives,
		LastFire: math.Inf(-1),
	}
}

// Reset restores the ship to its initial state for a new game.
func (s *Ship) Reset() {
	*s = Ship{
		Health:   MaxHealth,
		Lives:    InitialLives,
		LastFire: math.Inf(-1),
	}
}

// Forward returns the unit vector the ship is facing. The default heading
// is +Y; Rotation.Z turns it counter-clockwise.
func (s *Ship) Forward() physics.Vec3 {
	sin, cos := math.Sincos(s.Rotation.Z)
	return physics.Vec3{X: -sin, Y: cos}
}
