package game

// Gameplay constants that are not user tunables.
// All durations are simulation seconds.

// Timing
const (
	// MaxDelta caps a single tick so a stalled frame (terminal resize,
	// suspended session) cannot teleport entities.
	MaxDelta = 0.1
)

// Ship handling
const (
	shipDrag = 0.95 // Velocity retained per tick, simulates inertia
)

// Damage state machine windows
const (
	invincibilityWindow = 1.0
	recoveryWindow      = 0.8
)

// Collision radii. Effective sphere sizes for overlap tests, not visual
// sizes.
const (
	ShipRadius       = 1.1
	InvaderRadius    = 0.5
	ProjectileRadius = 0.2
)

// Weapons
const (
	projectileLifetime = 2.0
)

// Effects
const (
	explosionParticles   = 15
	particleMinSpeed     = 3.0
	particleMaxSpeed     = 8.0
	particleMinLife      = 0.5
	particleMaxLife      = 1.0
	particleDrag         = 0.95 // Per-second velocity retention
	projectileOutOfField = 25.0 // |y| beyond which projectiles are culled
)
