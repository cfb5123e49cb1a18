// Package config provides the tunable configuration bundle for the
// simulation, loaded from defaults, an optional YAML file, and environment
// overrides. Out-of-range values are clamped at ingestion; the integrator
// never sees a negative speed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Difficulty selects a named tunable profile scaling spawn cadence, invader
// stats, and damage amounts.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Profile holds the difficulty-scaled gameplay values.
type Profile struct {
	SpawnInterval float64 // Seconds between invader spawns
	InvaderSpeed  float64 // Descent speed, units per second
	InvaderHealth float64
	Points        int     // Score reward per kill
	RamDamage     float64 // Ship↔invader collision damage
	BreachDamage  float64 // Damage when an invader crosses the bottom boundary
}

// Profile returns the gameplay values for the difficulty. Unknown values
// fall back to medium.
func (d Difficulty) Profile() Profile {
	switch d {
	case DifficultyEasy:
		return Profile{SpawnInterval: 3.0, InvaderSpeed: 1.5, InvaderHealth: 5, Points: 50, RamDamage: 20, BreachDamage: 10}
	case DifficultyHard:
		return Profile{SpawnInterval: 1.0, InvaderSpeed: 3.0, InvaderHealth: 15, Points: 150, RamDamage: 50, BreachDamage: 30}
	default:
		return Profile{SpawnInterval: 2.0, InvaderSpeed: 2.0, InvaderHealth: 10, Points: 100, RamDamage: 30, BreachDamage: 20}
	}
}

// Valid reports whether d names a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Config is the tunable bundle consumed by the game at construction.
type Config struct {
	ShipSpeed       float64    `yaml:"ship_speed"`       // Vertical axis speed, units/sec
	HorizontalSpeed float64    `yaml:"horizontal_speed"` // Horizontal axis speed, units/sec
	ShipTorque      float64    `yaml:"ship_torque"`      // Radians per rotate tap
	FireSpeed       float64    `yaml:"fire_speed"`       // Projectile speed, units/sec
	FireRate        float64    `yaml:"fire_rate"`        // Minimum seconds between shots
	FireStrength    float64    `yaml:"fire_strength"`    // Projectile damage
	Difficulty      Difficulty `yaml:"difficulty"`

	// Play-field geometry. The ship is clamped to ±FieldHalfX / ±FieldHalfY;
	// invaders spawn at SpawnY and are destroyed below BottomY.
	FieldHalfX float64 `yaml:"field_half_x"`
	FieldHalfY float64 `yaml:"field_half_y"`
	SpawnHalfX float64 `yaml:"spawn_half_x"`
	SpawnY     float64 `yaml:"spawn_y"`
	BottomY    float64 `yaml:"bottom_y"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		ShipSpeed:       12,
		HorizontalSpeed: 12,
		ShipTorque:      0.3,
		FireSpeed:       25,
		FireRate:        0.3,
		FireStrength:    5,
		Difficulty:      DifficultyMedium,
		FieldHalfX:      15,
		FieldHalfY:      15,
		SpawnHalfX:      14,
		SpawnY:          20,
		BottomY:         -18,
	}
}

// Clamp forces out-of-range values back to sane defaults. Called on every
// ingestion path so the simulation can trust the bundle blindly.
func (c *Config) Clamp() {
	d := Default()
	clampPos(&c.ShipSpeed, d.ShipSpeed)
	clampPos(&c.HorizontalSpeed, d.HorizontalSpeed)
	clampPos(&c.ShipTorque, d.ShipTorque)
	clampPos(&c.FireSpeed, d.FireSpeed)
	clampPos(&c.FireRate, d.FireRate)
	clampPos(&c.FireStrength, d.FireStrength)
	clampPos(&c.FieldHalfX, d.FieldHalfX)
	clampPos(&c.FieldHalfY, d.FieldHalfY)
	clampPos(&c.SpawnHalfX, d.SpawnHalfX)
	if !c.Difficulty.Valid() {
		c.Difficulty = d.Difficulty
	}
	if c.SpawnY <= c.BottomY {
		c.SpawnY = d.SpawnY
		c.BottomY = d.BottomY
	}
}

func clampPos(v *float64, fallback float64) {
	if *v <= 0 {
		*v = fallback
	}
}

// Load reads a YAML config file layered over the defaults. A missing file
// is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	cfg.Clamp()
	return cfg, nil
}

// FromEnv applies environment overrides: STARFALL_DIFFICULTY selects the
// difficulty profile.
func (c *Config) FromEnv() {
	if v := GetEnv("STARFALL_DIFFICULTY", ""); v != "" {
		if d := Difficulty(v); d.Valid() {
			c.Difficulty = d
		}
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
