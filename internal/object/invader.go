package object

import (
	"math/rand"

	"github.com/hnovak/starfall/internal/physics"
)

// Kind is an invader's visual variant. It affects rendering only,
// never simulation behavior.
type Kind int

const (
	KindDart Kind = iota
	KindOrb
	KindHusk
	numKinds
)

// RandomKind picks a visual variant for a freshly spawned invader.
func RandomKind() Kind {
	return Kind(rand.Intn(int(numKinds)))
}

// Invader is a hostile descending entity. Velocity is fixed at spawn
// (straight-line descent); Spin is cosmetic rotation for the renderer.
type Invader struct {
	ID       uint64
	Position physics.Vec3
	Velocity physics.Vec3
	Rotation physics.Vec3
	Spin     float64 // Radians per second, renderer-facing only

	Health    float64
	Points    int
	Kind      Kind
	Destroyed bool
}

// NewInvader creates an invader at the given position descending with the
// given velocity.
func NewInvader(id uint64, pos, vel physics.Vec3, health float64, points int) *Invader {
	return &Invader{
		ID:       id,
		Position: pos,
		Velocity: vel,
		Spin:     (rand.Float64() - 0.5) * 2.0,
		Health:   health,
		Points:   points,
		Kind:     RandomKind(),
	}
}

// MarkDestroyed flags the invader for removal at the end of the tick.
func (in *Invader) MarkDestroyed() {
	in.Destroyed = true
}
