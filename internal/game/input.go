package game

import (
	"math"

	"github.com/hnovak/starfall/internal/physics"
)

// Keys is a debounced pressed-key snapshot supplied by an external input
// layer once per tick.
type Keys struct {
	Up, Down, Left, Right   bool
	Fire                    bool
	RotateLeft, RotateRight bool
	Pause                   bool
}

// Intent is the mapped movement/fire/rotation intent for one tick.
type Intent struct {
	Move        physics.Vec3 // X, Y in [-1, 1], diagonals normalized
	Fire        bool
	RotateLeft  bool
	RotateRight bool
}

// MapIntent turns a key snapshot into intent. Pure function, no side
// effects. Diagonal movement is normalized so it has the same magnitude as
// axis-aligned movement.
func MapIntent(k Keys) Intent {
	var mx, my float64
	if k.Left {
		mx -= 1
	}
	if k.Right {
		mx += 1
	}
	if k.Down {
		my -= 1
	}
	if k.Up {
		my += 1
	}
	if mx != 0 && my != 0 {
		mag := math.Hypot(mx, my)
		mx /= mag
		my /= mag
	}
	return Intent{
		Move:        physics.Vec3{X: mx, Y: my},
		Fire:        k.Fire,
		RotateLeft:  k.RotateLeft,
		RotateRight: k.RotateRight,
	}
}
