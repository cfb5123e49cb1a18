package draw

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/game"
	"github.com/hnovak/starfall/internal/object"
)

// hudRows is the number of rows reserved below the play-field.
const hudRows = 2

// blinkFrequency controls the invincibility blink, in frames per phase.
const blinkFrequency = 4

// HUD carries the session-level values shown alongside the snapshot.
type HUD struct {
	HighScore  int
	Difficulty config.Difficulty
}

// Renderer projects simulation snapshots onto a terminal canvas. The view
// covers the whole play-field plus the spawn margin; the projection
// stretches to the current terminal size.
type Renderer struct {
	canvas *Canvas
	size   TermSizeFunc
	frame  int

	// View bounds in world coordinates.
	left, right float64
	top, bottom float64
}

// NewRenderer creates a renderer for the given field geometry.
func NewRenderer(cfg config.Config, size TermSizeFunc) *Renderer {
	w, h, err := size()
	if err != nil || w < 1 || h < 1 {
		w, h = 80, 24
	}
	r := &Renderer{
		canvas: NewCanvas(w, h),
		size:   size,
	}
	r.SetConfig(cfg)
	return r
}

// SetConfig recomputes the view bounds for new field geometry. Called on a
// tunables hot reload so the projection tracks the live config.
func (r *Renderer) SetConfig(cfg config.Config) {
	margin := 1.0
	r.left = -cfg.FieldHalfX - margin
	r.right = cfg.FieldHalfX + margin
	r.top = cfg.SpawnY + margin
	r.bottom = cfg.BottomY - margin
}

// Frame draws one snapshot to w.
func (r *Renderer) Frame(w io.Writer, snap game.Snapshot, hud HUD) error {
	r.frame++

	if tw, th, err := r.size(); err == nil {
		r.canvas.Resize(tw, th)
	}
	r.canvas.Clear()

	r.drawField(snap)
	r.drawHUD(snap, hud)

	switch {
	case snap.GameOver:
		r.canvas.SetStringCentered(r.canvas.Height()/2-1, "G A M E   O V E R")
		r.canvas.SetStringCentered(r.canvas.Height()/2+1, fmt.Sprintf("final score %d", snap.Score))
		r.canvas.SetStringCentered(r.canvas.Height()/2+2, "enter: new game   ctrl-c: quit")
	case snap.Paused:
		r.canvas.SetStringCentered(r.canvas.Height()/2, "P A U S E D")
	}

	return r.canvas.Render(w)
}

func (r *Renderer) drawField(snap game.Snapshot) {
	for _, p := range snap.Particles {
		col, row, ok := r.project(p.Position.X, p.Position.Y)
		if ok {
			r.canvas.Set(col, row, particleGlyph(p.Opacity))
		}
	}
	for _, p := range snap.Projectiles {
		col, row, ok := r.project(p.Position.X, p.Position.Y)
		if ok {
			r.canvas.Set(col, row, '•')
		}
	}
	for _, in := range snap.Invaders {
		col, row, ok := r.project(in.Position.X, in.Position.Y)
		if ok {
			r.canvas.Set(col, row, invaderGlyph(in.Kind))
		}
	}

	// Invincibility blink: skip the ship on alternating phases.
	if !snap.Ship.Invincible || (r.frame/blinkFrequency)%2 == 0 {
		col, row, ok := r.project(snap.Ship.Position.X, snap.Ship.Position.Y)
		if ok {
			r.canvas.Set(col, row, shipGlyph(snap.Ship.Rotation.Z))
		}
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot, hud HUD) {
	row := r.canvas.Height() - hudRows

	bar := healthBar(snap.Health, 20)
	left := fmt.Sprintf(" score %-6d lives %s  hp %s", snap.Score, strings.Repeat("♥", snap.Lives), bar)
	r.canvas.SetString(0, row, left)

	right := fmt.Sprintf("best %d  %s ", hud.HighScore, hud.Difficulty)
	r.canvas.SetString(r.canvas.Width()-len([]rune(right)), row, right)

	r.canvas.SetString(0, row+1, " wasd/arrows move  space fire  q/e rotate  p pause")
}

// project maps world coordinates to canvas cells. The HUD rows at the
// bottom are excluded from the play area.
func (r *Renderer) project(x, y float64) (col, row int, ok bool) {
	rows := r.canvas.Height() - hudRows
	cols := r.canvas.Width()
	if rows < 1 || cols < 1 {
		return 0, 0, false
	}
	fx := (x - r.left) / (r.right - r.left)
	fy := (r.top - y) / (r.top - r.bottom)
	col = int(fx * float64(cols))
	row = int(fy * float64(rows))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// shipGlyph picks a glyph for the ship's heading (default facing +Y, which
// is up on screen).
func shipGlyph(angle float64) rune {
	// Normalize to [0, 2π) and quantize to 4 directions.
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch int(math.Round(a/(math.Pi/2))) % 4 {
	case 1:
		return '◀'
	case 2:
		return '▼'
	case 3:
		return '▶'
	default:
		return '▲'
	}
}

func invaderGlyph(k object.Kind) rune {
	switch k {
	case object.KindOrb:
		return '●'
	case object.KindHusk:
		return '▚'
	default:
		return '◆'
	}
}

func particleGlyph(opacity float64) rune {
	switch {
	case opacity > 0.75:
		return '█'
	case opacity > 0.5:
		return '▓'
	case opacity > 0.25:
		return '▒'
	default:
		return '░'
	}
}

func healthBar(health float64, width int) string {
	filled := int(math.Round(health / object.MaxHealth * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}
