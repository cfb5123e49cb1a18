package draw

import (
	"math"
	"strings"
	"testing"

	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/game"
	"github.com/hnovak/starfall/internal/object"
)

func TestCanvasSetAndClip(t *testing.T) {
	c := NewCanvas(10, 4)
	c.Set(0, 0, 'x')
	c.Set(9, 3, 'y')
	c.Set(-1, 0, 'z') // Dropped
	c.Set(10, 0, 'z') // Dropped
	c.Set(0, 4, 'z')  // Dropped

	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
		t.Fatalf("render missing cells: %q", out)
	}
	if strings.Contains(out, "z") {
		t.Fatalf("out-of-bounds write leaked: %q", out)
	}
}

func TestProjectKeepsFieldOnCanvas(t *testing.T) {
	cfg := config.Default()
	r := NewRenderer(cfg, FixedSize(80, 24))

	cases := []struct {
		name string
		x, y float64
		ok   bool
	}{
		{"center", 0, 0, true},
		{"ship_corner", cfg.FieldHalfX, cfg.FieldHalfY, true},
		{"spawn_row", 0, cfg.SpawnY, true},
		{"bottom", 0, cfg.BottomY, true},
		{"far_outside", 0, cfg.SpawnY + 10, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col, row, ok := r.project(c.x, c.y)
			if ok != c.ok {
				t.Fatalf("project(%f, %f) ok = %v, want %v", c.x, c.y, ok, c.ok)
			}
			if ok && (col < 0 || col >= 80 || row < 0 || row >= 24-hudRows) {
				t.Fatalf("projected cell (%d, %d) outside canvas", col, row)
			}
		})
	}

	// Screen orientation: higher world y means a smaller row number.
	_, topRow, _ := r.project(0, cfg.SpawnY)
	_, bottomRow, _ := r.project(0, cfg.BottomY)
	if topRow >= bottomRow {
		t.Fatalf("y axis flipped: spawn row %d, bottom row %d", topRow, bottomRow)
	}
}

func TestSetConfigRetargetsProjection(t *testing.T) {
	cfg := config.Default()
	r := NewRenderer(cfg, FixedSize(80, 24))

	outside := cfg.SpawnY * 2
	if _, _, ok := r.project(0, outside); ok {
		t.Fatalf("y=%f should be outside the initial view", outside)
	}

	grown := cfg
	grown.FieldHalfX *= 2
	grown.SpawnY *= 2
	r.SetConfig(grown)

	if _, _, ok := r.project(0, outside); !ok {
		t.Fatalf("y=%f should be visible after the field grew", outside)
	}
	if _, _, ok := r.project(grown.FieldHalfX, 0); !ok {
		t.Fatal("widened field edge should be visible after reload")
	}
}

func TestShipGlyphQuantization(t *testing.T) {
	cases := []struct {
		angle float64
		want  rune
	}{
		{0, '▲'},
		{math.Pi / 2, '◀'},
		{math.Pi, '▼'},
		{3 * math.Pi / 2, '▶'},
		{-math.Pi / 2, '▶'},
		{2 * math.Pi, '▲'},
	}
	for _, c := range cases {
		if got := shipGlyph(c.angle); got != c.want {
			t.Errorf("shipGlyph(%f) = %c, want %c", c.angle, got, c.want)
		}
	}
}

func TestParticleGlyphFades(t *testing.T) {
	if particleGlyph(1.0) != '█' || particleGlyph(0.6) != '▓' || particleGlyph(0.3) != '▒' || particleGlyph(0.1) != '░' {
		t.Fatal("particle shading thresholds wrong")
	}
}

func TestHealthBar(t *testing.T) {
	if got := healthBar(object.MaxHealth, 10); got != "[==========]" {
		t.Fatalf("full bar = %q", got)
	}
	if got := healthBar(0, 10); got != "[----------]" {
		t.Fatalf("empty bar = %q", got)
	}
	if got := healthBar(50, 10); got != "[=====-----]" {
		t.Fatalf("half bar = %q", got)
	}
}

func TestFrameRendersOverlays(t *testing.T) {
	cfg := config.Default()
	r := NewRenderer(cfg, FixedSize(80, 24))

	var sb strings.Builder
	snap := game.Snapshot{Health: 100, Lives: 3, Paused: true}
	if err := r.Frame(&sb, snap, HUD{Difficulty: cfg.Difficulty}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "P A U S E D") {
		t.Fatal("paused overlay missing")
	}

	sb.Reset()
	snap = game.Snapshot{Health: 0, GameOver: true, Score: 123}
	if err := r.Frame(&sb, snap, HUD{}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "G A M E   O V E R") || !strings.Contains(out, "final score 123") {
		t.Fatalf("game over overlay missing: %q", out)
	}
}
