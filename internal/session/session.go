// Package session runs one interactive game: the fixed-cadence frame loop
// tying the input stream, the simulation engine and the renderer together.
// Both the local terminal and SSH front ends drive their games through it.
package session

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/draw"
	"github.com/hnovak/starfall/internal/game"
	"github.com/hnovak/starfall/internal/input"
	"github.com/hnovak/starfall/internal/score"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Options configures a session.
type Options struct {
	Config    config.Config
	Recorder  score.Recorder
	HighScore func() int           // For the HUD; nil shows zero
	Size      draw.TermSizeFunc    // Terminal dimensions per frame
	Reload    <-chan config.Config // Optional tunables hot reload
}

// Run plays games on r/w until the player quits or ctx is cancelled. The
// frame loop is Input → Step → Snapshot → Draw at a fixed cadence; the
// engine itself clamps oversized deltas after stalls.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	stream := input.StartStream(bufio.NewReader(r))
	g := game.New(opts.Config, opts.Recorder)
	renderer := draw.NewRenderer(opts.Config, opts.Size)

	cfg := opts.Config
	highScore := opts.HighScore
	if highScore == nil {
		highScore = func() int { return 0 }
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		case c, ok := <-opts.Reload:
			if ok {
				cfg = c
				g.SetTunables(c)
				renderer.SetConfig(c)
			}
		default:
		}

		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		in := stream.ReadInput()
		if in.Quit {
			draw.ClearScreen(w)
			return nil
		}
		if g.GameOver() && in.Enter {
			g.Reset()
		}

		g.Step(dt, game.Keys{
			Up:          in.Up,
			Down:        in.Down,
			Left:        in.Left,
			Right:       in.Right,
			Fire:        in.Fire,
			RotateLeft:  in.RotateLeft,
			RotateRight: in.RotateRight,
			Pause:       in.Pause,
		})

		hud := draw.HUD{HighScore: highScore(), Difficulty: cfg.Difficulty}
		if err := renderer.Frame(w, g.Snapshot(), hud); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}
