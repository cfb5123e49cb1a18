package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/score"
	"github.com/hnovak/starfall/internal/session"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/starfall_host_key"
)

var (
	logger *log.Logger
	cfg    config.Config
	scores *score.FileStore
)

func main() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "starfall-ssh",
		ReportTimestamp: true,
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	var err error
	cfg, err = config.Load(config.GetEnv("STARFALL_CONFIG", "starfall.yaml"))
	if err != nil {
		logger.Warn("using default tunables", "err", err)
	}
	cfg.FromEnv()

	// One score store for the whole process; sessions share the high score.
	scores = score.Open(score.DefaultPath(), logger)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Reduce latency for game input.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "host", host, "port", port, "difficulty", cfg.Difficulty)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs a private single-player game over each SSH session's
// PTY. Sessions share nothing but the score store.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			wish.Fatalln(sess, "PTY required; connect with: ssh -t")
			return
		}

		// Track window size; resizes arrive on winCh for the session's life.
		var width, height atomic.Int64
		width.Store(int64(pty.Window.Width))
		height.Store(int64(pty.Window.Height))
		go func() {
			for win := range winCh {
				width.Store(int64(win.Width))
				height.Store(int64(win.Height))
			}
		}()

		logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr())

		err := session.Run(sess.Context(), sess, sess, session.Options{
			Config:    cfg,
			Recorder:  scores,
			HighScore: scores.HighScore,
			Size: func() (int, int, error) {
				return int(width.Load()), int(height.Load()), nil
			},
		})
		if err != nil {
			logger.Warn("session error", "user", sess.User(), "err", err)
		}
		logger.Info("session ended", "user", sess.User())

		next(sess)
	}
}
