package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/hnovak/starfall/internal/config"
	"github.com/hnovak/starfall/internal/draw"
	"github.com/hnovak/starfall/internal/score"
	"github.com/hnovak/starfall/internal/session"
)

func main() {
	defaultCfg := config.GetEnv("STARFALL_CONFIG", defaultConfigPath())
	cfgPath := flag.String("config", defaultCfg, "path to the tunables YAML file")
	difficulty := flag.String("difficulty", "", "difficulty override (easy, medium, hard)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "starfall"})

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Warn("using default tunables", "err", err)
	}
	cfg.FromEnv()
	if d := config.Difficulty(*difficulty); d.Valid() {
		cfg.Difficulty = d
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		cancel()
	}()

	// Tunables hot reload: edits to the config file apply mid-session.
	reload, err := config.Watch(ctx, *cfgPath, logger)
	if err != nil {
		logger.Warn("config watch disabled", "err", err)
	}

	scores := score.Open(score.DefaultPath(), logger)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	err = session.Run(ctx, os.Stdin, os.Stdout, session.Options{
		Config:    cfg,
		Recorder:  scores,
		HighScore: scores.HighScore,
		Size:      draw.StdoutSize,
		Reload:    reload,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "starfall.yaml"
	}
	return filepath.Join(home, ".starfall", "config.yaml")
}
