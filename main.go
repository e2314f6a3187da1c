package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/heart-visualization/internal/audio"
	"github.com/iburimskiy/heart-visualization/internal/audio/device"
	"github.com/iburimskiy/heart-visualization/internal/config"
	"github.com/iburimskiy/heart-visualization/internal/game"
	"github.com/iburimskiy/heart-visualization/internal/heart"
	"github.com/iburimskiy/heart-visualization/internal/letter"
	"github.com/iburimskiy/heart-visualization/internal/logging"
	"github.com/iburimskiy/heart-visualization/internal/notify"
	"github.com/iburimskiy/heart-visualization/internal/particles"
	"github.com/iburimskiy/heart-visualization/internal/scene"
)

const letterDebounce = 200 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, cfg); err != nil {
		log.Error("exit", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger, cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var text letter.Source = letter.Static(cfg.Letter)
	if cfg.LetterFile != "" {
		w, err := letter.Watch(ctx, log.Named("letter"), cfg.LetterFile, letterDebounce)
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()
		text = w
	}

	geom := heart.Build()
	field := particles.New()
	s := scene.Compose(geom, field, float64(cfg.Width)/float64(cfg.Height))
	log.Info("scene ready",
		zap.Int("faces", len(geom.Faces)),
		zap.Int("particles", field.Len()),
	)

	player := audio.NewPlayer(log.Named("audio"), device.Speaker{}, cfg.Music, cfg.Volume)
	defer player.Close()

	g := game.New(game.Options{
		Log:     log,
		Scene:   s,
		Music:   player,
		Dialogs: notify.New(log.Named("notify"), cfg.Title),
		Letter:  text,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title + " - Space: pulse, M: music, R: reset view, L: letter, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// one Update per displayed frame
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
