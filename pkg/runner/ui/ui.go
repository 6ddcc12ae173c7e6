// Package ui starts the full-screen journal.
package ui

import (
	"context"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/anim"
	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/phase"
	"tableflip.dev/reignite/pkg/store"
	"tableflip.dev/reignite/pkg/tui"
)

type UI struct {
	Service  *app.Service
	Settings *store.Settings
	Log      *zap.Logger

	// NoAnimation draws the panes over a blank background.
	NoAnimation bool
}

func (u *UI) Do(ctx context.Context) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	machine := phase.Breathing()

	caps := anim.Detect(os.Stdout)
	cfg := anim.Config{Source: machine, Rand: rng}
	fps := 30
	if u.Settings != nil {
		cfg.Particles = u.Settings.Particles
		fps = u.Settings.FPS
	}
	if u.NoAnimation {
		cfg.NoPointer, cfg.NoField, cfg.NoScene = true, true, true
	}
	engine := anim.Build(cfg, caps)
	if u.Log != nil {
		u.Log.Debug("starting ui",
			zap.Bool("tty", caps.TTY),
			zap.Bool("color", caps.Color),
			zap.Bool("pointer", engine.Pointer != nil),
			zap.Bool("field", engine.Field != nil),
			zap.Bool("scene", engine.Scene != nil))
	}

	return tui.Run(tui.Options{
		Service: u.Service,
		Engine:  engine,
		Machine: machine,
		FPS:     fps,
		Log:     u.Log,
		Rand:    rng,
		Context: ctx,
	})
}
