package commands

import (
	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/logging"
	"tableflip.dev/reignite/pkg/printers"
	"tableflip.dev/reignite/pkg/store"
)

// env is what every command needs: settings, a logger and the service over
// the configured store.
type env struct {
	settings *store.Settings
	log      *zap.Logger
	p        store.Persistence
	svc      *app.Service
}

// loadEnv reads configuration and opens the journal for a CLI command, which
// logs to stderr. strict makes dropped writes fail the command.
func loadEnv(strict bool) (*env, error) {
	return openEnv(strict, false)
}

// loadUIEnv opens the journal for the TUI, which logs to the log file.
func loadUIEnv() (*env, error) {
	return openEnv(false, true)
}

// logOptions sends logs to the configured file only when the process owns
// the terminal.
func logOptions(s *store.Settings, ownsTerminal bool) logging.Options {
	o := logging.Options{Debug: s.Debug}
	if ownsTerminal {
		o.Path = s.LogPath
	}
	return o
}

func openEnv(strict, ownsTerminal bool) (*env, error) {
	s, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logOptions(s, ownsTerminal))
	if err != nil {
		return nil, err
	}
	p, err := store.Load(s)
	if err != nil {
		return nil, err
	}
	svc := app.New(journal.New(p, log), log)
	svc.Strict = strict
	log.Debug("journal opened", zap.String("path", s.Path), zap.Bool("ephemeral", s.Ephemeral))
	return &env{settings: s, log: log, p: p, svc: svc}, nil
}

func (e *env) close() {
	_ = e.log.Sync()
}

func printer(showID bool) *printers.PrettyPrint {
	return &printers.PrettyPrint{ShowID: showID}
}
