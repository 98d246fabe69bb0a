package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/trifactor/internal/app"
	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/config"
	"github.com/abhisek/trifactor/internal/run"
)

// newSession builds the run session a command drives. The returned func
// closes the log sink.
func newSession(cfg config.Config) (*run.Session, func() error, error) {
	logger, closeLog, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}
	m := run.NewMachine(catalog.Default(), cfg.MachineOptions())
	logger.Debug("session configured",
		slog.Int("initial_count", m.InitialCount()),
		slog.Int("followup_count", m.FollowupCount()),
		slog.Uint64("seed", cfg.Seed),
	)
	return run.NewSession(m, logger), closeLog, nil
}

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	session, closeLog, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	lens, _ := cfg.ParsedLens()
	return app.Run(app.Options{
		Session:   session,
		Lens:      lens,
		ExportDir: cfg.ExportDir,
	})
}
