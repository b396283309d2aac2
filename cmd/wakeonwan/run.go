package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fgeck/wakeonwan/internal/config"
	"github.com/fgeck/wakeonwan/internal/services/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runWake(cmd *cobra.Command, args []string) error {
	// Arguments are valid from here on; failures are logged below.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	parser := config.NewParser()
	if err := parser.BindFlags(cmd.Flags()); err != nil {
		log.Error().Err(err).Msg("failed to bind flags")
		return err
	}

	cfg, err := parser.Load(args)
	if err != nil {
		log.Error().Err(err).Msg("invalid destination")
		return err
	}

	if err := config.Validate(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	log.Debug().
		Str("uri", cfg.URI).
		Str("host", cfg.Host).
		Uint16("port", cfg.Port).
		Msg("configuration loaded")

	// Set up context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runnerSvc := runner.New(log.Logger)
	report, err := runnerSvc.Run(ctx, *cfg)
	if err != nil {
		if report != nil {
			log.Error().
				Int("failed", report.Failed()).
				Int("total", len(report.Results)).
				Msg("some magic packets could not be sent")
		}
		return err
	}

	return nil
}
