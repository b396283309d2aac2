// Package runner orchestrates a Wake-on-LAN run.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fgeck/wakeonwan/internal/macaddr"
	"github.com/fgeck/wakeonwan/internal/models"
	"github.com/fgeck/wakeonwan/internal/services/wol"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// ErrNoValidTargets is returned when none of the MAC arguments parse.
var ErrNoValidTargets = errors.New("no valid MAC addresses to wake")

// Service defines the interface for the wake runner.
type Service interface {
	Run(ctx context.Context, cfg models.WakeConfig) (*models.WakeReport, error)
}

// Impl implements the runner Service interface.
type Impl struct {
	wolSvc wol.Service
	logger zerolog.Logger
	out    io.Writer
}

// New creates a new runner service writing reports to stdout.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		wolSvc: wol.New(),
		logger: logger,
		out:    os.Stdout,
	}
}

// NewWithServices creates a new runner service with custom services (for testing).
func NewWithServices(logger zerolog.Logger, wolSvc wol.Service, out io.Writer) *Impl {
	return &Impl{
		wolSvc: wolSvc,
		logger: logger,
		out:    out,
	}
}

// Run parses every MAC argument, dispatches the valid ones and reports the
// outcome. Invalid arguments are skipped; the returned error aggregates
// every failed target. The report lists all arguments in input order.
func (s *Impl) Run(ctx context.Context, cfg models.WakeConfig) (*models.WakeReport, error) {
	var runErr error

	results := make([]models.DispatchResult, len(cfg.MACAddresses))
	targets := make([]models.MACAddress, 0, len(cfg.MACAddresses))
	valid := make([]int, 0, len(cfg.MACAddresses))

	for i, input := range cfg.MACAddresses {
		results[i].Input = input

		mac, err := macaddr.Parse(input)
		if err != nil {
			s.logger.Error().Err(err).Str("input", input).Msg("skipping invalid MAC address")
			results[i].Error = err
			runErr = multierr.Append(runErr, err)
			continue
		}

		results[i].MAC = mac
		targets = append(targets, mac)
		valid = append(valid, i)
	}

	if len(targets) == 0 {
		s.logger.Error().Int("invalid", len(cfg.MACAddresses)).Msg("no valid MAC addresses to wake")
		return nil, multierr.Append(ErrNoValidTargets, runErr)
	}

	s.logger.Debug().
		Str("uri", cfg.URI).
		Str("host", cfg.Host).
		Uint16("port", cfg.Port).
		Int("targets", len(targets)).
		Bool("dry_run", cfg.DryRun).
		Msg("dispatching magic packets")

	report, err := s.wolSvc.Wake(ctx, models.WakeRequest{
		Host:    cfg.Host,
		Port:    cfg.Port,
		Targets: targets,
		DryRun:  cfg.DryRun,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("host", cfg.Host).Msg("wake failed")
		return nil, multierr.Append(err, runErr)
	}
	if len(report.Results) != len(targets) {
		return nil, fmt.Errorf("got %d results for %d targets", len(report.Results), len(targets))
	}

	s.logger.Debug().
		Str("host", cfg.Host).
		Str("ip", report.Destination.Addr.String()).
		Str("family", report.Destination.Family.String()).
		Msg("resolved destination")
	if report.LocalAddr != "" {
		s.logger.Debug().Str("local", report.LocalAddr).Msg("socket bound")
	}

	for j, res := range report.Results {
		res.Input = results[valid[j]].Input
		results[valid[j]] = res
		s.logResult(report.Destination, res)
		if res.Error != nil {
			runErr = multierr.Append(runErr, res.Error)
		}
	}
	report.Results = results

	if cfg.DryRun {
		if err := wol.WriteReport(s.out, report); err != nil {
			return report, fmt.Errorf("writing dry-run report: %w", err)
		}
	}

	s.logger.Info().
		Str("destination", report.Destination.String()).
		Int("succeeded", report.Succeeded()).
		Int("failed", report.Failed()).
		Bool("dry_run", cfg.DryRun).
		Msg("wake completed")

	return report, runErr
}

func (s *Impl) logResult(dest models.Destination, res models.DispatchResult) {
	if res.Error != nil {
		s.logger.Error().
			Err(res.Error).
			Str("mac", res.MAC.String()).
			Str("destination", dest.String()).
			Msg("failed to send magic packet")
		return
	}

	msg := "magic packet sent"
	if res.DryRun {
		msg = "magic packet not sent (dry run)"
	}
	s.logger.Info().
		Str("mac", res.MAC.String()).
		Str("destination", dest.String()).
		Int("bytes", len(res.Payload)).
		Msg(msg)
}
