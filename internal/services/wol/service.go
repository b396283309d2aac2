// Package wol provides Wake-on-LAN operations.
package wol

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/fgeck/wakeonwan/internal/models"
)

// Service defines the interface for Wake-on-LAN operations.
type Service interface {
	Wake(ctx context.Context, req models.WakeRequest) (*models.WakeReport, error)
}

// Impl implements the WOL Service interface.
type Impl struct {
	resolver Resolver
	opener   Opener
}

// New creates a new WOL service using the system resolver and UDP sockets.
func New() *Impl {
	return &Impl{
		resolver: net.DefaultResolver,
		opener:   UDPOpener{},
	}
}

// NewWithClients creates a new WOL service with custom clients (for testing).
func NewWithClients(resolver Resolver, opener Opener) *Impl {
	return &Impl{
		resolver: resolver,
		opener:   opener,
	}
}

// Wake sends one magic packet per target, in order, to the resolved
// destination. Resolution and socket setup failures are returned as errors;
// send failures are stored on the affected result and do not stop the
// remaining targets.
func (s *Impl) Wake(ctx context.Context, req models.WakeRequest) (*models.WakeReport, error) {
	if len(req.Targets) == 0 {
		return nil, errors.New("no MAC addresses to wake")
	}

	dest, err := s.Resolve(ctx, req.Host, req.Port)
	if err != nil {
		return nil, err
	}

	report := &models.WakeReport{
		Destination: *dest,
		DryRun:      req.DryRun,
		Results:     make([]models.DispatchResult, len(req.Targets)),
	}

	// All packets are built before anything is sent.
	for i, mac := range req.Targets {
		payload, err := BuildMagicPacket(mac)
		if err != nil {
			return nil, err
		}
		report.Results[i] = models.DispatchResult{
			MAC:     mac,
			Payload: payload,
			DryRun:  req.DryRun,
		}
	}

	if req.DryRun {
		return report, nil
	}

	conn, err := s.opener.Open(ctx, *dest)
	if err != nil {
		return nil, &models.SocketSetupError{Family: dest.Family, Err: err}
	}
	defer func() { _ = conn.Close() }()

	if local := conn.LocalAddr(); local != nil {
		report.LocalAddr = local.String()
	}

	addr := dest.UDPAddr()
	for i := range report.Results {
		res := &report.Results[i]
		if err := send(conn, addr, res.Payload); err != nil {
			res.Error = &models.SendError{MAC: res.MAC, Destination: dest.String(), Err: err}
			continue
		}
		res.Sent = true
	}

	return report, nil
}

func send(conn Conn, addr net.Addr, payload []byte) error {
	n, err := conn.WriteTo(payload, addr)
	if err != nil {
		return err
	}
	if n != len(payload) {
		return fmt.Errorf("wrote %d of %d bytes: %w", n, len(payload), io.ErrShortWrite)
	}
	return nil
}
