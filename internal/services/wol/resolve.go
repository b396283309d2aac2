package wol

import (
	"context"
	"errors"
	"net/netip"

	"github.com/fgeck/wakeonwan/internal/models"
)

// Resolver looks up the addresses of a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// Resolve turns host and port into a Destination. IP literals are used as
// given. For hostnames the first address returned by the resolver wins.
func (s *Impl) Resolve(ctx context.Context, host string, port uint16) (*models.Destination, error) {
	if host == "" {
		return nil, &models.DestinationUnresolvableError{Host: host, Err: errors.New("empty host")}
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		addrs, lookupErr := s.resolver.LookupNetIP(ctx, "ip", host)
		if lookupErr != nil {
			return nil, &models.DestinationUnresolvableError{Host: host, Err: lookupErr}
		}
		if len(addrs) == 0 {
			return nil, &models.DestinationUnresolvableError{Host: host, Err: errors.New("no addresses found")}
		}
		addr = addrs[0]
	}

	addr = addr.Unmap()
	if !addr.IsValid() || addr.IsUnspecified() {
		return nil, &models.DestinationUnresolvableError{Host: host, Err: errors.New("not a usable address")}
	}

	return &models.Destination{
		Host:   host,
		Addr:   addr,
		Port:   port,
		Family: models.FamilyOf(addr),
	}, nil
}
