package wol

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/fgeck/wakeonwan/internal/models"
	"golang.org/x/net/ipv6"
)

// Conn is the subset of net.PacketConn used to send magic packets.
type Conn interface {
	WriteTo(b []byte, addr net.Addr) (int, error)
	LocalAddr() net.Addr
	Close() error
}

// Opener opens a datagram socket suitable for a destination.
type Opener interface {
	Open(ctx context.Context, dest models.Destination) (Conn, error)
}

// UDPOpener opens unconnected UDP sockets bound to the wildcard address of
// the destination family.
type UDPOpener struct{}

// Open opens the socket. IPv6 multicast destinations get a hop limit
// matching their scope. The net package already enables SO_BROADCAST on
// every datagram socket, which covers IPv4 broadcast destinations.
func (UDPOpener) Open(ctx context.Context, dest models.Destination) (Conn, error) {
	var lc net.ListenConfig

	pc, err := lc.ListenPacket(ctx, dest.Family.Network(), dest.Family.Unspecified())
	if err != nil {
		return nil, err
	}

	if dest.Multicast() {
		if err := configureMulticast(ipv6.NewPacketConn(pc), dest); err != nil {
			_ = pc.Close()
			return nil, err
		}
	}

	return pc, nil
}

func configureMulticast(p *ipv6.PacketConn, dest models.Destination) error {
	hopLimit := 64
	if dest.Addr.IsLinkLocalMulticast() || dest.Addr.IsInterfaceLocalMulticast() {
		hopLimit = 1
	}
	if err := p.SetMulticastHopLimit(hopLimit); err != nil {
		return fmt.Errorf("failed to set multicast hop limit: %w", err)
	}

	zone := dest.Addr.Zone()
	if zone == "" {
		return nil
	}

	ifi, err := interfaceByZone(zone)
	if err != nil {
		return fmt.Errorf("failed to find interface %q: %w", zone, err)
	}
	if err := p.SetMulticastInterface(ifi); err != nil {
		return fmt.Errorf("failed to set multicast interface %s: %w", ifi.Name, err)
	}

	return nil
}

// interfaceByZone accepts both interface names and numeric zone indexes.
func interfaceByZone(zone string) (*net.Interface, error) {
	if idx, err := strconv.Atoi(zone); err == nil {
		return net.InterfaceByIndex(idx)
	}
	return net.InterfaceByName(zone)
}
