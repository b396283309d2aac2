package models

import (
	"net"
	"net/netip"
)

// DefaultPort is the conventional Wake-on-LAN discard port.
const DefaultPort uint16 = 9

// DefaultURI is the IPv4 limited broadcast address.
const DefaultURI = "255.255.255.255"

// AddressFamily selects the socket family used for a destination.
type AddressFamily int

const (
	FamilyIPv4 AddressFamily = iota
	FamilyIPv6
)

// FamilyOf returns the family of a resolved address.
func FamilyOf(addr netip.Addr) AddressFamily {
	if addr.Is4() {
		return FamilyIPv4
	}
	return FamilyIPv6
}

func (f AddressFamily) String() string {
	if f == FamilyIPv4 {
		return "ipv4"
	}
	return "ipv6"
}

// Network returns the net package network name for the family.
func (f AddressFamily) Network() string {
	if f == FamilyIPv4 {
		return "udp4"
	}
	return "udp6"
}

// Unspecified returns the wildcard local address to bind for the family.
func (f AddressFamily) Unspecified() string {
	if f == FamilyIPv4 {
		return "0.0.0.0:0"
	}
	return "[::]:0"
}

// Destination is a resolved UDP endpoint.
type Destination struct {
	Host   string // as supplied by the user
	Addr   netip.Addr
	Port   uint16
	Family AddressFamily
}

// AddrPort returns the destination as a netip.AddrPort.
func (d Destination) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(d.Addr, d.Port)
}

// UDPAddr returns the destination as a *net.UDPAddr.
func (d Destination) UDPAddr() *net.UDPAddr {
	return net.UDPAddrFromAddrPort(d.AddrPort())
}

// Broadcast reports whether the socket must be allowed to broadcast.
// Any IPv4 address may be a subnet-directed broadcast address, so every
// IPv4 destination qualifies.
func (d Destination) Broadcast() bool {
	return d.Family == FamilyIPv4
}

// Multicast reports whether the destination is an IPv6 multicast group,
// the IPv6 stand-in for broadcast.
func (d Destination) Multicast() bool {
	return d.Family == FamilyIPv6 && d.Addr.IsMulticast()
}

func (d Destination) String() string {
	return d.AddrPort().String()
}
