// Package models contains the data structures used throughout wakeonwan.
package models

import "net"

// MACAddress is a 6-byte hardware address.
type MACAddress [6]byte

// String renders the address in lower-case colon form.
func (m MACAddress) String() string {
	return m.HardwareAddr().String()
}

// HardwareAddr returns a copy of the address as a net.HardwareAddr.
func (m MACAddress) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, len(m))
	copy(hw, m[:])
	return hw
}
