package models

import "fmt"

// InvalidMACAddressError is returned for a malformed MAC address string.
type InvalidMACAddressError struct {
	Input  string
	Reason string
}

func (e *InvalidMACAddressError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid MAC address %q", e.Input)
	}
	return fmt.Sprintf("invalid MAC address %q: %s", e.Input, e.Reason)
}

// DestinationUnresolvableError is returned when the destination host has no
// usable address.
type DestinationUnresolvableError struct {
	Host string
	Err  error
}

func (e *DestinationUnresolvableError) Error() string {
	return fmt.Sprintf("resolving %s: %v", e.Host, e.Err)
}

func (e *DestinationUnresolvableError) Unwrap() error {
	return e.Err
}

// SocketSetupError is returned when the datagram socket cannot be opened.
type SocketSetupError struct {
	Family AddressFamily
	Err    error
}

func (e *SocketSetupError) Error() string {
	return fmt.Sprintf("opening %s socket: %v", e.Family, e.Err)
}

func (e *SocketSetupError) Unwrap() error {
	return e.Err
}

// SendError is recorded when a magic packet could not be transmitted.
type SendError struct {
	MAC         MACAddress
	Destination string
	Err         error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("sending magic packet to %s at %s: %v", e.MAC, e.Destination, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
