package wol

import (
	"fmt"

	"github.com/fgeck/wakeonwan/internal/models"
	"github.com/mdlayher/wol"
)

// MagicPacketSize is the length of a magic packet without a SecureOn password.
const MagicPacketSize = 6 + 16*6

// BuildMagicPacket returns the magic packet for mac: six 0xFF bytes followed
// by the address repeated sixteen times.
func BuildMagicPacket(mac models.MACAddress) ([]byte, error) {
	p := &wol.MagicPacket{Target: mac.HardwareAddr()}

	b, err := p.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to build magic packet for %s: %w", mac, err)
	}
	if len(b) != MagicPacketSize {
		return nil, fmt.Errorf("magic packet for %s has %d bytes, expected %d", mac, len(b), MagicPacketSize)
	}

	return b, nil
}
