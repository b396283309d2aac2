// Package macaddr parses MAC address strings.
package macaddr

import (
	"encoding/hex"

	"github.com/fgeck/wakeonwan/internal/models"
)

const (
	plainLen     = 12 // 001122334455
	delimitedLen = 17 // 00:11:22:33:44:55
)

// Parse converts s into a MACAddress. Accepted forms are six pairs of hex
// digits separated by a single consistent ':' or '-', or twelve contiguous
// hex digits. Case is ignored.
func Parse(s string) (models.MACAddress, error) {
	var digits []byte

	switch len(s) {
	case plainLen:
		digits = []byte(s)
	case delimitedLen:
		sep := s[2]
		if sep != ':' && sep != '-' {
			return models.MACAddress{}, invalid(s, "expected ':' or '-' between octets")
		}
		digits = make([]byte, 0, plainLen)
		for i := 0; i < len(s); i++ {
			if i%3 == 2 {
				if s[i] != sep {
					return models.MACAddress{}, invalid(s, "mixed or misplaced delimiters")
				}
				continue
			}
			digits = append(digits, s[i])
		}
	default:
		return models.MACAddress{}, invalid(s, "expected 12 hex digits")
	}

	var mac models.MACAddress
	if _, err := hex.Decode(mac[:], digits); err != nil {
		return models.MACAddress{}, invalid(s, "non-hex characters")
	}

	return mac, nil
}

func invalid(s, reason string) error {
	return &models.InvalidMACAddressError{Input: s, Reason: reason}
}
