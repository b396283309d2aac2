// Package config provides command-line configuration parsing.
package config

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"

	"github.com/fgeck/wakeonwan/internal/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names shared by RegisterFlags and the parser.
const (
	KeyURI    = "uri"
	KeyPort   = "port"
	KeyDryRun = "dry-run"
)

// RegisterFlags defines the destination and dispatch flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyURI, "i", models.DefaultURI, "destination URI or address")
	fs.Uint16P(KeyPort, "p", models.DefaultPort, "destination UDP port")
	fs.BoolP(KeyDryRun, "D", false, "build and report packets without sending them")
}

// Parser handles configuration parsing.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	v := viper.New()
	v.SetDefault(KeyURI, models.DefaultURI)
	v.SetDefault(KeyPort, models.DefaultPort)
	v.SetDefault(KeyDryRun, false)
	return &Parser{v: v}
}

// BindFlags binds a flag set registered with RegisterFlags.
func (p *Parser) BindFlags(fs *pflag.FlagSet) error {
	if err := p.v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Load builds the run configuration for the given MAC address arguments.
func (p *Parser) Load(macs []string) (*models.WakeConfig, error) {
	cfg := &models.WakeConfig{
		URI:          strings.TrimSpace(p.v.GetString(KeyURI)),
		Port:         p.v.GetUint16(KeyPort),
		MACAddresses: macs,
		DryRun:       p.v.GetBool(KeyDryRun),
	}

	if cfg.URI == "" {
		cfg.URI = models.DefaultURI
	}

	host, err := HostFromURI(cfg.URI)
	if err != nil {
		return nil, err
	}
	cfg.Host = host

	return cfg, nil
}

// HostFromURI extracts the host component of a destination. It accepts bare
// IPv4 and IPv6 literals, bracketed IPv6 literals with an optional zone,
// hostnames, host:port pairs and full URLs. Scheme, credentials, port and
// path are discarded.
func HostFromURI(uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", fmt.Errorf("uri is empty")
	}

	// Unbracketed IPv6 literals do not survive URL parsing.
	if addr, err := netip.ParseAddr(uri); err == nil {
		return addr.String(), nil
	}

	authority := uri
	if i := strings.Index(authority, "://"); i >= 0 {
		authority = authority[i+len("://"):]
	}
	if i := strings.IndexAny(authority, "/?#"); i >= 0 {
		authority = authority[:i]
	}
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		authority = authority[i+1:]
	}

	// url.Parse insists on %25 before a zone, users rarely write it.
	if strings.HasPrefix(authority, "[") {
		return bracketedHost(uri, authority)
	}

	u, err := url.Parse("//" + authority)
	if err != nil {
		return "", fmt.Errorf("parsing uri %q: %w", uri, err)
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("uri %q has no hostname", uri)
	}

	return host, nil
}

// bracketedHost returns the IPv6 literal of an authority like [fe80::1%eth0]:9.
// The zone may be written raw or escaped as %25.
func bracketedHost(uri, authority string) (string, error) {
	end := strings.Index(authority, "]")
	if end < 0 {
		return "", fmt.Errorf("uri %q has an unterminated IPv6 literal", uri)
	}

	host := authority[1:end]
	if unescaped, err := url.PathUnescape(host); err == nil {
		host = unescaped
	}

	addr, err := netip.ParseAddr(host)
	if err != nil || !addr.Is6() {
		return "", fmt.Errorf("uri %q has an invalid IPv6 literal", uri)
	}

	return addr.String(), nil
}

// Validate performs validation on the loaded configuration.
func Validate(cfg *models.WakeConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.Host == "" {
		return fmt.Errorf("destination host is required")
	}

	if cfg.Port == 0 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if len(cfg.MACAddresses) == 0 {
		return fmt.Errorf("at least one MAC address is required")
	}

	return nil
}
