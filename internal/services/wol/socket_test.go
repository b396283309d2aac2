package wol

import (
	"context"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/fgeck/wakeonwan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/ipv6"
)

func listenLoopback(t *testing.T, network, address string) net.PacketConn {
	t.Helper()
	pc, err := net.ListenPacket(network, address)
	if err != nil {
		t.Skipf("cannot listen on %s %s: %v", network, address, err)
	}
	t.Cleanup(func() { _ = pc.Close() })
	return pc
}

func readDatagram(t *testing.T, pc net.PacketConn) []byte {
	t.Helper()
	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 512)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	return buf[:n]
}

func TestUDPOpener_IPv4Loopback(t *testing.T) {
	listener := listenLoopback(t, "udp4", "127.0.0.1:0")
	port := uint16(listener.LocalAddr().(*net.UDPAddr).Port)

	svc := New()
	report, err := svc.Wake(context.Background(), models.WakeRequest{
		Host:    "127.0.0.1",
		Port:    port,
		Targets: []models.MACAddress{macA, macB},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Failed())
	assert.NotEmpty(t, report.LocalAddr)

	for _, mac := range []models.MACAddress{macA, macB} {
		expected, err := BuildMagicPacket(mac)
		require.NoError(t, err)
		assert.Equal(t, expected, readDatagram(t, listener))
	}
}

func TestUDPOpener_IPv6Loopback(t *testing.T) {
	listener := listenLoopback(t, "udp6", "[::1]:0")
	port := uint16(listener.LocalAddr().(*net.UDPAddr).Port)

	svc := New()
	report, err := svc.Wake(context.Background(), models.WakeRequest{
		Host:    "::1",
		Port:    port,
		Targets: []models.MACAddress{macA},
	})

	require.NoError(t, err)
	assert.Equal(t, models.FamilyIPv6, report.Destination.Family)
	assert.Equal(t, 0, report.Failed())

	expected, err := BuildMagicPacket(macA)
	require.NoError(t, err)
	assert.Equal(t, expected, readDatagram(t, listener))
}

func loopbackInterface(t *testing.T) *net.Interface {
	t.Helper()
	ifaces, err := net.Interfaces()
	require.NoError(t, err)
	for i := range ifaces {
		if ifaces[i].Flags&net.FlagLoopback != 0 {
			return &ifaces[i]
		}
	}
	t.Skip("no loopback interface")
	return nil
}

func openMulticast(t *testing.T, addr string) *ipv6.PacketConn {
	t.Helper()
	if pc, err := net.ListenPacket("udp6", "[::1]:0"); err != nil {
		t.Skipf("IPv6 unavailable: %v", err)
	} else {
		_ = pc.Close()
	}

	dest := models.Destination{
		Host:   addr,
		Addr:   netip.MustParseAddr(addr),
		Port:   9,
		Family: models.FamilyIPv6,
	}
	require.True(t, dest.Multicast())

	conn, err := UDPOpener{}.Open(context.Background(), dest)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	pc, ok := conn.(net.PacketConn)
	require.True(t, ok)
	return ipv6.NewPacketConn(pc)
}

func TestUDPOpener_LinkLocalMulticast(t *testing.T) {
	lo := loopbackInterface(t)

	p := openMulticast(t, "ff02::1%"+lo.Name)

	hopLimit, err := p.MulticastHopLimit()
	require.NoError(t, err)
	assert.Equal(t, 1, hopLimit)

	ifi, err := p.MulticastInterface()
	require.NoError(t, err)
	require.NotNil(t, ifi)
	assert.Equal(t, lo.Name, ifi.Name)
}

func TestUDPOpener_GlobalMulticast(t *testing.T) {
	p := openMulticast(t, "ff0e::1")

	hopLimit, err := p.MulticastHopLimit()
	require.NoError(t, err)
	assert.Equal(t, 64, hopLimit)
}

func TestInterfaceByZone_Unknown(t *testing.T) {
	_, err := interfaceByZone("no-such-interface0")
	assert.Error(t, err)
}
