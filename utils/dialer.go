package utils

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/vflame6/credsweep/logger"
	"golang.org/x/net/proxy"
)

// Dialer establishes probe connections either directly or through a SOCKS5
// proxy, optionally binding outgoing connections to a named local interface.
// It satisfies the dial hooks of the database drivers used by the probes
// (pq.Dialer, mssql.Dialer, options.ContextDialer and plain dial funcs).
type Dialer struct {
	dialer  proxy.Dialer
	timeout time.Duration
}

// NewDialer builds a Dialer. proxyHost is a SOCKS5 address in IP:PORT form,
// proxyAuth is USERNAME:PASSWORD, iface is a local interface name to bind to.
// All three may be empty.
func NewDialer(proxyHost, proxyAuth, iface string, timeout time.Duration) (*Dialer, error) {
	base := &net.Dialer{Timeout: timeout}

	if iface != "" {
		ip, err := GetInterfaceIPv4(iface)
		if err != nil {
			return nil, err
		}
		base.LocalAddr = &net.TCPAddr{IP: ip}
		logger.Debugf("binding outgoing connections to %s (%s)", iface, ip)
	}

	var dialer proxy.Dialer = base

	if proxyHost != "" {
		logger.Debugf("trying to set up proxy: %s", proxyHost)

		var auth *proxy.Auth
		if proxyAuth != "" {
			userPass := strings.Split(proxyAuth, ":")
			if len(userPass) != 2 {
				return nil, errors.New("invalid proxy auth string, try USERNAME:PASSWORD")
			}
			auth = &proxy.Auth{
				User:     userPass[0],
				Password: userPass[1],
			}
		}

		d, err := proxy.SOCKS5("tcp", proxyHost, auth, base)
		if err != nil {
			return nil, err
		}
		dialer = d
	}

	return &Dialer{dialer: dialer, timeout: timeout}, nil
}

func (d *Dialer) Dial(network, addr string) (net.Conn, error) {
	return d.dialer.Dial(network, addr)
}

func (d *Dialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := d.dialer.(proxy.ContextDialer); ok {
		return cd.DialContext(ctx, network, addr)
	}
	return d.dialer.Dial(network, addr)
}

// DialTimeout dials with a specific timeout (implements pq.Dialer interface)
func (d *Dialer) DialTimeout(network, addr string, timeout time.Duration) (net.Conn, error) {
	if timeout == 0 {
		timeout = d.timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return d.DialContext(ctx, network, addr)
}

// DialTLSContext establishes a TLS connection with context support.
// A nil config uses the shared permissive TLS config with ServerName
// derived from addr.
func (d *Dialer) DialTLSContext(ctx context.Context, network, addr string, config *tls.Config) (net.Conn, error) {
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	if config == nil {
		config = GetTLSConfig()
	}

	if config.ServerName == "" {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		config = config.Clone()
		config.ServerName = host
	}

	tlsConn := tls.Client(conn, config)

	// Use context deadline if available, otherwise use timeout
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(d.timeout)
	}

	if err := tlsConn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, err
	}

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, err
	}

	if err := tlsConn.SetDeadline(time.Time{}); err != nil {
		tlsConn.Close()
		return nil, err
	}

	return tlsConn, nil
}

func (d *Dialer) Timeout() time.Duration {
	return d.timeout
}

// GetInterfaceIPv4 returns the first IPv4 address bound to the named network
// interface. For loopback interfaces ("lo", "lo0") loopback addresses are
// included; for all other interfaces they are skipped.
func GetInterfaceIPv4(name string) (net.IP, error) {
	if name == "" {
		return nil, fmt.Errorf("interface name is empty")
	}

	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, fmt.Errorf("interface %q not found: %w", name, err)
	}

	addrs, err := iface.Addrs()
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses for interface %q: %w", name, err)
	}

	isLoopbackIface := name == "lo" || name == "lo0"

	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}

		if ip == nil {
			continue
		}

		ipv4 := ip.To4()
		if ipv4 == nil {
			continue // skip non-IPv4
		}

		if ip.IsLoopback() && !isLoopbackIface {
			continue // skip loopback unless interface is lo/lo0
		}

		return ipv4, nil
	}

	return nil, fmt.Errorf("no IPv4 address found on interface %q", name)
}
