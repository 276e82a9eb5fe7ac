package probes

import (
	"context"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptClickHouse is an implementation of AttemptFunc for ClickHouse over
// the native protocol (port 9000, or 9440 with TLS).
func AttemptClickHouse(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	database := instance.Database
	if database == "" {
		database = "default"
	}

	opts := &clickhouse.Options{
		Addr: []string{instance.Addr()},
		Auth: clickhouse.Auth{
			Database: database,
			Username: credential.Username,
			Password: credential.Password,
		},
		DialTimeout: timeout,
		ReadTimeout: timeout,
		DialContext: func(ctx context.Context, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, "tcp", addr)
		},
	}
	if instance.TLS {
		opts.TLS = utils.GetTLSConfig()
	}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		logger.Debugf("clickhouse open %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = conn.Close() }()

	if err := conn.Ping(ctx); err != nil {
		logger.Debugf("clickhouse %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
