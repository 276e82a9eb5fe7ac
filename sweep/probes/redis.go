package probes

import (
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptRedis is an implementation of AttemptFunc for Redis (password-only).
// An empty password probes whether the server answers PING without AUTH at
// all; a non-empty password is sent as a legacy requirepass secret.
func AttemptRedis(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	opts := &redis.Options{
		Addr:     instance.Addr(),
		Password: credential.Password,
		DB:       0,

		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,

		// -1 disables retries; 0 would mean the client default of 3
		MaxRetries: -1,

		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	}
	if instance.TLS {
		opts.TLSConfig = utils.GetTLSConfig()
	}

	client := redis.NewClient(opts)
	defer func() { _ = client.Close() }()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Debugf("redis %s: %v", instance.Addr(), err)
		return false
	}
	return true
}
