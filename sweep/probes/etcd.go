package probes

import (
	"context"
	"net"
	"time"

	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
	etcd "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// The etcd client logs through zap on its own; route that to /dev/null so
// probe noise never reaches the terminal.
var etcdLoggerCfg = zap.Config{
	Encoding:         "console",
	Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
	OutputPaths:      []string{"/dev/null"},
	ErrorOutputPaths: []string{"/dev/null"},
}

var etcdLogger, _ = etcdLoggerCfg.Build()

// AttemptEtcd is an implementation of AttemptFunc for etcd v3.
// Authenticate validates the user against the auth store; servers with auth
// disabled reject the call, which counts as a failed attempt.
func AttemptEtcd(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	cfg := etcd.Config{
		Logger:      etcdLogger,
		Endpoints:   []string{instance.Addr()},
		DialTimeout: timeout,
		DialOptions: []grpc.DialOption{
			grpc.WithBlock(),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithContextDialer(func(ctx context.Context, addr string) (net.Conn, error) {
				return dialer.DialContext(ctx, "tcp", addr)
			}),
		},
	}
	if instance.TLS {
		cfg.TLS = utils.GetTLSConfig()
	}

	client, err := etcd.New(cfg)
	if err != nil {
		logger.Debugf("etcd connect %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = client.Close() }()

	if _, err := client.Authenticate(ctx, credential.Username, credential.Password); err != nil {
		logger.Debugf("etcd %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
