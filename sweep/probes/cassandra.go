package probes

import (
	"context"
	"time"

	"github.com/gocql/gocql"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptCassandra is an implementation of AttemptFunc for Apache Cassandra
// and ScyllaDB. A session against the single configured host is enough to
// prove the credentials; no keyspace is selected unless one is configured.
func AttemptCassandra(_ context.Context, _ *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	cluster := gocql.NewCluster(instance.Host)
	cluster.Port = instance.Port
	cluster.Keyspace = instance.Database
	cluster.ProtoVersion = 4
	cluster.ConnectTimeout = timeout
	cluster.Timeout = timeout
	cluster.NumConns = 1
	cluster.DisableInitialHostLookup = true
	cluster.Authenticator = gocql.PasswordAuthenticator{
		Username: credential.Username,
		Password: credential.Password,
	}
	if instance.TLS {
		cluster.SslOpts = &gocql.SslOptions{
			Config:                 utils.GetTLSConfig(),
			EnableHostVerification: false,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		logger.Debugf("cassandra %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	session.Close()
	return true
}
