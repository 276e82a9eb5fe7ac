package probes

import (
	"context"
	"time"

	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// AttemptMongoDB is an implementation of AttemptFunc for MongoDB.
// Ping succeeds against unauthenticated servers regardless of credentials,
// so the probe verifies access with ListDatabaseNames, which requires auth.
// An entry with an empty username probes for open anonymous access.
func AttemptMongoDB(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	opts := options.Client().
		SetHosts([]string{instance.Addr()}).
		SetDirect(true).
		SetTimeout(timeout).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetDialer(dialer)

	if instance.TLS {
		opts.SetTLSConfig(utils.GetTLSConfig())
	}

	if credential.Username != "" {
		auth := options.Credential{
			Username: credential.Username,
			Password: credential.Password,
		}
		if instance.Database != "" {
			auth.AuthSource = instance.Database
		}
		opts.SetAuth(auth)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Debugf("mongodb connect %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if _, err := client.ListDatabaseNames(ctx, bson.D{}); err != nil {
		logger.Debugf("mongodb %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
