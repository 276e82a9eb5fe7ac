package probes

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	neo4jconfig "github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptNeo4j is an implementation of AttemptFunc for Neo4j over Bolt.
// bolt:// targets the single configured instance without routing;
// bolt+ssc:// accepts the self-signed certificates typical of internal
// deployments.
func AttemptNeo4j(ctx context.Context, _ *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	scheme := "bolt"
	if instance.TLS {
		scheme = "bolt+ssc"
	}
	target := fmt.Sprintf("%s://%s", scheme, instance.Addr())

	driver, err := neo4j.NewDriverWithContext(target,
		neo4j.BasicAuth(credential.Username, credential.Password, ""),
		func(c *neo4jconfig.Config) {
			c.SocketConnectTimeout = timeout
			c.ConnectionAcquisitionTimeout = timeout
		},
	)
	if err != nil {
		logger.Debugf("neo4j driver for %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = driver.Close(context.Background()) }()

	if err := driver.VerifyAuthentication(ctx, nil); err != nil {
		logger.Debugf("neo4j %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
