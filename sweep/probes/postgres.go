package probes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptPostgres is an implementation of AttemptFunc for PostgreSQL.
// TLS is negotiated by the driver itself (sslmode), so the dialer always
// hands over a plain connection.
func AttemptPostgres(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	dbname := instance.Database
	if dbname == "" {
		dbname = "postgres"
	}
	sslmode := "disable"
	if instance.TLS {
		// require performs the TLS handshake without certificate verification
		sslmode = "require"
	}

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		instance.Host, instance.Port, credential.Username, credential.Password,
		dbname, sslmode, int(timeout.Seconds()),
	)

	connector, err := pq.NewConnector(connStr)
	if err != nil {
		logger.Debugf("postgres connector for %s: %v", instance.Addr(), err)
		return false
	}
	connector.Dialer(dialer)

	db := sql.OpenDB(connector)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		logger.Debugf("postgres %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
