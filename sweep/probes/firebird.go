package probes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/nakagami/firebirdsql" // register firebirdsql driver
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptFirebird is an implementation of AttemptFunc for Firebird.
// Firebird authenticates against a concrete database file, so Database is a
// required field for this type (enforced by configuration validation).
func AttemptFirebird(ctx context.Context, _ *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	dsn := fmt.Sprintf("%s:%s@%s/%s", credential.Username, credential.Password,
		instance.Addr(), instance.Database)

	db, err := sql.Open("firebirdsql", dsn)
	if err != nil {
		logger.Debugf("firebird dsn for %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(timeout)

	if err := db.PingContext(ctx); err != nil {
		logger.Debugf("firebird %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
