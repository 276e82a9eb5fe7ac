package probes

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	go_ora "github.com/sijms/go-ora/v2"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptOracle is an implementation of AttemptFunc for Oracle Database.
// ServiceName selects the database service, defaulting to ORCL. The driver
// dials on its own, so proxying is not available for this probe.
func AttemptOracle(ctx context.Context, _ *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	service := instance.ServiceName
	if service == "" {
		service = "ORCL"
	}

	urlOptions := map[string]string{
		"CONNECTION TIMEOUT": strconv.Itoa(int(timeout.Seconds())),
	}
	if instance.TLS {
		urlOptions["SSL"] = "true"
		urlOptions["SSL VERIFY"] = "false"
	}

	dsn := go_ora.BuildUrl(instance.Host, instance.Port, service,
		credential.Username, credential.Password, urlOptions)

	db, err := sql.Open("oracle", dsn)
	if err != nil {
		logger.Debugf("oracle dsn for %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(timeout)

	if err := db.PingContext(ctx); err != nil {
		logger.Debugf("oracle %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
