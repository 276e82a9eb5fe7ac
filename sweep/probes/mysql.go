package probes

import (
	"context"
	"database/sql"
	"io"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

func init() {
	// The driver logs unexpected server behavior to stderr on its own,
	// which would corrupt quiet/JSON output.
	_ = mysql.SetLogger(log.New(io.Discard, "", 0))
}

// AttemptMySQL is an implementation of AttemptFunc for MySQL and MariaDB.
// The driver's only dial hook is a process-global registry, so connections
// go out directly with the driver's own timeouts.
func AttemptMySQL(ctx context.Context, _ *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	cfg := mysql.NewConfig()
	cfg.User = credential.Username
	cfg.Passwd = credential.Password
	cfg.Net = "tcp"
	cfg.Addr = instance.Addr()
	cfg.DBName = instance.Database
	cfg.Timeout = timeout
	cfg.ReadTimeout = timeout
	cfg.WriteTimeout = timeout
	if instance.TLS {
		cfg.TLSConfig = "skip-verify"
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		logger.Debugf("mysql connector for %s: %v", instance.Addr(), err)
		return false
	}

	db := sql.OpenDB(connector)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		logger.Debugf("mysql %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
