package probes

import (
	"context"
	"database/sql"
	"net/url"
	"strconv"
	"time"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptMSSQL is an implementation of AttemptFunc for Microsoft SQL Server.
func AttemptMSSQL(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	database := instance.Database
	if database == "" {
		database = "master"
	}
	secs := strconv.Itoa(int(timeout.Seconds()))

	query := url.Values{}
	query.Set("database", database)
	query.Set("dial timeout", secs)
	query.Set("connection timeout", secs)
	if instance.TLS {
		query.Set("encrypt", "true")
		query.Set("TrustServerCertificate", "true")
	} else {
		query.Set("encrypt", "disable")
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(credential.Username, credential.Password),
		Host:     instance.Addr(),
		RawQuery: query.Encode(),
	}

	connector, err := mssql.NewConnector(u.String())
	if err != nil {
		logger.Debugf("mssql connector for %s: %v", instance.Addr(), err)
		return false
	}
	// utils.Dialer satisfies mssql.Dialer, routing TDS through the proxy
	connector.Dialer = dialer

	db := sql.OpenDB(connector)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		logger.Debugf("mssql %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
