package probes

import (
	"context"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptLDAP is an implementation of AttemptFunc for LDAP simple bind.
// Username is the full bind DN. Plain LDAP on 389, LDAPS on 636 with the
// TLS flag set.
func AttemptLDAP(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	var netConn net.Conn
	var err error

	if instance.TLS {
		netConn, err = dialer.DialTLSContext(ctx, "tcp", instance.Addr(), nil)
	} else {
		netConn, err = dialer.DialContext(ctx, "tcp", instance.Addr())
	}
	if err != nil {
		logger.Debugf("ldap dial %s: %v", instance.Addr(), err)
		return false
	}

	conn := ldap.NewConn(netConn, instance.TLS)
	conn.Start()
	defer func() { _ = conn.Close() }()

	// Unblock a hanging Bind when the attempt is cancelled.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	conn.SetTimeout(timeout)

	if err := conn.Bind(credential.Username, credential.Password); err != nil {
		logger.Debugf("ldap %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
