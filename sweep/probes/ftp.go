package probes

import (
	"context"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptFTP is an implementation of AttemptFunc for FTP and FTPS
// (explicit TLS when the TLS flag is set).
func AttemptFTP(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	opts := []ftp.DialOption{
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(timeout),
		ftp.DialWithDialFunc(dialer.Dial),
	}
	if instance.TLS {
		opts = append(opts, ftp.DialWithExplicitTLS(utils.GetTLSConfig()))
	}

	conn, err := ftp.Dial(instance.Addr(), opts...)
	if err != nil {
		logger.Debugf("ftp dial %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = conn.Quit() }()

	if err := conn.Login(credential.Username, credential.Password); err != nil {
		logger.Debugf("ftp %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	return true
}
