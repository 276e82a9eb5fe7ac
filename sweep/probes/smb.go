package probes

import (
	"context"
	"time"

	"github.com/hirochachacha/go-smb2"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptSMB is an implementation of AttemptFunc for SMB2/3 with NTLM
// authentication. Database carries an optional NT domain.
func AttemptSMB(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	conn, err := dialer.DialContext(ctx, "tcp", instance.Addr())
	if err != nil {
		logger.Debugf("smb dial %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetDeadline(time.Now().Add(timeout))

	d := &smb2.Dialer{
		Initiator: &smb2.NTLMInitiator{
			User:     credential.Username,
			Password: credential.Password,
			Domain:   instance.Database,
		},
	}

	session, err := d.DialContext(ctx, conn)
	if err != nil {
		logger.Debugf("smb %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	_ = session.Logoff()
	return true
}
