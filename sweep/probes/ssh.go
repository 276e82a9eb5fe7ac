package probes

import (
	"context"
	"time"

	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
	"golang.org/x/crypto/ssh"
)

// AttemptSSH is an implementation of AttemptFunc for SSH password
// authentication. The full algorithm set, including legacy ones, is offered
// so older appliances still negotiate.
func AttemptSSH(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	addr := instance.Addr()

	supported := ssh.SupportedAlgorithms()
	legacy := ssh.InsecureAlgorithms()

	config := &ssh.ClientConfig{
		User: credential.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(credential.Password),
		},
		Timeout:         timeout,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Config: ssh.Config{
			KeyExchanges: append(supported.KeyExchanges, legacy.KeyExchanges...),
			Ciphers:      append(supported.Ciphers, legacy.Ciphers...),
			MACs:         append(supported.MACs, legacy.MACs...),
		},
		HostKeyAlgorithms: append(supported.HostKeys, legacy.HostKeys...),
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		logger.Debugf("ssh dial %s: %v", addr, err)
		return false
	}

	// Bound the handshake; ClientConfig.Timeout only covers the TCP dial.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	sshConn, _, _, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		_ = conn.Close()
		logger.Debugf("ssh %s as %q: %v", addr, credential.Username, err)
		return false
	}

	_ = sshConn.Close()
	_ = conn.Close()
	return true
}
