package probes

import (
	"context"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptSNMP is an implementation of AttemptFunc for SNMP v2c community
// strings (password-only). A device that answers a sysDescr Get accepted the
// community; no answer means a wrong community or filtered SNMP, which is
// indistinguishable on UDP and counts as a failed attempt.
//
// SNMP uses UDP, so proxying does not apply to this probe.
func AttemptSNMP(_ context.Context, _ *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	g := &gosnmp.GoSNMP{
		Target:    instance.Host,
		Port:      uint16(instance.Port), //nolint:gosec // port fits in uint16 by construction
		Community: credential.Password,
		Version:   gosnmp.Version2c,
		Timeout:   timeout,
	}

	if err := g.Connect(); err != nil {
		logger.Debugf("snmp connect %s: %v", instance.Addr(), err)
		return false
	}
	defer func() { _ = g.Conn.Close() }()

	result, err := g.Get([]string{"1.3.6.1.2.1.1.1.0"}) // sysDescr
	if err != nil || len(result.Variables) == 0 {
		logger.Debugf("snmp %s: no response for community %q", instance.Addr(), credential.Password)
		return false
	}
	return true
}
