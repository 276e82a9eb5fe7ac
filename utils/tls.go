package utils

import "crypto/tls"

// TLSConfig is the base client configuration shared by TLS-capable probes.
// Audited services routinely present self-signed or expired certificates,
// so verification is disabled.
var TLSConfig = &tls.Config{
	InsecureSkipVerify: true,
	MinVersion:         tls.VersionTLS10, // Allow older TLS for compatibility
}

// GetTLSConfig returns a clone of the base TLS config so each caller
// can safely mutate fields (e.g. ServerName) without racing other callers.
func GetTLSConfig() *tls.Config {
	return TLSConfig.Clone()
}
