package probes

import (
	"context"
	"net"
	"testing"
	"time"
)

// TestAttemptPostgres_DialFailure verifies that a refused connection collapses
// to a failed attempt instead of surfacing as anything else.
func TestAttemptPostgres_DialFailure(t *testing.T) {
	instance := newTestInstance(TypePostgres, 19951)
	ok := AttemptPostgres(context.Background(), newTestDialer(t), 500*time.Millisecond,
		instance, &Credential{Username: "postgres", Password: "postgres"})
	if ok {
		t.Error("attempt should be false on dial failure")
	}
}

// TestAttemptPostgres_ImmediateClose verifies that a server dropping the
// connection before the handshake is not treated as a hit.
func TestAttemptPostgres_ImmediateClose(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		_ = conn.Close()
	}()

	addr := ln.Addr().(*net.TCPAddr)
	instance := newTestInstance(TypePostgres, addr.Port)
	ok := AttemptPostgres(context.Background(), newTestDialer(t), 2*time.Second,
		instance, &Credential{Username: "postgres", Password: "postgres"})
	if ok {
		t.Error("attempt should be false when the server closes immediately")
	}
}
