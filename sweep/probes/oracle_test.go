package probes

import (
	"context"
	"testing"
	"time"
)

// TestAttemptOracle_DialFailure verifies that a refused connection collapses
// to a failed attempt.
func TestAttemptOracle_DialFailure(t *testing.T) {
	instance := newTestInstance(TypeOracle, 19956)
	instance.ServiceName = "XEPDB1"
	ok := AttemptOracle(context.Background(), newTestDialer(t), 500*time.Millisecond,
		instance, &Credential{Username: "system", Password: "manager"})
	if ok {
		t.Error("attempt should be false on dial failure")
	}
}
