package probes

import (
	"context"
	"testing"
	"time"
)

// TestAttemptRedis_DialFailure verifies that a refused connection collapses
// to a failed attempt. Redis authenticates with a bare password, so the
// credential carries no username.
func TestAttemptRedis_DialFailure(t *testing.T) {
	instance := newTestInstance(TypeRedis, 19953)
	ok := AttemptRedis(context.Background(), newTestDialer(t), 500*time.Millisecond,
		instance, &Credential{Password: "foobared"})
	if ok {
		t.Error("attempt should be false on dial failure")
	}
}

func TestAttemptRedis_EmptyPasswordDialFailure(t *testing.T) {
	instance := newTestInstance(TypeRedis, 19953)
	ok := AttemptRedis(context.Background(), newTestDialer(t), 500*time.Millisecond,
		instance, &Credential{})
	if ok {
		t.Error("attempt should be false on dial failure")
	}
}
