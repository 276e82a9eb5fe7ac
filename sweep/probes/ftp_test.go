package probes

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// mockFTPServer starts a minimal FTP server that handles one login attempt.
func mockFTPServer(t *testing.T, passResp string) (host string, port int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	addr := ln.Addr().(*net.TCPAddr)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		_, _ = fmt.Fprintf(conn, "220 mock FTP ready\r\n")

		buf := make([]byte, 256)
		for {
			n, err := conn.Read(buf)
			if err != nil || n == 0 {
				return
			}
			line := string(buf[:n])
			switch {
			case strings.HasPrefix(line, "FEAT"):
				_, _ = fmt.Fprintf(conn, "500 unknown command\r\n")
			case strings.HasPrefix(line, "USER"):
				_, _ = fmt.Fprintf(conn, "331 password required\r\n")
			case strings.HasPrefix(line, "PASS"):
				_, _ = fmt.Fprintf(conn, "%s\r\n", passResp)
			case strings.HasPrefix(line, "TYPE"):
				_, _ = fmt.Fprintf(conn, "200 type set\r\n")
			case strings.HasPrefix(line, "QUIT"):
				_, _ = fmt.Fprintf(conn, "221 bye\r\n")
				return
			default:
				_, _ = fmt.Fprintf(conn, "500 unknown command\r\n")
			}
		}
	}()

	return "127.0.0.1", addr.Port
}

func TestAttemptFTP(t *testing.T) {
	tests := []struct {
		name     string
		passResp string
		want     bool
	}{
		{"valid credentials", "230 logged in", true},
		{"invalid credentials", "530 login incorrect", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port := mockFTPServer(t, tt.passResp)
			instance := &Instance{Type: TypeFTP, Host: host, Port: port}

			ok := AttemptFTP(context.Background(), newTestDialer(t), 3*time.Second,
				instance, &Credential{Username: "anonymous", Password: "anonymous"})
			if ok != tt.want {
				t.Errorf("attempt = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestAttemptFTP_DialFailure(t *testing.T) {
	instance := newTestInstance(TypeFTP, 19966)
	ok := AttemptFTP(context.Background(), newTestDialer(t), 500*time.Millisecond,
		instance, &Credential{Username: "anonymous", Password: "anonymous"})
	if ok {
		t.Error("attempt should be false on dial failure")
	}
}
