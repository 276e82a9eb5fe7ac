// Package sweep drives the credential sweep: it walks the configured service
// inventory in document order, runs every candidate credential through the
// matching probe, and collects the positives as ordered findings.
package sweep

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/vflame6/credsweep/config"
	"github.com/vflame6/credsweep/sweep/probes"
	"github.com/vflame6/credsweep/utils"
)

// Finding is one confirmed working credential. Username is omitted from JSON
// output for password-only services.
type Finding struct {
	Service  probes.ServiceType `json:"service"`
	Host     string             `json:"host"`
	Port     int                `json:"port"`
	Username string             `json:"username,omitempty"`
	Password string             `json:"password"`
}

// String renders the finding in the classic success-line format:
// [postgresql] db.local:5432 [postgres] [postgres]
func (f Finding) String() string {
	addr := net.JoinHostPort(f.Host, strconv.Itoa(f.Port))
	return fmt.Sprintf("[%s] %s [%s] [%s]", f.Service, addr, f.Username, f.Password)
}

// EventSink receives sweep progress events. The engine never logs on its
// own; the CLI wires a logging sink, tests wire recorders.
type EventSink interface {
	OnServiceStart(t probes.ServiceType, host string, port int)
	OnUnsupported(t probes.ServiceType)
	OnAttempt(t probes.ServiceType, host string, port int, cred probes.Credential)
	OnFinding(f Finding)
}

type nopSink struct{}

func (nopSink) OnServiceStart(probes.ServiceType, string, int)               {}
func (nopSink) OnUnsupported(probes.ServiceType)                             {}
func (nopSink) OnAttempt(probes.ServiceType, string, int, probes.Credential) {}
func (nopSink) OnFinding(Finding)                                            {}

// Options configures an Engine.
type Options struct {
	// Timeout bounds a single attempt. Zero falls back to the config value,
	// which itself defaults to config.DefaultTimeout.
	Timeout time.Duration
	Dialer  *utils.Dialer
	Sink    EventSink
}

// Engine runs the sweep over one parsed configuration. Engines are stateless
// between runs: Run can be called repeatedly and yields the same findings
// for the same reachable state.
type Engine struct {
	cfg  *config.Config
	opts Options
	sink EventSink

	// resolve is swapped in tests to inject scripted probes.
	resolve func(probes.ServiceType) (probes.Probe, bool)
}

// NewEngine builds an Engine over a parsed configuration.
func NewEngine(cfg *config.Config, opts Options) *Engine {
	sink := opts.Sink
	if sink == nil {
		sink = nopSink{}
	}
	return &Engine{
		cfg:     cfg,
		opts:    opts,
		sink:    sink,
		resolve: probes.Resolve,
	}
}

// Run validates the configuration and probes every service entry in document
// order, every candidate credential in list order. All successes are
// recorded; there is no early exit on a hit, so the result is the full
// instance-by-credential product in evaluation order.
//
// A cancelled context stops the sweep between attempts and returns the
// findings collected so far along with the context error.
func (e *Engine) Run(ctx context.Context) ([]Finding, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	timeout := e.opts.Timeout
	if timeout <= 0 {
		timeout = e.cfg.Timeout
	}
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	var findings []Finding

	for i := range e.cfg.Services {
		svc := &e.cfg.Services[i]

		if err := ctx.Err(); err != nil {
			return findings, err
		}

		probe, ok := e.resolve(svc.Type)
		if !ok {
			e.sink.OnUnsupported(svc.Type)
			continue
		}

		e.sink.OnServiceStart(svc.Type, svc.Host, svc.Port)
		instance := svc.Instance()

		for _, cred := range svc.CredentialList(probe.Mode) {
			if err := ctx.Err(); err != nil {
				return findings, err
			}

			e.sink.OnAttempt(svc.Type, svc.Host, svc.Port, cred)

			if e.attempt(ctx, timeout, probe, instance, cred) {
				f := Finding{
					Service:  svc.Type,
					Host:     svc.Host,
					Port:     svc.Port,
					Username: cred.Username,
					Password: cred.Password,
				}
				findings = append(findings, f)
				e.sink.OnFinding(f)
			}
		}
	}

	return findings, nil
}

// attempt runs one probe attempt under its deadline. The probe runs in its
// own goroutine so a driver that ignores cancellation cannot stall the
// sweep: when the deadline passes the attempt resolves to false and the
// probe is abandoned to finish on its own.
func (e *Engine) attempt(ctx context.Context, timeout time.Duration, probe probes.Probe, instance *probes.Instance, cred probes.Credential) bool {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan bool, 1)
	go func() {
		done <- probe.Attempt(attemptCtx, e.opts.Dialer, timeout, instance, &cred)
	}()

	select {
	case ok := <-done:
		return ok
	case <-attemptCtx.Done():
		return false
	}
}
