// Package config loads and validates the YAML service inventory.
//
// The document is a mapping: the reserved key "timeout" sets the per-attempt
// probe timeout, every other top-level key names a service type and describes
// one instance of it. Entries are kept in document order because the sweep
// probes them in exactly that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/vflame6/credsweep/sweep/probes"
	"github.com/vflame6/credsweep/wordlists"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout bounds a single probe attempt unless the configuration or
// the --timeout flag overrides it.
const DefaultTimeout = 3 * time.Second

// Config is the parsed service inventory.
type Config struct {
	Timeout  time.Duration
	Services []Service
}

// Service is one configured service instance, in document order.
type Service struct {
	Name        string // top-level key as written
	Type        probes.ServiceType
	Host        string
	Port        int
	Database    string
	ServiceName string
	TLS         bool
	Credentials []probes.Credential
	Passwords   []string
}

// serviceSpec is the YAML shape of a service entry.
type serviceSpec struct {
	Host        string           `yaml:"host"`
	Port        int              `yaml:"port"`
	Database    string           `yaml:"database"`
	ServiceName string           `yaml:"service_name"`
	TLS         bool             `yaml:"tls"`
	Credentials []credentialSpec `yaml:"default_credentials"`
	Passwords   []string         `yaml:"default_passwords"`
}

type credentialSpec struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Load reads and parses the configuration file. The path "-" reads from
// stdin.
func Load(path string) (*Config, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document. Service entries keep their
// document order; known service types get their registry default port when
// none is set.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	cfg := &Config{Timeout: DefaultTimeout}

	// Empty documents are a valid no-op sweep.
	if root.Kind == 0 || len(root.Content) == 0 {
		return cfg, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.New("top level must be a mapping of service entries")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode := doc.Content[i]
		valNode := doc.Content[i+1]

		if keyNode.Value == "timeout" {
			timeout, err := parseTimeout(valNode)
			if err != nil {
				return nil, err
			}
			cfg.Timeout = timeout
			continue
		}

		var spec serviceSpec
		if err := valNode.Decode(&spec); err != nil {
			return nil, fmt.Errorf("service %s: %w", keyNode.Value, err)
		}

		svc := Service{
			Name:        keyNode.Value,
			Type:        probes.ServiceType(keyNode.Value),
			Host:        spec.Host,
			Port:        spec.Port,
			Database:    spec.Database,
			ServiceName: spec.ServiceName,
			TLS:         spec.TLS,
			Passwords:   spec.Passwords,
		}
		for _, c := range spec.Credentials {
			svc.Credentials = append(svc.Credentials, probes.Credential{
				Username: c.Username,
				Password: c.Password,
			})
		}
		if svc.Port == 0 {
			if probe, ok := probes.Resolve(svc.Type); ok {
				svc.Port = probe.DefaultPort
			}
		}

		cfg.Services = append(cfg.Services, svc)
	}

	return cfg, nil
}

// parseTimeout accepts a Go duration string ("3s", "500ms") or a bare
// integer number of seconds.
func parseTimeout(node *yaml.Node) (time.Duration, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, errors.New("invalid timeout: must be a duration or seconds")
	}
	raw := node.Value

	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("invalid timeout %q: must be positive", raw)
		}
		return time.Duration(secs) * time.Second, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", raw)
	}
	return timeout, nil
}

// Validate checks every service entry and fails on the first malformed one,
// before any probe runs. Unknown service types only need a host; the sweep
// skips them with a diagnostic instead of failing.
func (c *Config) Validate() error {
	for i := range c.Services {
		s := &c.Services[i]

		if s.Host == "" {
			return fmt.Errorf("service %s: missing required field host", s.Name)
		}

		probe, known := probes.Resolve(s.Type)
		if !known {
			continue
		}

		if s.Port < 1 || s.Port > 65535 {
			return fmt.Errorf("service %s: invalid port %d", s.Name, s.Port)
		}

		switch probe.Mode {
		case probes.AuthPasswordOnly:
			if len(s.Credentials) > 0 {
				return fmt.Errorf("service %s: takes default_passwords, not default_credentials", s.Name)
			}
			if len(s.Passwords) == 0 {
				return fmt.Errorf("service %s: no default_passwords configured", s.Name)
			}
		default:
			if len(s.Passwords) > 0 {
				return fmt.Errorf("service %s: takes default_credentials, not default_passwords", s.Name)
			}
			if len(s.Credentials) == 0 {
				return fmt.Errorf("service %s: no default_credentials configured", s.Name)
			}
		}

		if s.Type == probes.TypeFirebird && s.Database == "" {
			return fmt.Errorf("service %s: missing required field database", s.Name)
		}
	}
	return nil
}

// ApplyBuiltinCredentials fills empty candidate lists from the built-in
// default tables. Lists present in the configuration always win.
func (c *Config) ApplyBuiltinCredentials() {
	for i := range c.Services {
		s := &c.Services[i]

		probe, ok := probes.Resolve(s.Type)
		if !ok {
			continue
		}

		switch probe.Mode {
		case probes.AuthPasswordOnly:
			if len(s.Passwords) == 0 {
				s.Passwords = wordlists.PasswordsFor(s.Type)
			}
		default:
			if len(s.Credentials) == 0 {
				s.Credentials = wordlists.CredentialsFor(s.Type)
			}
		}
	}
}

// Instance builds the probe target for this service entry.
func (s *Service) Instance() *probes.Instance {
	return &probes.Instance{
		Type:        s.Type,
		Host:        s.Host,
		Port:        s.Port,
		Database:    s.Database,
		ServiceName: s.ServiceName,
		TLS:         s.TLS,
	}
}

// CredentialList shapes the candidate list for the probe's auth mode:
// password-only services get username-less credentials built from Passwords,
// everything else uses Credentials as configured.
func (s *Service) CredentialList(mode probes.AuthMode) []probes.Credential {
	if mode == probes.AuthPasswordOnly {
		creds := make([]probes.Credential, 0, len(s.Passwords))
		for _, password := range s.Passwords {
			creds = append(creds, probes.Credential{Password: password})
		}
		return creds
	}
	return s.Credentials
}
