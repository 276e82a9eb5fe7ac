package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vflame6/credsweep/sweep/probes"
)

func parseString(t *testing.T, doc string) *Config {
	t.Helper()
	cfg, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg
}

// --- Parse tests ---

func TestParse_DocumentOrder(t *testing.T) {
	cfg := parseString(t, `
mysql:
  host: db1.local
  default_credentials:
    - username: root
      password: ""
postgresql:
  host: db2.local
  default_credentials:
    - username: postgres
      password: postgres
redis:
  host: cache.local
  default_passwords:
    - ""
`)

	want := []probes.ServiceType{probes.TypeMySQL, probes.TypePostgres, probes.TypeRedis}
	if len(cfg.Services) != len(want) {
		t.Fatalf("services = %d, want %d", len(cfg.Services), len(want))
	}
	for i, typ := range want {
		if cfg.Services[i].Type != typ {
			t.Errorf("services[%d].Type = %q, want %q", i, cfg.Services[i].Type, typ)
		}
	}
}

func TestParse_DuplicateEntriesKept(t *testing.T) {
	cfg := parseString(t, `
postgresql:
  host: db1.local
  default_credentials:
    - username: postgres
      password: postgres
postgresql:
  host: db2.local
  default_credentials:
    - username: postgres
      password: postgres
`)

	if len(cfg.Services) != 2 {
		t.Fatalf("services = %d, want 2 (one per document entry)", len(cfg.Services))
	}
	if cfg.Services[0].Host != "db1.local" || cfg.Services[1].Host != "db2.local" {
		t.Errorf("hosts = %q, %q; want db1.local, db2.local",
			cfg.Services[0].Host, cfg.Services[1].Host)
	}
}

func TestParse_PortDefaulting(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPort int
	}{
		{"postgresql default", "postgresql:\n  host: db.local\n", 5432},
		{"mysql default", "mysql:\n  host: db.local\n", 3306},
		{"mongodb default", "mongodb:\n  host: db.local\n", 27017},
		{"explicit port kept", "postgresql:\n  host: db.local\n  port: 6543\n", 6543},
		{"unknown type no default", "memcached:\n  host: cache.local\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parseString(t, tt.doc)
			if len(cfg.Services) != 1 {
				t.Fatalf("services = %d, want 1", len(cfg.Services))
			}
			if cfg.Services[0].Port != tt.wantPort {
				t.Errorf("port = %d, want %d", cfg.Services[0].Port, tt.wantPort)
			}
		})
	}
}

func TestParse_ServiceFields(t *testing.T) {
	cfg := parseString(t, `
oracle:
  host: ora.local
  port: 1522
  service_name: XEPDB1
  tls: true
  default_credentials:
    - username: system
      password: manager
    - username: scott
      password: tiger
`)

	if len(cfg.Services) != 1 {
		t.Fatalf("services = %d, want 1", len(cfg.Services))
	}
	s := cfg.Services[0]
	if s.Host != "ora.local" || s.Port != 1522 || s.ServiceName != "XEPDB1" || !s.TLS {
		t.Errorf("unexpected service fields: %+v", s)
	}
	if len(s.Credentials) != 2 {
		t.Fatalf("credentials = %d, want 2", len(s.Credentials))
	}
	if s.Credentials[0].Username != "system" || s.Credentials[0].Password != "manager" {
		t.Errorf("credentials[0] = %s:%s, want system:manager",
			s.Credentials[0].Username, s.Credentials[0].Password)
	}
	if s.Credentials[1].Username != "scott" || s.Credentials[1].Password != "tiger" {
		t.Errorf("credentials[1] = %s:%s, want scott:tiger",
			s.Credentials[1].Username, s.Credentials[1].Password)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg := parseString(t, "")
	if len(cfg.Services) != 0 {
		t.Errorf("services = %d, want 0", len(cfg.Services))
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestParse_TopLevelNotMapping(t *testing.T) {
	_, err := Parse(strings.NewReader("- postgresql\n- mysql\n"))
	if err == nil {
		t.Error("expected error for sequence at top level")
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("postgresql:\n  host: [unclosed\n"))
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

// --- timeout tests ---

func TestParse_Timeout(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    time.Duration
		wantErr bool
	}{
		{"duration string", "timeout: 5s\n", 5 * time.Second, false},
		{"subsecond duration", "timeout: 500ms\n", 500 * time.Millisecond, false},
		{"bare seconds", "timeout: 7\n", 7 * time.Second, false},
		{"unset falls back", "postgresql:\n  host: db.local\n", DefaultTimeout, false},
		{"garbage", "timeout: soon\n", 0, true},
		{"negative duration", "timeout: -3s\n", 0, true},
		{"zero seconds", "timeout: 0\n", 0, true},
		{"mapping value", "timeout:\n  seconds: 3\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(strings.NewReader(tt.doc))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Timeout != tt.want {
				t.Errorf("timeout = %v, want %v", cfg.Timeout, tt.want)
			}
		})
	}
}

// --- Validate tests ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			"valid user-pass entry",
			"postgresql:\n  host: db.local\n  default_credentials:\n    - username: postgres\n      password: postgres\n",
			"",
		},
		{
			"valid password-only entry",
			"redis:\n  host: cache.local\n  default_passwords:\n    - \"\"\n    - foobared\n",
			"",
		},
		{
			"unknown type only needs host",
			"memcached:\n  host: cache.local\n",
			"",
		},
		{
			"missing host",
			"postgresql:\n  default_credentials:\n    - username: postgres\n      password: postgres\n",
			"missing required field host",
		},
		{
			"missing host on unknown type",
			"memcached:\n  port: 11211\n",
			"missing required field host",
		},
		{
			"port out of range",
			"postgresql:\n  host: db.local\n  port: 70000\n  default_credentials:\n    - username: postgres\n      password: postgres\n",
			"invalid port",
		},
		{
			"no credentials",
			"postgresql:\n  host: db.local\n",
			"no default_credentials",
		},
		{
			"no passwords",
			"redis:\n  host: cache.local\n",
			"no default_passwords",
		},
		{
			"credentials on password-only type",
			"redis:\n  host: cache.local\n  default_credentials:\n    - username: admin\n      password: admin\n",
			"takes default_passwords",
		},
		{
			"passwords on user-pass type",
			"mysql:\n  host: db.local\n  default_passwords:\n    - root\n",
			"takes default_credentials",
		},
		{
			"firebird requires database",
			"firebird:\n  host: fb.local\n  default_credentials:\n    - username: sysdba\n      password: masterkey\n",
			"missing required field database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parseString(t, tt.doc)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_StopsAtFirstInvalid(t *testing.T) {
	cfg := parseString(t, `
postgresql:
  default_credentials:
    - username: postgres
      password: postgres
mysql:
  host: db.local
  port: -1
`)

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "postgresql") {
		t.Errorf("error = %q, want the first invalid entry (postgresql) reported", err)
	}
}

// --- ApplyBuiltinCredentials tests ---

func TestApplyBuiltinCredentials_FillsEmptyLists(t *testing.T) {
	cfg := parseString(t, `
postgresql:
  host: db.local
redis:
  host: cache.local
`)

	cfg.ApplyBuiltinCredentials()

	if len(cfg.Services[0].Credentials) == 0 {
		t.Error("expected built-in credentials for postgresql")
	}
	if len(cfg.Services[1].Passwords) == 0 {
		t.Error("expected built-in passwords for redis")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config should validate after filling: %v", err)
	}
}

func TestApplyBuiltinCredentials_KeepsConfiguredLists(t *testing.T) {
	cfg := parseString(t, `
postgresql:
  host: db.local
  default_credentials:
    - username: audit
      password: audit
`)

	cfg.ApplyBuiltinCredentials()

	if len(cfg.Services[0].Credentials) != 1 {
		t.Fatalf("credentials = %d, want the configured list untouched", len(cfg.Services[0].Credentials))
	}
	if cfg.Services[0].Credentials[0].Username != "audit" {
		t.Errorf("username = %q, want audit", cfg.Services[0].Credentials[0].Username)
	}
}

func TestApplyBuiltinCredentials_SkipsUnknownTypes(t *testing.T) {
	cfg := parseString(t, "memcached:\n  host: cache.local\n")

	cfg.ApplyBuiltinCredentials()

	if len(cfg.Services[0].Credentials) != 0 || len(cfg.Services[0].Passwords) != 0 {
		t.Error("unknown service types must not get built-in candidates")
	}
}

// --- Load tests ---

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.yml")
	doc := "postgresql:\n  host: db.local\n  default_credentials:\n    - username: postgres\n      password: postgres\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Services) != 1 || cfg.Services[0].Host != "db.local" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

// --- Service helper tests ---

func TestServiceInstance(t *testing.T) {
	cfg := parseString(t, `
mssql:
  host: sql.local
  port: 1434
  database: master
  tls: true
  default_credentials:
    - username: sa
      password: ""
`)

	instance := cfg.Services[0].Instance()
	if instance.Type != probes.TypeMSSQL || instance.Host != "sql.local" ||
		instance.Port != 1434 || instance.Database != "master" || !instance.TLS {
		t.Errorf("unexpected instance: %+v", instance)
	}
}

func TestCredentialList_PasswordOnly(t *testing.T) {
	cfg := parseString(t, `
redis:
  host: cache.local
  default_passwords:
    - ""
    - foobared
`)

	creds := cfg.Services[0].CredentialList(probes.AuthPasswordOnly)
	if len(creds) != 2 {
		t.Fatalf("credentials = %d, want 2", len(creds))
	}
	for i, c := range creds {
		if c.Username != "" {
			t.Errorf("credentials[%d].Username = %q, want empty", i, c.Username)
		}
	}
	if creds[0].Password != "" || creds[1].Password != "foobared" {
		t.Errorf("passwords = %q, %q; want \"\", foobared", creds[0].Password, creds[1].Password)
	}
}

func TestCredentialList_UserPass(t *testing.T) {
	cfg := parseString(t, `
postgresql:
  host: db.local
  default_credentials:
    - username: postgres
      password: postgres
`)

	creds := cfg.Services[0].CredentialList(probes.AuthUserPass)
	if len(creds) != 1 || creds[0].Username != "postgres" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}
