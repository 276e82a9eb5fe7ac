// Package wordlists provides the built-in per-service default credential
// tables used by the --defaults flag. The lists are deliberately short:
// vendor defaults and the handful of weak pairs that ship on appliance
// images, not a cracking dictionary.
package wordlists

import "github.com/vflame6/credsweep/sweep/probes"

// DefaultCredentials are the built-in candidate pairs for username+password
// services. Order is significant: findings are reported in list order.
var DefaultCredentials = map[probes.ServiceType][]probes.Credential{
	probes.TypePostgres: {
		{Username: "postgres", Password: "postgres"},
		{Username: "postgres", Password: ""},
		{Username: "postgres", Password: "password"},
		{Username: "admin", Password: "admin"},
	},
	probes.TypeMySQL: {
		{Username: "root", Password: ""},
		{Username: "root", Password: "root"},
		{Username: "root", Password: "mysql"},
		{Username: "root", Password: "password"},
		{Username: "admin", Password: "admin"},
	},
	probes.TypeMongoDB: {
		{Username: "", Password: ""}, // anonymous access
		{Username: "admin", Password: "admin"},
		{Username: "admin", Password: "password"},
		{Username: "root", Password: "root"},
	},
	probes.TypeMSSQL: {
		{Username: "sa", Password: ""},
		{Username: "sa", Password: "sa"},
		{Username: "sa", Password: "Password123"},
		{Username: "admin", Password: "admin"},
	},
	probes.TypeOracle: {
		{Username: "system", Password: "manager"},
		{Username: "system", Password: "oracle"},
		{Username: "sys", Password: "change_on_install"},
		{Username: "scott", Password: "tiger"},
	},
	probes.TypeClickHouse: {
		{Username: "default", Password: ""},
		{Username: "default", Password: "default"},
		{Username: "admin", Password: "admin"},
	},
	probes.TypeCassandra: {
		{Username: "cassandra", Password: "cassandra"},
	},
	probes.TypeNeo4j: {
		{Username: "neo4j", Password: "neo4j"},
		{Username: "neo4j", Password: "password"},
		{Username: "neo4j", Password: "admin"},
	},
	probes.TypeEtcd: {
		{Username: "root", Password: "root"},
		{Username: "root", Password: "etcd"},
	},
	probes.TypeFirebird: {
		{Username: "sysdba", Password: "masterkey"},
	},
	probes.TypeAMQP: {
		{Username: "guest", Password: "guest"},
		{Username: "admin", Password: "admin"},
		{Username: "rabbitmq", Password: "rabbitmq"},
	},
	probes.TypeLDAP: {
		{Username: "admin", Password: "admin"},
		{Username: "manager", Password: "secret"},
	},
	probes.TypeFTP: {
		{Username: "anonymous", Password: "anonymous"},
		{Username: "ftp", Password: "ftp"},
		{Username: "admin", Password: "admin"},
	},
	probes.TypeSSH: {
		{Username: "root", Password: "root"},
		{Username: "root", Password: "toor"},
		{Username: "admin", Password: "admin"},
		{Username: "admin", Password: "password"},
	},
	probes.TypeSMB: {
		{Username: "administrator", Password: ""},
		{Username: "administrator", Password: "admin"},
		{Username: "guest", Password: ""},
		{Username: "admin", Password: "admin"},
	},
}

// DefaultPasswords are the built-in candidate secrets for password-only
// services: Redis requirepass values and SNMP community strings.
var DefaultPasswords = map[probes.ServiceType][]string{
	probes.TypeRedis: {"", "redis", "foobared"},
	probes.TypeSNMP:  {"public", "private"},
}

// CredentialsFor returns a copy of the built-in credential list for a
// service type, nil for types without one.
func CredentialsFor(t probes.ServiceType) []probes.Credential {
	creds, ok := DefaultCredentials[t]
	if !ok {
		return nil
	}
	out := make([]probes.Credential, len(creds))
	copy(out, creds)
	return out
}

// PasswordsFor returns a copy of the built-in password list for a
// password-only service type, nil for types without one.
func PasswordsFor(t probes.ServiceType) []string {
	passwords, ok := DefaultPasswords[t]
	if !ok {
		return nil
	}
	out := make([]string, len(passwords))
	copy(out, passwords)
	return out
}
