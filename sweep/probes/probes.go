// Package probes implements authentication probes for the supported service
// types. Every probe answers exactly one question: does this service instance
// accept this credential. Connection failures, protocol errors, timeouts and
// rejected credentials are all the same negative answer; detail is only ever
// logged at debug level.
package probes

import (
	"context"
	"net"
	"sort"
	"strconv"
	"time"

	"github.com/vflame6/credsweep/utils"
)

// ServiceType identifies a supported service protocol. Values match the
// top-level keys of the configuration document.
type ServiceType string

const (
	TypePostgres   ServiceType = "postgresql"
	TypeMySQL      ServiceType = "mysql"
	TypeMongoDB    ServiceType = "mongodb"
	TypeMSSQL      ServiceType = "mssql"
	TypeOracle     ServiceType = "oracle"
	TypeClickHouse ServiceType = "clickhouse"
	TypeCassandra  ServiceType = "cassandra"
	TypeNeo4j      ServiceType = "neo4j"
	TypeEtcd       ServiceType = "etcd"
	TypeFirebird   ServiceType = "firebird"
	TypeAMQP       ServiceType = "amqp"
	TypeLDAP       ServiceType = "ldap"
	TypeFTP        ServiceType = "ftp"
	TypeSSH        ServiceType = "ssh"
	TypeSMB        ServiceType = "smb"
	TypeRedis      ServiceType = "redis"
	TypeSNMP       ServiceType = "snmp"
)

// AuthMode describes how a service type authenticates.
type AuthMode int

const (
	// AuthUserPass services take a username and password pair.
	AuthUserPass AuthMode = iota
	// AuthPasswordOnly services take a bare secret: a Redis requirepass
	// password or an SNMP community string. Credential.Username is always
	// empty for these.
	AuthPasswordOnly
)

// Instance describes one configured service instance to probe.
// Database and ServiceName are type-specific and may be empty; probes fall
// back to the protocol's conventional default.
type Instance struct {
	Type        ServiceType
	Host        string
	Port        int
	Database    string
	ServiceName string
	TLS         bool
}

// Addr returns the host:port dial address of the instance.
func (i *Instance) Addr() string {
	return net.JoinHostPort(i.Host, strconv.Itoa(i.Port))
}

// Credential is one candidate username and password pair. Username is empty
// for AuthPasswordOnly services.
type Credential struct {
	Username string
	Password string
}

// AttemptFunc makes a single bounded authentication attempt against instance.
// ctx carries the attempt deadline; timeout is additionally passed to drivers
// that take explicit dial or read bounds. The return value is true only when
// the service accepted the credential; every failure collapses to false.
type AttemptFunc func(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool

// Probe describes one supported service type.
type Probe struct {
	DefaultPort int
	Mode        AuthMode
	Attempt     AttemptFunc
}

// Registry maps every supported service type to its probe.
// sort alphabetically
var Registry = map[ServiceType]Probe{
	TypeAMQP:       {5672, AuthUserPass, AttemptAMQP},
	TypeCassandra:  {9042, AuthUserPass, AttemptCassandra},
	TypeClickHouse: {9000, AuthUserPass, AttemptClickHouse},
	TypeEtcd:       {2379, AuthUserPass, AttemptEtcd},
	TypeFirebird:   {3050, AuthUserPass, AttemptFirebird},
	TypeFTP:        {21, AuthUserPass, AttemptFTP},
	TypeLDAP:       {389, AuthUserPass, AttemptLDAP},
	TypeMongoDB:    {27017, AuthUserPass, AttemptMongoDB},
	TypeMSSQL:      {1433, AuthUserPass, AttemptMSSQL},
	TypeMySQL:      {3306, AuthUserPass, AttemptMySQL},
	TypeNeo4j:      {7687, AuthUserPass, AttemptNeo4j},
	TypeOracle:     {1521, AuthUserPass, AttemptOracle},
	TypePostgres:   {5432, AuthUserPass, AttemptPostgres},
	TypeRedis:      {6379, AuthPasswordOnly, AttemptRedis},
	TypeSMB:        {445, AuthUserPass, AttemptSMB},
	TypeSNMP:       {161, AuthPasswordOnly, AttemptSNMP},
	TypeSSH:        {22, AuthUserPass, AttemptSSH},
}

// Resolve returns the probe for a service type. The second return value is
// false for unknown types; callers are expected to skip those.
func Resolve(t ServiceType) (Probe, bool) {
	p, ok := Registry[t]
	return p, ok
}

// Supported returns all registered service types in alphabetical order.
func Supported() []ServiceType {
	types := make([]ServiceType, 0, len(Registry))
	for t := range Registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
