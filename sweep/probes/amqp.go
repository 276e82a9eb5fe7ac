package probes

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/utils"
)

// AttemptAMQP is an implementation of AttemptFunc for AMQP 0-9-1 brokers
// such as RabbitMQ. Database selects the vhost; no path means the default
// vhost "/" (a trailing slash in the URI would mean the empty-named vhost).
func AttemptAMQP(ctx context.Context, dialer *utils.Dialer, timeout time.Duration, instance *Instance, credential *Credential) bool {
	scheme := "amqp"
	if instance.TLS {
		scheme = "amqps"
	}
	endpoint := fmt.Sprintf("%s://%s:%s@%s", scheme,
		url.QueryEscape(credential.Username), url.QueryEscape(credential.Password),
		instance.Addr())
	if instance.Database != "" {
		endpoint += "/" + url.PathEscape(instance.Database)
	}

	cfg := amqp.Config{
		// DialConfig performs the TLS handshake itself for amqps URIs
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	}
	if instance.TLS {
		cfg.TLSClientConfig = utils.GetTLSConfig()
	}

	conn, err := amqp.DialConfig(endpoint, cfg)
	if err != nil {
		logger.Debugf("amqp %s as %q: %v", instance.Addr(), credential.Username, err)
		return false
	}
	_ = conn.Close()
	return true
}
