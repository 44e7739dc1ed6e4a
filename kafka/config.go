package kafka

import (
	"strings"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// TLSConfig holds the mutual-TLS material for a handle. The three paths are
// all-or-nothing: a partially specified trio is rejected before any handle
// is created.
type TLSConfig struct {
	CAPath   string
	CertPath string
	KeyPath  string
}

func (t *TLSConfig) validate() error {
	if t == nil {
		return nil
	}
	if t.CAPath == "" || t.CertPath == "" || t.KeyPath == "" {
		return validationErrorf("TLS requires CA, certificate and key paths together (ca=%q cert=%q key=%q)",
			t.CAPath, t.CertPath, t.KeyPath)
	}
	return nil
}

// SASLConfig holds SASL authentication configuration
type SASLConfig struct {
	Mechanism string
	Username  string
	Password  string
}

// property is a single client configuration entry. Properties are applied in
// order and application stops at the first rejection, so a failed property
// never leaves later ones half-applied.
type property struct {
	key   string
	value kafka.ConfigValue
}

// apply sets each property on the config map, failing fast with a
// ConfigError carrying the library's rejection text for the offending key.
func apply(cm *kafka.ConfigMap, props []property) error {
	for _, p := range props {
		if err := cm.SetKey(p.key, p.value); err != nil {
			return &ConfigError{Property: p.key, Err: err}
		}
	}
	return nil
}

// securityProperties maps the TLS trio and optional SASL credentials to
// client properties. Plaintext when both are absent.
func securityProperties(tls *TLSConfig, sasl *SASLConfig) []property {
	var props []property

	switch {
	case tls != nil && sasl != nil:
		props = append(props, property{"security.protocol", "sasl_ssl"})
	case tls != nil:
		props = append(props, property{"security.protocol", "ssl"})
	case sasl != nil:
		props = append(props, property{"security.protocol", "sasl_plaintext"})
	}

	if tls != nil {
		props = append(props,
			property{"ssl.ca.location", tls.CAPath},
			property{"ssl.certificate.location", tls.CertPath},
			property{"ssl.key.location", tls.KeyPath},
		)
	}

	if sasl != nil {
		props = append(props,
			property{"sasl.mechanism", sasl.Mechanism},
			property{"sasl.username", sasl.Username},
			property{"sasl.password", sasl.Password},
		)
	}

	return props
}

func brokerList(brokers []string) string {
	return strings.Join(brokers, ",")
}
