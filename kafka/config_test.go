package kafka

import (
	"errors"
	"testing"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

func TestTLSConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		tls     *TLSConfig
		wantErr bool
	}{
		{name: "absent", tls: nil, wantErr: false},
		{name: "full trio", tls: &TLSConfig{CAPath: "ca.pem", CertPath: "client.pem", KeyPath: "client.key"}, wantErr: false},
		{name: "missing ca", tls: &TLSConfig{CertPath: "client.pem", KeyPath: "client.key"}, wantErr: true},
		{name: "missing cert", tls: &TLSConfig{CAPath: "ca.pem", KeyPath: "client.key"}, wantErr: true},
		{name: "missing key", tls: &TLSConfig{CAPath: "ca.pem", CertPath: "client.pem"}, wantErr: true},
		{name: "only ca", tls: &TLSConfig{CAPath: "ca.pem"}, wantErr: true},
		{name: "only cert", tls: &TLSConfig{CertPath: "client.pem"}, wantErr: true},
		{name: "only key", tls: &TLSConfig{KeyPath: "client.key"}, wantErr: true},
		{name: "all empty", tls: &TLSConfig{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tls.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("validate() returned %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestSecurityProperties(t *testing.T) {
	tls := &TLSConfig{CAPath: "ca.pem", CertPath: "client.pem", KeyPath: "client.key"}
	sasl := &SASLConfig{Mechanism: "PLAIN", Username: "user", Password: "pass"}

	tests := []struct {
		name         string
		tls          *TLSConfig
		sasl         *SASLConfig
		wantProtocol string
		wantKeys     []string
	}{
		{
			name: "plaintext", tls: nil, sasl: nil,
			wantProtocol: "",
			wantKeys:     nil,
		},
		{
			name: "mtls", tls: tls, sasl: nil,
			wantProtocol: "ssl",
			wantKeys:     []string{"security.protocol", "ssl.ca.location", "ssl.certificate.location", "ssl.key.location"},
		},
		{
			name: "sasl", tls: nil, sasl: sasl,
			wantProtocol: "sasl_plaintext",
			wantKeys:     []string{"security.protocol", "sasl.mechanism", "sasl.username", "sasl.password"},
		},
		{
			name: "mtls and sasl", tls: tls, sasl: sasl,
			wantProtocol: "sasl_ssl",
			wantKeys: []string{
				"security.protocol", "ssl.ca.location", "ssl.certificate.location", "ssl.key.location",
				"sasl.mechanism", "sasl.username", "sasl.password",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := securityProperties(tt.tls, tt.sasl)

			if len(props) != len(tt.wantKeys) {
				t.Fatalf("got %d properties, want %d: %v", len(props), len(tt.wantKeys), props)
			}
			for i, key := range tt.wantKeys {
				if props[i].key != key {
					t.Errorf("props[%d].key = %q, want %q", i, props[i].key, key)
				}
			}
			if tt.wantProtocol != "" {
				if props[0].value != tt.wantProtocol {
					t.Errorf("security.protocol = %v, want %q", props[0].value, tt.wantProtocol)
				}
			}
		})
	}
}

func TestApplySetsProperties(t *testing.T) {
	cm := &kafka.ConfigMap{}
	props := []property{
		{"bootstrap.servers", "broker-1:9093,broker-2:9093"},
		{"acks", "all"},
		{"enable.partition.eof", true},
	}

	if err := apply(cm, props); err != nil {
		t.Fatalf("apply() error = %v", err)
	}

	got, err := cm.Get("bootstrap.servers", nil)
	if err != nil {
		t.Fatalf("Get(bootstrap.servers) error = %v", err)
	}
	if got != "broker-1:9093,broker-2:9093" {
		t.Errorf("bootstrap.servers = %v, want broker list", got)
	}

	got, err = cm.Get("acks", nil)
	if err != nil {
		t.Fatalf("Get(acks) error = %v", err)
	}
	if got != "all" {
		t.Errorf("acks = %v, want %q", got, "all")
	}
}

func TestBrokerList(t *testing.T) {
	got := brokerList([]string{"a:9092", "b:9092"})
	if got != "a:9092,b:9092" {
		t.Errorf("brokerList() = %q, want %q", got, "a:9092,b:9092")
	}
}

func TestOffsetPolicyValid(t *testing.T) {
	if !OffsetEarliest.valid() || !OffsetLatest.valid() {
		t.Error("earliest and latest must be valid policies")
	}
	if OffsetPolicy("newest").valid() {
		t.Error("arbitrary policy string must not be valid")
	}
	if OffsetPolicy("").valid() {
		t.Error("empty policy must not be valid")
	}
}

func TestDefaultConsumerConfig(t *testing.T) {
	config := newDefaultConsumerConfig()
	if config.OffsetPolicy != OffsetLatest {
		t.Errorf("default OffsetPolicy = %q, want %q", config.OffsetPolicy, OffsetLatest)
	}
	if !config.AutoCommit {
		t.Error("default AutoCommit = false, want true")
	}
}
