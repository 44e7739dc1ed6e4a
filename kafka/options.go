package kafka

import (
	"time"
)

// ProducerConfig holds all producer configuration
type ProducerConfig struct {
	// Connection
	Brokers           []string
	ClientID          string
	ConnectionTimeout time.Duration
	RequestTimeout    time.Duration

	// Security
	TLS  *TLSConfig
	SASL *SASLConfig

	// Producer settings
	Compression Compression
	Idempotent  bool

	// Logging
	LogLevel LogLevel
	Logger   Logger

	// Tracing
	Tracing *TracingConfig
}

// ConsumerConfig holds all consumer configuration
type ConsumerConfig struct {
	// Connection
	Brokers  []string
	GroupID  string
	ClientID string

	// Security
	TLS  *TLSConfig
	SASL *SASLConfig

	// Offsets
	OffsetPolicy       OffsetPolicy
	AutoCommit         bool
	AutoCommitInterval time.Duration

	// Session
	SessionTimeout    time.Duration
	HeartbeatInterval time.Duration

	// Logging
	LogLevel LogLevel
	Logger   Logger

	// Tracing
	Tracing *TracingConfig
}

// ProducerOption is a function that configures the producer
type ProducerOption func(*ProducerConfig)

// ConsumerOption is a function that configures the consumer
type ConsumerOption func(*ConsumerConfig)

// Default values
var (
	DefaultConnectionTimeout  = 10 * time.Second
	DefaultRequestTimeout     = 30 * time.Second
	DefaultSessionTimeout     = 30 * time.Second
	DefaultHeartbeatInterval  = 3 * time.Second
	DefaultAutoCommitInterval = 5 * time.Second
)

// ==================== Producer Options ====================

// WithBrokers sets the Kafka bootstrap broker addresses
func WithBrokers(brokers ...string) ProducerOption {
	return func(c *ProducerConfig) {
		c.Brokers = brokers
	}
}

// WithClientID sets the client ID
func WithClientID(clientID string) ProducerOption {
	return func(c *ProducerConfig) {
		c.ClientID = clientID
	}
}

// WithConnectionTimeout sets the connection setup timeout
func WithConnectionTimeout(timeout time.Duration) ProducerOption {
	return func(c *ProducerConfig) {
		c.ConnectionTimeout = timeout
	}
}

// WithRequestTimeout sets the request timeout
func WithRequestTimeout(timeout time.Duration) ProducerOption {
	return func(c *ProducerConfig) {
		c.RequestTimeout = timeout
	}
}

// WithTLS sets the mutual-TLS trio: CA certificate, client certificate and
// client private key paths. All three must be provided.
func WithTLS(caPath, certPath, keyPath string) ProducerOption {
	return func(c *ProducerConfig) {
		c.TLS = &TLSConfig{CAPath: caPath, CertPath: certPath, KeyPath: keyPath}
	}
}

// WithSASL sets SASL authentication
func WithSASL(sasl *SASLConfig) ProducerOption {
	return func(c *ProducerConfig) {
		c.SASL = sasl
	}
}

// WithCompression sets the compression type
func WithCompression(compression Compression) ProducerOption {
	return func(c *ProducerConfig) {
		c.Compression = compression
	}
}

// WithIdempotent enables the idempotent producer
func WithIdempotent(enabled bool) ProducerOption {
	return func(c *ProducerConfig) {
		c.Idempotent = enabled
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level LogLevel) ProducerOption {
	return func(c *ProducerConfig) {
		c.LogLevel = level
	}
}

// WithLogger sets a custom logger
func WithLogger(logger Logger) ProducerOption {
	return func(c *ProducerConfig) {
		c.Logger = logger
	}
}

// WithTracing sets tracing configuration
func WithTracing(tracing *TracingConfig) ProducerOption {
	return func(c *ProducerConfig) {
		c.Tracing = tracing
	}
}

// ==================== Consumer Options ====================

// ConsumerWithBrokers sets the Kafka bootstrap broker addresses for consumer
func ConsumerWithBrokers(brokers ...string) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.Brokers = brokers
	}
}

// WithGroupID sets the consumer group ID
func WithGroupID(groupID string) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.GroupID = groupID
	}
}

// ConsumerWithClientID sets the client ID for consumer
func ConsumerWithClientID(clientID string) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.ClientID = clientID
	}
}

// ConsumerWithTLS sets the mutual-TLS trio for consumer
func ConsumerWithTLS(caPath, certPath, keyPath string) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.TLS = &TLSConfig{CAPath: caPath, CertPath: certPath, KeyPath: keyPath}
	}
}

// ConsumerWithSASL sets SASL authentication for consumer
func ConsumerWithSASL(sasl *SASLConfig) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.SASL = sasl
	}
}

// WithOffsetPolicy sets where the consumer group starts reading when no
// committed offset exists. Defaults to OffsetLatest.
func WithOffsetPolicy(policy OffsetPolicy) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.OffsetPolicy = policy
	}
}

// WithAutoCommit sets auto commit
func WithAutoCommit(enabled bool) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.AutoCommit = enabled
	}
}

// WithAutoCommitInterval sets auto commit interval
func WithAutoCommitInterval(interval time.Duration) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.AutoCommitInterval = interval
	}
}

// WithSessionTimeout sets the session timeout
func WithSessionTimeout(timeout time.Duration) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.SessionTimeout = timeout
	}
}

// WithHeartbeatInterval sets the heartbeat interval
func WithHeartbeatInterval(interval time.Duration) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.HeartbeatInterval = interval
	}
}

// ConsumerWithLogLevel sets the log level for consumer
func ConsumerWithLogLevel(level LogLevel) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.LogLevel = level
	}
}

// ConsumerWithLogger sets a custom logger for consumer
func ConsumerWithLogger(logger Logger) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.Logger = logger
	}
}

// ConsumerWithTracing sets tracing configuration for consumer
func ConsumerWithTracing(tracing *TracingConfig) ConsumerOption {
	return func(c *ConsumerConfig) {
		c.Tracing = tracing
	}
}

// ==================== Default Configs ====================

// newDefaultProducerConfig creates a new producer config with default values
func newDefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		ConnectionTimeout: DefaultConnectionTimeout,
		RequestTimeout:    DefaultRequestTimeout,
		Compression:       CompressionNone,
		LogLevel:          LogLevelInfo,
	}
}

// newDefaultConsumerConfig creates a new consumer config with default values
func newDefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		OffsetPolicy:       OffsetLatest,
		AutoCommit:         true,
		AutoCommitInterval: DefaultAutoCommitInterval,
		SessionTimeout:     DefaultSessionTimeout,
		HeartbeatInterval:  DefaultHeartbeatInterval,
		LogLevel:           LogLevelInfo,
	}
}
