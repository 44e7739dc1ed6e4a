package kafka

import (
	"time"
)

// Headers is a map of header key-value pairs
type Headers map[string][]byte

// Message represents a record read from Kafka. Key and Value are owned by the
// message and never alias client-internal buffers.
type Message struct {
	Key       []byte
	Value     []byte
	Headers   Headers
	Partition int32
	Offset    int64
	Timestamp time.Time
	Topic     string
}

// DeliveryReceipt is the broker-confirmed outcome of a successful Send:
// the partition the message landed on and the offset it was assigned.
// It is produced exactly once per successful send, never for a failed one.
type DeliveryReceipt struct {
	Partition int32
	Offset    int64
}

// TopicPartition represents a topic and partition pair
type TopicPartition struct {
	Topic     string
	Partition int32
	Offset    int64
}

// PartitionAny lets the broker's partitioner choose the target partition
const PartitionAny int32 = -1

// OffsetPolicy governs where a consumer group starts reading when no
// committed offset exists.
type OffsetPolicy string

const (
	// OffsetEarliest starts from the oldest available message
	OffsetEarliest OffsetPolicy = "earliest"
	// OffsetLatest starts from new messages only
	OffsetLatest OffsetPolicy = "latest"
)

func (p OffsetPolicy) valid() bool {
	return p == OffsetEarliest || p == OffsetLatest
}

// Acks configuration for producer acknowledgment
type Acks int

const (
	// AcksNone - No acknowledgment
	AcksNone Acks = 0
	// AcksLeader - Leader acknowledgment only
	AcksLeader Acks = 1
	// AcksAll - All replicas acknowledgment
	AcksAll Acks = -1
)

// Compression types for message compression
type Compression int

const (
	// CompressionNone - No compression
	CompressionNone Compression = 0
	// CompressionGZIP - GZIP compression
	CompressionGZIP Compression = 1
	// CompressionSnappy - Snappy compression
	CompressionSnappy Compression = 2
	// CompressionLZ4 - LZ4 compression
	CompressionLZ4 Compression = 3
	// CompressionZSTD - ZSTD compression
	CompressionZSTD Compression = 4
)

// HealthStatus represents health check status
type HealthStatus string

const (
	// HealthStatusUp indicates the cluster is reachable
	HealthStatusUp HealthStatus = "UP"
	// HealthStatusDown indicates the cluster is unreachable or degraded
	HealthStatusDown HealthStatus = "DOWN"
)

// HealthResult represents health check result
type HealthResult struct {
	Status  HealthStatus           `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
	Error   error                  `json:"error,omitempty"`
}

// LogLevel represents logging level
type LogLevel int

const (
	// LogLevelNone - No logging
	LogLevelNone LogLevel = 0
	// LogLevelError - Error level
	LogLevelError LogLevel = 1
	// LogLevelWarn - Warning level
	LogLevelWarn LogLevel = 2
	// LogLevelInfo - Info level
	LogLevelInfo LogLevel = 3
	// LogLevelDebug - Debug level
	LogLevelDebug LogLevel = 4
)
