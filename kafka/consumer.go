package kafka

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// subscriptionMode tracks which of the two mutually exclusive consumption
// modes a handle is in: group-managed topic subscription or explicit
// partition assignment.
type subscriptionMode int

const (
	modeNone subscriptionMode = iota
	modeGroup
	modeAssigned
)

// Consumer owns one live connection to the broker cluster and exposes a
// caller-driven poll loop. A consumer holds zero or one active
// subscription: either a group-managed topic subscription or an explicit
// partition assignment, never both.
//
// Poll is not reentrant: concurrent Poll calls on one handle must be
// serialized by the caller.
type Consumer struct {
	consumer *kafka.Consumer
	config   *ConsumerConfig
	tracer   *TracingService
	logger   Logger
	closed   int32 // atomic: 0=open, 1=closed

	modeMu sync.Mutex
	mode   subscriptionMode
}

// NewConsumer creates a consumer handle. Brokers and group ID are required;
// the mutual-TLS trio is optional but all-or-nothing. Configuration follows
// the same fail-fast discipline as the producer: the first rejected
// property aborts construction.
func NewConsumer(opts ...ConsumerOption) (*Consumer, error) {
	config := newDefaultConsumerConfig()
	for _, opt := range opts {
		opt(config)
	}

	if len(config.Brokers) == 0 {
		return nil, validationErrorf("brokers are required")
	}
	if config.GroupID == "" {
		return nil, validationErrorf("group ID is required")
	}
	if err := config.TLS.validate(); err != nil {
		return nil, err
	}
	if !config.OffsetPolicy.valid() {
		return nil, validationErrorf("invalid offset policy %q", config.OffsetPolicy)
	}

	props := []property{
		{"bootstrap.servers", brokerList(config.Brokers)},
		{"group.id", config.GroupID},
	}
	props = append(props, securityProperties(config.TLS, config.SASL)...)
	props = append(props,
		property{"auto.offset.reset", string(config.OffsetPolicy)},
		property{"enable.auto.commit", config.AutoCommit},
	)

	if config.ClientID != "" {
		props = append(props, property{"client.id", config.ClientID})
	}
	if config.AutoCommit && config.AutoCommitInterval > 0 {
		props = append(props, property{"auto.commit.interval.ms", int(config.AutoCommitInterval.Milliseconds())})
	}
	if config.SessionTimeout > 0 {
		props = append(props, property{"session.timeout.ms", int(config.SessionTimeout.Milliseconds())})
	}
	if config.HeartbeatInterval > 0 {
		props = append(props, property{"heartbeat.interval.ms", int(config.HeartbeatInterval.Milliseconds())})
	}

	// Partition EOF events are on so Poll can tell "caught up" apart from
	// "nothing arrived within the timeout".
	props = append(props,
		property{"enable.partition.eof", true},
		property{"go.logs.channel.enable", true},
		property{"log_level", syslogLevel(config.LogLevel)},
	)

	configMap := &kafka.ConfigMap{}
	if err := apply(configMap, props); err != nil {
		return nil, err
	}

	consumer, err := kafka.NewConsumer(configMap)
	if err != nil {
		return nil, &ConnectionError{Role: "consumer", Err: err}
	}

	logger := config.Logger
	if logger == nil {
		logger = NewDefaultLogger(config.LogLevel)
	}

	c := &Consumer{
		consumer: consumer,
		config:   config,
		logger:   logger,
	}

	if config.Tracing != nil && config.Tracing.Enabled {
		c.tracer = NewTracingService(config.Tracing)
	}

	go forwardLogs(logger, consumer.Logs())

	return c, nil
}

// SubscribeTopic joins the consumer group for topic; the broker assigns
// partitions to this consumer through the group protocol.
//
// The offset policy is bound to the handle at creation (WithOffsetPolicy).
// A zero policy argument accepts the handle's policy; a non-zero argument
// that differs from it is rejected, since the underlying client cannot
// change auto.offset.reset after the handle exists.
func (c *Consumer) SubscribeTopic(topic string, policy OffsetPolicy) error {
	if atomic.LoadInt32(&c.closed) == 1 {
		return ErrClosed
	}
	if topic == "" {
		return validationErrorf("topic is required")
	}
	if policy != "" && !policy.valid() {
		return validationErrorf("invalid offset policy %q", policy)
	}
	if policy != "" && policy != c.config.OffsetPolicy {
		return validationErrorf("offset policy %q differs from the handle's policy %q set at creation", policy, c.config.OffsetPolicy)
	}

	c.modeMu.Lock()
	defer c.modeMu.Unlock()
	if c.mode == modeAssigned {
		return validationErrorf("consumer already has an explicit partition assignment; group subscription and assignment are mutually exclusive")
	}

	if err := c.consumer.Subscribe(topic, nil); err != nil {
		return brokerError("subscribe", err)
	}
	c.mode = modeGroup
	c.logger.Info("subscribed to topic %s (group %s)", topic, c.config.GroupID)
	return nil
}

// AssignPartition reads topic/partition starting at offset, bypassing the
// consumer group protocol entirely. Mutually exclusive with SubscribeTopic
// on the same handle.
func (c *Consumer) AssignPartition(topic string, partition int32, offset int64) error {
	if atomic.LoadInt32(&c.closed) == 1 {
		return ErrClosed
	}
	if topic == "" {
		return validationErrorf("topic is required")
	}
	if partition < 0 {
		return validationErrorf("partition must be non-negative, got %d", partition)
	}

	c.modeMu.Lock()
	defer c.modeMu.Unlock()
	if c.mode == modeGroup {
		return validationErrorf("consumer already has a group subscription; group subscription and assignment are mutually exclusive")
	}

	partitions := []kafka.TopicPartition{{
		Topic:     &topic,
		Partition: partition,
		Offset:    kafka.Offset(offset),
	}}
	if err := c.consumer.Assign(partitions); err != nil {
		return brokerError("assign", err)
	}
	c.mode = modeAssigned
	c.logger.Info("assigned %s[%d] at offset %d", topic, partition, offset)
	return nil
}

// Poll drives one event cycle bounded by timeout and returns the next
// outcome:
//
//   - a Message when a record arrived
//   - (nil, nil) when nothing arrived within the timeout
//   - (nil, ErrPartitionEOF) when the end of a partition was reached;
//     keep polling, more messages may follow
//   - (nil, *BrokerError) for a broker-reported error; the handle stays
//     usable and the caller may retry
func (c *Consumer) Poll(timeout time.Duration) (*Message, error) {
	if atomic.LoadInt32(&c.closed) == 1 {
		return nil, ErrClosed
	}

	ev := c.consumer.Poll(int(timeout.Milliseconds()))
	msg, err := mapPollEvent(ev)

	if msg != nil && c.tracer != nil {
		_, endSpan := c.tracer.StartConsumerSpan(context.Background(), c.config.GroupID, msg)
		endSpan(nil)
	}

	return msg, err
}

// mapPollEvent maps one client event to the poll contract. Events that
// carry nothing for the caller (stats, committed offsets) map to the empty
// outcome.
func mapPollEvent(ev kafka.Event) (*Message, error) {
	switch e := ev.(type) {
	case nil:
		return nil, nil
	case *kafka.Message:
		if e.TopicPartition.Error != nil {
			return nil, brokerError("poll", e.TopicPartition.Error)
		}
		return convertMessage(e), nil
	case kafka.PartitionEOF:
		return nil, ErrPartitionEOF
	case kafka.Error:
		return nil, brokerError("poll", e)
	default:
		return nil, nil
	}
}

// convertMessage materializes a client message. The binding hands over
// Go-owned copies of key and value, so the result never aliases
// client-internal buffers.
func convertMessage(msg *kafka.Message) *Message {
	var headers Headers
	if len(msg.Headers) > 0 {
		headers = make(Headers, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = h.Value
		}
	}

	return &Message{
		Key:       msg.Key,
		Value:     msg.Value,
		Headers:   headers,
		Partition: msg.TopicPartition.Partition,
		Offset:    int64(msg.TopicPartition.Offset),
		Timestamp: msg.Timestamp,
		Topic:     *msg.TopicPartition.Topic,
	}
}

// Commit synchronously commits the current offsets. A "no offset stored"
// response is not an error: there was simply nothing to commit.
func (c *Consumer) Commit() error {
	if atomic.LoadInt32(&c.closed) == 1 {
		return ErrClosed
	}
	if _, err := c.consumer.Commit(); err != nil {
		if kafkaErr, ok := err.(kafka.Error); ok && kafkaErr.Code() == kafka.ErrNoOffset {
			return nil
		}
		return brokerError("commit", err)
	}
	return nil
}

// Close commits offsets, leaves the consumer group and releases the native
// connection. A failure of the group-leave step is logged and absorbed:
// teardown never fails the caller's shutdown sequence. A second Close is a
// no-op.
func (c *Consumer) Close() {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return
	}
	if err := c.consumer.Close(); err != nil {
		c.logger.Warn("consumer close: %v", err)
	}
}
