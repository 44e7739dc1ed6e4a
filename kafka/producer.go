package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Producer owns one live connection to the broker cluster and provides the
// synchronous send contract: each Send blocks until the broker reports the
// delivery outcome for that message.
//
// Concurrent Send calls on one Producer are safe; each send has its own
// delivery waiter. Closing a producer while sends are in flight is the
// caller's responsibility to serialize, matching the underlying client's
// contract.
type Producer struct {
	producer *kafka.Producer
	config   *ProducerConfig
	tracer   *TracingService
	logger   Logger
	closed   int32 // atomic: 0=open, 1=closed
}

// NewProducer creates a producer handle. Configuration properties are
// applied in order and the first rejection aborts construction, so no
// half-configured handle is ever returned. The acknowledgment mode is
// always "all replicas".
func NewProducer(opts ...ProducerOption) (*Producer, error) {
	config := newDefaultProducerConfig()
	for _, opt := range opts {
		opt(config)
	}

	if len(config.Brokers) == 0 {
		return nil, validationErrorf("brokers are required")
	}
	if err := config.TLS.validate(); err != nil {
		return nil, err
	}

	props := []property{
		{"bootstrap.servers", brokerList(config.Brokers)},
	}
	props = append(props, securityProperties(config.TLS, config.SASL)...)

	if config.ClientID != "" {
		props = append(props, property{"client.id", config.ClientID})
	}
	if config.ConnectionTimeout > 0 {
		props = append(props, property{"socket.connection.setup.timeout.ms", int(config.ConnectionTimeout.Milliseconds())})
	}
	if config.RequestTimeout > 0 {
		props = append(props, property{"request.timeout.ms", int(config.RequestTimeout.Milliseconds())})
	}
	if config.Compression != CompressionNone {
		props = append(props, property{"compression.type", compressionName(config.Compression)})
	}
	if config.Idempotent {
		props = append(props, property{"enable.idempotence", true})
	}

	// Durability over latency: every send waits for all in-sync replicas.
	props = append(props,
		property{"acks", "all"},
		property{"go.logs.channel.enable", true},
		property{"log_level", syslogLevel(config.LogLevel)},
	)

	configMap := &kafka.ConfigMap{}
	if err := apply(configMap, props); err != nil {
		return nil, err
	}

	// NewProducer takes ownership of the config map on success; on failure
	// nothing is retained and the map is dropped with the error.
	producer, err := kafka.NewProducer(configMap)
	if err != nil {
		return nil, &ConnectionError{Role: "producer", Err: err}
	}

	logger := config.Logger
	if logger == nil {
		logger = NewDefaultLogger(config.LogLevel)
	}

	p := &Producer{
		producer: producer,
		config:   config,
		logger:   logger,
	}

	if config.Tracing != nil && config.Tracing.Enabled {
		p.tracer = NewTracingService(config.Tracing)
	}

	go forwardLogs(logger, producer.Logs())
	go p.forwardEvents()

	return p, nil
}

// Send sends a message and blocks until the broker confirms delivery,
// returning the assigned partition and offset. The broker's partitioner
// chooses the target partition. Key may be nil; value may be empty but not
// nil. The client copies key and value during the call, so the caller's
// buffers are free as soon as Send returns.
//
// Cancelling the context abandons the wait for the delivery report; the
// message may still reach the broker.
func (p *Producer) Send(ctx context.Context, topic string, key, value []byte) (*DeliveryReceipt, error) {
	return p.send(ctx, topic, PartitionAny, key, value)
}

// SendToPartition is Send with an explicit target partition.
func (p *Producer) SendToPartition(ctx context.Context, topic string, partition int32, key, value []byte) (*DeliveryReceipt, error) {
	if partition < 0 {
		return nil, validationErrorf("partition must be non-negative, got %d", partition)
	}
	return p.send(ctx, topic, partition, key, value)
}

func (p *Producer) send(ctx context.Context, topic string, partition int32, key, value []byte) (*DeliveryReceipt, error) {
	if atomic.LoadInt32(&p.closed) == 1 {
		return nil, ErrClosed
	}
	if topic == "" {
		return nil, validationErrorf("topic is required")
	}
	if value == nil {
		return nil, validationErrorf("value is required (may be empty, not nil)")
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: partition,
		},
		Key:   key,
		Value: value,
	}

	var endSpan func(error)
	if p.tracer != nil {
		ctx, endSpan = p.tracer.StartProducerSpan(ctx, topic, key)
		p.tracer.InjectTraceContext(ctx, msg)
	}

	waiter := newDeliveryWaiter()
	if err := p.producer.Produce(msg, waiter.ch); err != nil {
		berr := brokerError("send", err)
		if endSpan != nil {
			endSpan(berr)
		}
		return nil, berr
	}

	receipt, err := waiter.wait(ctx)
	if endSpan != nil {
		endSpan(err)
	}
	return receipt, err
}

// SendBatch sends a slice of messages to one topic and blocks until every
// accepted message has a delivery report. Per-message partition and key are
// honored; a zero Partition means broker-assigned. Returns the aggregate of
// all enqueue and delivery failures.
func (p *Producer) SendBatch(ctx context.Context, topic string, msgs []*Message) error {
	if atomic.LoadInt32(&p.closed) == 1 {
		return ErrClosed
	}
	if topic == "" {
		return validationErrorf("topic is required")
	}
	if len(msgs) == 0 {
		return nil
	}

	deliveryChan := make(chan kafka.Event, len(msgs))
	var errs []error
	produced := 0

	for _, m := range msgs {
		partition := PartitionAny
		if m.Partition > 0 {
			partition = m.Partition
		}
		kafkaMsg := &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: partition},
			Key:            m.Key,
			Value:          m.Value,
		}
		if err := p.producer.Produce(kafkaMsg, deliveryChan); err != nil {
			errs = append(errs, brokerError("send", err))
			continue
		}
		produced++
	}

	for i := 0; i < produced; i++ {
		select {
		case e := <-deliveryChan:
			if _, err := receiptFromEvent(e); err != nil {
				errs = append(errs, err)
			}
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
			return errors.Join(errs...)
		}
	}

	return errors.Join(errs...)
}

// Flush blocks up to timeout waiting for all outstanding sends to be
// acknowledged. It fails with a BrokerError when messages remain
// outstanding after the timeout.
func (p *Producer) Flush(timeout time.Duration) error {
	if atomic.LoadInt32(&p.closed) == 1 {
		return ErrClosed
	}
	remaining := p.producer.Flush(int(timeout.Milliseconds()))
	if remaining > 0 {
		return brokerError("flush", errors.New("timed out with messages still outstanding"))
	}
	return nil
}

// Close releases the native connection. It does not flush: callers that
// need delivery guarantees must Flush first. A second Close is a no-op.
func (p *Producer) Close() {
	if !atomic.CompareAndSwapInt32(&p.closed, 0, 1) {
		return
	}
	// Closing the native producer also closes its Events and Logs channels,
	// which stops the forwarder goroutines.
	p.producer.Close()
}

// forwardEvents drains the producer's global event channel, surfacing
// client-level errors in the log. Delivery reports for Send travel on
// per-send channels and never arrive here.
func (p *Producer) forwardEvents() {
	for e := range p.producer.Events() {
		switch ev := e.(type) {
		case kafka.Error:
			p.logger.Error("producer error: %v", ev)
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				p.logger.Error("delivery failed: %v", ev.TopicPartition.Error)
			}
		}
	}
}

func compressionName(compression Compression) string {
	switch compression {
	case CompressionGZIP:
		return "gzip"
	case CompressionSnappy:
		return "snappy"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}
