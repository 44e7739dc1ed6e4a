// Package kafka provides mutually-authenticated producer and consumer handles
// for Apache Kafka, built on top of confluent-kafka-go.
//
// The producer turns the broker's asynchronous delivery reports into a
// synchronous call contract: Send blocks until the broker confirms (or
// rejects) the message and returns the assigned partition and offset.
// The consumer exposes a caller-driven poll loop over either a group-managed
// topic subscription or an explicit partition assignment.
//
// Quick Start:
//
//	// Create producer
//	producer, err := kafka.NewProducer(
//	    kafka.WithBrokers("broker-1:9093", "broker-2:9093"),
//	    kafka.WithTLS("/etc/certs/ca.pem", "/etc/certs/client.pem", "/etc/certs/client.key"),
//	)
//
//	// Send and learn the outcome
//	receipt, err := producer.Send(ctx, "events", []byte("key"), []byte("value"))
//
//	// Create consumer
//	consumer, err := kafka.NewConsumer(
//	    kafka.ConsumerWithBrokers("broker-1:9093"),
//	    kafka.WithGroupID("event-readers"),
//	    kafka.WithOffsetPolicy(kafka.OffsetEarliest),
//	)
//
//	// Subscribe and poll
//	err = consumer.SubscribeTopic("events", "")
//	for {
//	    msg, err := consumer.Poll(time.Second)
//	    ...
//	}
package kafka

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Version returns the version string of the underlying librdkafka client.
func Version() string {
	_, version := kafka.LibraryVersion()
	return version
}
