package kafka

import (
	"context"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// deliveryWaiter bridges one asynchronous delivery report to one blocking
// caller. The underlying client posts the report for a produced message to
// the channel handed to Produce; the channel's single buffered slot is the
// completion flag, so a report is observed at most once and a reader never
// sees a partially populated result.
//
// A waiter is created immediately before a send and abandoned as soon as
// wait returns. If the enqueue call itself is rejected the waiter is
// discarded without ever completing.
type deliveryWaiter struct {
	ch chan kafka.Event
}

func newDeliveryWaiter() *deliveryWaiter {
	return &deliveryWaiter{ch: make(chan kafka.Event, 1)}
}

// wait blocks until the delivery report arrives and maps it to a receipt or
// a broker error. Cancelling the context abandons the wait; the message may
// still be delivered, but the outcome is no longer observable.
func (w *deliveryWaiter) wait(ctx context.Context) (*DeliveryReceipt, error) {
	select {
	case e := <-w.ch:
		return receiptFromEvent(e)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// receiptFromEvent maps a delivery report event to the send outcome.
func receiptFromEvent(e kafka.Event) (*DeliveryReceipt, error) {
	m, ok := e.(*kafka.Message)
	if !ok {
		return nil, brokerError("send", fmt.Errorf("unexpected delivery event %T", e))
	}
	if m.TopicPartition.Error != nil {
		return nil, brokerError("send", m.TopicPartition.Error)
	}
	return &DeliveryReceipt{
		Partition: m.TopicPartition.Partition,
		Offset:    int64(m.TopicPartition.Offset),
	}, nil
}
