package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// HealthChecker probes cluster reachability and topic metadata through a
// short-lived admin client. It holds no connection between checks.
type HealthChecker struct {
	brokers []string
	tls     *TLSConfig
	timeout time.Duration
}

// NewHealthChecker creates a health checker for the given bootstrap brokers.
func NewHealthChecker(brokers []string, tls *TLSConfig) *HealthChecker {
	return &HealthChecker{
		brokers: brokers,
		tls:     tls,
		timeout: 10 * time.Second,
	}
}

// SetTimeout sets the health check timeout
func (h *HealthChecker) SetTimeout(timeout time.Duration) {
	h.timeout = timeout
}

func (h *HealthChecker) newAdminClient() (*kafka.AdminClient, error) {
	props := []property{{"bootstrap.servers", brokerList(h.brokers)}}
	props = append(props, securityProperties(h.tls, nil)...)

	configMap := &kafka.ConfigMap{}
	if err := apply(configMap, props); err != nil {
		return nil, err
	}
	return kafka.NewAdminClient(configMap)
}

func (h *HealthChecker) effectiveTimeout(ctx context.Context) time.Duration {
	timeout := h.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func down(err error) *HealthResult {
	return &HealthResult{
		Status: HealthStatusDown,
		Error:  err,
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	}
}

// Check performs a basic cluster reachability check.
func (h *HealthChecker) Check(ctx context.Context) *HealthResult {
	select {
	case <-ctx.Done():
		return down(ctx.Err())
	default:
	}

	adminClient, err := h.newAdminClient()
	if err != nil {
		return down(err)
	}
	defer adminClient.Close()

	timeout := h.effectiveTimeout(ctx)
	metadata, err := adminClient.GetMetadata(nil, true, int(timeout.Milliseconds()))
	if err != nil {
		return down(err)
	}

	if len(metadata.Brokers) == 0 {
		return down(fmt.Errorf("no brokers available"))
	}

	return &HealthResult{
		Status: HealthStatusUp,
		Details: map[string]interface{}{
			"brokers":       len(metadata.Brokers),
			"topics":        len(metadata.Topics),
			"originatingId": metadata.OriginatingBroker.ID,
		},
	}
}

// CheckTopic checks that a topic exists and reports its partition layout.
func (h *HealthChecker) CheckTopic(ctx context.Context, topic string) *HealthResult {
	select {
	case <-ctx.Done():
		return down(ctx.Err())
	default:
	}

	adminClient, err := h.newAdminClient()
	if err != nil {
		return down(err)
	}
	defer adminClient.Close()

	timeout := h.effectiveTimeout(ctx)
	metadata, err := adminClient.GetMetadata(&topic, false, int(timeout.Milliseconds()))
	if err != nil {
		return down(err)
	}

	topicMeta, ok := metadata.Topics[topic]
	if !ok {
		return down(fmt.Errorf("topic not found: %s", topic))
	}
	if topicMeta.Error.Code() != kafka.ErrNoError {
		return down(topicMeta.Error)
	}

	partitionInfos := make([]map[string]interface{}, 0, len(topicMeta.Partitions))
	for _, p := range topicMeta.Partitions {
		partitionInfos = append(partitionInfos, map[string]interface{}{
			"id":       p.ID,
			"leader":   p.Leader,
			"replicas": len(p.Replicas),
			"isrs":     len(p.Isrs),
		})
	}

	return &HealthResult{
		Status: HealthStatusUp,
		Details: map[string]interface{}{
			"topic":          topic,
			"partitionCount": len(topicMeta.Partitions),
			"partitions":     partitionInfos,
		},
	}
}
