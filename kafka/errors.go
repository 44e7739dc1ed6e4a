package kafka

import (
	"errors"
	"fmt"
)

// ErrPartitionEOF is returned by Poll when the consumer has reached the end
// of a partition. Like io.EOF it signals a condition, not a failure: the
// caller is expected to keep polling.
var ErrPartitionEOF = errors.New("end of partition")

// ErrClosed is returned when an operation is attempted on a closed handle.
var ErrClosed = errors.New("handle is closed")

// ValidationError reports caller-supplied arguments that violate the API's
// preconditions. It is surfaced before any broker interaction is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "kafka: " + e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigError reports a configuration property rejected by the underlying
// client library. Property is the rejected key and Err carries the library's
// rejection text.
type ConfigError struct {
	Property string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("kafka: config property %q: %v", e.Property, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ConnectionError reports that the configuration was accepted but
// constructing the native client handle failed.
type ConnectionError struct {
	Role string // "producer" or "consumer"
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("kafka: create %s: %v", e.Role, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// BrokerError carries a broker-reported error for a subscribe, poll, send or
// flush operation. It is never fatal to the process; the handle remains
// usable unless the underlying connection itself has been invalidated.
type BrokerError struct {
	Op  string // the failing operation: "send", "poll", "subscribe", ...
	Err error
}

func (e *BrokerError) Error() string {
	return fmt.Sprintf("kafka: %s: %v", e.Op, e.Err)
}

func (e *BrokerError) Unwrap() error {
	return e.Err
}

func brokerError(op string, err error) *BrokerError {
	return &BrokerError{Op: op, Err: err}
}
