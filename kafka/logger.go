package kafka

import (
	"log"
	"os"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

// Logger interface for customizable logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DefaultLogger implements Logger using standard log package
type DefaultLogger struct {
	level  LogLevel
	logger *log.Logger
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		level:  level,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		l.logger.Printf("[DEBUG] "+format, args...)
	}
}

// Info logs an info message
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		l.logger.Printf("[INFO] "+format, args...)
	}
}

// Warn logs a warning message
func (l *DefaultLogger) Warn(format string, args ...interface{}) {
	if l.level >= LogLevelWarn {
		l.logger.Printf("[WARN] "+format, args...)
	}
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	if l.level >= LogLevelError {
		l.logger.Printf("[ERROR] "+format, args...)
	}
}

// NoopLogger is a logger that does nothing
type NoopLogger struct{}

// NewNoopLogger creates a no-op logger
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

// Debug does nothing
func (l *NoopLogger) Debug(format string, args ...interface{}) {}

// Info does nothing
func (l *NoopLogger) Info(format string, args ...interface{}) {}

// Warn does nothing
func (l *NoopLogger) Warn(format string, args ...interface{}) {}

// Error does nothing
func (l *NoopLogger) Error(format string, args ...interface{}) {}

// ZapLogger adapts a zap.Logger to the package Logger interface for
// applications that already run structured logging.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a zap.Logger
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

// Debug logs at debug level
func (l *ZapLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs at info level
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs at warn level
func (l *ZapLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs at error level
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// syslog severities used by librdkafka log events
const (
	syslogWarning = 4
	syslogInfo    = 6
	syslogDebug   = 7
)

// syslogLevel converts the package log level to the syslog severity the
// underlying client expects for its log_level property.
func syslogLevel(level LogLevel) int {
	switch level {
	case LogLevelNone:
		return 0
	case LogLevelError:
		return 3
	case LogLevelWarn:
		return syslogWarning
	case LogLevelInfo:
		return syslogInfo
	default:
		return syslogDebug
	}
}

// logBrokerEvent routes one librdkafka log event to the logger, collapsing
// the syslog severity range: emergency through error map to Error, warning
// to Warn, notice and info to Info, debug and anything lower to Debug.
func logBrokerEvent(logger Logger, ev kafka.LogEvent) {
	switch {
	case ev.Level < syslogWarning:
		logger.Error("[%s] %s: %s", ev.Tag, ev.Name, ev.Message)
	case ev.Level == syslogWarning:
		logger.Warn("[%s] %s: %s", ev.Tag, ev.Name, ev.Message)
	case ev.Level <= syslogInfo:
		logger.Info("[%s] %s: %s", ev.Tag, ev.Name, ev.Message)
	default:
		logger.Debug("[%s] %s: %s", ev.Tag, ev.Name, ev.Message)
	}
}

// forwardLogs drains the client's log channel into the logger until the
// channel is closed by the underlying client.
func forwardLogs(logger Logger, logs chan kafka.LogEvent) {
	for ev := range logs {
		logBrokerEvent(logger, ev)
	}
}
