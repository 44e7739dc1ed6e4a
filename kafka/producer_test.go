package kafka

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewProducerValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []ProducerOption
	}{
		{
			name: "missing brokers",
			opts: nil,
		},
		{
			name: "partial tls trio",
			opts: []ProducerOption{
				WithBrokers("localhost:9092"),
				WithTLS("", "client.pem", "client.key"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProducer(tt.opts...)
			if p != nil {
				t.Error("NewProducer() returned a handle, want nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("NewProducer() error = %T (%v), want *ValidationError", err, err)
			}
		})
	}
}

func newTestProducer(t *testing.T, opts ...ProducerOption) *Producer {
	t.Helper()
	base := []ProducerOption{
		WithBrokers("localhost:9092"),
		WithLogger(NewNoopLogger()),
	}
	p, err := NewProducer(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewProducer() error = %v", err)
	}
	return p
}

func TestSendPreconditions(t *testing.T) {
	p := newTestProducer(t)
	defer p.Close()

	ctx := context.Background()

	t.Run("empty topic", func(t *testing.T) {
		_, err := p.Send(ctx, "", []byte("k"), []byte("v"))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("error = %T (%v), want *ValidationError", err, err)
		}
	})

	t.Run("nil value", func(t *testing.T) {
		_, err := p.Send(ctx, "events", []byte("k"), nil)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("error = %T (%v), want *ValidationError", err, err)
		}
	})

	t.Run("negative partition", func(t *testing.T) {
		_, err := p.SendToPartition(ctx, "events", -1, nil, []byte("v"))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("error = %T (%v), want *ValidationError", err, err)
		}
	})
}

func TestProducerClose(t *testing.T) {
	p := newTestProducer(t)

	p.Close()
	p.Close() // second close is a no-op

	if _, err := p.Send(context.Background(), "events", nil, []byte("v")); !errors.Is(err, ErrClosed) {
		t.Errorf("Send() after close: error = %v, want ErrClosed", err)
	}
	if err := p.Flush(time.Second); !errors.Is(err, ErrClosed) {
		t.Errorf("Flush() after close: error = %v, want ErrClosed", err)
	}
	if err := p.SendBatch(context.Background(), "events", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("SendBatch() after close: error = %v, want ErrClosed", err)
	}
}

func TestSendBatchEmpty(t *testing.T) {
	p := newTestProducer(t)
	defer p.Close()

	if err := p.SendBatch(context.Background(), "events", nil); err != nil {
		t.Errorf("SendBatch() with no messages: error = %v, want nil", err)
	}
}

func TestSendBatchEmptyTopic(t *testing.T) {
	p := newTestProducer(t)
	defer p.Close()

	msgs := []*Message{{Value: []byte("v")}}
	err := p.SendBatch(context.Background(), "", msgs)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error = %T (%v), want *ValidationError", err, err)
	}
}

func TestFlushWithNothingOutstanding(t *testing.T) {
	p := newTestProducer(t)
	defer p.Close()

	if err := p.Flush(100 * time.Millisecond); err != nil {
		t.Errorf("Flush() with empty queue: error = %v, want nil", err)
	}
}

func TestCompressionName(t *testing.T) {
	tests := []struct {
		compression Compression
		want        string
	}{
		{CompressionNone, "none"},
		{CompressionGZIP, "gzip"},
		{CompressionSnappy, "snappy"},
		{CompressionLZ4, "lz4"},
		{CompressionZSTD, "zstd"},
	}
	for _, tt := range tests {
		if got := compressionName(tt.compression); got != tt.want {
			t.Errorf("compressionName(%v) = %q, want %q", tt.compression, got, tt.want)
		}
	}
}

func TestVersionNotEmpty(t *testing.T) {
	if Version() == "" {
		t.Error("Version() = empty string")
	}
}
