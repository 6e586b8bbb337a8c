package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/uw/internal/core/ports"
)

// SpanLog is a span processor that writes one log line per finished span.
type SpanLog struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*SpanLog)(nil)

// NewSpanLog creates a SpanLog writing to logger.
func NewSpanLog(logger ports.Logger) *SpanLog {
	return &SpanLog{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (p *SpanLog) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and, for failed spans, the error.
func (p *SpanLog) OnEnd(s sdktrace.ReadOnlySpan) {
	took := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	msg := fmt.Sprintf("trace: %s took %s", s.Name(), took)
	for _, kv := range s.Attributes() {
		if kv.Key == StateAttribute {
			msg += " state=" + kv.Value.Emit()
		}
	}

	if status := s.Status(); status.Code == codes.Error {
		p.logger.Warn(msg + ": " + status.Description)
		return
	}
	p.logger.Info(msg)
}

// Shutdown implements sdktrace.SpanProcessor.
func (p *SpanLog) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (p *SpanLog) ForceFlush(context.Context) error { return nil }
