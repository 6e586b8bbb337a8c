package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/uw/internal/adapters/logger"
	"go.trai.ch/uw/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			setupOTel(log)
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}

// setupOTel registers a global provider whose spans end up in the log.
func setupOTel(log ports.Logger) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewSpanLog(log)),
	)
	otel.SetTracerProvider(tp)
}
