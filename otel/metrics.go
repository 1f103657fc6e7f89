package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/blockflowhq/blockflow"
)

// MetricsHandler translates resolution events into OpenTelemetry metrics:
// counters for node resolutions and failures, and a histogram for pass
// durations.
type MetricsHandler struct {
	nodeResolutions metric.Int64Counter
	nodeFailures    metric.Int64Counter
	passDuration    metric.Float64Histogram
}

// NewMetricsHandler creates a MetricsHandler that uses the given meter to
// create instruments for recording resolution metrics.
func NewMetricsHandler(meter metric.Meter) (*MetricsHandler, error) {
	nodeRes, err := meter.Int64Counter("blockflow.node.resolutions",
		metric.WithDescription("Number of successful node resolutions"),
	)
	if err != nil {
		return nil, err
	}

	nodeFail, err := meter.Int64Counter("blockflow.node.failures",
		metric.WithDescription("Number of failed node resolutions"),
	)
	if err != nil {
		return nil, err
	}

	passDur, err := meter.Float64Histogram("blockflow.pass.duration",
		metric.WithDescription("Duration of whole-graph resolution passes in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &MetricsHandler{
		nodeResolutions: nodeRes,
		nodeFailures:    nodeFail,
		passDuration:    passDur,
	}, nil
}

// Handle processes a resolution event and records the appropriate metrics.
// It satisfies blockflow.EventHandler.
func (h *MetricsHandler) Handle(e blockflow.Event) {
	switch e.Kind {
	case blockflow.EventNodeResolved:
		h.nodeResolutions.Add(context.Background(), 1, metric.WithAttributes(
			attribute.String("block_type", e.BlockType),
		))
	case blockflow.EventNodeInvalid:
		h.nodeFailures.Add(context.Background(), 1, metric.WithAttributes(
			attribute.String("block_type", e.BlockType),
		))
	case blockflow.EventPassFinished:
		h.passDuration.Record(context.Background(), e.Elapsed.Seconds())
	}
}
