package otel_test

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/blockflowhq/blockflow"
	blockotel "github.com/blockflowhq/blockflow/otel"
)

// newTestMeter returns a meter backed by a manual reader for collecting
// metrics in tests.
func newTestMeter() (*metric.ManualReader, *metric.MeterProvider) {
	reader := metric.NewManualReader()
	mp := metric.NewMeterProvider(metric.WithReader(reader))
	return reader, mp
}

func collectMetrics(t *testing.T, reader *metric.ManualReader) *metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, scope := range rm.ScopeMetrics {
		for i := range scope.Metrics {
			if scope.Metrics[i].Name == name {
				return &scope.Metrics[i]
			}
		}
	}
	return nil
}

func TestMetricsHandler_CountsResolutionsAndFailures(t *testing.T) {
	reader, mp := newTestMeter()
	h, err := blockotel.NewMetricsHandler(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetricsHandler: %v", err)
	}

	h.Handle(blockflow.Event{Kind: blockflow.EventNodeResolved, PassID: "p", BlockType: "redis"})
	h.Handle(blockflow.Event{Kind: blockflow.EventNodeResolved, PassID: "p", BlockType: "slack"})
	h.Handle(blockflow.Event{Kind: blockflow.EventNodeInvalid, PassID: "p", BlockType: "jira"})

	rm := collectMetrics(t, reader)

	resolved := findMetric(rm, "blockflow.node.resolutions")
	if resolved == nil {
		t.Fatal("blockflow.node.resolutions metric not found")
	}
	sum, ok := resolved.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("resolutions data = %T, want Sum[int64]", resolved.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 2 {
		t.Errorf("resolutions total = %d, want 2", total)
	}

	failures := findMetric(rm, "blockflow.node.failures")
	if failures == nil {
		t.Fatal("blockflow.node.failures metric not found")
	}
	failSum, ok := failures.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("failures data = %T, want Sum[int64]", failures.Data)
	}
	if len(failSum.DataPoints) != 1 || failSum.DataPoints[0].Value != 1 {
		t.Errorf("failures = %+v, want one data point with value 1", failSum.DataPoints)
	}
}

func TestMetricsHandler_RecordsPassDuration(t *testing.T) {
	reader, mp := newTestMeter()
	h, err := blockotel.NewMetricsHandler(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetricsHandler: %v", err)
	}

	h.Handle(blockflow.Event{
		Kind:    blockflow.EventPassFinished,
		PassID:  "p",
		Elapsed: 250 * time.Millisecond,
	})

	rm := collectMetrics(t, reader)
	duration := findMetric(rm, "blockflow.pass.duration")
	if duration == nil {
		t.Fatal("blockflow.pass.duration metric not found")
	}
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("duration data = %T, want Histogram[float64]", duration.Data)
	}
	if len(hist.DataPoints) != 1 {
		t.Fatalf("duration data points = %d, want 1", len(hist.DataPoints))
	}
	if got := hist.DataPoints[0].Sum; got != 0.25 {
		t.Errorf("duration sum = %v, want 0.25", got)
	}
}

func TestMetricsHandler_IgnoresPassStarted(t *testing.T) {
	reader, mp := newTestMeter()
	h, err := blockotel.NewMetricsHandler(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetricsHandler: %v", err)
	}

	h.Handle(blockflow.Event{Kind: blockflow.EventPassStarted, PassID: "p"})

	rm := collectMetrics(t, reader)
	if m := findMetric(rm, "blockflow.node.resolutions"); m != nil {
		if sum, ok := m.Data.(metricdata.Sum[int64]); ok && len(sum.DataPoints) > 0 {
			t.Errorf("pass_started recorded resolution data points: %+v", sum.DataPoints)
		}
	}
}
