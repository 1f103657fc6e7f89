// Package otel provides OpenTelemetry integration for blockflow resolution
// events.
package otel

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blockflowhq/blockflow"
)

// TracingHandler translates resolution-pass events into OpenTelemetry
// spans: one root span per pass, one child span per resolved node. Node
// resolution is synchronous and cheap, so node spans are closed as soon as
// they are created.
type TracingHandler struct {
	tracer trace.Tracer

	mu        sync.Mutex
	passSpans map[string]trace.Span
	passCtxs  map[string]context.Context
}

// NewTracingHandler creates a TracingHandler that uses the given tracer to
// create spans from resolution events.
func NewTracingHandler(tracer trace.Tracer) *TracingHandler {
	return &TracingHandler{
		tracer:    tracer,
		passSpans: make(map[string]trace.Span),
		passCtxs:  make(map[string]context.Context),
	}
}

// Handle processes a resolution event and creates or ends spans accordingly.
// It satisfies blockflow.EventHandler.
func (h *TracingHandler) Handle(e blockflow.Event) {
	switch e.Kind {
	case blockflow.EventPassStarted:
		h.handlePassStarted(e)
	case blockflow.EventNodeResolved:
		h.handleNode(e, true)
	case blockflow.EventNodeInvalid:
		h.handleNode(e, false)
	case blockflow.EventPassFinished:
		h.handlePassFinished(e)
	}
}

// ActivePassSpanContext returns the span context for an in-flight pass, or
// an invalid context when none is active.
func (h *TracingHandler) ActivePassSpanContext(passID string) trace.SpanContext {
	h.mu.Lock()
	defer h.mu.Unlock()
	if span, ok := h.passSpans[passID]; ok {
		return span.SpanContext()
	}
	return trace.SpanContext{}
}

func (h *TracingHandler) handlePassStarted(e blockflow.Event) {
	spanName := "resolve_pass"
	if wf, ok := e.Payload["workflow"].(string); ok && wf != "" {
		spanName = "resolve_pass:" + wf
	}

	ctx, span := h.tracer.Start(context.Background(), spanName,
		trace.WithAttributes(
			attribute.String("blockflow.pass_id", e.PassID),
		),
		trace.WithTimestamp(e.Time),
	)
	if nodes, ok := e.Payload["nodes"].(int); ok {
		span.SetAttributes(attribute.Int("blockflow.nodes", nodes))
	}

	h.mu.Lock()
	h.passSpans[e.PassID] = span
	h.passCtxs[e.PassID] = ctx
	h.mu.Unlock()
}

func (h *TracingHandler) handleNode(e blockflow.Event, ok bool) {
	h.mu.Lock()
	ctx, found := h.passCtxs[e.PassID]
	h.mu.Unlock()
	if !found {
		ctx = context.Background()
	}

	_, span := h.tracer.Start(ctx, "resolve:"+e.BlockType,
		trace.WithAttributes(
			attribute.String("blockflow.node_id", e.NodeID),
			attribute.String("blockflow.block_type", e.BlockType),
		),
	)
	if ok {
		if tool, found := e.Payload["tool"].(string); found {
			span.SetAttributes(attribute.String("blockflow.tool_id", tool))
		}
	} else {
		span.SetStatus(codes.Error, "resolution failed")
	}
	span.End(trace.WithTimestamp(e.Time))
}

func (h *TracingHandler) handlePassFinished(e blockflow.Event) {
	h.mu.Lock()
	span, ok := h.passSpans[e.PassID]
	delete(h.passSpans, e.PassID)
	delete(h.passCtxs, e.PassID)
	h.mu.Unlock()
	if !ok {
		return
	}

	if n, found := e.Payload["diagnostics"].(int); found {
		span.SetAttributes(attribute.Int("blockflow.diagnostics", n))
	}
	span.End(trace.WithTimestamp(e.Time))
}
