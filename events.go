package blockflow

import "time"

// EventKind identifies the type of event emitted during a resolution pass.
type EventKind string

const (
	// EventPassStarted is emitted when a whole-graph resolution pass begins.
	EventPassStarted EventKind = "pass_started"

	// EventNodeResolved is emitted when a node resolves cleanly.
	EventNodeResolved EventKind = "node_resolved"

	// EventNodeInvalid is emitted when a node fails to resolve.
	EventNodeInvalid EventKind = "node_invalid"

	// EventPassFinished is emitted when a resolution pass completes.
	EventPassFinished EventKind = "pass_finished"
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Event is a structured record of what happened during a resolution pass.
// Events carry identifiers and small payloads only; resolutions themselves
// are returned to the caller, not embedded here.
type Event struct {
	// Kind identifies the event type.
	Kind EventKind

	// PassID identifies one whole-graph resolution pass.
	PassID string

	// NodeID is the node involved (empty for pass-level events).
	NodeID string

	// BlockType is the node's block type (empty for pass-level events).
	BlockType string

	// Time is when the event occurred.
	Time time.Time

	// Elapsed is the duration since the pass started.
	Elapsed time.Duration

	// Payload contains event-specific data, e.g. the resolved tool ID or
	// the offending field names.
	Payload map[string]any
}

// NewEvent creates a new event with the current timestamp.
func NewEvent(kind EventKind, passID string) Event {
	return Event{
		Kind:    kind,
		PassID:  passID,
		Time:    time.Now(),
		Payload: make(map[string]any),
	}
}

// WithNode sets the node information on the event.
func (e Event) WithNode(nodeID, blockType string) Event {
	e.NodeID = nodeID
	e.BlockType = blockType
	return e
}

// WithElapsed sets the elapsed duration on the event.
func (e Event) WithElapsed(elapsed time.Duration) Event {
	e.Elapsed = elapsed
	return e
}

// WithPayload adds a key-value pair to the event payload.
func (e Event) WithPayload(key string, value any) Event {
	if e.Payload == nil {
		e.Payload = make(map[string]any)
	}
	e.Payload[key] = value
	return e
}

// EventHandler is a function type for handling events. Implementations can
// log, record metrics, or forward events as needed.
type EventHandler func(Event)

// MultiEventHandler combines multiple handlers into one.
func MultiEventHandler(handlers ...EventHandler) EventHandler {
	return func(e Event) {
		for _, h := range handlers {
			if h != nil {
				h(e)
			}
		}
	}
}

// ChannelEventHandler returns a handler that sends events to a channel.
// Events are dropped if the channel is full.
func ChannelEventHandler(ch chan<- Event) EventHandler {
	return func(e Event) {
		select {
		case ch <- e:
		default:
			// Drop event if channel is full
		}
	}
}
