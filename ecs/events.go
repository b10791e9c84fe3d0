package ecs

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

// ContactEventKind identifies contact event types forwarded from the
// collision engine.
type ContactEventKind string

const (
	ContactEventEnter ContactEventKind = "enter"
	ContactEventExit  ContactEventKind = "exit"
)

// ContactEvent is emitted when two entities begin or end touching.
type ContactEvent struct {
	Entity Entity
	Other  Entity
	Kind   ContactEventKind
}

// EventQueue is a simple FIFO queue drained once per frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
