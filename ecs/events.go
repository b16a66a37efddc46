package ecs

// EventType names an event payload.
type EventType string

const (
	// EventPathReady carries a PathReady once a level's path is built.
	EventPathReady EventType = "path_ready"
	// EventLevelUnloaded carries a LevelUnloaded after teardown completes.
	EventLevelUnloaded EventType = "level_unloaded"
	// EventExplosion carries an Explosion when a collision destroys something.
	EventExplosion EventType = "explosion"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is a simple FIFO queue that lives for one tick.
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

// Each calls fn for every queued event of the given type without consuming
// it.
func (q *EventQueue) Each(typ EventType, fn func(Event)) {
	if q == nil || fn == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == typ {
			fn(evt)
		}
	}
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
