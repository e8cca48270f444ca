package ecs

// EventKind names something gameplay code wants the outer loop to know about.
type EventKind string

const (
	EventStunned        EventKind = "stunned"
	EventRespawned      EventKind = "respawned"
	EventBlocked        EventKind = "blocked"
	EventCollected      EventKind = "collected"
	EventDecoyTriggered EventKind = "decoy_triggered"
)

// Event records that Source did Kind to Entity. Value carries a count where
// one applies, such as acorns collected.
type Event struct {
	Kind   EventKind
	Entity Entity
	Source Entity
	Value  int
}

// EventQueue is a FIFO drained once per frame by the game loop.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
