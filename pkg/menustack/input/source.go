package input

import (
	"go.uber.org/atomic"
)

// Source is polled once per tick for pending events.
type Source interface {
	Poll() []Event
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []Event

func (f SourceFunc) Poll() []Event { return f() }

// Sources polls several sources in order and concatenates their events.
type Sources []Source

func (s Sources) Poll() []Event {
	var events []Event
	for _, src := range s {
		if src == nil {
			continue
		}
		events = append(events, src.Poll()...)
	}
	return events
}

// DefaultQueueSize is the capacity used by NewQueue when size <= 0.
const DefaultQueueSize = 64

// Queue buffers events posted from other goroutines until the tick thread polls them.
// Post never blocks: when the buffer is full the event is dropped and counted.
type Queue struct {
	events  chan Event
	dropped atomic.Int64
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{events: make(chan Event, size)}
}

// Post enqueues ev. Returns false if the queue was full.
func (q *Queue) Post(ev Event) bool {
	select {
	case q.events <- ev:
		return true
	default:
		q.dropped.Inc()
		return false
	}
}

// Poll drains everything currently buffered, in arrival order.
func (q *Queue) Poll() []Event {
	var events []Event
	for {
		select {
		case ev := <-q.events:
			events = append(events, ev)
		default:
			return events
		}
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Script is a Source that replays one batch of events per Poll. Handy for tests
// and attract-mode demos.
type Script struct {
	batches [][]Event
}

// NewScript creates a Script; each argument is the batch returned by one Poll.
func NewScript(batches ...[]Event) *Script {
	return &Script{batches: batches}
}

func (s *Script) Poll() []Event {
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}

// Remaining returns the number of batches not yet polled.
func (s *Script) Remaining() int {
	return len(s.batches)
}
