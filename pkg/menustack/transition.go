package menustack

// RequestKind is the type of a queued stack mutation.
type RequestKind int

const (
	RequestPush RequestKind = iota
	RequestPop
	RequestReplace
	RequestQuit
)

func (k RequestKind) String() string {
	switch k {
	case RequestPush:
		return "push"
	case RequestPop:
		return "pop"
	case RequestReplace:
		return "replace"
	case RequestQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Request is a deferred instruction to mutate the stack.
type Request struct {
	Kind    RequestKind
	Factory Factory // RequestPush, RequestReplace

	// Origin identifies the screen that raised the request. Pop and Replace
	// always act on the top as it stands when the request is applied, which
	// may already differ from Origin when several requests share a tick.
	OriginID   uint64
	OriginName string
}

// Queue buffers requests raised during a tick. It is only touched from the tick thread.
type Queue struct {
	pending []Request
}

// Enqueue appends r.
func (q *Queue) Enqueue(r Request) {
	q.pending = append(q.pending, r)
}

// Drain returns all pending requests in arrival order and empties the queue.
// Requests enqueued while the returned batch is being applied land in the
// next batch.
func (q *Queue) Drain() []Request {
	if len(q.pending) == 0 {
		return nil
	}
	batch := q.pending
	q.pending = nil
	return batch
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	return len(q.pending)
}
