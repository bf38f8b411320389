package events

// Queue is an unbounded FIFO buffer of pending events.
// Not safe for concurrent use; the dispatcher owns it exclusively.
type Queue struct {
	items []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an event to the tail
func (q *Queue) Enqueue(event Event) {
	q.items = append(q.items, event)
}

// Drain removes and returns all queued events in FIFO order.
// Events enqueued after Drain returns belong to the next drain.
func (q *Queue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Requeue puts events back at the head of the queue, ahead of anything
// enqueued since the last drain, keeping their relative order
func (q *Queue) Requeue(events []Event) {
	if len(events) == 0 {
		return
	}
	items := make([]Event, 0, len(events)+len(q.items))
	items = append(items, events...)
	q.items = append(items, q.items...)
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.items)
}
