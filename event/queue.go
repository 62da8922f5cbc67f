package event

import (
	"github.com/lixenwraith/cytosim/parameter"
)

// Queue is a fixed ring buffer of lifecycle events
// Single-threaded: the simulation pushes during a tick, the front-end drains between ticks
// Overflow: oldest events overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]Event
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, overwriting the oldest when full
func (q *Queue) Push(ev Event) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]Event, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&parameter.EventBufferMask])
	}
	q.head = q.tail
	return result
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Clear drops pending events
func (q *Queue) Clear() {
	q.head = q.tail
}
