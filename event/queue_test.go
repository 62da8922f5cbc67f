package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cytosim/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.Consume())

	q.Push(Event{Type: EventInfection, Subject: 1})
	q.Push(Event{Type: EventBurst, Subject: 1, Count: 18})
	q.Push(Event{Type: EventCapture, Subject: 7})
	require.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, EventInfection, got[0].Type)
	assert.Equal(t, 18, got[1].Count)
	assert.Equal(t, uint64(7), got[2].Subject)

	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventCapture, Subject: uint64(i)})
	}
	require.Equal(t, parameter.EventQueueSize, q.Len())

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, uint64(10), got[0].Subject)
	assert.Equal(t, uint64(total-1), got[len(got)-1].Subject)
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventReset})
	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "burst", EventBurst.String())
	assert.Equal(t, "unknown", EventType(999).String())
}
