package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistorySamplesOnInterval(t *testing.T) {
	h := NewHistory(0.25)

	assert.True(t, h.Record(1, 0.1, Counts{Healthy: 5}), "first sample always records")
	assert.False(t, h.Record(2, 0.2, Counts{}))
	assert.False(t, h.Record(3, 0.3, Counts{}))
	assert.True(t, h.Record(4, 0.35, Counts{Healthy: 4}))
	assert.Equal(t, 2, h.Len())

	samples := h.Samples()
	assert.Equal(t, uint64(1), samples[0].Tick)
	assert.Equal(t, 4, samples[1].Counts.Healthy)

	samples[0].Tick = 99
	assert.Equal(t, uint64(1), h.Samples()[0].Tick, "Samples returns a copy")
}

func TestHistoryZeroIntervalRecordsEveryCall(t *testing.T) {
	h := NewHistory(0)
	for i := 1; i <= 5; i++ {
		assert.True(t, h.Record(uint64(i), float64(i)*0.01, Counts{}))
	}
	assert.Equal(t, 5, h.Len())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(1)
	h.Record(1, 0, Counts{})
	h.Record(2, 5, Counts{})
	h.Clear()

	assert.Zero(t, h.Len())
	assert.True(t, h.Record(3, 0.1, Counts{}))
}
