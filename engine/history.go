package engine

// Sample is one timeline point of population counts
type Sample struct {
	Tick    uint64
	Elapsed float64
	Counts  Counts
}

// History is the append-only population time series for charting
type History struct {
	interval float64
	next     float64
	samples  []Sample
}

// NewHistory samples every interval sim seconds; 0 samples every call
func NewHistory(interval float64) *History {
	return &History{
		interval: interval,
		samples:  make([]Sample, 0, 1024),
	}
}

// Record appends a sample once elapsed reaches the next sampling point
// The first call after Clear always records
func (h *History) Record(tick uint64, elapsed float64, counts Counts) bool {
	if len(h.samples) > 0 && elapsed+1e-9 < h.next {
		return false
	}
	h.samples = append(h.samples, Sample{Tick: tick, Elapsed: elapsed, Counts: counts})
	h.next = elapsed + h.interval
	return true
}

// Len returns the number of samples
func (h *History) Len() int {
	return len(h.samples)
}

// Samples returns a copy of the series
func (h *History) Samples() []Sample {
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Clear drops all samples
func (h *History) Clear() {
	h.samples = h.samples[:0]
	h.next = 0
}
