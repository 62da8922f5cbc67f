// Package status is the metrics facade between the simulation and its front-end.
// Publishers cache metric pointers once; readers may run on any goroutine.
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Metric is a point-in-time read of one named value
type Metric struct {
	Name  string
	Value float64
}

// Registry holds named integer and float metrics
// Registration uses mutex; cached pointer access is lock-free
type Registry struct {
	mu     sync.RWMutex
	ints   map[string]*atomic.Int64
	floats map[string]*Float
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		ints:   make(map[string]*atomic.Int64),
		floats: make(map[string]*Float),
	}
}

// Int returns the integer metric for name, creating it if absent
func (r *Registry) Int(name string) *atomic.Int64 {
	r.mu.RLock()
	if ptr, ok := r.ints[name]; ok {
		r.mu.RUnlock()
		return ptr
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := r.ints[name]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	r.ints[name] = ptr
	return ptr
}

// Float returns the float metric for name, creating it if absent
func (r *Registry) Float(name string) *Float {
	r.mu.RLock()
	if ptr, ok := r.floats[name]; ok {
		r.mu.RUnlock()
		return ptr
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := r.floats[name]; ok {
		return ptr
	}
	ptr := new(Float)
	r.floats[name] = ptr
	return ptr
}

// Read returns every metric in name order
func (r *Registry) Read() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.ints)+len(r.floats))
	for name, v := range r.ints {
		out = append(out, Metric{Name: name, Value: float64(v.Load())})
	}
	for name, v := range r.floats {
		out = append(out, Metric{Name: name, Value: v.Get()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ints) + len(r.floats)
}
