package engine

// Agent is implemented by every registry element via component.Identity
type Agent interface {
	AssignID(id uint64)
	AgentID() uint64
}

// Registry is an ordered collection of one agent kind
// Removal is two-phase: Mark during a scan, Compact once after it
// Insertion order is preserved; scans that say "first match wins" rely on it
type Registry[T Agent] struct {
	items     []T
	marked    []bool
	markCount int
	nextID    uint64
}

// NewRegistry creates an empty registry with preallocated capacity
func NewRegistry[T Agent](capacity int) *Registry[T] {
	return &Registry[T]{
		items:  make([]T, 0, capacity),
		marked: make([]bool, 0, capacity),
		nextID: 1,
	}
}

// Add assigns the next ID and appends the agent
func (r *Registry[T]) Add(item T) T {
	item.AssignID(r.nextID)
	r.nextID++
	r.items = append(r.items, item)
	r.marked = append(r.marked, false)
	return item
}

// Len returns the number of agents including marked ones
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// At returns the agent at index i
func (r *Registry[T]) At(i int) T {
	return r.items[i]
}

// Items returns the backing slice
// Valid until the next Add, Compact or Clear; callers must not append to it
func (r *Registry[T]) Items() []T {
	return r.items
}

// Mark flags index i for removal at the next Compact
// Returns false if i was already marked
func (r *Registry[T]) Mark(i int) bool {
	if r.marked[i] {
		return false
	}
	r.marked[i] = true
	r.markCount++
	return true
}

// IsMarked reports whether index i is pending removal
func (r *Registry[T]) IsMarked(i int) bool {
	return r.marked[i]
}

// Pending returns the number of marked agents
func (r *Registry[T]) Pending() int {
	return r.markCount
}

// Compact removes all marked agents in one pass, preserving order of the rest
// Returns the number removed
func (r *Registry[T]) Compact() int {
	if r.markCount == 0 {
		return 0
	}
	removed := r.markCount
	kept := r.items[:0]
	for i, item := range r.items {
		if !r.marked[i] {
			kept = append(kept, item)
		}
	}
	// Release references held past the new length
	var zero T
	for i := len(kept); i < len(r.items); i++ {
		r.items[i] = zero
	}
	r.items = kept
	r.marked = r.marked[:len(kept)]
	for i := range r.marked {
		r.marked[i] = false
	}
	r.markCount = 0
	return removed
}

// Clear drops every agent and restarts ID assignment
func (r *Registry[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.items = r.items[:0]
	r.marked = r.marked[:0]
	r.markCount = 0
	r.nextID = 1
}

// Find returns the agent with the given ID and its index
func (r *Registry[T]) Find(id uint64) (item T, index int, ok bool) {
	for i, it := range r.items {
		if it.AgentID() == id {
			return it, i, true
		}
	}
	var zero T
	return zero, -1, false
}
