package visibility

import "sync"

// Registry is an in-process Watcher. Intersection notifications arrive
// through Deliver, either from the browser (via HTTP) or injected in tests.
type Registry struct {
	mu       sync.Mutex
	watchers map[string]func(Entry)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{watchers: make(map[string]func(Entry))}
}

// Observe registers fn for target, replacing any previous registration.
func (r *Registry) Observe(target string, fn func(Entry)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers[target] = fn
}

// Unobserve removes the registration for target. Removing an absent target
// is a no-op.
func (r *Registry) Unobserve(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.watchers, target)
}

// Deliver hands e to the watcher of e.Target and reports whether one was
// registered.
func (r *Registry) Deliver(e Entry) bool {
	r.mu.Lock()
	fn, ok := r.watchers[e.Target]
	r.mu.Unlock()
	if !ok {
		return false
	}
	fn(e)
	return true
}

// Watching reports whether target has a registration.
func (r *Registry) Watching(target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.watchers[target]
	return ok
}
