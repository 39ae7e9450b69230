package scene

// ResourceState is the load state of a cached mesh or texture.
type ResourceState int

// Resource states.
const (
	StatePending ResourceState = iota
	StateReady
	StateFailed
)

func (s ResourceState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	default:
		return "failed"
	}
}

type resource[T any] struct {
	path    string
	state   ResourceState
	value   T
	err     error
	waiters []func(error)
}

// cache stores loaded resources by ID and deduplicates them by path.
// IDs are never reused.
type cache[ID ~uint32, T any] struct {
	entries map[ID]*resource[T]
	byPath  map[string]ID
	next    ID
}

func newCache[ID ~uint32, T any](first ID) *cache[ID, T] {
	return &cache[ID, T]{
		entries: make(map[ID]*resource[T]),
		byPath:  make(map[string]ID),
		next:    first,
	}
}

func (c *cache[ID, T]) alloc(path string, state ResourceState) (ID, *resource[T]) {
	id := c.next
	c.next++
	r := &resource[T]{path: path, state: state}
	c.entries[id] = r
	if path != "" {
		c.byPath[path] = id
	}
	return id, r
}

// add stores an already loaded value.
func (c *cache[ID, T]) add(path string, v T) ID {
	id, r := c.alloc(path, StateReady)
	r.value = v
	return id
}

// begin registers a pending load for path.
func (c *cache[ID, T]) begin(path string) ID {
	id, _ := c.alloc(path, StatePending)
	return id
}

// lookup finds a pending or ready entry for path. Failed loads are
// forgotten so a later request retries them.
func (c *cache[ID, T]) lookup(path string) (ID, *resource[T], bool) {
	id, ok := c.byPath[path]
	if !ok {
		return 0, nil, false
	}
	return id, c.entries[id], true
}

// resolve completes a pending entry and runs its waiters.
func (c *cache[ID, T]) resolve(id ID, v T, err error) {
	r, ok := c.entries[id]
	if !ok || r.state != StatePending {
		return
	}
	if err != nil {
		r.state = StateFailed
		r.err = err
		if c.byPath[r.path] == id {
			delete(c.byPath, r.path)
		}
	} else {
		r.state = StateReady
		r.value = v
	}

	waiters := r.waiters
	r.waiters = nil
	for _, w := range waiters {
		w(err)
	}
}

// wait runs fn once the entry resolves, or right away if it already has.
func (c *cache[ID, T]) wait(id ID, fn func(error)) {
	r := c.entries[id]
	switch r.state {
	case StatePending:
		r.waiters = append(r.waiters, fn)
	case StateReady:
		fn(nil)
	default:
		fn(r.err)
	}
}

func (c *cache[ID, T]) get(id ID) (T, bool) {
	r, ok := c.entries[id]
	if !ok || r.state != StateReady {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (c *cache[ID, T]) state(id ID) (ResourceState, bool) {
	r, ok := c.entries[id]
	if !ok {
		return 0, false
	}
	return r.state, true
}

// ready returns every loaded value.
func (c *cache[ID, T]) ready() map[ID]T {
	out := make(map[ID]T, len(c.entries))
	for id, r := range c.entries {
		if r.state == StateReady {
			out[id] = r.value
		}
	}
	return out
}
