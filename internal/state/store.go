// Package state holds the application state tree: a key-path addressed
// container whose writers notify the listeners bound to the written path.
package state

import (
	"strings"
	"sync"
)

// Listener is called after a Set that touches the path it was bound to.
// path is the path that was written, value what the store holds at path
// when the listener runs, which may already be newer than the write.
type Listener func(path string, value any)

// Getter reads a value by dotted key path, falling back to def when the
// path does not resolve.
type Getter interface {
	Get(path string, def any) any
}

// Store is a process-wide state tree addressed by dotted key paths such as
// "todos" or "settings.theme". It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	root map[string]any

	subMu  sync.Mutex
	subs   []*subscription
	nextID int
}

type subscription struct {
	id   int
	path string
	fn   Listener
}

// New creates a store seeded with a copy of initial.
func New(initial map[string]any) *Store {
	root := cloneTree(initial)
	if root == nil {
		root = map[string]any{}
	}
	return &Store{root: root}
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Get returns the value at path, or def when any segment is missing.
// Map branches are returned as copies.
func (s *Store) Get(path string, def any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cur any = s.root
	for _, seg := range splitPath(path) {
		m, ok := cur.(map[string]any)
		if !ok {
			return def
		}
		if cur, ok = m[seg]; !ok {
			return def
		}
	}
	if m, ok := cur.(map[string]any); ok {
		return cloneTree(m)
	}
	return cur
}

// Set writes value at path, creating intermediate branches as needed and
// replacing any non-branch value in the way. Listeners bound to path, to a
// prefix of it or to a path beneath it are notified after the write.
// Concurrent writers may have their notifications interleaved; each
// listener call reads the current value, so the last call a listener sees
// carries the latest state.
// Setting the empty path replaces the whole tree when value is a map.
func (s *Store) Set(path string, value any) {
	segs := splitPath(path)

	s.mu.Lock()
	if len(segs) == 0 {
		m, ok := value.(map[string]any)
		if !ok {
			s.mu.Unlock()
			return
		}
		s.root = cloneTree(m)
	} else {
		cur := s.root
		for _, seg := range segs[:len(segs)-1] {
			next, ok := cur[seg].(map[string]any)
			if !ok {
				next = map[string]any{}
				cur[seg] = next
			}
			cur = next
		}
		if m, ok := value.(map[string]any); ok {
			value = cloneTree(m)
		}
		cur[segs[len(segs)-1]] = value
	}
	s.mu.Unlock()

	s.notify(path)
}

// Subscribe binds fn to path. The empty path receives every change.
// The returned func removes the binding.
func (s *Store) Subscribe(path string, fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	sub := &subscription{id: s.nextID, path: path, fn: fn}
	s.subs = append(s.subs, sub)

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, x := range s.subs {
			if x.id == sub.id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(path string) {
	s.subMu.Lock()
	var hit []Listener
	for _, sub := range s.subs {
		if related(sub.path, path) {
			hit = append(hit, sub.fn)
		}
	}
	s.subMu.Unlock()

	for _, fn := range hit {
		fn(path, s.Get(path, nil))
	}
}

// related reports whether a listener bound to bound cares about a write at written.
func related(bound, written string) bool {
	switch {
	case bound == "" || written == "" || bound == written:
		return true
	case strings.HasPrefix(written, bound+"."):
		return true
	case strings.HasPrefix(bound, written+"."):
		return true
	}
	return false
}

func cloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			v = cloneTree(sub)
		}
		out[k] = v
	}
	return out
}

// Lookup is a typed Get. It returns def when the path is missing or holds a
// value of another type.
func Lookup[T any](g Getter, path string, def T) T {
	if v, ok := g.Get(path, def).(T); ok {
		return v
	}
	return def
}
