// Package datamanager owns the authoritative todo index and keeps the
// "todos" path of the state store mirrored from it.
package datamanager

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/glog"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/source"
	"github.com/idilsaglam/tada/internal/state"
)

// Store is the part of the state store the manager needs.
type Store interface {
	Get(path string, def any) any
	Set(path string, value any)
}

// FetchError reports a failed call to the data source.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch todos: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// Manager is the single owner of todo state. The index is the source of
// truth for lookups; the store holds the ordered mirror views bind to.
//
// Mutations are serialized by writeMu. The index is updated under mu, which
// is released before the mirror is written, so store listeners may read the
// Manager. A listener must not call AddTodo, ToggleTodo or FetchTodos
// synchronously; dispatch those from another goroutine.
type Manager struct {
	src   source.Source
	store Store
	ids   IDGenerator

	writeMu sync.Mutex

	mu    sync.RWMutex
	byID  map[string]model.Todo
	order []string
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator replaces the default size-based id scheme.
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Manager) { m.ids = g }
}

// New returns a Manager with an empty index.
func New(src source.Source, store Store, opts ...Option) *Manager {
	m := &Manager{
		src:   src,
		store: store,
		ids:   Sequential(),
		byID:  map[string]model.Todo{},
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// FetchTodos loads todos from the source. On success the mirror is replaced
// with the fetched sequence and the index rebuilt from it; on failure
// neither is touched and a *FetchError is returned. Overlapping calls are
// not merged: the last one to complete wins.
func (m *Manager) FetchTodos(ctx context.Context) ([]model.Todo, error) {
	glog.Infof("[DataManager] fetching todos")

	todos, err := m.src.Fetch(ctx)
	if err != nil {
		glog.Warningf("[DataManager] fetch failed: %v", err)
		return nil, &FetchError{Err: err}
	}

	m.writeMu.Lock()
	m.mu.Lock()
	m.byID = make(map[string]model.Todo, len(todos))
	m.order = nil
	for _, t := range todos {
		m.put(t)
	}
	m.mu.Unlock()
	m.store.Set(state.PathTodos, clone(todos))
	m.writeMu.Unlock()

	glog.Infof("[DataManager] todos fetched and state updated (%d)", len(todos))
	return todos, nil
}

// GetTodoByID looks id up in the index.
func (m *Manager) GetTodoByID(id string) (model.Todo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.byID[id]
	return t, ok
}

// Todos reads the mirrored list from the store.
func (m *Manager) Todos() []model.Todo {
	return clone(state.Lookup[[]model.Todo](m.store, state.PathTodos, nil))
}

// Len is the number of entries in the index.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// NextID mints an id for a new todo. With the default generator this is
// the index size plus one, which collides once ids stop being dense.
func (m *Manager) NextID() string {
	return m.ids.NextID(m.Len(), m.has)
}

func (m *Manager) has(id string) bool {
	_, ok := m.GetTodoByID(id)
	return ok
}

// AddTodo writes t into the index, overwriting any entry with the same id,
// and appends it to the mirrored list. A reused id therefore appears twice
// in the list but once in the index.
func (m *Manager) AddTodo(t model.Todo) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	m.put(t)
	m.mu.Unlock()

	list := state.Lookup[[]model.Todo](m.store, state.PathTodos, nil)
	next := make([]model.Todo, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, t)
	m.store.Set(state.PathTodos, next)
}

// ToggleTodo flips Done on the todo with the given id and rewrites the
// mirror from the index. Unknown ids are ignored.
func (m *Manager) ToggleTodo(id string) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	t, ok := m.byID[id]
	glog.V(1).Infof("[DataManager] toggling todo id=%q found=%t", id, ok)
	if !ok {
		m.mu.Unlock()
		return
	}
	m.byID[id] = t.Toggled()
	list := m.values()
	m.mu.Unlock()

	m.store.Set(state.PathTodos, list)
}

func (m *Manager) put(t model.Todo) {
	if _, ok := m.byID[t.ID]; !ok {
		m.order = append(m.order, t.ID)
	}
	m.byID[t.ID] = t
}

func (m *Manager) values() []model.Todo {
	out := make([]model.Todo, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

func clone(todos []model.Todo) []model.Todo {
	if todos == nil {
		return []model.Todo{}
	}
	out := make([]model.Todo, len(todos))
	copy(out, todos)
	return out
}
