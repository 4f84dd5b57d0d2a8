// Package source provides the remote data sources the data manager fetches
// todos from.
package source

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/idilsaglam/tada/internal/model"
)

// Source returns a collection of todos. Fetch either yields zero or more
// todos or fails.
type Source interface {
	Fetch(ctx context.Context) ([]model.Todo, error)
}

// DefaultDelay is the simulated latency of the mock client.
const DefaultDelay = time.Second

// Mock simulates an API call: it waits Delay and returns two constant todos.
type Mock struct {
	Delay time.Duration
}

// NewMock returns a Mock with the given simulated latency.
func NewMock(delay time.Duration) *Mock {
	return &Mock{Delay: delay}
}

// MockTodos is what Mock.Fetch resolves with.
func MockTodos() []model.Todo {
	return []model.Todo{
		{ID: "1", Title: "Learn Juris", Done: false},
		{ID: "2", Title: "Build a Todo App", Done: false},
	}
}

func (m *Mock) Fetch(ctx context.Context) ([]model.Todo, error) {
	glog.Infof("[ApiClient] fetching todos (delay %s)", m.Delay)

	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	return MockTodos(), nil
}

// Func adapts a plain function to Source.
type Func func(ctx context.Context) ([]model.Todo, error)

func (f Func) Fetch(ctx context.Context) ([]model.Todo, error) { return f(ctx) }
