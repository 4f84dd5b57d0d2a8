package datamanager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/source"
	"github.com/idilsaglam/tada/internal/state"
)

// recordingStore counts writes to the todos path.
type recordingStore struct {
	*state.Store
	mu   sync.Mutex
	sets int
}

func (r *recordingStore) Set(path string, value any) {
	r.mu.Lock()
	if path == state.PathTodos {
		r.sets++
	}
	r.mu.Unlock()
	r.Store.Set(path, value)
}

func newStore() *recordingStore {
	return &recordingStore{Store: state.New(state.Initial().Tree())}
}

func staticSource(todos ...model.Todo) source.Source {
	return source.Func(func(context.Context) ([]model.Todo, error) {
		return todos, nil
	})
}

func failingSource(err error) source.Source {
	return source.Func(func(context.Context) ([]model.Todo, error) {
		return nil, err
	})
}

func TestFetchTodos_EndToEnd(t *testing.T) {
	m := New(source.NewMock(0), newStore())
	assert.Empty(t, m.Todos())

	got, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	want := []model.Todo{
		{ID: "1", Title: "Learn Juris", Done: false},
		{ID: "2", Title: "Build a Todo App", Done: false},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, want, m.Todos())

	m.ToggleTodo("1")
	assert.Equal(t, []model.Todo{
		{ID: "1", Title: "Learn Juris", Done: true},
		{ID: "2", Title: "Build a Todo App", Done: false},
	}, m.Todos())
}

func TestTodos_ReadIsIdempotent(t *testing.T) {
	m := New(source.NewMock(0), newStore())
	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, m.Todos(), m.Todos())
}

func TestTodos_ReturnsCopy(t *testing.T) {
	m := New(source.NewMock(0), newStore())
	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	list := m.Todos()
	list[0].Title = "mutated"

	assert.Equal(t, "Learn Juris", m.Todos()[0].Title)
}

func TestTodos_ReadsMirrorNotIndex(t *testing.T) {
	st := newStore()
	m := New(staticSource(), st)
	m.AddTodo(model.Todo{ID: "1", Title: "a"})

	st.Set(state.PathTodos, []model.Todo{{ID: "x", Title: "external"}})

	assert.Equal(t, []model.Todo{{ID: "x", Title: "external"}}, m.Todos())
	_, ok := m.GetTodoByID("x")
	assert.False(t, ok)
}

func TestFetchTodos_ReplacesNotMerges(t *testing.T) {
	a := model.Todo{ID: "1", Title: "A"}
	b := model.Todo{ID: "2", Title: "B"}
	c := model.Todo{ID: "3", Title: "C"}

	m := New(staticSource(b, c), newStore())
	m.AddTodo(a)

	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Todo{b, c}, m.Todos())
	assert.Equal(t, 2, m.Len())
	_, ok := m.GetTodoByID("1")
	assert.False(t, ok, "A must not survive a fetch that does not contain it")
}

func TestFetchTodos_CollidingIDKeepsFetchedValue(t *testing.T) {
	m := New(staticSource(model.Todo{ID: "1", Title: "fetched"}), newStore())
	m.AddTodo(model.Todo{ID: "1", Title: "local", Done: true})

	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	got, ok := m.GetTodoByID("1")
	require.True(t, ok)
	assert.Equal(t, model.Todo{ID: "1", Title: "fetched"}, got)
}

func TestFetchTodos_FailureLeavesStateUntouched(t *testing.T) {
	boom := errors.New("network down")
	st := newStore()
	m := New(failingSource(boom), st)
	m.AddTodo(model.Todo{ID: "1", Title: "keep me"})
	before := m.Todos()
	setsBefore := st.sets

	got, err := m.FetchTodos(context.Background())
	assert.Nil(t, got)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "network down")

	assert.Equal(t, before, m.Todos())
	assert.Equal(t, setsBefore, st.sets, "no write to the mirror on failure")
	got1, ok := m.GetTodoByID("1")
	require.True(t, ok)
	assert.Equal(t, "keep me", got1.Title)
}

func TestFetchTodos_CancelledContext(t *testing.T) {
	m := New(source.NewMock(time.Hour), newStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.FetchTodos(ctx)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Todos())
}

func TestFetchTodos_LastCompletionWins(t *testing.T) {
	release := make(chan struct{})
	first := model.Todo{ID: "1", Title: "first call"}
	second := model.Todo{ID: "2", Title: "second call"}

	calls := 0
	var mu sync.Mutex
	src := source.Func(func(context.Context) ([]model.Todo, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release
			return []model.Todo{first}, nil
		}
		return []model.Todo{second}, nil
	})
	m := New(src, newStore())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.FetchTodos(context.Background())
	}()
	// Wait until the first call is parked inside the source.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, time.Millisecond)

	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{second}, m.Todos())

	close(release)
	<-done

	assert.Equal(t, []model.Todo{first}, m.Todos(), "the call that completed last wins")
	assert.Equal(t, 1, m.Len())
	_, ok := m.GetTodoByID("2")
	assert.False(t, ok)
}

func TestToggleTodo_FlipsExactlyOneField(t *testing.T) {
	m := New(staticSource(), newStore())
	m.AddTodo(model.Todo{ID: "7", Title: "x", Done: false})

	m.ToggleTodo("7")
	got, _ := m.GetTodoByID("7")
	assert.Equal(t, model.Todo{ID: "7", Title: "x", Done: true}, got)

	m.ToggleTodo("7")
	got, _ = m.GetTodoByID("7")
	assert.Equal(t, model.Todo{ID: "7", Title: "x", Done: false}, got)
	assert.Equal(t, []model.Todo{got}, m.Todos())
}

func TestToggleTodo_AbsentIDIsNoop(t *testing.T) {
	st := newStore()
	m := New(staticSource(), st)
	m.AddTodo(model.Todo{ID: "1", Title: "a"})
	before := m.Todos()
	sets := st.sets

	m.ToggleTodo("missing")

	assert.Equal(t, before, m.Todos())
	assert.Equal(t, sets, st.sets)
	assert.Equal(t, 1, m.Len())
}

func TestToggleTodo_KeepsIndexOrder(t *testing.T) {
	m := New(staticSource(
		model.Todo{ID: "b", Title: "B"},
		model.Todo{ID: "a", Title: "A"},
		model.Todo{ID: "c", Title: "C"},
	), newStore())
	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	m.ToggleTodo("a")

	list := m.Todos()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.True(t, list[1].Done)
}

func TestAddTodo_AppendsToMirror(t *testing.T) {
	m := New(source.NewMock(0), newStore())
	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	added := model.Todo{ID: m.NextID(), Title: "new"}
	m.AddTodo(added)

	assert.Equal(t, "3", added.ID)
	list := m.Todos()
	require.Len(t, list, 3)
	assert.Equal(t, added, list[2])
	got, ok := m.GetTodoByID("3")
	require.True(t, ok)
	assert.Equal(t, added, got)
}

func TestAddTodo_ReusedIDOverwritesIndexButAppendsToList(t *testing.T) {
	m := New(staticSource(), newStore())
	m.AddTodo(model.Todo{ID: "1", Title: "first"})
	m.AddTodo(model.Todo{ID: "1", Title: "second"})

	assert.Equal(t, 1, m.Len())
	got, _ := m.GetTodoByID("1")
	assert.Equal(t, "second", got.Title)
	assert.Equal(t, []model.Todo{
		{ID: "1", Title: "first"},
		{ID: "1", Title: "second"},
	}, m.Todos())

	// A toggle rewrites the mirror from the index and collapses the duplicate.
	m.ToggleTodo("1")
	assert.Equal(t, []model.Todo{{ID: "1", Title: "second", Done: true}}, m.Todos())
}

func TestAddTodo_NoValidation(t *testing.T) {
	m := New(staticSource(), newStore())
	m.AddTodo(model.Todo{})

	assert.Equal(t, []model.Todo{{}}, m.Todos())
	_, ok := m.GetTodoByID("")
	assert.True(t, ok)
}

func TestGetTodoByID_Absent(t *testing.T) {
	m := New(staticSource(), newStore())
	_, ok := m.GetTodoByID("nope")
	assert.False(t, ok)
}

func TestNextID_SizeBasedCollides(t *testing.T) {
	m := New(staticSource(
		model.Todo{ID: "2", Title: "only"},
	), newStore())
	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	// One entry with id "2" means the next id is "2" as well.
	assert.Equal(t, "2", m.NextID())
}

func TestNextID_CustomGenerator(t *testing.T) {
	m := New(staticSource(), newStore(), WithIDGenerator(Counter(10)))
	assert.Equal(t, "11", m.NextID())
	assert.Equal(t, "12", m.NextID())
}

func TestMirror_NotifiesSubscribers(t *testing.T) {
	st := state.New(state.Initial().Tree())
	m := New(source.NewMock(0), st)

	var seen [][]model.Todo
	st.Subscribe(state.PathTodos, func(_ string, v any) {
		seen = append(seen, v.([]model.Todo))
		// Listeners may read back through the manager.
		assert.Equal(t, v, m.Todos())
	})

	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)
	m.ToggleTodo("2")
	m.AddTodo(model.Todo{ID: "3", Title: "c"})

	require.Len(t, seen, 3)
	assert.Len(t, seen[0], 2)
	assert.True(t, seen[1][1].Done)
	assert.Len(t, seen[2], 3)
}

func TestNextID_CounterSkipsFetchedIDs(t *testing.T) {
	m := New(source.NewMock(0), newStore(), WithIDGenerator(Counter(0)))
	_, err := m.FetchTodos(context.Background())
	require.NoError(t, err)

	id := m.NextID()
	_, taken := m.GetTodoByID(id)
	require.False(t, taken, "minted id %q already in the index", id)

	m.AddTodo(model.Todo{ID: id, Title: "Buy milk"})
	m.ToggleTodo(id)

	list := m.Todos()
	require.Len(t, list, 3)
	assert.Equal(t, "Learn Juris", list[0].Title)
	assert.Equal(t, model.Todo{ID: id, Title: "Buy milk", Done: true}, list[2])
}

func TestMirror_ListenersMayReadIndex(t *testing.T) {
	st := state.New(state.Initial().Tree())
	m := New(source.NewMock(0), st)

	type seen struct {
		found bool
		size  int
		next  string
	}
	var got []seen
	st.Subscribe(state.PathTodos, func(string, any) {
		_, ok := m.GetTodoByID("1")
		got = append(got, seen{found: ok, size: m.Len(), next: m.NextID()})
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.FetchTodos(context.Background())
		m.AddTodo(model.Todo{ID: "3", Title: "c"})
		m.ToggleTodo("1")
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mutation blocked by a listener reading the manager")
	}

	assert.Equal(t, []seen{
		{found: true, size: 2, next: "3"},
		{found: true, size: 3, next: "4"},
		{found: true, size: 3, next: "4"},
	}, got, "listeners observe the index already updated")
}
