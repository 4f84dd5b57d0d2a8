package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/tada/internal/model"
)

func TestFilter_NextCycles(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterDone, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterDone.Next())
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}

func TestFilter_Apply(t *testing.T) {
	todos := []model.Todo{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b", Done: true},
		{ID: "3", Title: "c"},
	}

	assert.Equal(t, todos, FilterAll.Apply(todos))
	assert.Equal(t, []model.Todo{todos[0], todos[2]}, FilterActive.Apply(todos))
	assert.Equal(t, []model.Todo{todos[1]}, FilterDone.Apply(todos))
}

func TestCurrentFilter_AcceptsStrings(t *testing.T) {
	s := New(Initial().Tree())
	assert.Equal(t, FilterAll, CurrentFilter(s))

	s.Set(PathFilter, "done")
	assert.Equal(t, FilterDone, CurrentFilter(s))

	s.Set(PathFilter, FilterActive)
	assert.Equal(t, FilterActive, CurrentFilter(s))

	s.Set(PathFilter, 3)
	assert.Equal(t, FilterAll, CurrentFilter(s))
}

func TestInitial_Tree(t *testing.T) {
	tree := Initial().Tree()

	assert.Equal(t, 0, tree[PathCounter])
	assert.Equal(t, []model.Todo{}, tree[PathTodos])
	assert.Equal(t, FilterAll, tree[PathFilter])
	assert.Equal(t, map[string]any{"theme": "light", "notificationsEnabled": true}, tree[PathSettings])
}
