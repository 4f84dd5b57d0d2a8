package state

import "github.com/idilsaglam/tada/internal/model"

// Well-known key paths of the application state.
const (
	PathCounter       = "counter"
	PathTodos         = "todos"
	PathFilter        = "filter"
	PathSettings      = "settings"
	PathTheme         = "settings.theme"
	PathNotifications = "settings.notificationsEnabled"
)

// Filter selects which todos a view shows.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterActive Filter = "active"
	FilterDone   Filter = "done"
)

// Next cycles all -> active -> done -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterDone
	default:
		return FilterAll
	}
}

// Match reports whether t is visible under f. Unknown filters show everything.
func (f Filter) Match(t model.Todo) bool {
	switch f {
	case FilterActive:
		return !t.Done
	case FilterDone:
		return t.Done
	default:
		return true
	}
}

// Apply returns the todos visible under f, preserving order.
func (f Filter) Apply(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// CurrentFilter reads the filter path, accepting either a Filter or a plain string.
func CurrentFilter(g Getter) Filter {
	switch v := g.Get(PathFilter, FilterAll).(type) {
	case Filter:
		return v
	case string:
		return Filter(v)
	}
	return FilterAll
}

// Settings is the settings branch of the state.
type Settings struct {
	Theme                string
	NotificationsEnabled bool
}

// AppState is the shape of the whole state tree.
type AppState struct {
	Counter  int
	Todos    []model.Todo
	Filter   Filter
	Settings Settings
}

// Initial returns the state every store starts from.
func Initial() AppState {
	return AppState{
		Counter: 0,
		Todos:   []model.Todo{},
		Filter:  FilterAll,
		Settings: Settings{
			Theme:                "light",
			NotificationsEnabled: true,
		},
	}
}

// Tree converts the state into the map form a Store holds.
func (a AppState) Tree() map[string]any {
	todos := make([]model.Todo, len(a.Todos))
	copy(todos, a.Todos)
	return map[string]any{
		PathCounter: a.Counter,
		PathTodos:   todos,
		PathFilter:  a.Filter,
		PathSettings: map[string]any{
			"theme":                a.Settings.Theme,
			"notificationsEnabled": a.Settings.NotificationsEnabled,
		},
	}
}
