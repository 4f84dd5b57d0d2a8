// Package tui is the interactive todo view. It binds to the DataManager
// component and re-renders whenever the state paths it shows change.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/idilsaglam/tada/internal/headless"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/state"
	"github.com/idilsaglam/tada/internal/ui"
)

// API is what the view needs from the data manager.
type API interface {
	Todos() []model.Todo
	ToggleTodo(id string)
	AddTodo(t model.Todo)
	NextID() string
	FetchTodos(ctx context.Context) ([]model.Todo, error)
}

// Store is the state the view reads and writes besides todos.
type Store interface {
	state.Getter
	Set(path string, value any)
	Subscribe(path string, fn state.Listener) func()
}

// watchedPaths are the store paths the view re-renders on.
var watchedPaths = []string{state.PathTodos, state.PathFilter, state.PathSettings}

type fetchedMsg struct {
	todos []model.Todo
	err   error
}

type storeChangedMsg struct {
	path string
}

// listItem adapts a Todo to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

// itemDelegate renders one todo per line.
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.todo.Title
	if it.todo.Done {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, d.st.muted.Render(it.todo.ID+"."), box, text)
}

// Model is the Bubble Tea model of the todo view.
type Model struct {
	api   API
	store Store
	st    styles

	list    list.Model
	spinner spinner.Model
	loading bool
	err     error

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	width, height int
}

// New binds the view to the DataManager registered in reg. A missing
// DataManager is a *headless.MissingCapabilityError.
func New(reg *headless.Registry, store Store) (Model, error) {
	api, err := headless.API[API](reg, headless.DataManagerName)
	if err != nil {
		return Model{}, err
	}
	return newModel(api, store), nil
}

func newModel(api API, store Store) Model {
	theme := state.Lookup(store, state.PathTheme, "light")
	st := stylesFor(theme)

	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")

	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return bindings }
	l.AdditionalFullHelpKeys = func() []key.Binding { return bindings }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 200

	m := Model{
		api:     api,
		store:   store,
		list:    l,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading: true,
		ti:      ti,
	}
	m.restyle(theme)
	m.refresh()
	return m
}

// Run starts the view and blocks until the user quits.
func Run(reg *headless.Registry, store Store) error {
	m, err := New(reg, store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Store writes happen inside Update, so Send must not block the writer.
	for _, path := range watchedPaths {
		stop := store.Subscribe(path, func(changed string, _ any) {
			go p.Send(storeChangedMsg{path: changed})
		})
		defer stop()
	}

	_, err = p.Run()
	return err
}

func (m Model) fetch() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		todos, err := api.FetchTodos(context.Background())
		return fetchedMsg{todos: todos, err: err}
	}
}

func (m *Model) restyle(theme string) {
	m.st = stylesFor(theme)
	m.list.SetDelegate(itemDelegate{st: m.st})
	m.list.Styles.Title = m.st.title
	m.list.Styles.HelpStyle = m.st.help
	m.list.Styles.PaginationStyle = m.st.help
	m.spinner.Style = m.st.accent
}

// refresh rebuilds the list from the mirrored todos and the current filter.
func (m *Model) refresh() {
	all := m.api.Todos()
	filter := state.CurrentFilter(m.store)
	visible := filter.Apply(all)

	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, listItem{todo: t})
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}

	dn, pn := model.Stats(all)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s",
		m.st.title.Render("Todos"),
		m.st.success.Render("✔"), dn,
		m.st.pending.Render("•"), pn,
		m.st.accent.Render("Total"), len(all),
		m.st.muted.Render("["+string(filter)+"]"),
	)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case fetchedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			glog.Warningf("[DataComponent] %v", msg.err)
		} else {
			glog.V(1).Infof("[DataComponent] fetched %d todos", len(msg.todos))
		}
		m.refresh()
		return m, nil

	case storeChangedMsg:
		if strings.HasPrefix(msg.path, state.PathSettings) {
			m.restyle(state.Lookup(m.store, state.PathTheme, "light"))
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				m.api.AddTodo(model.Todo{ID: m.api.NextID(), Title: title})
				m.closeInput()
				m.refresh()
				if n := len(m.list.Items()); n > 0 {
					m.list.Select(n - 1)
				}
				return m, nil
			case "esc":
				m.closeInput()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			if it, ok := m.list.SelectedItem().(listItem); ok {
				m.api.ToggleTodo(it.todo.ID)
				m.refresh()
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		case "f":
			m.store.Set(state.PathFilter, state.CurrentFilter(m.store).Next())
			m.refresh()
			return m, nil
		case "t":
			next := ui.NextName(state.Lookup(m.store, state.PathTheme, "light"))
			m.store.Set(state.PathTheme, next)
			m.restyle(next)
			m.refresh()
			return m, nil
		case "r":
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.fetch())
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 5
	if m.adding {
		h -= 4
	}
	m.list.SetSize(m.width-4, max(h, 1))
}

func (m Model) View() string {
	content := m.list.View()
	if m.loading {
		content += "\n" + m.spinner.View() + " " + m.st.muted.Render("Fetching todos...")
	}
	if m.err != nil {
		content += "\n" + m.st.err.Render("✖ "+m.err.Error())
	}
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " — " + m.st.err.Render(m.addErr)
		}
		content += "\n" + m.st.border.Render(title+"\n"+m.ti.View())
	}
	return m.st.border.Render(content)
}
