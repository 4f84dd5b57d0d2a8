package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/state"
	"github.com/idilsaglam/tada/internal/ui"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the state store and data manager without a UI",
		Long: `Print the initial state, switch the theme, fetch the todos, toggle the
first one and print the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s := a.Store

			fmt.Fprintf(out, "Todos: %d\n", len(state.Lookup[[]model.Todo](s, state.PathTodos, nil)))
			fmt.Fprintf(out, "Counter: %v\n", s.Get(state.PathCounter, 0))
			fmt.Fprintf(out, "Filter: %s\n", state.CurrentFilter(s))
			fmt.Fprintf(out, "Theme: %v\n", s.Get(state.PathTheme, nil))
			s.Set(state.PathTheme, "dark")
			fmt.Fprintf(out, "Updated Theme: %v\n", s.Get(state.PathTheme, nil))

			dm, err := a.DataManager()
			if err != nil {
				return err
			}
			todos, err := dm.FetchTodos(cmd.Context())
			if err != nil {
				ui.Fail(cmd.ErrOrStderr(), err.Error())
				return err
			}
			ui.OK(out, fmt.Sprintf("fetched %d todos", len(todos)))

			if len(todos) > 0 {
				dm.ToggleTodo(todos[0].ID)
				ui.OK(out, "toggled "+todos[0].ID)
			}

			ui.SetTheme("dark")
			ui.Panel(out, ui.ListLines(dm.Todos(), false))
			return nil
		},
	}
}
