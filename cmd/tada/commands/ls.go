package commands

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/ui"
)

func newListCmd(opts *options) *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Fetch todos and print them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, opts)
			if err != nil {
				return err
			}
			dm, err := a.DataManager()
			if err != nil {
				return err
			}
			if _, err := dm.FetchTodos(cmd.Context()); err != nil {
				ui.Fail(cmd.ErrOrStderr(), err.Error())
				return err
			}

			lines := ui.ListLines(dm.Todos(), group)
			lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: run `tada ui` to toggle and add"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}
