package commands

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/tui"
)

func newUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive todo view",
		Long: `Open the interactive todo view. Todos are fetched on start.

Keys: space/enter toggle, a add, f filter, t theme, r refresh, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}
}

func runUI(cmd *cobra.Command, opts *options) error {
	a, err := buildApp(cmd, opts)
	if err != nil {
		return err
	}
	return tui.Run(a.Registry, a.Store)
}
