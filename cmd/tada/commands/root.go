package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/app"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/ui"
)

var versionString = "dev"

// options are the root flags; they apply to every subcommand and override
// the config file.
type options struct {
	configPath string
	theme      string
	source     string
	file       string
	ids        string
	delay      time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tada",
		Short: "tada - a tiny reactive todo app",
		Long: `tada keeps a todo list in an in-memory state store and shows it in the
terminal. Todos are fetched from a simulated API (or a read-only JSON
fixture), then toggled and added from the interactive view.

Running tada without a subcommand starts the interactive view.`,
		Version:       versionString,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath, "path to the config file")
	f.StringVar(&opts.theme, "theme", "", "theme: light, dark, classic, neon or mono")
	f.StringVar(&opts.source, "source", "", "todo source: mock or file")
	f.StringVar(&opts.file, "file", "", "JSON fixture for --source file")
	f.StringVar(&opts.ids, "ids", "", "id strategy: sequential, counter, uuid or ulid")
	f.DurationVar(&opts.delay, "delay", 0, "simulated latency of the mock source")
	// glog flags (-v, --logtostderr, --log_dir, ...)
	f.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(newUICmd(opts), newListCmd(opts), newDemoCmd(opts))
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return newRootCmd().Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("source") {
		cfg.Source.Kind = opts.source
	}
	if flags.Changed("file") {
		cfg.Source.Path = opts.file
		if !flags.Changed("source") {
			cfg.Source.Kind = config.SourceFile
		}
	}
	if flags.Changed("ids") {
		cfg.IDs = opts.ids
	}
	if flags.Changed("delay") {
		cfg.Source.Delay = opts.delay
	}
	return cfg, nil
}

func buildApp(cmd *cobra.Command, opts *options) (*app.App, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	a, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.Theme)
	return a, nil
}
