// Package app wires the state store, the data source and the headless
// components together from a config.
package app

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/datamanager"
	"github.com/idilsaglam/tada/internal/headless"
	"github.com/idilsaglam/tada/internal/state"
)

// App is a configured application instance.
type App struct {
	Config   *config.Config
	Store    *state.Store
	Registry *headless.Registry
}

// New builds the store from the initial state, then registers the data
// manager and the data logger, both auto-initialized.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ids, err := datamanager.ParseIDStrategy(cfg.IDs)
	if err != nil {
		return nil, err
	}

	initial := state.Initial()
	initial.Settings.Theme = cfg.Theme
	store := state.New(initial.Tree())

	reg := headless.NewRegistry(&headless.Context{
		Store:  store,
		Source: cfg.NewSource(),
	})
	if err := reg.Register(headless.DataLoggerName, headless.DataLogger, headless.Options{AutoInit: true}); err != nil {
		return nil, err
	}
	if err := reg.Register(headless.DataManagerName, headless.DataManager(datamanager.WithIDGenerator(ids)), headless.Options{AutoInit: true}); err != nil {
		return nil, err
	}

	glog.Infof("[App] ready (source=%s, ids=%s, theme=%s)", cfg.Source.Kind, cfg.IDs, cfg.Theme)
	return &App{Config: cfg, Store: store, Registry: reg}, nil
}

// DataManager returns the registered data manager API.
func (a *App) DataManager() (*datamanager.Manager, error) {
	return headless.API[*datamanager.Manager](a.Registry, headless.DataManagerName)
}
