package headless

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/idilsaglam/tada/internal/datamanager"
	"github.com/idilsaglam/tada/internal/model"
)

// Names of the built-in components.
const (
	DataManagerName = "DataManager"
	DataLoggerName  = "DataLogger"
)

// DataManager registers a datamanager.Manager as the component's API.
func DataManager(opts ...datamanager.Option) ComponentFunc {
	return func(ctx *Context) (*Instance, error) {
		if ctx == nil || ctx.Store == nil || ctx.Source == nil {
			return nil, fmt.Errorf("data manager needs a store and a source")
		}
		return &Instance{API: datamanager.New(ctx.Source, ctx.Store, opts...)}, nil
	}
}

// DataLogger logs its own registration and every state change.
func DataLogger(ctx *Context) (*Instance, error) {
	return &Instance{
		Hooks: Hooks{
			OnRegister: func() {
				glog.Infof("[DataLogger] registered")
				if ctx == nil || ctx.Store == nil {
					return
				}
				ctx.Store.Subscribe("", func(path string, value any) {
					glog.V(1).Infof("[DataLogger] %s = %s", path, summarize(value))
				})
			},
		},
	}, nil
}

func summarize(v any) string {
	if todos, ok := v.([]model.Todo); ok {
		done, pending := model.Stats(todos)
		return fmt.Sprintf("%d todos (%d done, %d pending)", len(todos), done, pending)
	}
	return fmt.Sprintf("%v", v)
}
