// Package headless registers named, UI-less components and hands their API
// to the views that bind to them.
package headless

import (
	"fmt"
	"slices"
	"sync"

	"github.com/golang/glog"
	"github.com/samber/do"

	"github.com/idilsaglam/tada/internal/source"
	"github.com/idilsaglam/tada/internal/state"
)

// Context is what a component is constructed with.
type Context struct {
	Store  *state.Store
	Source source.Source
}

// Hooks are optional lifecycle callbacks of a component.
type Hooks struct {
	OnRegister func()
}

// Instance is a constructed component.
type Instance struct {
	API   any
	Hooks Hooks
}

// ComponentFunc constructs a component.
type ComponentFunc func(ctx *Context) (*Instance, error)

// Options tune registration.
type Options struct {
	AutoInit bool // construct at registration instead of first lookup
}

// MissingCapabilityError is returned when a view binds to a component that
// is not registered, or whose API is not of the expected type.
type MissingCapabilityError struct {
	Name string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("%s API not available", e.Name)
}

// Registry maps component names to their constructors and instances.
// Construction and instance caching are delegated to a do.Injector; the
// registry adds the auto-init option, the OnRegister hook and typed
// lookup errors. Constructors and hooks run without any registry lock
// held, so they may look up other components.
type Registry struct {
	ctx      *Context
	injector *do.Injector

	mu    sync.Mutex
	names []string
}

// NewRegistry returns an empty registry whose components get ctx.
func NewRegistry(ctx *Context) *Registry {
	return &Registry{ctx: ctx, injector: do.New()}
}

// Register adds a component under name. With AutoInit the component is
// constructed right away and its OnRegister hook runs; a construction error
// is returned and nothing is registered. Otherwise construction and the
// hook happen on first lookup.
func (r *Registry) Register(name string, fn ComponentFunc, opts Options) error {
	if !r.reserve(name) {
		return fmt.Errorf("component %q already registered", name)
	}

	if opts.AutoInit {
		inst, err := r.build(name, fn)
		if err != nil {
			r.release(name)
			return err
		}
		do.ProvideNamedValue(r.injector, name, inst)
	} else {
		do.ProvideNamed(r.injector, name, func(*do.Injector) (*Instance, error) {
			return r.build(name, fn)
		})
	}
	glog.Infof("[Registry] registered %s (autoInit=%t)", name, opts.AutoInit)
	return nil
}

func (r *Registry) reserve(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.names, name) {
		return false
	}
	r.names = append(r.names, name)
	return true
}

func (r *Registry) release(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.Index(r.names, name); i >= 0 {
		r.names = slices.Delete(r.names, i, i+1)
	}
}

func (r *Registry) build(name string, fn ComponentFunc) (*Instance, error) {
	inst, err := fn(r.ctx)
	if err != nil {
		return nil, fmt.Errorf("init %s: %w", name, err)
	}
	if inst == nil {
		inst = &Instance{}
	}
	if inst.Hooks.OnRegister != nil {
		inst.Hooks.OnRegister()
	}
	return inst, nil
}

// Lookup returns the API of name, constructing the component on first use.
func (r *Registry) Lookup(name string) (any, error) {
	r.mu.Lock()
	known := slices.Contains(r.names, name)
	r.mu.Unlock()
	if !known {
		return nil, &MissingCapabilityError{Name: name}
	}

	inst, err := do.InvokeNamed[*Instance](r.injector, name)
	if err != nil {
		return nil, err
	}
	return inst.API, nil
}

// Names lists registered components in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.names)
}

// API is the typed Lookup.
func API[T any](r *Registry, name string) (T, error) {
	var zero T
	if r == nil {
		return zero, &MissingCapabilityError{Name: name}
	}
	v, err := r.Lookup(name)
	if err != nil {
		return zero, err
	}
	api, ok := v.(T)
	if !ok {
		return zero, &MissingCapabilityError{Name: name}
	}
	return api, nil
}
