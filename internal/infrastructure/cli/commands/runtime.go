// Package commands defines the cobra subcommands exposed by the uniterm
// binary. Each command file owns one subcommand tree; shared wiring lives in
// Runtime, which builds the application container on first use so that
// persistent flags are parsed before any service is constructed.
package commands

import (
	"context"
	"sync"

	"github.com/doeshing/uniterm/internal/app"
)

// Runtime carries persistent flag values and the lazily built container.
// Cobra binds the flag fields before any RunE fires; the first command that
// needs services triggers the build.
type Runtime struct {
	ConfigPath string
	Dialect    string
	Verbose    bool
	NoColor    bool

	mu        sync.Mutex
	container *app.Container
}

// Container returns the application container, building it on first call.
// Subsequent calls return the same instance.
func (rt *Runtime) Container(ctx context.Context) (*app.Container, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.container != nil {
		return rt.container, nil
	}
	container, err := app.BuildContainer(ctx, app.Options{
		ConfigPath: rt.ConfigPath,
		Dialect:    rt.Dialect,
		Verbose:    rt.Verbose,
	})
	if err != nil {
		return nil, err
	}
	rt.container = container
	return rt.container, nil
}
