package cli

import (
	"io"
	"os"
	"time"

	"jobclock/internal/api"
	"jobclock/internal/config"
	"jobclock/internal/store"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the dependencies every command handler needs. The store is
// held alongside the API because the watch path subscribes to snapshots
// directly instead of polling through the operation surface.
type App struct {
	api    api.API
	store  store.Store
	config *config.Config
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, st store.Store, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		store:  st,
		config: cfg,
		out:    os.Stdout,
	}
}

// SetOutput redirects command output, used by tests to capture it.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}
