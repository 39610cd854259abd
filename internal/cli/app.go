package cli

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"work-tracker/internal/config"
	"work-tracker/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds the loaded configuration and the streams commands talk to
type App struct {
	config *config.Config
	in     io.Reader
	out    io.Writer
}

// NewApp creates a new CLI application instance
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		config: cfg,
		in:     in,
		out:    out,
	}
}

// services wires the tracker of the configured project. The container must be closed.
func (a *App) services() (*services.ServiceContainer, error) {
	return services.NewServiceContainer(a.config, timeNow)
}

// interactive reports whether input comes from a terminal
func (a *App) interactive() bool {
	f, ok := a.in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
