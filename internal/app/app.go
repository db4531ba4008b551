// Package app wires configuration, sequence engines, presentation and
// metrics into the fibgen command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fibgen/internal/config"
	"github.com/agbru/fibgen/internal/logging"
	"github.com/agbru/fibgen/internal/metrics"
	"github.com/agbru/fibgen/internal/tui"
	"github.com/agbru/fibgen/internal/ui"
)

// Application represents the fibgen application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.Collector
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithCollector sets the metrics collector, letting callers inspect the
// registry after a run.
func WithCollector(c *metrics.Collector) AppOption {
	return func(a *Application) { a.Metrics = c }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name at index 0.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "fibgen"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	app.ensureDefaults()
	return app, nil
}

func (a *Application) ensureDefaults() {
	if a.ErrWriter == nil {
		a.ErrWriter = io.Discard
	}
	if a.Logger == nil {
		a.Logger = newDiagnosticLogger(a.ErrWriter, a.Config.NoColor)
	}
	if a.Metrics == nil {
		a.Metrics = metrics.NewCollector()
	}
}

// newDiagnosticLogger logs in console format on a terminal and as JSON
// lines otherwise.
func newDiagnosticLogger(w io.Writer, noColor bool) logging.Logger {
	if ui.IsTerminal(w) {
		return logging.NewConsoleLogger(w, noColor)
	}
	return logging.NewLogger(w, "fibgen")
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.ensureDefaults()
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runDemo(ctx, out)
}

// runTUI launches the interactive stepping dashboard. The run timeout does
// not apply; the session lasts until the user quits or a signal arrives.
func (a *Application) runTUI(ctx context.Context) int {
	a.Logger.Debug("starting dashboard",
		logging.String("numeric", a.Config.Numeric),
		logging.String("engine", a.Config.Engine))
	return tui.Run(ctx, textSourceFactory(a.Config), a.Metrics, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
