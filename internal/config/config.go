// Package config defines fibgen's run configuration: command-line flags,
// FIBGEN_ environment overrides and validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fibgen/internal/errors"
	"github.com/agbru/fibgen/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable the configuration reads.
const EnvPrefix = "FIBGEN_"

// Numeric kinds a sequence can be instantiated with.
const (
	NumericInt   = "int"
	NumericFloat = "float"
	NumericBig   = "big"
)

// Engines realizing a sequence.
const (
	// EngineState uses the explicit two-term state object.
	EngineState = "state"
	// EngineCoroutine runs the producer function as a suspended coroutine.
	EngineCoroutine = "coroutine"
)

// Defaults applied when neither a flag nor an environment variable is set.
const (
	DefaultIterations = 10
	DefaultWarmup     = 2
	DefaultTimeout    = time.Minute
)

var (
	numericKinds = []string{NumericInt, NumericFloat, NumericBig}
	engines      = []string{EngineState, EngineCoroutine}
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Iterations is the number of interleaved rounds, one term per lane each.
	Iterations int
	// Warmup is the number of terms pulled from the first sequence before the
	// second one is created.
	Warmup int
	// Numeric selects the term type: int, float or big.
	Numeric string
	// Engine selects how sequences are realized: state or coroutine.
	Engine string
	// Verify checks every term against the fast-doubling oracle.
	Verify bool
	// Quiet prints bare term values only.
	Quiet bool
	// Verbose enables debug logging and the run summary.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Metrics dumps Prometheus metrics after the run.
	Metrics bool
	// OutputFile, when set, receives a transcript of the run.
	OutputFile string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// TUI launches the interactive stepping dashboard.
	TUI bool
}

// TermsNeeded returns how many terms the first sequence will produce.
func (c AppConfig) TermsNeeded() int {
	return c.Warmup + c.Iterations
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if c.Iterations < 0 {
		return apperrors.ValidationError{Field: "iterations", Message: "must be non-negative"}
	}
	if c.Warmup < 0 {
		return apperrors.ValidationError{Field: "warmup", Message: "must be non-negative"}
	}
	if !slices.Contains(numericKinds, c.Numeric) {
		return apperrors.ValidationError{
			Field:   "numeric",
			Message: fmt.Sprintf("unknown kind %q (valid: %s)", c.Numeric, strings.Join(numericKinds, ", ")),
		}
	}
	if !slices.Contains(engines, c.Engine) {
		return apperrors.ValidationError{
			Field:   "engine",
			Message: fmt.Sprintf("unknown engine %q (valid: %s)", c.Engine, strings.Join(engines, ", ")),
		}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}

	switch c.Numeric {
	case NumericInt:
		if c.TermsNeeded() > fibonacci.MaxInt64Term {
			return apperrors.NewConfigError(
				"%d terms overflow int (limit %d); use --numeric big", c.TermsNeeded(), fibonacci.MaxInt64Term)
		}
	case NumericFloat:
		if c.TermsNeeded() > fibonacci.MaxFloat64Term {
			return apperrors.NewConfigError(
				"%d terms overflow float (limit %d); use --numeric big", c.TermsNeeded(), fibonacci.MaxFloat64Term)
		}
		if c.Verify {
			return apperrors.NewConfigError("--verify requires an exact numeric kind (int or big)")
		}
	}
	return nil
}

// ParseConfig parses command-line arguments, applies FIBGEN_ environment
// overrides for flags that were not given, and validates the result.
//
// Parameters:
//   - programName: The name of the program, used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Where usage and parse errors are written.
//
// Returns:
//   - AppConfig: The resulting configuration.
//   - error: flag.ErrHelp when help was requested, otherwise a parse or
//     validation error.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.IntVar(&config.Iterations, "iterations", DefaultIterations, "Number of interleaved rounds.")
	fs.IntVar(&config.Iterations, "n", DefaultIterations, "Number of interleaved rounds (shorthand).")
	fs.IntVar(&config.Warmup, "warmup", DefaultWarmup, "Terms pulled from sequence #1 before sequence #2 is created.")
	fs.StringVar(&config.Numeric, "numeric", NumericInt, "Term type: "+strings.Join(numericKinds, ", ")+".")
	fs.StringVar(&config.Engine, "engine", EngineState, "Sequence engine: "+strings.Join(engines, ", ")+".")
	fs.BoolVar(&config.Verify, "verify", false, "Check every term against the fast-doubling oracle.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print bare term values only.")
	fs.BoolVar(&config.Quiet, "q", false, "Print bare term values only (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and the run summary.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging and the run summary (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Dump Prometheus metrics after the run.")
	fs.StringVar(&config.OutputFile, "output", "", "Write a transcript of the run to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Write a transcript of the run to this file (shorthand).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.BoolVar(&config.TUI, "tui", false, "Step the two sequences interactively.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Prints two independently advancing Fibonacci sequences.\n\n")
		fmt.Fprintf(errorWriter, "Flags (each may also be set as %s<NAME>):\n", EnvPrefix)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	config.Numeric = strings.ToLower(config.Numeric)
	config.Engine = strings.ToLower(config.Engine)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(errorWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return config, nil
}
