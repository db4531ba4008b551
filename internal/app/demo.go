package app

import (
	"context"
	"io"
	"math/big"
	"strconv"

	"github.com/agbru/fibgen/internal/cli"
	"github.com/agbru/fibgen/internal/config"
	apperrors "github.com/agbru/fibgen/internal/errors"
	"github.com/agbru/fibgen/internal/fibonacci"
	"github.com/agbru/fibgen/internal/generator"
	"github.com/agbru/fibgen/internal/logging"
	"github.com/agbru/fibgen/internal/metrics"
	"github.com/agbru/fibgen/internal/orchestration"
	"github.com/agbru/fibgen/internal/ui"
)

// runDemo runs the non-interactive two-lane demonstration.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	cfg := a.Config
	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Timeout)
	defer cancelTimeout()

	if !cfg.Quiet {
		if cfg.Verbose {
			cli.PrintExecutionConfig(cfg, a.ErrWriter)
		}
		cli.PrintHeader(out)
	}

	presenters := orchestration.MultiPresenter{cli.TermPresenter{Quiet: cfg.Quiet}}

	transcript, err := cli.CreateTranscript(cfg.OutputFile, cfg)
	if err != nil {
		a.Logger.Error("cannot create transcript", err, logging.String("path", cfg.OutputFile))
		cli.DisplayError(err, a.ErrWriter)
		return apperrors.ExitErrorGeneric
	}
	if transcript != nil {
		presenters = append(presenters, transcript)
	}

	// Terms go to a pipe or file; show progress on the terminal instead.
	var progress *cli.ProgressPresenter
	if !cfg.Quiet && !ui.IsTerminal(out) && ui.IsTerminal(a.ErrWriter) {
		progress = cli.StartProgress(2*cfg.Iterations+cfg.Warmup, a.ErrWriter)
		presenters = append(presenters, progress)
	}

	a.Logger.Debug("starting demo",
		logging.String("numeric", cfg.Numeric),
		logging.String("engine", cfg.Engine),
		logging.Int("warmup", cfg.Warmup),
		logging.Int("iterations", cfg.Iterations),
		logging.Bool("verify", cfg.Verify))

	before := metrics.ReadMemory()
	result, err := a.dispatch(ctx, presenters, out)
	after := metrics.ReadMemory()
	if progress != nil {
		progress.Stop()
	}
	a.Metrics.ObserveRun(result.Duration)

	if transcript != nil {
		if cerr := transcript.Close(result); cerr != nil && err == nil {
			err = cerr
		}
	}

	if err != nil {
		a.Logger.Error("demo failed", err, logging.Int("terms", result.Total()))
		cli.DisplayError(err, a.ErrWriter)
		return apperrors.ExitCodeFor(err)
	}

	if cfg.Verbose && !cfg.Quiet {
		info := cli.SummaryInfo{Result: result, Verify: cfg.Verify, Before: before, After: after}
		if transcript != nil {
			info.Transcript = transcript.Path()
		}
		cli.DisplaySummary(info, a.ErrWriter)
	}

	if cfg.Metrics {
		if err := a.Metrics.Dump(out); err != nil {
			a.Logger.Error("cannot write metrics", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// dispatch instantiates the demonstration for the configured numeric kind.
func (a *Application) dispatch(ctx context.Context, presenter orchestration.ValuePresenter, out io.Writer) (orchestration.DemoResult, error) {
	switch a.Config.Numeric {
	case config.NumericFloat:
		opts := demoOptions[float64](a, cli.FormatFloatTerm, nil)
		return orchestration.RunDemo(ctx, numberSourceFactory[float64](a.Config.Engine), opts, presenter, out)
	case config.NumericBig:
		opts := demoOptions(a, (*big.Int).String, verifyBig)
		return orchestration.RunDemo(ctx, bigSourceFactory(a.Config.Engine), opts, presenter, out)
	default:
		opts := demoOptions(a, formatInt, verifyInt)
		return orchestration.RunDemo(ctx, numberSourceFactory[int64](a.Config.Engine), opts, presenter, out)
	}
}

func demoOptions[T any](a *Application, format func(T) string, verify orchestration.Verifier[T]) orchestration.DemoOptions[T] {
	opts := orchestration.DemoOptions[T]{
		Warmup:     a.Config.Warmup,
		Iterations: a.Config.Iterations,
		Format:     format,
		Observer:   a.Metrics,
		Logger:     a.Logger,
	}
	if a.Config.Verify {
		opts.Verify = verify
	}
	return opts
}

// numberSourceFactory returns fresh built-in numeric sequences realized by
// the given engine.
func numberSourceFactory[T fibonacci.Number](engine string) orchestration.SourceFactory[T] {
	if engine == config.EngineCoroutine {
		return func() orchestration.Source[T] {
			return generator.New(fibonacci.Produce[T]())
		}
	}
	return func() orchestration.Source[T] {
		return orchestration.Infallible[T](fibonacci.New[T]())
	}
}

// bigSourceFactory returns fresh arbitrary-precision sequences realized by
// the given engine.
func bigSourceFactory(engine string) orchestration.SourceFactory[*big.Int] {
	if engine == config.EngineCoroutine {
		return func() orchestration.Source[*big.Int] {
			return generator.New(fibonacci.ProduceBig())
		}
	}
	return func() orchestration.Source[*big.Int] {
		return orchestration.Infallible[*big.Int](fibonacci.NewBig())
	}
}

// textSourceFactory returns sources of rendered terms for the configured
// numeric kind and engine.
func textSourceFactory(cfg config.AppConfig) orchestration.SourceFactory[string] {
	switch cfg.Numeric {
	case config.NumericFloat:
		f := numberSourceFactory[float64](cfg.Engine)
		return func() orchestration.Source[string] { return orchestration.Formatted(f(), cli.FormatFloatTerm) }
	case config.NumericBig:
		f := bigSourceFactory(cfg.Engine)
		return func() orchestration.Source[string] { return orchestration.Formatted(f(), (*big.Int).String) }
	default:
		f := numberSourceFactory[int64](cfg.Engine)
		return func() orchestration.Source[string] { return orchestration.Formatted(f(), formatInt) }
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// verifyInt compares an int64 term with the exact value of F(index).
func verifyInt(index int, v int64) (bool, string) {
	want := fibonacci.FastDoubling(uint64(index))
	return want.IsInt64() && want.Int64() == v, want.String()
}

// verifyBig compares an arbitrary-precision term with the exact value of F(index).
func verifyBig(index int, v *big.Int) (bool, string) {
	want := fibonacci.FastDoubling(uint64(index))
	return want.Cmp(v) == 0, want.String()
}
