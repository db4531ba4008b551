package orchestration

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/fibgen/internal/errors"
	"github.com/agbru/fibgen/internal/logging"
)

const (
	// DefaultWarmup is the number of terms pulled from the first generator
	// before the second one is created.
	DefaultWarmup = 2
	// DefaultIterations is the number of interleaved rounds.
	DefaultIterations = 10
	// LaneCount is the number of generators a demonstration runs.
	LaneCount = 2

	tracerName = "github.com/agbru/fibgen/internal/orchestration"
)

// DemoOptions configures a demonstration run. Nil hooks select their
// defaults; Warmup and Iterations are used as given.
type DemoOptions[T any] struct {
	// Warmup is the number of terms pulled from lane 0 alone.
	Warmup int
	// Iterations is the number of rounds pulling one term from each lane.
	Iterations int
	// Format renders a term. Defaults to fmt.Sprint.
	Format func(T) string
	// Verify, when set, checks every term before it is presented.
	Verify Verifier[T]
	// Observer receives lifecycle notifications. Defaults to NullObserver.
	Observer TermObserver
	// Logger receives debug traces of the run. Defaults to a no-op logger.
	Logger logging.Logger
}

// DefaultDemoOptions returns the options of the canonical demonstration:
// two warm-up terms followed by ten rounds.
func DefaultDemoOptions[T any]() DemoOptions[T] {
	return DemoOptions[T]{Warmup: DefaultWarmup, Iterations: DefaultIterations}
}

func (o DemoOptions[T]) withDefaults() DemoOptions[T] {
	if o.Format == nil {
		o.Format = func(v T) string { return fmt.Sprint(v) }
	}
	if o.Observer == nil {
		o.Observer = NullObserver{}
	}
	if o.Logger == nil {
		o.Logger = logging.NewNopLogger()
	}
	return o
}

// DemoResult summarizes a completed (or interrupted) run.
type DemoResult struct {
	// Terms holds the formatted terms of each lane in production order.
	Terms [LaneCount][]string
	// Verified is the number of terms checked by the verifier.
	Verified int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Total returns the number of terms produced across both lanes.
func (r DemoResult) Total() int {
	return len(r.Terms[0]) + len(r.Terms[1])
}

// RunDemo runs the two-lane demonstration.
//
// It creates the first generator, pulls the warm-up terms from it, creates the
// second generator and then alternates one request to the first with one
// request to the second for the configured number of rounds. Every term is
// handed to the presenter as soon as it is produced.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines, checked before every pull.
//   - factory: Creates each lane's generator. It must return a fresh instance per call.
//   - opts: Warm-up and round counts plus optional hooks.
//   - presenter: Renders each term.
//   - out: The io.Writer the presenter writes to.
//
// Returns:
//   - DemoResult: The terms produced so far, also on error.
//   - error: A context error, a source error or an apperrors.MismatchError.
func RunDemo[T any](ctx context.Context, factory SourceFactory[T], opts DemoOptions[T], presenter ValuePresenter, out io.Writer) (result DemoResult, err error) {
	opts = opts.withDefaults()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "RunDemo")
	span.SetAttributes(
		attribute.Int("fibgen.warmup", max(opts.Warmup, 0)),
		attribute.Int("fibgen.iterations", max(opts.Iterations, 0)),
		attribute.Bool("fibgen.verify", opts.Verify != nil),
	)
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		span.SetAttributes(attribute.Int("fibgen.terms", result.Total()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	d := &demo[T]{factory: factory, opts: opts, presenter: presenter, out: out, result: &result}

	first := d.create(0)
	defer release(first)
	for range max(opts.Warmup, 0) {
		if err := d.pull(ctx, first, 0); err != nil {
			return result, err
		}
	}

	second := d.create(1)
	defer release(second)
	for range max(opts.Iterations, 0) {
		if err := d.pull(ctx, first, 0); err != nil {
			return result, err
		}
		if err := d.pull(ctx, second, 1); err != nil {
			return result, err
		}
	}

	opts.Logger.Debug("demo finished",
		logging.Int("terms", result.Total()),
		logging.Int("verified", result.Verified))
	return result, nil
}

// demo carries the per-run state shared by the pull steps.
type demo[T any] struct {
	factory   SourceFactory[T]
	opts      DemoOptions[T]
	presenter ValuePresenter
	out       io.Writer
	result    *DemoResult
}

func (d *demo[T]) create(lane int) Source[T] {
	src := d.factory()
	d.opts.Observer.OnGeneratorCreated(lane)
	d.opts.Logger.Debug("generator created", logging.Int("lane", lane+1))
	return src
}

func (d *demo[T]) pull(ctx context.Context, src Source[T], lane int) error {
	index := len(d.result.Terms[lane]) + 1
	if err := ctx.Err(); err != nil {
		return apperrors.WrapError(err, "seq #%d stopped before term %d", lane+1, index)
	}

	value, err := src.Next()
	if err != nil {
		return apperrors.WrapError(err, "seq #%d term %d", lane+1, index)
	}

	text := d.opts.Format(value)
	if d.opts.Verify != nil {
		ok, want := d.opts.Verify(index, value)
		if !ok {
			return apperrors.MismatchError{Lane: lane + 1, Index: index, Got: text, Want: want}
		}
		d.result.Verified++
		d.opts.Observer.OnVerified()
	}

	d.result.Terms[lane] = append(d.result.Terms[lane], text)
	d.presenter.PresentTerm(Term{Lane: lane, Index: index, Text: text}, d.out)
	d.opts.Observer.OnTerm(lane, index)
	return nil
}

// release stops sources that hold resources, such as suspended coroutines.
func release[T any](src Source[T]) {
	if s, ok := src.(interface{ Stop() }); ok {
		s.Stop()
	}
}
