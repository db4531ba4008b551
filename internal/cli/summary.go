package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/fibgen/internal/config"
	"github.com/agbru/fibgen/internal/fibonacci"
	"github.com/agbru/fibgen/internal/format"
	"github.com/agbru/fibgen/internal/metrics"
	"github.com/agbru/fibgen/internal/orchestration"
	"github.com/agbru/fibgen/internal/ui"
)

// Header is the single line printed above the terms.
const Header = "Two fibonacci sequences generated in parallel:"

// PrintHeader writes Header to out.
func PrintHeader(out io.Writer) {
	fmt.Fprintln(out, Header)
}

// PrintExecutionConfig displays the run configuration. It is diagnostic
// output and goes to the error writer in verbose mode.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for diagnostics.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Sequences: %s%s%s terms via the %s%s%s engine",
		ui.ColorBold(), cfg.Numeric, ui.ColorReset(), ui.ColorBold(), cfg.Engine, ui.ColorReset())
	if cfg.Numeric == config.NumericBig {
		fmt.Fprintf(out, " (%s)", fibonacci.Backend())
	}
	fmt.Fprintf(out, ".\n")
	fmt.Fprintf(out, "Warm-up: %d, rounds: %d, timeout: %s.\n", cfg.Warmup, cfg.Iterations, cfg.Timeout)
	fmt.Fprintf(out, "Environment: Go %s.\n\n", runtime.Version())
}

// SummaryInfo gathers what DisplaySummary reports.
type SummaryInfo struct {
	Result     orchestration.DemoResult
	Verify     bool
	Before     metrics.MemorySnapshot
	After      metrics.MemorySnapshot
	Transcript string
}

// DisplaySummary prints the end-of-run report: term counts, timing,
// verification status and allocation figures.
func DisplaySummary(info SummaryInfo, out io.Writer) {
	res := info.Result
	duration := format.FormatExecutionDuration(res.Duration)
	if res.Duration < time.Microsecond {
		duration = "< 1µs"
	}

	fmt.Fprintf(out, "\n--- Summary ---\n")
	for lane, terms := range res.Terms {
		last := "-"
		if len(terms) > 0 {
			last = groupDigits(terms[len(terms)-1])
		}
		fmt.Fprintf(out, "  %s%s%s %s terms, last %s\n",
			ui.LaneColor(lane), padRight(laneLabel(lane), 8), ui.ColorReset(),
			padRight(fmt.Sprint(len(terms)), 4), last)
	}
	fmt.Fprintf(out, "  %s %s\n", padRight("Duration:", 17), duration)
	if info.Verify {
		fmt.Fprintf(out, "  %s %s%d terms match%s\n", padRight("Verified:", 17),
			ui.ColorSuccess(), res.Verified, ui.ColorReset())
	}
	fmt.Fprintf(out, "  %s %s\n", padRight("Allocated:", 17),
		format.FormatBytes(info.After.AllocatedSince(info.Before)))
	fmt.Fprintf(out, "  %s %d\n", padRight("GC cycles:", 17), info.After.NumGC-info.Before.NumGC)
	if info.Transcript != "" {
		fmt.Fprintf(out, "\n%s✓ Transcript saved to: %s%s\n", ui.ColorSuccess(), info.Transcript, ui.ColorReset())
	}
}

// DisplayError prints a failed run's error in the error color.
func DisplayError(err error, out io.Writer) {
	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
}

// groupDigits adds thousands separators to integer terms and leaves other
// renderings untouched.
func groupDigits(s string) string {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return s
	}
	return format.FormatNumberString(s)
}
