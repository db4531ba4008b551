package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibgen/internal/config"
	"github.com/agbru/fibgen/internal/orchestration"
)

// Transcript records every term of a run to a file. It implements
// orchestration.ValuePresenter and ignores the writer it is handed.
type Transcript struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// Verify that Transcript implements orchestration.ValuePresenter.
var _ orchestration.ValuePresenter = (*Transcript)(nil)

// CreateTranscript creates the transcript file and writes its header.
//
// Parameters:
//   - path: The file to create. Missing parent directories are created.
//   - cfg: The configuration recorded in the header.
//
// Returns:
//   - *Transcript: The open transcript, nil when path is empty.
//   - error: An error if the file cannot be created.
func CreateTranscript(path string, cfg config.AppConfig) (*Transcript, error) {
	if path == "" {
		return nil, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	t := &Transcript{path: path, file: file, w: bufio.NewWriter(file)}
	fmt.Fprintf(t.w, "# Fibonacci Sequence Transcript\n")
	fmt.Fprintf(t.w, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(t.w, "# Numeric: %s\n", cfg.Numeric)
	fmt.Fprintf(t.w, "# Engine: %s\n", cfg.Engine)
	fmt.Fprintf(t.w, "# Warmup: %d\n", cfg.Warmup)
	fmt.Fprintf(t.w, "# Rounds: %d\n", cfg.Iterations)
	fmt.Fprintf(t.w, "\n")
	return t, nil
}

// Path returns the transcript's file path.
func (t *Transcript) Path() string {
	return t.path
}

// PresentTerm appends the term's uncolored line to the transcript.
func (t *Transcript) PresentTerm(term orchestration.Term, _ io.Writer) {
	fmt.Fprintln(t.w, FormatTermLine(term))
}

// Close appends the footer, flushes and closes the file.
func (t *Transcript) Close(result orchestration.DemoResult) error {
	fmt.Fprintf(t.w, "\n# Terms: %d\n", result.Total())
	fmt.Fprintf(t.w, "# Duration: %s\n", result.Duration)
	if err := t.w.Flush(); err != nil {
		t.file.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return t.file.Close()
}
