package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/fibgen/internal/orchestration"
	"github.com/agbru/fibgen/internal/ui"
)

func TestFormatTermLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		term orchestration.Term
		want string
	}{
		{"first lane", orchestration.Term{Lane: 0, Index: 3, Text: "2"}, "seq #1: 2"},
		{"second lane", orchestration.Term{Lane: 1, Index: 1, Text: "1"}, "seq #2:       1"},
		{"float term", orchestration.Term{Lane: 1, Index: 4, Text: "3.000"}, "seq #2:       3.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatTermLine(tt.term); got != tt.want {
				t.Errorf("FormatTermLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTermPresenter(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	terms := []orchestration.Term{
		{Lane: 0, Index: 1, Text: "1"},
		{Lane: 1, Index: 1, Text: "1"},
		{Lane: 0, Index: 2, Text: "1"},
	}

	t.Run("labeled", func(t *testing.T) {
		var buf bytes.Buffer
		for _, term := range terms {
			TermPresenter{}.PresentTerm(term, &buf)
		}
		want := "seq #1: 1\nseq #2:       1\nseq #1: 1\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		for _, term := range terms {
			TermPresenter{Quiet: true}.PresentTerm(term, &buf)
		}
		if buf.String() != "1\n1\n1\n" {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestTermPresenter_Colors(t *testing.T) {
	ui.SetCurrentTheme(ui.DarkTheme)

	var buf bytes.Buffer
	TermPresenter{}.PresentTerm(orchestration.Term{Lane: 1, Index: 1, Text: "1"}, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, ui.DarkTheme.Lanes[1]) {
		t.Errorf("expected lane color prefix, got %q", out)
	}
	if !strings.HasSuffix(out, ui.DarkTheme.Reset+"       1\n") {
		t.Errorf("expected reset before the value, got %q", out)
	}
}

func TestFormatFloatTerm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.000"},
		{144, "144.000"},
		{0.5, "0.500"},
	}
	for _, tt := range tests {
		if got := FormatFloatTerm(tt.in); got != tt.want {
			t.Errorf("FormatFloatTerm(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
