package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/fibgen/internal/errors"
	"github.com/agbru/fibgen/internal/metrics"
	"github.com/agbru/fibgen/internal/orchestration"
)

// Layout constants for the TUI dashboard.
const (
	headerHeight  = 1
	footerHeight  = 1
	minBodyHeight = 8
	tickInterval  = 500 * time.Millisecond
)

// TickMsg drives the header refresh.
type TickMsg time.Time

// ContextCancelledMsg reports that the parent context ended.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model for the stepping dashboard: one panel
// per generator, stepped by key presses.
type Model struct {
	header HeaderModel
	footer FooterModel
	lanes  [orchestration.LaneCount]LaneModel
	keymap KeyMap

	ctx      context.Context
	factory  orchestration.SourceFactory[string]
	observer orchestration.TermObserver

	width    int
	height   int
	exitCode int
}

// NewModel creates a dashboard with two fresh generators.
func NewModel(ctx context.Context, factory orchestration.SourceFactory[string], observer orchestration.TermObserver, version string) Model {
	if observer == nil {
		observer = orchestration.NullObserver{}
	}
	keymap := DefaultKeyMap()
	m := Model{
		header:   NewHeaderModel(version),
		footer:   NewFooterModel(keymap.ShortHelp()),
		keymap:   keymap,
		ctx:      ctx,
		factory:  factory,
		observer: observer,
		exitCode: apperrors.ExitSuccess,
	}
	m.createLanes()
	return m
}

func (m *Model) createLanes() {
	for i := range m.lanes {
		m.lanes[i] = NewLaneModel(i, m.factory())
		m.observer.OnGeneratorCreated(i)
	}
}

func (m *Model) stopLanes() {
	for _, l := range m.lanes {
		l.Stop()
	}
}

// Lane returns the panel of a 0-based lane.
func (m Model) Lane(i int) LaneModel {
	return m.lanes[i]
}

// ExitCode returns the exit code the session ended with.
func (m Model) ExitCode() int {
	return m.exitCode
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case TickMsg:
		m.header.SetHeap(metrics.ReadMemory().HeapAlloc)
		return m, tickCmd()

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		m.stopLanes()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.stopLanes()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.AdvanceFirst):
		m.advance(0)

	case key.Matches(msg, m.keymap.AdvanceSecond):
		m.advance(1)

	case key.Matches(msg, m.keymap.AdvanceBoth):
		m.advance(0)
		m.advance(1)

	case key.Matches(msg, m.keymap.Reset):
		m.stopLanes()
		m.createLanes()
		m.layoutPanels()
		m.header.Reset()
		m.footer.SetError(nil)
	}
	return m, nil
}

func (m *Model) advance(lane int) {
	term, err := m.lanes[lane].Advance()
	if err != nil {
		m.footer.SetError(err)
		return
	}
	m.observer.OnTerm(lane, term.Index)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	panels := make([]string, len(m.lanes))
	for i, l := range m.lanes {
		panels[i] = l.View()
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	bodyHeight := max(m.height-headerHeight-footerHeight, minBodyHeight)
	left := m.width / 2
	m.lanes[0].SetSize(left, bodyHeight)
	m.lanes[1].SetSize(m.width-left, bodyHeight)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, factory orchestration.SourceFactory[string], observer orchestration.TermObserver, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, factory, observer, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	return finishRun(model, finalModel, err)
}

// finishRun stops the lanes the program ended with and maps the outcome to
// an exit code. A reset replaces the lanes, so the final model's lanes are
// the live ones; the initial model stands in when the program returned none.
func finishRun(initial Model, final tea.Model, err error) int {
	m, ok := final.(Model)
	if !ok {
		m = initial
	}
	m.stopLanes()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	return m.exitCode
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
