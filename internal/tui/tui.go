// Package tui provides a Bubble Tea terminal user interface for the sticker generator.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/jalali-stickers/internal/calendar"
	"github.com/handiism/jalali-stickers/internal/config"
	"github.com/handiism/jalali-stickers/internal/generate"
	"github.com/handiism/jalali-stickers/internal/jalali"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateReady State = iota
	StateGenerating
	StateComplete
	StateSkipped
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   generate.ProgressLevel
}

// sender forwards generator events into the running program. It is shared
// by all copies of the model.
type sender struct {
	send func(tea.Msg)
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	year     int
	logs     []LogEntry
	summary  *generate.Summary
	err      error

	// Generation context
	ctx    context.Context
	cancel context.CancelFunc

	generator *generate.Generator
	events    *sender

	written int32
	total   int32

	// Options
	force   bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model for generating the stickers of year.
func NewModel(settings *config.Settings, year int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateReady,
		spinner:  sp,
		progress: prog,
		settings: settings,
		year:     year,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		events:   &sender{},
		force:    settings.Force,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ProgressMsg is sent when the generator reports an event.
	ProgressMsg struct {
		Event generate.ProgressEvent
	}

	// DoneMsg is sent when the run finishes.
	DoneMsg struct {
		Summary *generate.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateReady {
				return m, tea.Quit
			}
			if m.state == StateGenerating {
				m.cancel()
			}

		case "enter":
			if m.state == StateReady {
				m.state = StateGenerating
				run := m.startGeneration()
				return m, tea.Batch(run, m.tickProgress(), m.spinner.Tick)
			}

		case "f":
			if m.state == StateReady {
				m.force = !m.force
			}

		case "v":
			m.verbose = !m.verbose

		case "q":
			if m.state == StateComplete || m.state == StateSkipped || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == generate.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case DoneMsg:
		m.summary = msg.Summary
		if m.generator != nil {
			m.written, m.total = m.generator.Progress()
		}
		switch {
		case msg.Err != nil && m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		case msg.Summary != nil && msg.Summary.Skipped:
			m.state = StateSkipped
		default:
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from generator
		if m.generator != nil && m.state == StateGenerating {
			m.written, m.total = m.generator.Progress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.written) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Jalali Sticker Generator"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Daily calendar stickers for year %d", m.year)))
	b.WriteString("\n\n")

	switch m.state {
	case StateReady:
		b.WriteString(m.viewReady())
	case StateGenerating:
		b.WriteString(m.viewGenerating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateSkipped:
		b.WriteString(m.viewSkipped())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewReady() string {
	var b strings.Builder

	first, last := jalali.FirstDay(m.year), jalali.LastDay(m.year)
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d stickers, %s to %s", jalali.YearDays(m.year), first, last)))
	b.WriteString("\n\n")

	forceCheck := "[ ]"
	if m.force {
		forceCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Regenerate into existing output (f)\n", forceCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output: %s (%dx%d)", m.settings.OutputDir, m.settings.OutputWidth, m.settings.OutputHeight)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Font: %s", m.settings.FontPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Rendering stickers..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.written) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Stickers: %d/%d", m.written, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var written, days int
	var dir string
	if m.summary != nil {
		written, days, dir = m.summary.Written, m.summary.Days, m.summary.OutputDir
	}
	return boxStyle.Render(fmt.Sprintf(
		"Generation Complete!\n\n"+
			"Year: %d\n"+
			"Stickers: %d/%d\n"+
			"Output: %s",
		m.year, written, days, dir,
	))
}

func (m Model) viewSkipped() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render(fmt.Sprintf("%s already exists, nothing was generated.", m.settings.OutputDir)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Restart with force (f) to regenerate into it."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")
	if m.total > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d stickers were written before the error.", m.written, m.total)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case generate.LevelError:
			style = errorStyle
			prefix = "✗"
		case generate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case generate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case generate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateReady:
		return "enter: generate • f: force • v: verbose • esc: quit"
	case StateGenerating:
		return "v: verbose • esc: cancel"
	case StateComplete, StateSkipped, StateError:
		return "q: quit"
	}
	return ""
}

// startGeneration creates the generator and runs it in the background.
func (m *Model) startGeneration() tea.Cmd {
	settings := *m.settings
	settings.Force = m.force

	events := m.events
	m.generator = generate.NewGenerator(&settings, func(event generate.ProgressEvent) {
		if events.send != nil {
			events.send(ProgressMsg{Event: event})
		}
	})

	g, ctx, year := m.generator, m.ctx, m.year
	return func() tea.Msg {
		summary, err := g.Run(ctx, year)
		return DoneMsg{Summary: summary, Err: err}
	}
}

// Run starts the TUI application for the current Jalali year.
func Run(settings *config.Settings) error {
	m := NewModel(settings, calendar.CurrentYear(time.Now()))
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.events.send = p.Send
	_, err := p.Run()
	return err
}
