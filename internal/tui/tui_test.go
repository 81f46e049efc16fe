package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/jalali-stickers/internal/config"
	"github.com/handiism/jalali-stickers/internal/generate"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleOptions(t *testing.T) {
	m := NewModel(config.DefaultSettings(), 1404)

	next, _ := m.Update(key("f"))
	m = next.(Model)
	if !m.force {
		t.Error("f should enable force")
	}

	next, _ = m.Update(key("v"))
	m = next.(Model)
	if !m.verbose {
		t.Error("v should enable verbose")
	}

	if !strings.Contains(m.View(), "[x] Regenerate") {
		t.Errorf("ready view does not show force option:\n%s", m.View())
	}
}

func TestVerboseEventsFiltered(t *testing.T) {
	m := NewModel(config.DefaultSettings(), 1404)

	next, _ := m.Update(ProgressMsg{Event: generate.ProgressEvent{Message: "Saved: x", Level: generate.LevelVerbose}})
	m = next.(Model)
	if len(m.logs) != 0 {
		t.Fatalf("verbose event logged without verbose mode: %v", m.logs)
	}

	next, _ = m.Update(ProgressMsg{Event: generate.ProgressEvent{Message: "Provisioned", Level: generate.LevelInfo}})
	m = next.(Model)
	if len(m.logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(m.logs))
	}
}

func TestLogsTrimmed(t *testing.T) {
	m := NewModel(config.DefaultSettings(), 1404)
	for i := 0; i < 15; i++ {
		next, _ := m.Update(ProgressMsg{Event: generate.ProgressEvent{Message: "event", Level: generate.LevelInfo}})
		m = next.(Model)
	}
	if len(m.logs) != 10 {
		t.Errorf("got %d logs, want 10", len(m.logs))
	}
}

func TestDoneStates(t *testing.T) {
	tests := []struct {
		name string
		msg  DoneMsg
		want State
	}{
		{"complete", DoneMsg{Summary: &generate.Summary{Year: 1404, Days: 365, Written: 365}}, StateComplete},
		{"skipped", DoneMsg{Summary: &generate.Summary{Year: 1404, Skipped: true}}, StateSkipped},
		{"error", DoneMsg{Err: errors.New("boom")}, StateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(config.DefaultSettings(), 1404)
			m.state = StateGenerating

			next, _ := m.Update(tt.msg)
			got := next.(Model)
			if got.state != tt.want {
				t.Errorf("state = %v, want %v", got.state, tt.want)
			}
			if got.getHelpText() != "q: quit" {
				t.Errorf("help text = %q", got.getHelpText())
			}
		})
	}
}
