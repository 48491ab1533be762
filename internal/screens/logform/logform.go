package logform

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwin/studytrack/internal/levels"
	"github.com/ashwin/studytrack/internal/progress"
	"github.com/ashwin/studytrack/internal/router"
	"github.com/ashwin/studytrack/internal/screen"
	"github.com/ashwin/studytrack/internal/tracker"
	"github.com/ashwin/studytrack/internal/ui/components"
	"github.com/ashwin/studytrack/internal/ui/layout"
	"github.com/ashwin/studytrack/internal/ui/theme"
)

const (
	fieldInput = iota
	fieldOutput
)

// LogForm records one study session for a subject: input minutes and
// output minutes, evaluated against the subject's level requirements.
type LogForm struct {
	tracker   *tracker.Tracker
	subjectID string

	inputField  components.TextInput
	outputField components.TextInput
	focus       int

	outcome *progress.Outcome
	errMsg  string
}

var _ screen.Screen = (*LogForm)(nil)

// New creates a session form for the subject with the given id.
func New(t *tracker.Tracker, subjectID string) *LogForm {
	return &LogForm{
		tracker:     t,
		subjectID:   subjectID,
		inputField:  components.NewTextInput("0", true, 4),
		outputField: components.NewTextInput("0", true, 4),
	}
}

func (f *LogForm) Init() tea.Cmd {
	return f.inputField.Init()
}

func (f *LogForm) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return f, f.updateFocused(msg)
	}

	// After submission the form only waits for dismissal.
	if f.outcome != nil {
		if kmsg.String() == "enter" {
			return f, pop()
		}
		return f, nil
	}

	switch kmsg.String() {
	case "tab", "shift+tab", "up", "down":
		return f, f.toggleFocus()
	case "enter":
		if f.focus == fieldInput {
			return f, f.toggleFocus()
		}
		f.submit()
		return f, nil
	}

	return f, f.updateFocused(msg)
}

func (f *LogForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldInput {
		f.inputField, cmd = f.inputField.Update(msg)
	} else {
		f.outputField, cmd = f.outputField.Update(msg)
	}
	return cmd
}

func (f *LogForm) toggleFocus() tea.Cmd {
	if f.focus == fieldInput {
		f.focus = fieldOutput
		f.inputField.Model.Blur()
		return f.outputField.Model.Focus()
	}
	f.focus = fieldInput
	f.outputField.Model.Blur()
	return f.inputField.Model.Focus()
}

func (f *LogForm) submit() {
	out, err := f.tracker.Log(
		context.Background(),
		f.subjectID,
		f.inputField.NumericValue(),
		f.outputField.NumericValue(),
	)
	if err != nil {
		f.errMsg = "Could not log session: " + err.Error()
		return
	}
	f.errMsg = ""
	f.outcome = &out
	f.inputField.Submit(out.Session.MeetsRequirement)
	f.outputField.Submit(out.Session.MeetsRequirement)
}

func (f *LogForm) View(width, height int) string {
	s, err := f.tracker.Find(f.subjectID)
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Missed.Render("Subject not found"))
	}
	cfg := levels.Config(s.Level)

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(s.Name))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("level %d · needs %d input + %d output", s.Level, cfg.InputMinutes, cfg.OutputMinutes)))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Input minutes (reading, listening, lectures)", f.focus == fieldInput && f.outcome == nil))
	b.WriteString("\n")
	b.WriteString(f.inputField.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Output minutes (writing, speaking, exercises)", f.focus == fieldOutput && f.outcome == nil))
	b.WriteString("\n")
	b.WriteString(f.outputField.View())

	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Missed.Render(f.errMsg))
	}
	if f.outcome != nil {
		b.WriteString("\n\n")
		b.WriteString(f.outcomeLine())
	}

	card := theme.Card.Width(min(width-8, 64)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (f *LogForm) outcomeLine() string {
	out := f.outcome
	switch {
	case out.Event == progress.EventLevelUp:
		return theme.Done.Render(fmt.Sprintf("⬆ Level up! %s is now level %d", out.Subject.Name, out.NewLevel))
	case out.Event == progress.EventStreakReset:
		return theme.Missed.Render("Streak reset — back to day 1. Today still counts.")
	case !out.Session.MeetsRequirement:
		return theme.Hint.Render("Session saved, but it didn't meet today's requirement")
	default:
		return theme.Done.Render(fmt.Sprintf("✓ Day complete — %d day streak", out.Subject.Streak))
	}
}

func fieldLabel(text string, focused bool) string {
	if focused {
		return theme.Selected.Render(text)
	}
	return theme.Body.Render(text)
}

func (f *LogForm) Title() string {
	return "Log Session"
}

// KeyHints provides the form footer hints.
func (f *LogForm) KeyHints() []layout.KeyHint {
	if f.outcome != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func pop() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}
