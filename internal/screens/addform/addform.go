package addform

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwin/studytrack/internal/router"
	"github.com/ashwin/studytrack/internal/screen"
	"github.com/ashwin/studytrack/internal/subject"
	"github.com/ashwin/studytrack/internal/tracker"
	"github.com/ashwin/studytrack/internal/ui/components"
	"github.com/ashwin/studytrack/internal/ui/layout"
	"github.com/ashwin/studytrack/internal/ui/theme"
)

// AddForm collects a name and creates a level-1 subject.
type AddForm struct {
	tracker *tracker.Tracker
	input   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*AddForm)(nil)

// New creates the add-subject form.
func New(t *tracker.Tracker) *AddForm {
	return &AddForm{
		tracker: t,
		input:   components.NewTextInput("e.g. Japanese, Piano, Algorithms", false, 60),
	}
}

func (f *AddForm) Init() tea.Cmd {
	return f.input.Init()
}

func (f *AddForm) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(f.input.Value())
			_, err := f.tracker.Add(context.Background(), name)
			switch {
			case errors.Is(err, subject.ErrEmptyName):
				f.errMsg = "Give the subject a name first"
				f.input.Submit(false)
				return f, nil
			case err != nil:
				f.errMsg = "Could not save: " + err.Error()
				f.input.Submit(false)
				return f, nil
			}
			return f, pop()
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *AddForm) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("What do you want to study?"))
	b.WriteString("\n\n")
	b.WriteString(f.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("New subjects start at level 1: 13 minutes of input and 2 of output per day"))
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Missed.Render(f.errMsg))
	}

	card := theme.Card.Width(min(width-8, 64)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (f *AddForm) Title() string {
	return "Add Subject"
}

// KeyHints provides the form footer hints.
func (f *AddForm) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Create"},
		{Key: "Esc", Description: "Back"},
	}
}

func pop() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}
