package archive

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwin/studytrack/internal/screen"
	"github.com/ashwin/studytrack/internal/subject"
	"github.com/ashwin/studytrack/internal/tracker"
	"github.com/ashwin/studytrack/internal/ui/layout"
	"github.com/ashwin/studytrack/internal/ui/theme"
)

// Archive lists archived subjects. Their history still counts toward
// the activity calendar; this screen is where that history lives on.
type Archive struct {
	tracker  *tracker.Tracker
	subjects []subject.Subject
	selected int
}

var _ screen.Screen = (*Archive)(nil)
var _ screen.Refresher = (*Archive)(nil)

// New creates the archived-subjects screen.
func New(t *tracker.Tracker) *Archive {
	a := &Archive{tracker: t}
	a.reload()
	return a
}

func (a *Archive) reload() {
	a.subjects = a.tracker.Archived()
	if a.selected >= len(a.subjects) {
		a.selected = len(a.subjects) - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

func (a *Archive) Init() tea.Cmd {
	return nil
}

// Refresh reloads the archived view.
func (a *Archive) Refresh() tea.Cmd {
	a.reload()
	return nil
}

func (a *Archive) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(a.subjects)-1 {
			a.selected++
		}
	}

	return a, nil
}

func (a *Archive) View(width, height int) string {
	if len(a.subjects) == 0 {
		empty := theme.Title.Render("Nothing archived") + "\n\n" +
			theme.Subtitle.Render("Archived subjects keep their history on the activity calendar")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(empty)
	}

	cardWidth := width - 8
	if cardWidth > 76 {
		cardWidth = 76
	}

	var cards []string
	for i, s := range a.subjects {
		line := theme.Body.Bold(true).Render(s.Name) + "\n" +
			theme.Hint.Render(fmt.Sprintf("reached level %d · %d sessions logged", s.Level, len(s.Sessions)))
		style := theme.Card.Width(cardWidth)
		if i == a.selected {
			style = style.BorderForeground(theme.Primary)
		}
		cards = append(cards, style.Render(line))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(cards, "\n"))
}

func (a *Archive) Title() string {
	return "Archived"
}

// KeyHints provides the archive footer hints.
func (a *Archive) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
