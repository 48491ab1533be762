package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwin/studytrack/internal/levels"
	"github.com/ashwin/studytrack/internal/router"
	"github.com/ashwin/studytrack/internal/screen"
	"github.com/ashwin/studytrack/internal/screens/addform"
	"github.com/ashwin/studytrack/internal/screens/archive"
	"github.com/ashwin/studytrack/internal/screens/heatmap"
	"github.com/ashwin/studytrack/internal/screens/logform"
	"github.com/ashwin/studytrack/internal/subject"
	"github.com/ashwin/studytrack/internal/tracker"
	"github.com/ashwin/studytrack/internal/ui/components"
	"github.com/ashwin/studytrack/internal/ui/layout"
	"github.com/ashwin/studytrack/internal/ui/theme"
)

// Dashboard is the home screen: one card per active subject with its
// level, streak, and progress toward the next level.
type Dashboard struct {
	tracker       *tracker.Tracker
	subjects      []subject.Subject
	selected      int
	pendingDelete bool
	notice        string
}

var _ screen.Screen = (*Dashboard)(nil)
var _ screen.Refresher = (*Dashboard)(nil)

// New creates the dashboard over the shared tracker.
func New(t *tracker.Tracker) *Dashboard {
	d := &Dashboard{tracker: t}
	d.reload()
	return d
}

func (d *Dashboard) reload() {
	d.subjects = d.tracker.Active()
	if d.selected >= len(d.subjects) {
		d.selected = len(d.subjects) - 1
	}
	if d.selected < 0 {
		d.selected = 0
	}
}

func (d *Dashboard) Init() tea.Cmd {
	return nil
}

// Refresh reloads the collection view after a child form pops.
func (d *Dashboard) Refresh() tea.Cmd {
	d.reload()
	return nil
}

func (d *Dashboard) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	key := kmsg.String()

	// A pending delete only survives an immediate confirmation.
	if d.pendingDelete && key != "x" {
		d.pendingDelete = false
		d.notice = ""
	}

	switch key {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.subjects)-1 {
			d.selected++
		}
	case "a":
		return d, push(addform.New(d.tracker))
	case "h":
		return d, push(heatmap.New(d.tracker))
	case "r":
		return d, push(archive.New(d.tracker))
	case "enter", "l":
		if s, ok := d.current(); ok {
			return d, push(logform.New(d.tracker, s.ID))
		}
	case "e":
		if s, ok := d.current(); ok {
			if changed, err := d.tracker.Archive(context.Background(), s.ID); err != nil {
				d.notice = theme.Missed.Render("Archive failed: " + err.Error())
			} else if changed {
				d.notice = theme.Hint.Render(fmt.Sprintf("%s moved to the archive", s.Name))
			}
			d.reload()
		}
	case "x":
		s, ok := d.current()
		if !ok {
			break
		}
		if !d.pendingDelete {
			d.pendingDelete = true
			d.notice = theme.Missed.Render(fmt.Sprintf("Delete %s and all its history? Press x again to confirm", s.Name))
			break
		}
		d.pendingDelete = false
		if _, err := d.tracker.Delete(context.Background(), s.ID); err != nil {
			d.notice = theme.Missed.Render("Delete failed: " + err.Error())
		} else {
			d.notice = theme.Hint.Render(fmt.Sprintf("%s deleted", s.Name))
		}
		d.reload()
	}

	return d, nil
}

func (d *Dashboard) View(width, height int) string {
	if len(d.subjects) == 0 {
		empty := theme.Title.Render("No subjects yet") + "\n\n" +
			theme.Subtitle.Render("Press a to add your first subject and start tracking")
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
	for i, s := range d.subjects {
		cards = append(cards, d.renderCard(s, i == d.selected, cardWidth))
	}
	if d.notice != "" {
		cards = append(cards, d.notice)
	}

	content := strings.Join(cards, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}

func (d *Dashboard) renderCard(s subject.Subject, selected bool, width int) string {
	cfg := levels.Config(s.Level)

	badge := theme.Hint.Render("not completed")
	if s.CompletedOn(d.tracker.Today()) {
		badge = theme.Done.Render("completed today")
	}

	name := theme.Body.Bold(true).Render(s.Name)
	header := name + strings.Repeat(" ", max(1, width-lipgloss.Width(name)-lipgloss.Width(badge)-6)) + badge

	stats := theme.Body.Render(fmt.Sprintf("Level %d", s.Level)) +
		theme.Hint.Render("  ·  ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d day streak", s.Streak)) +
		theme.Hint.Render("  ·  ") +
		theme.Hint.Render(fmt.Sprintf("%d+%d min/day", cfg.InputMinutes, cfg.OutputMinutes))

	bar := components.NewLevelProgress(
		fmt.Sprintf("Level %d", s.Level+1),
		s.DaysCompleted, cfg.RequiredDays, width-8,
	).View()

	card := header + "\n" + stats + "\n" + bar

	style := theme.Card.Width(width)
	if selected {
		style = style.BorderForeground(theme.Primary)
	}
	return style.Render(card)
}

func (d *Dashboard) current() (subject.Subject, bool) {
	if d.selected < 0 || d.selected >= len(d.subjects) {
		return subject.Subject{}, false
	}
	return d.subjects[d.selected], true
}

func (d *Dashboard) Title() string {
	return "Subjects"
}

// KeyHints provides the dashboard footer hints.
func (d *Dashboard) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Log"},
		{Key: "a", Description: "Add"},
		{Key: "h", Description: "History"},
		{Key: "r", Description: "Archived"},
		{Key: "e", Description: "Archive"},
		{Key: "x", Description: "Delete"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}
