package heatmap

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwin/studytrack/internal/activity"
	"github.com/ashwin/studytrack/internal/screen"
	"github.com/ashwin/studytrack/internal/tracker"
	"github.com/ashwin/studytrack/internal/ui/components"
	"github.com/ashwin/studytrack/internal/ui/layout"
	"github.com/ashwin/studytrack/internal/ui/theme"
)

// Heatmap shows one year of study activity as a calendar grid, with
// left/right switching between the years that have any sessions.
type Heatmap struct {
	tracker *tracker.Tracker
	years   map[int]*activity.YearActivity
	order   []int
	cursor  int
}

var _ screen.Screen = (*Heatmap)(nil)
var _ screen.Refresher = (*Heatmap)(nil)

// New builds the heat-map over the tracker's full collection, archived
// subjects included.
func New(t *tracker.Tracker) *Heatmap {
	h := &Heatmap{tracker: t}
	h.reload()
	return h
}

func (h *Heatmap) reload() {
	h.years = activity.Aggregate(h.tracker.Subjects())
	h.order = activity.ActiveYears(h.years)
	if h.cursor >= len(h.order) {
		h.cursor = 0
	}
}

func (h *Heatmap) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the aggregation when the screen is revealed again.
func (h *Heatmap) Refresh() tea.Cmd {
	h.reload()
	return nil
}

func (h *Heatmap) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "left", "h":
		// order is newest-first, so left moves to an older year
		if h.cursor < len(h.order)-1 {
			h.cursor++
		}
	case "right", "l":
		if h.cursor > 0 {
			h.cursor--
		}
	}

	return h, nil
}

func (h *Heatmap) View(width, height int) string {
	if len(h.order) == 0 {
		empty := theme.Title.Render("No activity yet") + "\n\n" +
			theme.Subtitle.Render("Log a study session and it will show up here")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(empty)
	}

	year := h.order[h.cursor]
	ya := h.years[year]

	var b strings.Builder
	b.WriteString(h.yearSelector(year))
	b.WriteString("\n\n")
	b.WriteString(components.YearGrid(ya))
	b.WriteString("\n")
	b.WriteString(components.HeatLegend())
	b.WriteString("\n\n")
	b.WriteString(h.summary(ya))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(b.String())
}

func (h *Heatmap) yearSelector(year int) string {
	left := "  "
	if h.cursor < len(h.order)-1 {
		left = theme.Selected.Render("◀ ")
	}
	right := "  "
	if h.cursor > 0 {
		right = theme.Selected.Render(" ▶")
	}
	return left + theme.Title.Render(fmt.Sprintf(" %d ", year)) + right
}

func (h *Heatmap) summary(ya *activity.YearActivity) string {
	total := 0
	activeDays := 0
	busiest := ""
	for date, bucket := range ya.Days {
		if bucket.TotalMinutes == 0 {
			continue
		}
		total += bucket.TotalMinutes
		activeDays++
		if bucket.TotalMinutes == ya.MaxMinutes && (busiest == "" || date < busiest) {
			busiest = date
		}
	}

	line := fmt.Sprintf("%d active days · %s total", activeDays, formatMinutes(total))
	if busiest != "" {
		if d, err := time.Parse("2006-01-02", busiest); err == nil {
			line += fmt.Sprintf(" · busiest: %s (%s)", d.Format("Jan 2"), formatMinutes(ya.MaxMinutes))
		}
	}
	return theme.Subtitle.Render(line)
}

func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	if m%60 == 0 {
		return fmt.Sprintf("%dh", m/60)
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}

func (h *Heatmap) Title() string {
	return "Activity"
}

// KeyHints provides the heat-map footer hints.
func (h *Heatmap) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Year"},
		{Key: "Esc", Description: "Back"},
	}
}
