package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/ashwin/studytrack/internal/activity"
	"github.com/ashwin/studytrack/internal/subject"
	"github.com/ashwin/studytrack/internal/ui/theme"
)

// cellWidth is the rendered width of one calendar day.
const cellWidth = 2

var dayLabels = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// YearGrid renders one year of activity as a calendar heat-map:
// columns are weeks, rows are weekdays (Sunday first), and each cell's
// color intensity scales with that day's share of the year's busiest
// day.
func YearGrid(ya *activity.YearActivity) string {
	first := time.Date(ya.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	daysInYear := time.Date(ya.Year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
	firstDow := int(first.Weekday())
	totalWeeks := (firstDow + daysInYear + 6) / 7

	// grid[week][dow] holds the date string, or "" for cells outside
	// the year.
	grid := make([][7]string, totalWeeks)
	d := first
	week, dow := 0, firstDow
	for d.Year() == ya.Year {
		grid[week][dow] = d.Format(subject.DateLayout)
		dow++
		if dow == 7 {
			dow = 0
			week++
		}
		d = d.AddDate(0, 0, 1)
	}

	var b strings.Builder
	b.WriteString(monthLabels(ya.Year, grid))
	b.WriteByte('\n')

	for row := 0; row < 7; row++ {
		b.WriteString(theme.Hint.Render(dayLabels[row]) + " ")
		for w := 0; w < totalWeeks; w++ {
			date := grid[w][row]
			if date == "" {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			minutes := 0
			if bucket, ok := ya.Days[date]; ok {
				minutes = bucket.TotalMinutes
			}
			level := activity.ColorBucket(minutes, ya.MaxMinutes)
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.HeatScale[level]).
				Render(strings.Repeat("■", cellWidth-1) + " "))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// HeatLegend renders the less→more intensity legend.
func HeatLegend() string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("Less "))
	for _, c := range theme.HeatScale {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("■ "))
	}
	b.WriteString(theme.Hint.Render("More"))
	return b.String()
}

// monthLabels renders the month names row, aligned to the week column
// where each month starts.
func monthLabels(year int, grid [][7]string) string {
	width := len(grid)*cellWidth + 2 // +2 for the day-label gutter
	canvas := make([]byte, width)
	for i := range canvas {
		canvas[i] = ' '
	}

	lastEnd := 0
	for month := time.January; month <= time.December; month++ {
		prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(subject.DateLayout)[:8]
		startWeek := -1
	scan:
		for w := range grid {
			for _, date := range grid[w] {
				if strings.HasPrefix(date, prefix) {
					startWeek = w
					break scan
				}
			}
		}
		if startWeek < 0 {
			continue
		}
		name := month.String()[:3]
		pos := 2 + startWeek*cellWidth
		if pos < lastEnd || pos+len(name) > width {
			continue
		}
		copy(canvas[pos:], name)
		lastEnd = pos + len(name) + 1
	}

	return theme.Hint.Render(string(canvas))
}
