package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ashwin/studytrack/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar, used for a subject's
// days completed toward its next level.
type ProgressBar struct {
	Label     string
	Percent   float64
	ShowCount bool
	Count     int
	Total     int
	Width     int
}

// NewLevelProgress builds a bar showing done of total required days.
func NewLevelProgress(label string, done, total, width int) ProgressBar {
	percent := 0.0
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	return ProgressBar{
		Label:     label,
		Percent:   percent,
		ShowCount: true,
		Count:     done,
		Total:     total,
		Width:     width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	countWidth := 0
	var countStr string
	if p.ShowCount {
		countStr = fmt.Sprintf("  %d/%d days", p.Count, p.Total)
		countWidth = lipgloss.Width(countStr)
	}

	barWidth := p.Width - labelWidth - countWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.Primary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	if p.ShowCount {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(countStr)
	}

	return result
}
