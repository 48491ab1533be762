package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — calm, focused, green-forward for the heat-map
var (
	Primary   = lipgloss.Color("#22C55E") // Green
	Secondary = lipgloss.Color("#0EA5E9") // Sky Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber (streak flame)
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// HeatScale maps activity color buckets 0..5 to calendar cell colors,
// dimmest to brightest.
var HeatScale = [6]color.Color{
	lipgloss.Color("#1E293B"), // 0: no activity
	lipgloss.Color("#14532D"), // 1
	lipgloss.Color("#166534"), // 2
	lipgloss.Color("#15803D"), // 3
	lipgloss.Color("#16A34A"), // 4
	lipgloss.Color("#22C55E"), // 5: busiest day of the year
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Missed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
