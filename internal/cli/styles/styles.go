package styles

import (
	"charm.land/lipgloss/v2"

	"todo/internal/config"
	"todo/internal/models"
)

var (
	// Header style for the listing column row
	HeaderStyle lipgloss.Style

	// Per-priority row styles
	HighStyle   lipgloss.Style
	MediumStyle lipgloss.Style
	LowStyle    lipgloss.Style

	// DoneStyle mutes completed tasks regardless of priority
	DoneStyle lipgloss.Style

	// NormalStyle is the fallback for unrecognized priorities
	NormalStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Header))

	HighStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.High))

	MediumStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Medium))

	LowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Low))

	DoneStyle = lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color(colors.Subtle))

	NormalStyle = lipgloss.NewStyle()
}

// ForTask picks the row style for a task: completed tasks are muted,
// pending ones colored by priority.
func ForTask(t models.Task) lipgloss.Style {
	if t.Done {
		return DoneStyle
	}
	switch t.Priority {
	case models.PriorityHigh:
		return HighStyle
	case models.PriorityMedium:
		return MediumStyle
	case models.PriorityLow:
		return LowStyle
	}
	return NormalStyle
}
