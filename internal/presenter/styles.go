package presenter

import (
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/charmbracelet/lipgloss"
)

var (
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
	Muted       = lipgloss.Color("#8a94a6")
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Destructive).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
)

// BandStyle colours a band the way the guidance is shown: info, warning, error.
func BandStyle(band entities.Band) lipgloss.Style {
	switch band {
	case entities.BandLow:
		return InfoStyle
	case entities.BandModerate:
		return WarningStyle.Bold(true)
	default:
		return ErrorStyle
	}
}

func OutcomeStyle(outcome entities.Outcome) lipgloss.Style {
	if outcome == entities.InfarctionRisk {
		return ErrorStyle
	}

	return SuccessStyle
}
