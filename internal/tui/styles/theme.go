package styles

import (
	"github.com/allbin/provision/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Device status styles
	StatusDetectedStyle = lipgloss.NewStyle().
				Foreground(colors.Green).
				Bold(true)

	StatusMissingStyle = lipgloss.NewStyle().
				Foreground(colors.Red).
				Bold(true)

	StatusCheckingStyle = lipgloss.NewStyle().
				Foreground(colors.Yellow).
				Bold(true)

	StatusConfiguredStyle = lipgloss.NewStyle().
				Foreground(colors.Peach).
				Bold(true)

	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface1).
			Padding(0, 1).
			Align(lipgloss.Center)

	InstructionStyle = lipgloss.NewStyle().
				Foreground(colors.Subtext0)

	// Form styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(colors.Blue).
				Bold(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface2).
			Padding(0, 1)

	FocusedInputStyle = InputStyle.
				BorderForeground(colors.Blue)

	BusyStyle = lipgloss.NewStyle().
			Foreground(colors.Peach).
			Bold(true)

	// Dialog styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 2)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red)

	// Success styles
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Green)

	DetailStyle = lipgloss.NewStyle().
			Foreground(colors.Text)

	HintStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0)
)

type StatusType int

const (
	StatusChecking StatusType = iota
	StatusDetected
	StatusMissing
	StatusConfigured
)

func GetStatusStyle(status StatusType) lipgloss.Style {
	switch status {
	case StatusDetected:
		return StatusDetectedStyle
	case StatusChecking:
		return StatusCheckingStyle
	case StatusConfigured:
		return StatusConfiguredStyle
	default:
		return StatusMissingStyle
	}
}
