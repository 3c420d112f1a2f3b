package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for holidays and errors
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorPrimary  = "33"  // Blue for the picked date
	ColorBorder   = "243" // Border gray
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	FocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorActive))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	// Overlay panel styles
	PanelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	MonthHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWhite))

	WeekdayHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	// Day cell styles
	DayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	OtherMonthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	WeekendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	HolidayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	TodayStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color(ColorWhite))

	SelectedDayStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorPrimary))

	CursorDayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive))
)
