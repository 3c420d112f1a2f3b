package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldpick/fieldpick/pkg/calendar"
)

// renderPanel draws the calendar overlay: month header with navigation
// hints, weekday row, and the 6x7 day grid.
func (a *App) renderPanel() string {
	if a.overlayCfg == nil || len(a.cells) == 0 {
		return ""
	}
	cfg := a.overlayCfg

	monthName := a.gridMonth.String()
	if int(a.gridMonth) >= 1 && int(a.gridMonth) <= len(cfg.MonthNames) {
		monthName = cfg.MonthNames[a.gridMonth-1]
	}
	header := MonthHeaderStyle.Render(fmt.Sprintf("◀  %s %d  ▶", monthName, a.gridYear))

	var weekdays []string
	for _, wd := range cfg.WeekdayNames {
		weekdays = append(weekdays, fmt.Sprintf("%2s", wd))
	}
	weekdayRow := WeekdayHeaderStyle.Render(strings.Join(weekdays, " "))

	var rows []string
	for row := 0; row < calendar.GridCells/calendar.GridColumns; row++ {
		var cols []string
		for col := 0; col < calendar.GridColumns; col++ {
			i := row*calendar.GridColumns + col
			cols = append(cols, a.renderCell(i, a.cells[i]))
		}
		rows = append(rows, strings.Join(cols, " "))
	}

	width := lipgloss.Width(weekdayRow)
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, header),
		weekdayRow,
		strings.Join(rows, "\n"),
	)
	return PanelBorderStyle.Render(content)
}

func (a *App) renderCell(index int, cell calendar.Cell) string {
	text := fmt.Sprintf("%2d", cell.Date.Day)

	style := DayStyle
	switch {
	case cell.OtherMonth:
		style = OtherMonthStyle
	case cell.Holiday:
		style = HolidayStyle
	case cell.Weekend:
		style = WeekendStyle
	}
	if cell.Today {
		style = TodayStyle
	}
	if cell.Selected {
		style = SelectedDayStyle
	}
	if a.gridFocus && index == a.gridCursor {
		style = CursorDayStyle
	}
	return style.Render(text)
}
