package calendar

import "time"

// GridCells is the fixed size of a month grid: 6 full weeks of 7 days.
// Padding with days from the neighbouring months keeps the grid the same
// shape for every month, so the overlay never changes height.
const GridCells = 42

// GridColumns is the number of weekday columns, Monday first.
const GridColumns = 7

// Cell is one rendered day slot in a month grid.
type Cell struct {
	Date       DateTime // midnight of the cell's calendar day
	OtherMonth bool
	Today      bool
	Selected   bool
	Holiday    bool
	Weekend    bool
}

// BuildMonth lays out the given month onto the 42-cell grid. The first cell
// is the Monday on or before the first of the month; cells run row-major
// through six weeks. selected may be nil when no date is picked yet.
// Holiday entries with year RecurringYear match their day and month in any
// displayed year; all other entries match exactly.
func BuildMonth(year int, month time.Month, today DateTime, selected *DateTime, holidays []DateTime) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	anchor := first.AddDate(0, 0, -(ISOWeekday(first) - 1))

	cells := make([]Cell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		day := anchor.AddDate(0, 0, i)
		date := DateTime{Year: day.Year(), Month: day.Month(), Day: day.Day()}

		cell := Cell{
			Date:       date,
			OtherMonth: day.Month() != month || day.Year() != year,
			Today:      date.SameDay(today),
			Weekend:    i%GridColumns >= 5,
			Holiday:    isHoliday(date, holidays),
		}
		if selected != nil {
			cell.Selected = date.SameDay(*selected)
		}
		cells = append(cells, cell)
	}
	return cells
}

func isHoliday(date DateTime, holidays []DateTime) bool {
	for _, h := range holidays {
		if h.Month != date.Month || h.Day != date.Day {
			continue
		}
		if h.Year == RecurringYear || h.Year == date.Year {
			return true
		}
	}
	return false
}
