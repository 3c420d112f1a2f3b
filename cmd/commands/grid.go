package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldpick/fieldpick/internal/cli"
	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/dateformat"
)

var (
	gridHolidays []string
	gridSelected string
	gridZone     string
)

// NewGridCommand creates the grid command
func NewGridCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid <year> <month>",
		Short: "Print the six-week month grid",
		Long: `Print the 42-cell month grid the picker overlay renders: six full
weeks, Monday first, padded with the neighbouring months.

Markers: [n] today, (n) selected, n* holiday, leading dot for days
outside the requested month.

Examples:
  fieldpick grid 2024 2
  fieldpick grid 2024 12 --holiday 1970-12-25 --selected 2024-12-06`,
		Args: cobra.ExactArgs(2),
		RunE: runGrid,
	}

	cmd.Flags().StringArrayVar(&gridHolidays, "holiday", nil, "Holiday as Y-m-d; year 1970 recurs every year (repeatable)")
	cmd.Flags().StringVar(&gridSelected, "selected", "", "Selected date as Y-m-d")
	cmd.Flags().StringVar(&gridZone, "tz", "", "Time zone for \"today\" (default: local)")

	return cmd
}

func runGrid(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid month %q", args[1])
	}
	if err := cli.ValidateYear(year); err != nil {
		return err
	}
	if err := cli.ValidateMonth(month); err != nil {
		return err
	}
	if err := cli.ValidateTimeZone(gridZone); err != nil {
		return err
	}

	iso, err := dateformat.Compile("Y-m-d")
	if err != nil {
		return err
	}

	holidays := make([]calendar.DateTime, 0, len(gridHolidays))
	for _, h := range gridHolidays {
		dt, err := iso.Parse(h)
		if err != nil {
			return fmt.Errorf("holiday %q: %w", h, err)
		}
		holidays = append(holidays, dt)
	}

	var selected *calendar.DateTime
	if gridSelected != "" {
		dt, err := iso.Parse(gridSelected)
		if err != nil {
			return fmt.Errorf("selected %q: %w", gridSelected, err)
		}
		selected = &dt
	}

	loc := time.Local
	if gridZone != "" {
		loc, _ = time.LoadLocation(gridZone)
	}

	cells := calendar.BuildMonth(year, time.Month(month), calendar.Now(loc), selected, holidays)

	fmt.Printf("%s %d\n", time.Month(month), year)
	fmt.Println(" Mo  Tu  We  Th  Fr  Sa  Su")
	for row := 0; row < calendar.GridCells/calendar.GridColumns; row++ {
		var cols []string
		for col := 0; col < calendar.GridColumns; col++ {
			cols = append(cols, renderGridCell(cells[row*calendar.GridColumns+col]))
		}
		fmt.Println(strings.Join(cols, " "))
	}
	return nil
}

func renderGridCell(c calendar.Cell) string {
	day := fmt.Sprintf("%2d", c.Date.Day)
	switch {
	case c.Today:
		return "[" + day + "]"
	case c.Selected:
		return "(" + day + ")"
	case c.Holiday:
		return " " + day + "*"
	case c.OtherMonth:
		return "." + day + " "
	default:
		return " " + day + " "
	}
}
