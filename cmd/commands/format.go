package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/fieldpick/fieldpick/internal/cli"
	"github.com/fieldpick/fieldpick/pkg/calendar"
	"github.com/fieldpick/fieldpick/pkg/dateformat"
)

var (
	formatDate string
	formatZone string
	formatCopy bool
)

// NewFormatCommand creates the format command
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <format>",
		Short: "Render a date through a format string",
		Long: `Render a date through a format string built from the tokens
Y (4-digit year), m (month), d (day), H (hour), i (minute), s (second).
All other characters are literal.

Without --date the current time is used.

Examples:
  # Today in ISO form
  fieldpick format Y-m-d

  # A specific date, dotted
  fieldpick format d.m.Y --date 2024-02-29

  # Datetime, straight to the clipboard
  fieldpick format "Y-m-d H:i" --copy`,
		Args: cobra.ExactArgs(1),
		RunE: runFormat,
	}

	cmd.Flags().StringVar(&formatDate, "date", "", "Date to render, as Y-m-d or \"Y-m-d H:i:s\" (default: now)")
	cmd.Flags().StringVar(&formatZone, "tz", "", "Time zone for the current time (default: local)")
	cmd.Flags().BoolVar(&formatCopy, "copy", false, "Copy the result to the system clipboard")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateTimeZone(formatZone); err != nil {
		return err
	}

	format, err := dateformat.Compile(args[0])
	if err != nil {
		return err
	}

	dt, err := resolveDate(formatDate, formatZone)
	if err != nil {
		return err
	}

	out := format.Serialize(dt)
	if formatCopy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("'%s' copied to clipboard", out)
		return nil
	}

	fmt.Println(out)
	return nil
}

// resolveDate parses the --date flag, trying the datetime form first, or
// returns the current time in the requested zone.
func resolveDate(value, zone string) (calendar.DateTime, error) {
	loc := time.Local
	if zone != "" {
		loc, _ = time.LoadLocation(zone)
	}
	if value == "" {
		return calendar.Now(loc), nil
	}

	for _, f := range []string{"Y-m-d H:i:s", "Y-m-d"} {
		format, err := dateformat.Compile(f)
		if err != nil {
			return calendar.DateTime{}, err
		}
		if dt, err := format.Parse(value); err == nil {
			return dt, nil
		}
	}
	return calendar.DateTime{}, fmt.Errorf("cannot parse date %q (expected Y-m-d or \"Y-m-d H:i:s\")", value)
}
