package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldpick/fieldpick/internal/cli"
	"github.com/fieldpick/fieldpick/pkg/dateformat"
)

var parseOutput string

// ParsedDate is the structured output of the parse command.
type ParsedDate struct {
	Year   int `json:"year" yaml:"year"`
	Month  int `json:"month" yaml:"month"`
	Day    int `json:"day" yaml:"day"`
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`
	Second int `json:"second" yaml:"second"`
}

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <format> <text>",
		Short: "Decode text against a format string",
		Long: `Decode a date string against a format built from the tokens
Y m d H i s. Token order in the format defines which number lands in
which field, so "d.m.Y" and "Y-m-d" both decode their own layouts.

Examples:
  fieldpick parse Y-m-d 2024-02-29
  fieldpick parse d.m.Y 29.02.2024 --output json`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(parseOutput)
		},
		RunE: runParse,
	}

	cmd.Flags().StringVarP(&parseOutput, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := dateformat.Compile(args[0])
	if err != nil {
		return err
	}

	dt, err := format.Parse(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", describeParseError(err), err)
	}

	result := ParsedDate{
		Year:   dt.Year,
		Month:  int(dt.Month),
		Day:    dt.Day,
		Hour:   dt.Hour,
		Minute: dt.Minute,
		Second: dt.Second,
	}

	if parseOutput == "text" {
		table := cli.NewTableFormatter(os.Stdout)
		table.Header("FIELD", "VALUE")
		table.Row("year", fmt.Sprintf("%d", result.Year))
		table.Row("month", fmt.Sprintf("%d", result.Month))
		table.Row("day", fmt.Sprintf("%d", result.Day))
		table.Row("hour", fmt.Sprintf("%d", result.Hour))
		table.Row("minute", fmt.Sprintf("%d", result.Minute))
		table.Row("second", fmt.Sprintf("%d", result.Second))
		table.Flush()
		return nil
	}
	return cli.OutputResults(os.Stdout, parseOutput, result)
}

func describeParseError(err error) string {
	switch {
	case errors.Is(err, dateformat.ErrNoMatch):
		return "no match"
	case errors.Is(err, dateformat.ErrInvalidDate):
		return "invalid date"
	case errors.Is(err, dateformat.ErrInvalidTime):
		return "invalid time"
	default:
		return "parse failed"
	}
}
