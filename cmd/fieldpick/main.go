package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fieldpick/fieldpick/cmd/commands"
	"github.com/fieldpick/fieldpick/internal/cli"
	"github.com/fieldpick/fieldpick/pkg/models"
	"github.com/fieldpick/fieldpick/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath string
	quiet      bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "fieldpick",
	Short: "Attachable date-picker overlay for terminal forms",
	Long: `Fieldpick attaches a shared calendar overlay to the text fields of a
terminal form. Fields are configured with a compact format language
(Y m d H i s), optional holidays and a time zone; picking a day in the
overlay writes the formatted date back into the field.

Running without a subcommand starts the interactive demo form.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if configPath == "" {
			configPath = os.Getenv("FIELDPICK_CONFIG")
		}

		cfg := models.DefaultDemoConfig()
		if configPath != "" {
			loaded, err := models.LoadDemoConfig(configPath)
			if err != nil {
				cli.PrintError("%v", err)
				os.Exit(1)
			}
			cfg = loaded
		}

		app, err := tui.NewApp(cfg)
		if err != nil {
			cli.PrintError("failed to build form: %v", err)
			os.Exit(1)
		}

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Fieldpick",
	Long:  `Display the current version of the Fieldpick CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Fieldpick version %s\n", version)
	},
}

func init() {
	// Optional .env file for FIELDPICK_* defaults; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Demo form configuration file (YAML)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewGridCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
