// Package cli provides the command-line interface for NeuroTrader.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"neurotrader/configs"
	"neurotrader/internal/adapter"
)

// Version information
const Version = "0.1.0"

// App holds the application dependencies.
type App struct {
	Config *configs.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *configs.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "neurotrader",
		Short: "NeuroTrader AI - demo trading dashboard",
		Long: `NeuroTrader AI is a demo trading dashboard.

'neurotrader serve' runs the mock data API, 'neurotrader dashboard' runs the
web dashboard against it. The status, market and trade commands query a
running API from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}

			format, _ := cmd.Flags().GetString("output")
			if _, err := ParseFormat(format); err != nil {
				return err
			}

			if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
				app.Config.Dashboard.APIURL = apiURL
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", string(FormatJSON), "output format: json or yaml")
	rootCmd.PersistentFlags().String("api-url", "", "mock data API base URL (default: $API_URL)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd(app))
	rootCmd.AddCommand(newDashboardCmd(app))
	addClientCommands(rootCmd, app)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "neurotrader v%s\n", Version)
		},
	}
}

func (a *App) apiClient() *adapter.APIClient {
	return adapter.NewAPIClient(a.Config.Dashboard.APIURL)
}
