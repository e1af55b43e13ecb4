package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const clientTimeout = 15 * time.Second

// addClientCommands adds commands that query a running mock data API.
func addClientCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newPingCmd(app))
	rootCmd.AddCommand(newStatusCmd(app))
	rootCmd.AddCommand(newMarketCmd(app))
	rootCmd.AddCommand(newTradeCmd(app))
}

func newPingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the mock data API is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), clientTimeout)
			defer cancel()

			info, err := app.apiClient().Root(ctx)
			if err != nil {
				return fmt.Errorf("ping %s: %w", app.Config.Dashboard.APIURL, err)
			}
			return NewOutput(cmd).Write(info)
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show system status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), clientTimeout)
			defer cancel()

			status, err := app.apiClient().GetStatus(ctx)
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}
			app.Logger.Debug().Int("uptime_seconds", status.UptimeSeconds).Msg("Fetched status")
			return NewOutput(cmd).Write(status)
		},
	}
}

func newMarketCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show market context for the tracked tickers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), clientTimeout)
			defer cancel()

			market, err := app.apiClient().GetMarketContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to get market context: %w", err)
			}
			app.Logger.Debug().Int("entries", len(market)).Msg("Fetched market context")
			return NewOutput(cmd).Write(market)
		},
	}
}

func newTradeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trade",
		Short: "Execute a mock trade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), clientTimeout)
			defer cancel()

			result, err := app.apiClient().ExecuteTrade(ctx)
			if err != nil {
				return fmt.Errorf("failed to execute trade: %w", err)
			}
			return NewOutput(cmd).Write(result)
		},
	}
}
