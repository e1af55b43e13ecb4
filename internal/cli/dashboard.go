package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"neurotrader/internal/delivery/web"
	"neurotrader/internal/infra"
	"neurotrader/internal/usecase"
)

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Run the web dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config.Dashboard
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			logger := app.Logger.With().Str("component", "dashboard").Logger()

			client := app.apiClient()
			dashboard := usecase.NewDashboardService(client, logger)

			// Auto-refresh
			scheduler := infra.NewScheduler(dashboard, cfg.RefreshSchedule, logger)
			if err := scheduler.Start(); err != nil {
				return fmt.Errorf("failed to start refresh scheduler: %w", err)
			}
			defer scheduler.Stop()

			handler, err := web.NewDashboardHandler(dashboard, client.BaseURL(), logger)
			if err != nil {
				return fmt.Errorf("failed to parse templates: %w", err)
			}

			srv := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      web.NewRouter(handler, logger),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: web.WriteTimeout,
				IdleTimeout:  60 * time.Second,
			}

			logger.Info().
				Str("addr", srv.Addr).
				Str("api_url", client.BaseURL()).
				Str("refresh", scheduler.Schedule()).
				Msg("NeuroTrader dashboard starting")

			err = runServer(cmd.Context(), logger, srv.ListenAndServe, srv.Shutdown)
			if err != nil {
				return fmt.Errorf("dashboard server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("port", "", "listen port (default: $DASHBOARD_PORT)")
	return cmd
}
