package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apihttp "neurotrader/internal/delivery/http"
	"neurotrader/internal/service"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mock data API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config.Server
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			logger := app.Logger.With().Str("component", "api").Logger()

			marketService := service.NewMockMarketService(logger)
			e := apihttp.NewServer(&apihttp.RouterConfig{
				MarketHandler: apihttp.NewMarketHandler(marketService),
				Logger:        logger,
			})

			addr := cfg.Addr()
			logger.Info().
				Str("addr", addr).
				Str("env", cfg.Env).
				Msg("NeuroTrader mock data API starting")

			err := runServer(cmd.Context(), logger,
				func() error { return e.Start(addr) },
				e.Shutdown,
			)
			if err != nil {
				return fmt.Errorf("api server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("port", "", "listen port (default: $PORT)")
	return cmd
}
