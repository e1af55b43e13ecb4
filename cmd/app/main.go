package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"neurotrader/configs"
	"neurotrader/internal/cli"
	"neurotrader/internal/logging"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Load configuration
	cfg := configs.Load()
	logger := logging.New(cfg.Log)

	if envErr != nil {
		logger.Debug().Msg(".env file not found, using environment variables")
	}

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
