package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigc-piloto/sigc-backend/internal/app"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:           "sigc",
	Short:         "SIGC institutional research registration service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./sigc.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"dotenv file loaded before reading the environment")

	rootCmd.AddCommand(serveCmd, seedCmd, registrosCmd)
}

// bootstrap loads configuration and wires the application.
func bootstrap(ctx context.Context) (*app.App, error) {
	if err := app.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	cfg, err := app.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}
