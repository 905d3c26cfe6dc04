package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hqlam/laptopshop/internal/config"
	"github.com/hqlam/laptopshop/internal/data/db"
	"github.com/hqlam/laptopshop/internal/pkg/logger"
	"github.com/hqlam/laptopshop/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "laptopshop",
	Short: "LaptopShop - inventory and order data layer",
	Long: `LaptopShop manages the relational store behind the laptop retailer's
inventory/order tool: schema migration, seed data and a demo walkthrough of
the store and session layers. The desktop UI consumes the same data layer.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap wires logger, config and the database service in the order the
// subcommands need them.
func bootstrap() (*logger.Logger, *config.Config, *db.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logMode := utils.GetEnv("LOG_MODE", cfg.Log.Mode, nil)
	log, err := logger.New(logMode)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	dbService, err := db.New(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}
	return log, cfg, dbService, nil
}
