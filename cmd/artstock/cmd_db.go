package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/artstock/app/models"
	"github.com/shashiranjanraj/artstock/app/repositories"
	"github.com/shashiranjanraj/artstock/app/services"
	"github.com/shashiranjanraj/artstock/config"
	"github.com/shashiranjanraj/artstock/database/seeders"
	"github.com/shashiranjanraj/artstock/pkg/database"
	"github.com/shashiranjanraj/artstock/pkg/logger"
)

// bootDB loads config, opens the store and ensures the artwork table
// exists. Every command goes through here, help included, so the schema
// is always in place before the operation runs.
func bootDB() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	driver := config.DatabaseDriver()
	dsn := config.DatabaseDSN()
	if dbPath != "" {
		dsn = dbPath
	}

	db, err := database.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	logger.Debug("store ready", "driver", driver, "dsn", dsn)
	return db, nil
}

// boot wires the service stack for one invocation.
func boot() (*services.InventoryService, error) {
	db, err := bootDB()
	if err != nil {
		return nil, err
	}
	return services.NewInventoryService(repositories.NewProductRepository(db)), nil
}

// artstock init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and artwork table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := bootDB(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Database initialized.")
		return nil
	},
}

// artstock seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample artwork catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
		return seeders.RunAll(db)
	},
}
