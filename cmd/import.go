package cmd

import (
	"context"
	"fmt"

	"server-props/core/config"
	"server-props/core/database"
	"server-props/core/logger"
	"server-props/core/propsfile"
	"server-props/feature/properties"
	"server-props/feature/properties/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd runs the import pass from the command line, without the HTTP
// server. Useful for initial provisioning and cron-driven refreshes.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import server.properties into the catalog",
	Long: `Scans the configured server.properties file and populates the property
catalog. Known properties have their value refreshed; new keys are created in
the default category with their type inferred from the raw value.

A malformed line aborts the pass. Records written before the abort stay, so a
rerun after fixing the file converges.`,
	RunE: runImport,
}

func init() {
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Property{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	repo := properties.NewRepository(db)
	if err := properties.SeedCategories(ctx, repo, l); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	l.Info("Importing configuration", zap.String("path", cfg.Server.PropertiesPath))

	svc := properties.NewService(db, propsfile.NewStore(), cfg.Server.PropertiesPath, l)
	if err := svc.MapConfiguration(ctx); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	l.Info("Configuration imported successfully")
	return nil
}
