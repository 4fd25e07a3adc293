package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"server-props/core/config"
	"server-props/core/database"
	"server-props/core/loader"
	"server-props/core/logger"
	"server-props/core/middleware/auth"
	"server-props/core/middleware/rayid"
	"server-props/core/propsfile"
	"server-props/core/storage"

	"server-props/feature/backup"
	"server-props/feature/properties"
	"server-props/feature/properties/models"
	"server-props/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "server-props/docs/swagger"
)

// @title Server Props API
// @version 1.0
// @description API for managing Minecraft server.properties through a typed catalog.
// @host localhost:8080
// @BasePath /api/v1

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server-props HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Category{}, &models.Property{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		repo := properties.NewRepository(db)
		if err := properties.SeedCategories(context.Background(), repo, logg); err != nil {
			logg.Fatal("Failed to seed categories", zap.Error(err))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		files := propsfile.NewStore()

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(properties.NewFeature(db, files, cfg.Server.PropertiesPath, logg))
		mgr.Register(status.NewFeature(status.NewPinger(), cfg.Server.GameHost, cfg.Server.GamePort, logg))
		mgr.Register(backup.NewFeature(store, cfg.Storage.Bucket, files, cfg.Server.PropertiesPath, logg))

		// Middleware Registration
		// RayID first so everything downstream can trace
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects the whole API surface
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		api := app.Group("/api/v1")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
