package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"conference-hub/core/config"
	"conference-hub/core/feed"
	"conference-hub/core/loader"
	"conference-hub/core/logger"
	"conference-hub/core/middleware/auth"
	"conference-hub/core/middleware/rayid"
	"conference-hub/core/stats"
	"conference-hub/core/storage"

	"conference-hub/feature/conference"
	"conference-hub/feature/photos"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the conference hub server",
	Long:  `Starts the HTTP server, initializes all enabled features and schedules the photo sync job.`,
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

		// 3. Initialize Feed Clients
		feedClient := feed.NewClient(cfg.Feed, logg)
		statsClient := stats.NewClient(feedClient, cfg.Stats)

		// 4. Initialize Conference Service
		svc, err := conference.NewService(feedClient, statsClient, logg, cfg.RandomRated)
		if err != nil {
			logg.Fatal("Failed to initialize conference service", zap.Error(err))
		}
		logg = logg.With(zap.String("event", svc.Name()))

		// 5. Initialize Photo Sync (Optional)
		engine, err := buildPhotoEngine(cfg, feedClient, logg)
		if err != nil {
			logg.Fatal("Failed to initialize photo sync", zap.Error(err))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(conference.NewFeature(svc, logg))
		mgr.Register(photos.NewFeature(engine, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Photo Sync Scheduler
		syncCtx, stopSync := context.WithCancel(context.Background())
		defer stopSync()
		if engine != nil {
			go photos.NewRunner(engine, logg).Run(syncCtx)
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopSync()
		_ = app.Shutdown()
	},
}

// buildPhotoEngine assembles the photo sync engine, or returns nil when the
// photo feed is not configured.
func buildPhotoEngine(cfg *config.Config, feedClient *feed.Client, logg *zap.Logger) (*photos.Engine, error) {
	if cfg.Photos.QueryURL == "" {
		logg.Info("Photo feed not configured, photo sync disabled")
		return nil, nil
	}

	store := photos.NewMemoryStore(cfg.Photos.CacheSize)
	contentLoader := photos.NewLoader(feedClient, store, logg)

	if cfg.Photos.Persist {
		archive, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		ctx := context.Background()
		exists, err := archive.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, err
		}
		if !exists {
			if err := archive.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{Region: cfg.Storage.Region}); err != nil {
				return nil, err
			}
			logg.Info("Created photo archive bucket", zap.String("bucket", cfg.Storage.Bucket))
		}
		contentLoader = contentLoader.WithArchive(archive, cfg.Storage.Bucket)
	}

	return photos.NewEngine(cfg.Photos, feedClient, store, contentLoader, logg)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
