package cmd

import (
	"context"
	"fmt"

	"conference-hub/core/config"
	"conference-hub/core/feed"
	"conference-hub/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// photosCmd is the parent command for photo operations.
var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Work with the shared-photo cache",
	Long:  `Operations on the audience photo feed, outside of the scheduled server job.`,
}

// photosSyncCmd performs one sync run against the photo feed and exits.
var photosSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one photo sync pass against the feed",
	Long: `Walks the paginated photo feed once, downloading photo content into the
cache and, when persistence is enabled, archiving it to object storage.

The run uses the same convergence rules as the scheduled server job: it
stops at the first previously-seen photo, at the end of the feed, or when
the cache is full.`,
	RunE: runPhotoSync,
}

func init() {
	photosCmd.AddCommand(photosSyncCmd)
	RootCmd.AddCommand(photosCmd)
}

func runPhotoSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.Photos.QueryURL == "" {
		return fmt.Errorf("photo feed not configured, set PHOTOS_QUERY_URL")
	}

	feedClient := feed.NewClient(cfg.Feed, l)
	engine, err := buildPhotoEngine(cfg, feedClient, l)
	if err != nil {
		return fmt.Errorf("failed to initialize photo sync: %w", err)
	}

	l.Info("Starting photo sync run")
	pages := engine.Sync(ctx)

	l.Info("Photo sync run finished",
		zap.Int("pages", pages),
		zap.Int("cached", engine.Store().Count()),
	)
	return nil
}
