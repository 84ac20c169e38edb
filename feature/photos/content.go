package photos

import (
	"bytes"
	"context"

	"conference-hub/core/feed"
	"conference-hub/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ContentLoader populates the image cache with a photo's content.
// Population must be idempotent: loading an already-cached photo is a
// no-op.
type ContentLoader interface {
	Load(ctx context.Context, photo SharedPhoto)
}

// Loader downloads photo content over HTTP into the store, optionally
// archiving the bytes to object storage for retention beyond the in-memory
// cache.
type Loader struct {
	rest   *feed.Client
	store  Store
	logger *zap.Logger

	// archive is nil unless content persistence is configured.
	archive storage.Client
	bucket  string
}

// NewLoader creates a content loader without an archive backend.
func NewLoader(rest *feed.Client, store Store, logger *zap.Logger) *Loader {
	return &Loader{rest: rest, store: store, logger: logger}
}

// WithArchive attaches an object-storage archive for downloaded content.
func (l *Loader) WithArchive(client storage.Client, bucket string) *Loader {
	l.archive = client
	l.bucket = bucket
	return l
}

// Load fetches the photo's content unless it is already cached. Download
// failures are logged and skipped; the sync engine will encounter the
// photo again on a later run.
func (l *Loader) Load(ctx context.Context, photo SharedPhoto) {
	if l.store.Contains(photo.URL) {
		return
	}

	content, err := l.rest.Fetch(ctx, photo.URL)
	if err != nil {
		l.logger.Warn("Downloading photo failed",
			zap.String("photoId", photo.ID),
			zap.String("url", photo.URL),
			zap.Error(err))
		return
	}

	l.store.Add(Image{
		PhotoID:   photo.ID,
		URL:       photo.URL,
		Content:   content,
		CreatedAt: photo.CreatedAt,
	})

	if l.archive != nil {
		l.archivePhoto(ctx, photo, content)
	}
}

// archivePhoto uploads the content under the photo id, skipping objects
// that were archived by an earlier run.
func (l *Loader) archivePhoto(ctx context.Context, photo SharedPhoto, content []byte) {
	_, err := l.archive.StatObject(ctx, l.bucket, photo.ID, minio.StatObjectOptions{})
	if err == nil {
		return
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		l.logger.Warn("Probing photo archive failed", zap.String("photoId", photo.ID), zap.Error(err))
		return
	}

	_, err = l.archive.PutObject(ctx, l.bucket, photo.ID,
		bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{})
	if err != nil {
		l.logger.Warn("Archiving photo failed", zap.String("photoId", photo.ID), zap.Error(err))
	}
}
