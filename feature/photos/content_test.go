package photos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"conference-hub/core/feed"
	"conference-hub/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestLoaderDownloadsIntoStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	store := NewMemoryStore(10)
	rest := feed.NewClient(feed.Config{TimeoutSeconds: 5}, zap.NewNop())
	loader := NewLoader(rest, store, zap.NewNop())

	shared := SharedPhoto{
		ID:        "photo-1",
		URL:       server.URL + "/photo-1.jpg",
		CreatedAt: time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
	}
	loader.Load(context.Background(), shared)

	assert.True(t, store.Contains(shared.URL))
	images := store.Images(10)
	assert.Equal(t, []byte("jpeg-bytes"), images[0].Content)
	assert.Equal(t, "photo-1", images[0].PhotoID)
	assert.Equal(t, shared.CreatedAt, images[0].CreatedAt)
}

func TestLoaderSkipsCachedPhoto(t *testing.T) {
	var downloads atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads.Add(1)
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	store := NewMemoryStore(10)
	rest := feed.NewClient(feed.Config{TimeoutSeconds: 5}, zap.NewNop())
	loader := NewLoader(rest, store, zap.NewNop())

	shared := SharedPhoto{ID: "photo-1", URL: server.URL + "/photo-1.jpg"}
	loader.Load(context.Background(), shared)
	loader.Load(context.Background(), shared)

	assert.Equal(t, int64(1), downloads.Load())
	assert.Equal(t, 1, store.Count())
}

func TestLoaderDownloadFailureLeavesStoreUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	store := NewMemoryStore(10)
	rest := feed.NewClient(feed.Config{TimeoutSeconds: 5}, zap.NewNop())
	loader := NewLoader(rest, store, zap.NewNop())

	loader.Load(context.Background(), SharedPhoto{ID: "photo-1", URL: server.URL + "/gone.jpg"})

	assert.Equal(t, 0, store.Count())
}

func TestLoaderArchivesContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	archive := new(mocks.Client)
	archive.On("StatObject", mock.Anything, "photos", "photo-1", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	archive.On("PutObject", mock.Anything, "photos", "photo-1", mock.Anything, int64(len("jpeg-bytes")), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	store := NewMemoryStore(10)
	rest := feed.NewClient(feed.Config{TimeoutSeconds: 5}, zap.NewNop())
	loader := NewLoader(rest, store, zap.NewNop()).WithArchive(archive, "photos")

	loader.Load(context.Background(), SharedPhoto{ID: "photo-1", URL: server.URL + "/photo-1.jpg"})

	assert.True(t, store.Contains(server.URL+"/photo-1.jpg"))
	archive.AssertExpectations(t)
}

func TestLoaderSkipsAlreadyArchivedContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	archive := new(mocks.Client)
	archive.On("StatObject", mock.Anything, "photos", "photo-1", mock.Anything).
		Return(minio.ObjectInfo{Key: "photo-1"}, nil)

	store := NewMemoryStore(10)
	rest := feed.NewClient(feed.Config{TimeoutSeconds: 5}, zap.NewNop())
	loader := NewLoader(rest, store, zap.NewNop()).WithArchive(archive, "photos")

	loader.Load(context.Background(), SharedPhoto{ID: "photo-1", URL: server.URL + "/photo-1.jpg"})

	archive.AssertExpectations(t)
	archive.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
