package photos

import (
	"sync"
	"time"
)

// Image is one cached photo together with the origin photo id that ties it
// back to the shared-photo feed.
type Image struct {
	// PhotoID is the feed-assigned id of the photo this content came from.
	PhotoID string
	// URL is the content location the image was fetched from.
	URL string
	// Content is the downloaded photo bytes.
	Content []byte
	// CreatedAt is when the photo was shared.
	CreatedAt time.Time
}

// Store is the bounded, deduplicating image cache the sync engine feeds.
// Entries are keyed by content URL; adding an already-present URL is a
// no-op, making cache population idempotent.
type Store interface {
	// Count returns the number of cached images.
	Count() int
	// Contains reports whether content for the URL is already cached.
	Contains(url string) bool
	// KnownIDs returns a snapshot of the origin photo ids currently held.
	KnownIDs() map[string]struct{}
	// Add caches an image. Already-present URLs are ignored; when the
	// store is full, the oldest entry is evicted first.
	Add(img Image)
	// Images returns up to limit cached images, newest first.
	Images(limit int) []Image
}

// MemoryStore is the in-memory Store implementation. It is rebuilt empty
// on every process start.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	byURL    map[string]Image
	// order tracks insertion order, oldest first
	order []string
}

// NewMemoryStore creates an empty store with the given capacity.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		capacity: capacity,
		byURL:    make(map[string]Image),
	}
}

// Count returns the number of cached images.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byURL)
}

// Contains reports whether content for the URL is already cached.
func (s *MemoryStore) Contains(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byURL[url]
	return ok
}

// KnownIDs returns a snapshot of the origin photo ids currently held.
func (s *MemoryStore) KnownIDs() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[string]struct{}, len(s.byURL))
	for _, img := range s.byURL {
		if img.PhotoID != "" {
			ids[img.PhotoID] = struct{}{}
		}
	}
	return ids
}

// Add caches an image, evicting the oldest entry when full.
func (s *MemoryStore) Add(img Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byURL[img.URL]; ok {
		return
	}

	for len(s.byURL) >= s.capacity && len(s.order) > 0 {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.byURL, oldest)
	}

	s.byURL[img.URL] = img
	s.order = append(s.order, img.URL)
}

// Images returns up to limit cached images, newest first.
func (s *MemoryStore) Images(limit int) []Image {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Image, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.byURL[s.order[i]])
	}
	return out
}
