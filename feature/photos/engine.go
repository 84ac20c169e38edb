package photos

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"conference-hub/core/feed"

	"go.uber.org/zap"
)

// Engine walks the paginated shared-photo feed and hands every discovered
// photo to the content loader. Runs are serialized: a run triggered while
// another is in flight waits for it to finish.
//
// A run walks pages newest-first and stops as soon as it reaches photos it
// has seen before, so steady-state runs only pay for the newest page. The
// known-id snapshot is taken once at the start of a run; photos cached by
// the run itself never count as "seen before".
type Engine struct {
	cfg    Config
	rest   *feed.Client
	store  Store
	loader ContentLoader
	logger *zap.Logger

	// mu serializes sync runs.
	mu sync.Mutex

	statsMu sync.Mutex
	lastRun time.Time
	runs    int64
}

// NewEngine creates a sync engine. Invalid configuration is rejected here so
// no run can ever observe it.
func NewEngine(cfg Config, rest *feed.Client, store Store, loader ContentLoader, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		rest:   rest,
		store:  store,
		loader: loader,
		logger: logger,
	}, nil
}

// Store exposes the image cache the engine feeds.
func (e *Engine) Store() Store {
	return e.store
}

// LastRun returns when the most recent sync run finished, and how many runs
// have completed.
func (e *Engine) LastRun() (time.Time, int64) {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	return e.lastRun, e.runs
}

// Sync performs one sync run, waiting for any in-flight run to finish
// first. It returns the number of pages walked.
func (e *Engine) Sync(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.syncLocked(ctx)
}

// TrySync performs one sync run unless another run is already in flight, in
// which case it reports false without doing anything.
func (e *Engine) TrySync(ctx context.Context) (int, bool) {
	if !e.mu.TryLock() {
		return 0, false
	}
	defer e.mu.Unlock()
	return e.syncLocked(ctx), true
}

func (e *Engine) syncLocked(ctx context.Context) int {
	knownIDs := e.store.KnownIDs()

	pages := 0
	lastVisible := ""
	for {
		page, ok := e.fetchPage(ctx, lastVisible)
		if !ok {
			break
		}
		pages++

		foundKnown := false
		for _, photo := range page.Photos {
			if _, seen := knownIDs[photo.ID]; seen {
				foundKnown = true
			}
			e.loader.Load(ctx, photo)
		}

		if !page.PageInfo.HasMore || e.store.Count() >= e.cfg.CacheSize || foundKnown {
			break
		}
		lastVisible = page.PageInfo.LastVisible
	}

	e.statsMu.Lock()
	e.lastRun = time.Now()
	e.runs++
	e.statsMu.Unlock()

	e.logger.Debug("Photo sync run finished",
		zap.Int("pages", pages),
		zap.Int("cached", e.store.Count()))
	return pages
}

// fetchPage retrieves one feed page. An empty cursor requests the first
// page. Failures degrade to absent, ending the run.
func (e *Engine) fetchPage(ctx context.Context, lastVisible string) (SharedPhotos, bool) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(e.cfg.PageSize))
	if lastVisible != "" {
		params.Set("lastVisible", lastVisible)
	}

	var page SharedPhotos
	if !e.rest.GetJSON(ctx, e.cfg.QueryURL, params, &page) {
		return SharedPhotos{}, false
	}
	return page, true
}
