package photos

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for cached photos.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(engine *Engine, log *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: log}
}

// RegisterRoutes registers the photo routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/photos")
	group.Get("/", h.HandlePhotos)
	group.Get("/status", h.HandleStatus)
	group.Post("/sync", h.HandleSync)
}

// photoView is the JSON shape of one cached photo.
type photoView struct {
	// PhotoID is the feed-assigned photo identifier.
	PhotoID string `json:"photoId"`
	// URL is where the photo content is hosted.
	URL string `json:"url"`
	// CreatedAt is when the photo was shared.
	CreatedAt time.Time `json:"createdAt"`
	// Content is the base64-encoded photo bytes.
	Content string `json:"content"`
}

// HandlePhotos lists the cached photos, newest first.
// @Summary List Cached Photos
// @Tags photos
// @Produce json
// @Success 200 {array} photoView
// @Router /photos [get]
func (h *Handler) HandlePhotos(c *fiber.Ctx) error {
	images := h.engine.Store().Images(h.engine.cfg.CacheSize)
	views := make([]photoView, 0, len(images))
	for _, img := range images {
		views = append(views, photoView{
			PhotoID:   img.PhotoID,
			URL:       img.URL,
			CreatedAt: img.CreatedAt,
			Content:   base64.StdEncoding.EncodeToString(img.Content),
		})
	}
	return c.JSON(views)
}

// HandleStatus reports cache fill and sync progress.
// @Summary Get Sync Status
// @Tags photos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /photos/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	lastRun, runs := h.engine.LastRun()
	return c.JSON(fiber.Map{
		"cached":    h.engine.Store().Count(),
		"cacheSize": h.engine.cfg.CacheSize,
		"runs":      runs,
		"lastRun":   lastRun,
	})
}

// HandleSync triggers a sync run immediately.
// @Summary Trigger Sync
// @Tags photos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /photos/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	pages := h.engine.Sync(c.Context())
	h.logger.Info("Manual photo sync triggered", zap.Int("pages", pages))
	return c.JSON(fiber.Map{
		"pages":  pages,
		"cached": h.engine.Store().Count(),
	})
}
