package photos

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	engine  *Engine
	handler *Handler
}

// NewFeature creates the photos feature around an already-constructed
// engine. A nil engine (photo feed not configured) yields a disabled
// feature.
func NewFeature(engine *Engine, logger *zap.Logger) *Feature {
	return &Feature{
		engine:  engine,
		handler: NewHandler(engine, logger),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "photos"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.engine != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
