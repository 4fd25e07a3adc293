package status

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	host    string
	handler *Handler
}

// NewFeature creates a new Status feature for the game server at host:port.
// The feature stays disabled when no host is configured.
func NewFeature(pinger Pinger, host string, port int, logger *zap.Logger) *Feature {
	svc := NewService(pinger, host, port, logger)
	return &Feature{host: host, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "status"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.host != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
