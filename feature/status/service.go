package status

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// queryTimeout bounds one status query against the game server.
const queryTimeout = 5 * time.Second

// Service queries the configured game server for live information.
type Service struct {
	pinger Pinger
	host   string
	port   int
	logger *zap.Logger
}

// NewService creates a status service for the game server at host:port.
func NewService(pinger Pinger, host string, port int, logger *zap.Logger) *Service {
	return &Service{pinger: pinger, host: host, port: port, logger: logger}
}

// GetInformation returns a live snapshot of the game server.
func (s *Service) GetInformation(ctx context.Context) (*ServerStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return s.pinger.Ping(ctx, s.host, s.port)
}
