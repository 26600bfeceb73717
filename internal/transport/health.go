package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/clock"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Health backs the standard gRPC health service with store reachability.
type Health struct {
	server *health.Server
	store  Pinger
	logger *zap.Logger
}

func NewHealth(store Pinger, logger *zap.Logger) *Health {
	server := health.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return &Health{server: server, store: store, logger: logger.Named("health")}
}

// Server returns the service to register on a gRPC server.
func (h *Health) Server() *health.Server {
	return h.server
}

// Check pings the store once and updates the serving status.
func (h *Health) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("store unreachable", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	return status
}

// Watch checks every interval until ctx is done, then reports NOT_SERVING for good.
func (h *Health) Watch(ctx context.Context, interval time.Duration) {
	for {
		h.Check(ctx)
		if err := clock.Sleep(ctx, interval); err != nil {
			h.server.Shutdown()
			return
		}
	}
}
