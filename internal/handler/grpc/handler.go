// Package grpc exposes the standard gRPC health protocol next to the HTTP
// API so orchestrators can probe the process without an HTTP client.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "passgod.v1.API"

// Handler owns the health status of the process.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC health handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s and marks the process serving.
func (h *Handler) Register(ctx context.Context, s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)

	if h.services != nil && h.services.AppInfoService != nil {
		h.logger.Info().
			Str("version", h.services.AppInfoService.GetAppVersion(ctx)).
			Msg("registering gRPC health service")
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every status to NOT_SERVING so probes fail while in-flight
// HTTP requests drain.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
