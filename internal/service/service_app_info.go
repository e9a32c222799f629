package service

import (
	"context"

	"github.com/MKhiriev/go-pass-god/internal/config"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

const (
	serviceGreeting = "Welcome to PassGod API"
	statusRunning   = "running"
	statusHealthy   = "healthy"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Info(ctx context.Context) models.ServiceInfo {
	return models.ServiceInfo{
		Message: serviceGreeting,
		Version: s.appVersion,
		Status:  statusRunning,
	}
}

func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:  statusHealthy,
		Version: s.appVersion,
	}
}
