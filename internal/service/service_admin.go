package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/models"
)

// adminService backs the admin endpoints. Callers are checked for is_admin
// by the transport before any method runs.
type adminService struct {
	userRepository        store.UserRepository
	breachAlertRepository store.BreachAlertRepository

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, breachAlertRepository store.BreachAlertRepository, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository:        userRepository,
		breachAlertRepository: breachAlertRepository,
		logger:                logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting user failed: %w", err)
	}
	logger.FromContext(ctx).Info().Int64("deleted_user_id", userID).Msg("user deleted by admin")
	return nil
}

func (s *adminService) ListBreaches(ctx context.Context, page models.Page) ([]models.BreachAlert, error) {
	alerts, err := s.breachAlertRepository.ListAllBreachAlerts(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing breach alerts failed: %w", err)
	}
	return alerts, nil
}
