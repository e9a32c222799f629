package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/models"
)

type breachAlertRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBreachAlertRepository(db *DB, logger *logger.Logger) BreachAlertRepository {
	logger.Debug().Msg("creating breach alert repository")
	return &breachAlertRepository{
		db:     db,
		logger: logger,
	}
}

func scanBreachAlert(row rowScanner) (models.BreachAlert, error) {
	var a models.BreachAlert
	err := row.Scan(&a.AlertID, &a.UserID, &a.Platform, &a.Description, &a.Severity, &a.BreachDate, &a.IsResolved, &a.CreatedAt)
	return a, err
}

func (r *breachAlertRepository) CreateBreachAlert(ctx context.Context, alert models.BreachAlert) (models.BreachAlert, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBreachAlert, alert.UserID, alert.Platform, alert.Description, alert.Severity, alert.BreachDate)
	created, err := scanBreachAlert(row)
	if err != nil {
		log.Err(err).Str("func", "*breachAlertRepository.CreateBreachAlert").Msg("error creating breach alert")
		return models.BreachAlert{}, writeError(err)
	}

	return created, nil
}

// ListBreachAlerts returns the alerts of filter.UserID, optionally narrowed
// by resolution state.
func (r *breachAlertRepository) ListBreachAlerts(ctx context.Context, filter models.AlertFilter) ([]models.BreachAlert, error) {
	log := logger.FromContext(ctx)

	b := psql.Select(breachAlertColumns...).From("breach_alerts").Where(sq.Eq{"user_id": filter.UserID})
	if filter.Resolved != nil {
		b = b.Where(sq.Eq{"is_resolved": *filter.Resolved})
	}

	query, args, err := pageOf(b, filter.Page, "alert_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	alerts, err := queryList(ctx, r.db, query, args, scanBreachAlert)
	if err != nil {
		log.Err(err).Str("func", "*breachAlertRepository.ListBreachAlerts").Int64("user_id", filter.UserID).Msg("error listing breach alerts")
		return nil, err
	}

	return alerts, nil
}

func (r *breachAlertRepository) ListAllBreachAlerts(ctx context.Context, page models.Page) ([]models.BreachAlert, error) {
	log := logger.FromContext(ctx)

	query, args, err := pageOf(psql.Select(breachAlertColumns...).From("breach_alerts"), page, "alert_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	alerts, err := queryList(ctx, r.db, query, args, scanBreachAlert)
	if err != nil {
		log.Err(err).Str("func", "*breachAlertRepository.ListAllBreachAlerts").Msg("error listing breach alerts")
		return nil, err
	}

	return alerts, nil
}

func (r *breachAlertRepository) ResolveBreachAlert(ctx context.Context, userID, alertID int64) (models.BreachAlert, error) {
	log := logger.FromContext(ctx)

	resolved, err := scanBreachAlert(r.db.QueryRowContext(ctx, resolveBreachAlert, alertID, userID))
	if err != nil {
		log.Err(err).Str("func", "*breachAlertRepository.ResolveBreachAlert").Int64("alert_id", alertID).Msg("error resolving breach alert")
		return models.BreachAlert{}, writeError(err)
	}

	return resolved, nil
}
