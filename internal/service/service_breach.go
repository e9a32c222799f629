package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/adapter"
	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/models"
)

const (
	kindPassword      = "password"
	kindSocialAccount = "social_account"

	reasonUndecryptable = "stored secret could not be decrypted"
	reasonUnavailable   = "breach check unavailable"

	breachDateLayout = "2006-01-02"
)

// breachService checks stored secrets and the account email against the
// breach-lookup provider and records alerts for every hit.
type breachService struct {
	storages      *store.Storages
	cipher        crypto.Cipher
	breach        adapter.BreachAdapter
	notifications NotificationService

	now    func() time.Time
	logger *logger.Logger
}

func NewBreachService(storages *store.Storages, cipher crypto.Cipher, breach adapter.BreachAdapter, notifications NotificationService, logger *logger.Logger) BreachService {
	return &breachService{
		storages:      storages,
		cipher:        cipher,
		breach:        breach,
		notifications: notifications,
		now:           time.Now,
		logger:        logger,
	}
}

// secretRef is one stored secret queued for a breach check.
type secretRef struct {
	kind   string
	id     int64
	label  string
	sealed string
}

func (s *breachService) CheckPasswords(ctx context.Context, userID int64) (models.PasswordCheckReport, error) {
	log := logger.FromContext(ctx)

	refs, err := s.collectSecrets(ctx, userID)
	if err != nil {
		return models.PasswordCheckReport{}, err
	}

	report := models.PasswordCheckReport{
		Alerts:       []models.BreachAlert{},
		Inconclusive: []models.InconclusiveCheck{},
	}

	for _, ref := range refs {
		if err = ctx.Err(); err != nil {
			return models.PasswordCheckReport{}, err
		}

		plaintext, err := s.cipher.DecryptString(ref.sealed)
		if err != nil {
			log.Warn().Str("kind", ref.kind).Int64("id", ref.id).Msg("stored secret could not be decrypted")
			report.Inconclusive = append(report.Inconclusive, inconclusive(ref, reasonUndecryptable))
			continue
		}

		breached, err := s.breach.PasswordIsBreached(ctx, plaintext)
		if err != nil {
			log.Warn().Err(err).Str("kind", ref.kind).Int64("id", ref.id).Msg("breach check unavailable")
			report.Inconclusive = append(report.Inconclusive, inconclusive(ref, reasonUnavailable))
			continue
		}
		report.Checked++
		if !breached {
			continue
		}

		alert, err := s.storages.BreachAlertRepository.CreateBreachAlert(ctx, models.BreachAlert{
			UserID:      userID,
			Platform:    ref.label,
			Description: breachedDescription(ref),
			Severity:    models.SeverityHigh,
			BreachDate:  s.now().UTC(),
		})
		if err != nil {
			log.Err(err).Msg("storing breach alert failed")
			return models.PasswordCheckReport{}, fmt.Errorf("storing breach alert failed: %w", err)
		}

		s.notifications.Notify(ctx, notification(userID, models.NotificationBreachAlert, alert.Description, alert.AlertID))
		report.Alerts = append(report.Alerts, alert)
	}

	log.Info().
		Int("checked", report.Checked).
		Int("breached", len(report.Alerts)).
		Int("inconclusive", len(report.Inconclusive)).
		Msg("password breach check finished")

	return report, nil
}

func (s *breachService) collectSecrets(ctx context.Context, userID int64) ([]secretRef, error) {
	var refs []secretRef

	for page := (models.Page{Limit: models.MaxPageLimit}); ; page.Skip += page.Limit {
		passwords, err := s.storages.PasswordRepository.ListPasswords(ctx, userID, page)
		if err != nil {
			return nil, fmt.Errorf("listing passwords failed: %w", err)
		}
		for _, p := range passwords {
			refs = append(refs, secretRef{kind: kindPassword, id: p.PasswordID, label: p.Title, sealed: p.EncryptedPassword})
		}
		if uint64(len(passwords)) < page.Limit {
			break
		}
	}

	for page := (models.Page{Limit: models.MaxPageLimit}); ; page.Skip += page.Limit {
		accounts, err := s.storages.SocialAccountRepository.ListSocialAccounts(ctx, userID, page)
		if err != nil {
			return nil, fmt.Errorf("listing social accounts failed: %w", err)
		}
		for _, a := range accounts {
			refs = append(refs, secretRef{kind: kindSocialAccount, id: a.SocialAccountID, label: a.Platform, sealed: a.EncryptedPassword})
		}
		if uint64(len(accounts)) < page.Limit {
			break
		}
	}

	return refs, nil
}

// CheckEmail records a medium severity alert for every breach the account
// email appears in. Provider failures are returned, not swallowed.
func (s *breachService) CheckEmail(ctx context.Context, userID int64) ([]models.BreachAlert, error) {
	log := logger.FromContext(ctx)

	user, err := s.storages.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user search by id failed: %w", err)
	}

	breaches, err := s.breach.EmailBreaches(ctx, user.Email)
	if err != nil {
		log.Err(err).Msg("email breach lookup failed")
		return nil, err
	}

	alerts := make([]models.BreachAlert, 0, len(breaches))
	for _, b := range breaches {
		alert, err := s.storages.BreachAlertRepository.CreateBreachAlert(ctx, models.BreachAlert{
			UserID:      userID,
			Platform:    b.Name,
			Description: fmt.Sprintf("Your email was found in the %s breach. Breach date: %s", b.Name, b.BreachDate),
			Severity:    models.SeverityMedium,
			BreachDate:  s.breachDate(b.BreachDate),
		})
		if err != nil {
			log.Err(err).Msg("storing breach alert failed")
			return nil, fmt.Errorf("storing breach alert failed: %w", err)
		}

		s.notifications.Notify(ctx, notification(userID, models.NotificationBreachAlert, alert.Description, alert.AlertID))
		alerts = append(alerts, alert)
	}

	log.Info().Int("breaches", len(alerts)).Msg("email breach check finished")
	return alerts, nil
}

func (s *breachService) CheckPassword(ctx context.Context, secret string) models.BreachStatus {
	breached, err := s.breach.PasswordIsBreached(ctx, secret)
	switch {
	case err != nil:
		logger.FromContext(ctx).Warn().Err(err).Msg("breach check unavailable")
		return models.BreachStatusUnavailable
	case breached:
		return models.BreachStatusBreached
	default:
		return models.BreachStatusClean
	}
}

func (s *breachService) Alerts(ctx context.Context, filter models.AlertFilter) ([]models.BreachAlert, error) {
	alerts, err := s.storages.BreachAlertRepository.ListBreachAlerts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing breach alerts failed: %w", err)
	}
	return alerts, nil
}

func (s *breachService) Resolve(ctx context.Context, userID, alertID int64) (models.BreachAlert, error) {
	alert, err := s.storages.BreachAlertRepository.ResolveBreachAlert(ctx, userID, alertID)
	if err != nil {
		return models.BreachAlert{}, fmt.Errorf("resolving breach alert failed: %w", err)
	}
	return alert, nil
}

func (s *breachService) breachDate(value string) time.Time {
	if t, err := time.Parse(breachDateLayout, value); err == nil {
		return t
	}
	return s.now().UTC()
}

func inconclusive(ref secretRef, reason string) models.InconclusiveCheck {
	return models.InconclusiveCheck{Kind: ref.kind, ID: ref.id, Label: ref.label, Reason: reason}
}

func breachedDescription(ref secretRef) string {
	if ref.kind == kindSocialAccount {
		return fmt.Sprintf("Password for %s account has been found in known data breaches", ref.label)
	}
	return fmt.Sprintf("Password for %s has been found in known data breaches", ref.label)
}
