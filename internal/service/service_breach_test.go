package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/adapter"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/mock"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type breachFixture struct {
	svc       BreachService
	breach    *mock.MockBreachAdapter
	users     *mock.MockUserRepository
	passwords *fakePasswords
	accounts  *fakeSocialAccounts
	alerts    *fakeAlerts
	notes     *fakeNotifications
}

func newBreachFixture(t *testing.T, cipher prefixCipher) *breachFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &breachFixture{
		breach:    mock.NewMockBreachAdapter(ctrl),
		users:     mock.NewMockUserRepository(ctrl),
		passwords: &fakePasswords{},
		accounts:  &fakeSocialAccounts{},
		alerts:    &fakeAlerts{},
		notes:     &fakeNotifications{},
	}
	storages := &store.Storages{
		UserRepository:          f.users,
		PasswordRepository:      f.passwords,
		SocialAccountRepository: f.accounts,
		BreachAlertRepository:   f.alerts,
	}
	f.svc = NewBreachService(storages, cipher, f.breach, NewNotificationService(f.notes, logger.Nop()), logger.Nop())
	return f
}

func TestBreachService_CheckPasswords(t *testing.T) {
	f := newBreachFixture(t, prefixCipher{broken: map[string]bool{"enc:rotated": true}})
	ctx := context.Background()

	f.passwords.items = []models.Password{
		{PasswordID: 1, UserID: 1, Title: "GitHub", EncryptedPassword: "enc:password123"},
		{PasswordID: 2, UserID: 1, Title: "Bank", EncryptedPassword: "enc:Xk9#long-unique"},
		{PasswordID: 3, UserID: 1, Title: "Old", EncryptedPassword: "enc:rotated"},
		{PasswordID: 4, UserID: 1, Title: "Mail", EncryptedPassword: "enc:flaky"},
		{PasswordID: 5, UserID: 2, Title: "Other user", EncryptedPassword: "enc:password123"},
	}
	f.accounts.items = []models.SocialAccount{
		{SocialAccountID: 1, UserID: 1, Platform: "reddit", EncryptedPassword: "enc:qwerty"},
	}

	f.breach.EXPECT().PasswordIsBreached(gomock.Any(), "password123").Return(true, nil)
	f.breach.EXPECT().PasswordIsBreached(gomock.Any(), "Xk9#long-unique").Return(false, nil)
	f.breach.EXPECT().PasswordIsBreached(gomock.Any(), "flaky").Return(false, adapter.ErrBreachCheckUnavailable)
	f.breach.EXPECT().PasswordIsBreached(gomock.Any(), "qwerty").Return(true, nil)

	report, err := f.svc.CheckPasswords(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Checked)
	require.Len(t, report.Alerts, 2)
	assert.Equal(t, "Password for GitHub has been found in known data breaches", report.Alerts[0].Description)
	assert.Equal(t, "Password for reddit account has been found in known data breaches", report.Alerts[1].Description)
	assert.Equal(t, models.SeverityHigh, report.Alerts[0].Severity)

	assert.ElementsMatch(t, []models.InconclusiveCheck{
		{Kind: "password", ID: 3, Label: "Old", Reason: reasonUndecryptable},
		{Kind: "password", ID: 4, Label: "Mail", Reason: reasonUnavailable},
	}, report.Inconclusive)

	assert.Len(t, f.notes.created, 2)
	assert.Len(t, f.alerts.items, 2)
}

func TestBreachService_CheckPasswords_EmptyVault(t *testing.T) {
	f := newBreachFixture(t, prefixCipher{})

	report, err := f.svc.CheckPasswords(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, report.Checked)
	assert.NotNil(t, report.Alerts)
	assert.NotNil(t, report.Inconclusive)
}

func TestBreachService_CheckPasswords_ListError(t *testing.T) {
	f := newBreachFixture(t, prefixCipher{})
	f.passwords.listErr = store.ErrExecutingQuery

	_, err := f.svc.CheckPasswords(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestBreachService_CheckEmail(t *testing.T) {
	f := newBreachFixture(t, prefixCipher{})
	ctx := context.Background()

	f.users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, Email: "alice@example.com"}, nil)
	f.breach.EXPECT().EmailBreaches(ctx, "alice@example.com").Return([]models.BreachDescriptor{
		{Name: "Adobe", BreachDate: "2013-10-04"},
		{Name: "Mystery", BreachDate: "unknown"},
	}, nil)

	alerts, err := f.svc.CheckEmail(ctx, 1)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, "Your email was found in the Adobe breach. Breach date: 2013-10-04", alerts[0].Description)
	assert.Equal(t, models.SeverityMedium, alerts[0].Severity)
	assert.Equal(t, time.Date(2013, 10, 4, 0, 0, 0, 0, time.UTC), alerts[0].BreachDate)
	assert.False(t, alerts[1].BreachDate.IsZero())
	assert.Len(t, f.notes.created, 2)
}

func TestBreachService_CheckEmail_Unavailable(t *testing.T) {
	f := newBreachFixture(t, prefixCipher{})

	f.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Email: "a@b.co"}, nil)
	f.breach.EXPECT().EmailBreaches(gomock.Any(), "a@b.co").Return(nil, adapter.ErrBreachCheckUnavailable)

	_, err := f.svc.CheckEmail(context.Background(), 1)
	assert.ErrorIs(t, err, adapter.ErrBreachCheckUnavailable)
	assert.Empty(t, f.alerts.items)
}

func TestBreachService_CheckPassword_TriState(t *testing.T) {
	f := newBreachFixture(t, prefixCipher{})
	ctx := context.Background()

	f.breach.EXPECT().PasswordIsBreached(ctx, "a").Return(true, nil)
	f.breach.EXPECT().PasswordIsBreached(ctx, "b").Return(false, nil)
	f.breach.EXPECT().PasswordIsBreached(ctx, "c").Return(false, errors.New("timeout"))

	assert.Equal(t, models.BreachStatusBreached, f.svc.CheckPassword(ctx, "a"))
	assert.Equal(t, models.BreachStatusClean, f.svc.CheckPassword(ctx, "b"))
	assert.Equal(t, models.BreachStatusUnavailable, f.svc.CheckPassword(ctx, "c"))
}

func TestBreachService_AlertsAndResolve(t *testing.T) {
	f := newBreachFixture(t, prefixCipher{})
	ctx := context.Background()
	f.alerts.items = []models.BreachAlert{{AlertID: 1, UserID: 1}, {AlertID: 2, UserID: 1, IsResolved: true}}

	unresolved, err := f.svc.Alerts(ctx, models.AlertFilter{UserID: 1, Resolved: ptr(false)})
	require.NoError(t, err)
	assert.Len(t, unresolved, 1)

	resolved, err := f.svc.Resolve(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)

	_, err = f.svc.Resolve(ctx, 2, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
